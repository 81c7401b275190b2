package cmds

// Var defines a command that stores its argument. "name." resets it.
func Var[T any](name string, desc string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Desc("reset "+name).Hide())
	return &value
}

// Switch defines "name" to turn on and "!name" to turn off.
func Switch(name string, desc string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("disable "+name).Hide())
	return &value
}

// Collect defines a repeatable command whose arguments accumulate in order.
func Collect[T any](name string, desc string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc+" (repeatable)"))
	return &value
}
