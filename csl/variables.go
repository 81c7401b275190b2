package csl

import (
	"fmt"
	"maps"
	"strconv"
)

// Variables is the global name to value table. Values are plain strings.
type Variables struct {
	values map[string]string
}

func NewVariables() *Variables {
	return &Variables{
		values: make(map[string]string),
	}
}

// Resolve returns the value of token if it names a variable, token itself otherwise.
// Only one level of lookup is done.
func (v *Variables) Resolve(token string) string {
	if value, ok := v.values[token]; ok {
		return value
	}
	return token
}

// Set stores the resolved valueOrName under name.
func (v *Variables) Set(name string, valueOrName string) {
	v.values[name] = v.Resolve(valueOrName)
}

func (v *Variables) ResolveFloat(token string) (float64, error) {
	value := v.Resolve(token)
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, value)
	}
	return f, nil
}

func (v *Variables) Get(name string) (string, bool) {
	value, ok := v.values[name]
	return value, ok
}

func (v *Variables) Snapshot() map[string]string {
	return maps.Clone(v.values)
}
