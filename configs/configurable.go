package configs

import "reflect"

// Configurable values can be loaded from config files by Fork.
// ConfigExpr returns the CUE path of the value.
type Configurable interface {
	ConfigExpr() string
}

var configurableType = reflect.TypeFor[Configurable]()
