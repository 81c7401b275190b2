package configs

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/reusee/dscope"
)

// Fork overrides every Configurable type defined in scope with the value found in loader.
// Types without a config value keep their definitions.
func Fork(scope dscope.Scope, loader Loader) (dscope.Scope, error) {
	var defs []any
	for t := range scope.AllTypes() {
		if !t.Implements(configurableType) {
			continue
		}
		ptr := reflect.New(t)
		expr := ptr.Elem().Interface().(Configurable).ConfigExpr()
		if err := loader.AssignFirst(expr, ptr.Interface()); err != nil {
			if errors.Is(err, ErrValueNotFound) {
				continue
			}
			return scope, fmt.Errorf("config %s: %w", expr, err)
		}
		defs = append(defs, ptr.Interface())
	}
	if len(defs) == 0 {
		return scope, nil
	}
	return scope.Fork(defs...), nil
}
