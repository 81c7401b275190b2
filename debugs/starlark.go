package debugs

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/reusee/csl/csl"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts program state for the tap REPL.
func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)
	case float64:
		return starlark.Float(v)

	case error:
		return starlark.String(v.Error())

	case []string:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = starlark.String(e)
		}
		return starlark.NewList(elems)

	case map[string]string:
		d := starlark.NewDict(len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			d.SetKey(starlark.String(k), starlark.String(v[k]))
		}
		return d

	case map[string]any:
		d := starlark.NewDict(len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			d.SetKey(starlark.String(k), toStarlarkValue(v[k]))
		}
		return d

	case csl.Line:
		return starlark.String(v.String())

	case csl.Instruction:
		return starlark.String(v.String())

	case *csl.Function:
		if v == nil {
			return starlark.None
		}
		insts := make([]starlark.Value, len(v.Instructions))
		for i, inst := range v.Instructions {
			insts[i] = toStarlarkValue(inst)
		}
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("name"), starlark.String(v.Name))
		d.SetKey(starlark.String("header"), toStarlarkValue(v.Header))
		d.SetKey(starlark.String("instructions"), starlark.NewList(insts))
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.String:
		// named string types like csl.Entry
		return starlark.String(value.String())

	case reflect.Func:
		return starlarkutil.MakeFunc("", v)

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
