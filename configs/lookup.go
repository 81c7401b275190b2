package configs

import "errors"

// First returns the value at path from the first file defining it, or the zero value.
func First[T any](loader Loader, path string) (T, error) {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil && !errors.Is(err, ErrValueNotFound) {
		return value, err
	}
	return value, nil
}
