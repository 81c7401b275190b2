package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE config files lazily, validating each against a closed schema.
// Files given earlier take precedence.
type Loader struct {
	getRoots func() ([]root, error)
}

type root struct {
	path  string
	value cue.Value
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() ([]root, error) {
			return loadRoots(filePaths, schemaSrc)
		}),
	}
}

func loadRoots(filePaths []string, schemaSrc string) (roots []root, err error) {
	// schema and files must share a runtime to be unified
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
	}

	for _, filePath := range filePaths {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		value := ctx.CompileBytes(content, cue.Filename(filePath))
		if err := value.Err(); err != nil {
			return nil, fmt.Errorf("compile %s: %w", filePath, err)
		}
		if schema.Exists() {
			if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
				return nil, fmt.Errorf("validate %s: %w", filePath, err)
			}
		}
		roots = append(roots, root{
			path:  filePath,
			value: value,
		})
	}

	return roots, nil
}

// Values yields the value at path from every file defining it.
func (l Loader) Values(path string) iter.Seq2[cue.Value, error] {
	return func(yield func(cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(cue.Value{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, r := range roots {
			value := r.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the value at path from the first file that defines it.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.Values(path) {
		if err != nil {
			return err
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValueNotFound, path)
}
