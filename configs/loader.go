package configs

import (
	"errors"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("value not found")

// Loader reads CUE files lazily and validates each against a closed schema.
// Lookups consult files in the order given; the first file defining a path wins.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type rootInfo struct {
	value cue.Value
	path  string
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() ([]rootInfo, error) {
			sources := make([]Source, 0, len(filePaths))
			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}
				sources = append(sources, Source{
					Name:    filePath,
					Content: content,
				})
			}
			return compile(sources, schemaSrc)
		}),
	}
}

type Source struct {
	Name    string
	Content []byte
}

func NewSourceLoader(sources []Source, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() ([]rootInfo, error) {
			return compile(sources, schemaSrc)
		}),
	}
}

func compile(sources []Source, schemaSrc string) (ret []rootInfo, err error) {
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, err
		}
	}

	for _, source := range sources {
		value := ctx.CompileBytes(
			source.Content,
			cue.Filename(source.Name),
		)
		if err = value.Err(); err != nil {
			return nil, err
		}

		if schema.Exists() {
			if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
				return nil, err
			}
		}

		ret = append(ret, rootInfo{
			value: value,
			path:  source.Name,
		})
	}

	return
}

// Paths returns the names of the sources that compiled.
func (l Loader) Paths() ([]string, error) {
	roots, err := l.getRoots()
	if err != nil {
		return nil, err
	}
	ret := make([]string, len(roots))
	for i, root := range roots {
		ret[i] = root.path
	}
	return ret, nil
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if value.Exists() && value.Err() == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
