package debugs

import (
	"errors"

	"go.starlark.net/starlark"

	"github.com/reusee/typogenetics/typo"
)

var ErrNotBound = errors.New("enzyme does not bind to strand")

func stringList[T interface{ String() string }](values []T) *starlark.List {
	elems := make([]starlark.Value, len(values))
	for i, v := range values {
		elems[i] = starlark.String(v.String())
	}
	return starlark.NewList(elems)
}

// Builtins exposes the typogenetics operations to Starlark. Strands and
// enzymes are passed and returned as canonical strings.
func Builtins(rewriter typo.Rewriter) starlark.StringDict {
	return starlark.StringDict{

		"translate": starlark.NewBuiltin("translate", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var s string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "strand", &s); err != nil {
				return nil, err
			}
			strand, err := typo.ParseStrand(s)
			if err != nil {
				return nil, err
			}
			return stringList(typo.Translate(strand)), nil
		}),

		"fold": starlark.NewBuiltin("fold", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var e string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "enzyme", &e); err != nil {
				return nil, err
			}
			enzyme, err := typo.ParseEnzyme(e)
			if err != nil {
				return nil, err
			}
			orientation := rewriter.Folder.Fold(enzyme)
			return starlark.Tuple{
				starlark.String(orientation.String()),
				starlark.String(orientation.BindingAffinity().String()),
			}, nil
		}),

		"binding_site": starlark.NewBuiltin("binding_site", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			enzyme, strand, err := unpackEnzymeStrand(fn, args, kwargs)
			if err != nil {
				return nil, err
			}
			site, ok := rewriter.Folder.BindingSite(enzyme, strand)
			if !ok {
				return starlark.None, nil
			}
			return starlark.MakeInt(site), nil
		}),

		"rewrite": starlark.NewBuiltin("rewrite", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			enzyme, strand, err := unpackEnzymeStrand(fn, args, kwargs)
			if err != nil {
				return nil, err
			}
			return stringList(rewriter.Rewrite(enzyme, strand)), nil
		}),

		"picture": starlark.NewBuiltin("picture", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			enzyme, strand, err := unpackEnzymeStrand(fn, args, kwargs)
			if err != nil {
				return nil, err
			}
			machine := rewriter.NewMachine(enzyme, strand)
			if !machine.Bound {
				return nil, ErrNotBound
			}
			machine.Result()
			return starlark.String(machine.Picture()), nil
		}),
	}
}

func unpackEnzymeStrand(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (enzyme typo.Enzyme, strand typo.Strand, err error) {
	var e, s string
	if err = starlark.UnpackArgs(fn.Name(), args, kwargs, "enzyme", &e, "strand", &s); err != nil {
		return
	}
	if enzyme, err = typo.ParseEnzyme(e); err != nil {
		return
	}
	strand, err = typo.ParseStrand(s)
	return
}
