package debugs

import (
	"errors"
	"testing"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/reusee/typogenetics/typo"
)

func execScript(t *testing.T, rewriter typo.Rewriter, src string) (starlark.StringDict, error) {
	thread := &starlark.Thread{
		Name: t.Name(),
	}
	return starlark.ExecFileOptions(
		&syntax.FileOptions{},
		thread,
		"test.star",
		src,
		Builtins(rewriter),
	)
}

func TestBuiltins(t *testing.T) {
	globals, err := execScript(t, typo.Rewriter{}, `
enzymes = translate("CAAAGAGAATCCTCTTTGAT")
orientation = fold("rpy-ina-rpu-mvr-int-mvl-cut-swi-cop")
site = binding_site("cut", "ACA")
no_site = binding_site("cop", "CG")
outputs = rewrite("cut", "ACA")
pic = picture("cop", "A")
`)
	if err != nil {
		t.Fatal(err)
	}

	expect := func(name string, want starlark.Value) {
		t.Helper()
		equal, err := starlark.Equal(globals[name], want)
		if err != nil {
			t.Fatal(err)
		}
		if !equal {
			t.Fatalf("%s: got %v, want %v", name, globals[name], want)
		}
	}
	expect("enzymes", starlark.NewList([]starlark.Value{
		starlark.String("mvr"),
		starlark.String("ina-ina-swi-mvl-rpu-lpu-lpy-swi"),
	}))
	expect("site", starlark.MakeInt(0))
	expect("no_site", starlark.None)
	expect("outputs", starlark.NewList([]starlark.Value{
		starlark.String("CA"),
		starlark.String("A"),
	}))
	expect("pic", starlark.String("⊥\nA\n^"))

	orientation, ok := globals["orientation"].(starlark.Tuple)
	if !ok || orientation.Len() != 2 {
		t.Fatalf("got %v", globals["orientation"])
	}
	want := typo.Fold(typo.MustParseEnzyme("rpy-ina-rpu-mvr-int-mvl-cut-swi-cop"))
	if orientation[0] != starlark.String(want.String()) ||
		orientation[1] != starlark.String(want.BindingAffinity().String()) {
		t.Fatalf("got %v", orientation)
	}
}

func TestBuiltinsErrors(t *testing.T) {
	for _, src := range []string{
		`translate("ACGX")`,
		`fold("")`,
		`rewrite("foo", "A")`,
		`binding_site("cut")`,
	} {
		if _, err := execScript(t, typo.Rewriter{}, src); err == nil {
			t.Fatalf("%s: should fail", src)
		}
	}

	_, err := execScript(t, typo.Rewriter{}, `picture("cop", "CG")`)
	if !errors.Is(err, ErrNotBound) {
		t.Fatalf("got %v", err)
	}
}

func TestBuiltinsPolicy(t *testing.T) {
	globals, err := execScript(t, typo.Rewriter{
		HoldCursorOnInsert: true,
	}, `out = rewrite("ina-inc", "A")`)
	if err != nil {
		t.Fatal(err)
	}
	want := starlark.NewList([]starlark.Value{starlark.String("ACA")})
	if equal, _ := starlark.Equal(globals["out"], want); !equal {
		t.Fatalf("got %v", globals["out"])
	}
}
