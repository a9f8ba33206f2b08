package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if tt != nil {
			t.Fatal()
		}
		if mode != ModeProduction || mode.Deterministic() {
			t.Fatalf("got %v", mode)
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if tt != t {
			t.Fatal()
		}
		if mode != ModeDevelopment || !mode.Deterministic() {
			t.Fatalf("got %v", mode)
		}
		if mode.String() != "development" {
			t.Fatal()
		}
	})
}
