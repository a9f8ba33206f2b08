package debugs

import (
	"io"
	"testing"

	"github.com/reusee/dscope"

	"github.com/reusee/typogenetics/configs"
	"github.com/reusee/typogenetics/logs"
	"github.com/reusee/typogenetics/modes"
	"github.com/reusee/typogenetics/typo"
)

func TestTap(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() logs.Writer {
			return io.Discard
		},
		func() configs.Loader {
			return configs.NewSourceLoader(nil, "")
		},
	).Call(func(
		tap Tap,
	) {
		// stdin is empty under go test, so the session ends at once
		tap(t.Context(), "test", map[string]any{
			"seed": typo.MustParseStrand("CGA"),
			"n":    42,
		})
	})
}
