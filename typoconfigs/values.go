package typoconfigs

import (
	"errors"
	"fmt"
	"time"

	"github.com/reusee/typogenetics/cmds"
	"github.com/reusee/typogenetics/configs"
	"github.com/reusee/typogenetics/modes"
	"github.com/reusee/typogenetics/typo"
	"github.com/reusee/typogenetics/vars"
)

const (
	DefaultIterations = 1000
	DefaultSeed       = 1
)

var ErrEditRateRange = errors.New("edit rate must be within [0, 1]")

var (
	iterationsFlag = cmds.OptionalVar[int]("-iterations", "number of simulation iterations")
	seedFlag       = cmds.OptionalVar[int64]("-seed", "random seed")
	editRateFlag   = cmds.OptionalVar[float64]("-edit-rate", "probability of a point edit per iteration")
	foldEndsFlag   = cmds.OptionalSwitch("-fold-ends", "count the first and last amino acid when folding")
	holdCursorFlag = cmds.OptionalSwitch("-hold-cursor", "keep the cursor left of inserted bases")
)

// fromConfig reads path from the config files. Errors panic out of the provider.
func fromConfig[T any](loader configs.Loader, path string) func() (T, bool) {
	return func() (T, bool) {
		value, ok, err := configs.Lookup[T](loader, path)
		if err != nil {
			panic(wrap(err))
		}
		return value, ok
	}
}

type Iterations int

func (Module) Iterations(
	loader configs.Loader,
) Iterations {
	return Iterations(vars.FirstOr(
		DefaultIterations,
		iterationsFlag.Get,
		fromConfig[int](loader, "iterations"),
	))
}

type Seed int64

// Seed prefers the flag, then the config file. Without either, development
// runs use a fixed seed and production runs draw one from the clock.
func (Module) Seed(
	loader configs.Loader,
	mode modes.Mode,
) Seed {
	def := int64(DefaultSeed)
	if !mode.Deterministic() {
		def = time.Now().UnixNano()
	}
	return Seed(vars.FirstOr(
		def,
		seedFlag.Get,
		fromConfig[int64](loader, "seed"),
	))
}

type EditRate float64

// Validate applies the schema's range to rates from any source.
func (r EditRate) Validate() error {
	if r < 0 || r > 1 {
		return fmt.Errorf("%w: got %v", ErrEditRateRange, float64(r))
	}
	return nil
}

func (Module) EditRate(
	loader configs.Loader,
) EditRate {
	return EditRate(vars.FirstOr(
		0,
		editRateFlag.Get,
		fromConfig[float64](loader, "edit_rate"),
	))
}

type FoldEnds bool

func (Module) FoldEnds(
	loader configs.Loader,
) FoldEnds {
	return FoldEnds(vars.FirstOr(
		false,
		foldEndsFlag.Get,
		fromConfig[bool](loader, "fold_ends"),
	))
}

type HoldCursor bool

func (Module) HoldCursor(
	loader configs.Loader,
) HoldCursor {
	return HoldCursor(vars.FirstOr(
		false,
		holdCursorFlag.Get,
		fromConfig[bool](loader, "hold_cursor"),
	))
}

func (Module) Rewriter(
	foldEnds FoldEnds,
	holdCursor HoldCursor,
) typo.Rewriter {
	return typo.Rewriter{
		Folder: typo.Folder{
			CountEnds: bool(foldEnds),
		},
		HoldCursorOnInsert: bool(holdCursor),
	}
}
