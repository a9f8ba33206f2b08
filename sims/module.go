package sims

import (
	"github.com/reusee/dscope"

	"github.com/reusee/typogenetics/logs"
	"github.com/reusee/typogenetics/metrics"
	"github.com/reusee/typogenetics/typo"
	"github.com/reusee/typogenetics/typoconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs typoconfigs.Module
	Metrics metrics.Module
}

func (Module) Editor() Editor {
	return DefaultEditor()
}

func (Module) Simulator(
	rewriter typo.Rewriter,
	editor Editor,
	iterations typoconfigs.Iterations,
	seed typoconfigs.Seed,
	editRate typoconfigs.EditRate,
	logger logs.Logger,
	newRun logs.NewRun,
	recorder *metrics.Recorder,
) *Simulator {
	return &Simulator{
		Rewriter:   rewriter,
		Editor:     editor,
		Iterations: int(iterations),
		Seed:       int64(seed),
		EditRate:   float64(editRate),
		logger:     logger,
		newRun:     newRun,
		recorder:   recorder,
	}
}
