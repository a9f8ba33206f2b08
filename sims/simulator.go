package sims

import (
	"cmp"
	"context"
	"slices"

	"github.com/reusee/typogenetics/logs"
	"github.com/reusee/typogenetics/metrics"
	"github.com/reusee/typogenetics/typo"
	"github.com/reusee/typogenetics/typoconfigs"
)

// Simulator lets strands act on each other at random: a strand is translated
// into enzymes and one of them rewrites a strand from the population.
type Simulator struct {
	Rewriter   typo.Rewriter
	Editor     Editor
	Iterations int
	Seed       int64

	// EditRate is the probability that an iteration also applies a point edit.
	EditRate float64

	logger   logs.Logger
	newRun   logs.NewRun
	recorder *metrics.Recorder
}

type Result struct {
	Run          logs.Run
	Iterations   int
	Translations int
	Rewrites     int
	Edits        int

	// Discovered holds every distinct strand seen, seed included, ordered by text.
	Discovered []typo.Strand
}

func (s *Simulator) Simulate(ctx context.Context, seed typo.Strand) (*Result, error) {
	if err := s.Editor.Validate(); err != nil {
		return nil, err
	}
	if err := typoconfigs.EditRate(s.EditRate).Validate(); err != nil {
		return nil, err
	}

	ctx, run := s.newRun(ctx, "simulate",
		"seed", seed.String(),
		"iterations", s.Iterations,
		"rand_seed", s.Seed,
	)
	rng := NewRand(s.Seed)

	result := &Result{
		Run: run,
	}
	population := []typo.Strand{seed}
	known := map[string]bool{
		seed.String(): true,
	}
	add := func(strand typo.Strand) {
		if strand.Len() == 0 {
			return
		}
		key := strand.String()
		if known[key] {
			return
		}
		known[key] = true
		population = append(population, strand)
		s.recorder.SetPopulation(len(population))
		s.logger.DebugContext(ctx, "discovered",
			"strand", key,
			"population", len(population),
		)
	}
	s.recorder.SetPopulation(len(population))

	for range s.Iterations {
		select {
		case <-ctx.Done():
			return nil, logs.WrapRun(ctx, ctx.Err())
		default:
		}
		result.Iterations++

		producer := population[rng.IntN(len(population))]
		enzymes := typo.Translate(producer)
		result.Translations++
		s.recorder.Translated()

		if len(enzymes) > 0 {
			enzyme := enzymes[rng.IntN(len(enzymes))]
			target := population[rng.IntN(len(population))]
			machine := s.Rewriter.NewMachine(enzyme, target)
			outputs := machine.Result()
			result.Rewrites++
			s.recorder.Rewrote(machine.Halt, len(outputs))
			for _, output := range outputs {
				add(output)
			}
		}

		if s.EditRate > 0 && rng.Float64() < s.EditRate {
			member := population[rng.IntN(len(population))]
			edited, kind := s.Editor.Edit(member, rng)
			result.Edits++
			s.recorder.Edited(string(kind))
			add(edited)
		}
	}

	result.Discovered = slices.SortedFunc(slices.Values(population), func(a, b typo.Strand) int {
		return cmp.Compare(a.String(), b.String())
	})

	s.logger.InfoContext(ctx, "simulation done",
		"iterations", result.Iterations,
		"rewrites", result.Rewrites,
		"edits", result.Edits,
		"discovered", len(result.Discovered),
	)

	return result, nil
}
