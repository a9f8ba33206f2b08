package sims

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/reusee/typogenetics/typo"
)

var ErrBadWeights = errors.New("edit weights must sum to 1")

type EditKind string

const (
	EditMutate EditKind = "mutate"
	EditInsert EditKind = "insert"
	EditDelete EditKind = "delete"
)

// Editor applies random point edits to strands.
type Editor struct {
	Mutate float64
	Insert float64
	Delete float64
}

func DefaultEditor() Editor {
	return Editor{
		Mutate: 0.80,
		Insert: 0.10,
		Delete: 0.10,
	}
}

func (e Editor) Validate() error {
	if e.Mutate < 0 || e.Insert < 0 || e.Delete < 0 {
		return fmt.Errorf("%w: negative weight in %+v", ErrBadWeights, e)
	}
	if sum := e.Mutate + e.Insert + e.Delete; math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("%w: got %v", ErrBadWeights, sum)
	}
	return nil
}

// Edit picks an edit kind by cumulative weight and applies it.
// An empty strand can only grow.
func (e Editor) Edit(strand typo.Strand, rng *rand.Rand) (typo.Strand, EditKind) {
	if strand.Len() == 0 {
		return e.InsertBase(strand, rng), EditInsert
	}
	p := rng.Float64()
	switch {
	case p < e.Mutate:
		return e.MutateBase(strand, rng), EditMutate
	case p < e.Mutate+e.Insert:
		return e.InsertBase(strand, rng), EditInsert
	default:
		return e.DeleteBase(strand, rng), EditDelete
	}
}

func bases(strand typo.Strand) []typo.Base {
	ret := make([]typo.Base, 0, strand.Len()+1)
	for _, b := range strand.Bases() {
		ret = append(ret, b)
	}
	return ret
}

// MutateBase replaces one base with a different one.
func (Editor) MutateBase(strand typo.Strand, rng *rand.Rand) typo.Strand {
	if strand.Len() == 0 {
		return strand
	}
	bs := bases(strand)
	i := rng.IntN(len(bs))
	var others []typo.Base
	for _, b := range typo.AllBases() {
		if b != bs[i] {
			others = append(others, b)
		}
	}
	bs[i] = others[rng.IntN(len(others))]
	return typo.NewStrand(bs...)
}

// InsertBase inserts a random base at a position in [0, len].
func (Editor) InsertBase(strand typo.Strand, rng *rand.Rand) typo.Strand {
	bs := bases(strand)
	all := typo.AllBases()
	bs = slices.Insert(bs, rng.IntN(len(bs)+1), all[rng.IntN(len(all))])
	return typo.NewStrand(bs...)
}

// DeleteBase removes one base.
func (Editor) DeleteBase(strand typo.Strand, rng *rand.Rand) typo.Strand {
	if strand.Len() == 0 {
		return strand
	}
	bs := bases(strand)
	i := rng.IntN(len(bs))
	return typo.NewStrand(slices.Delete(bs, i, i+1)...)
}
