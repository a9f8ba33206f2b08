package typo

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Strand is an immutable sequence of bases.
type Strand struct {
	bases []Base
}

func NewStrand(bases ...Base) Strand {
	for i, b := range bases {
		if !b.Valid() {
			panic(fmt.Errorf("%w at %d: %v", ErrInvalidBase, i, b))
		}
	}
	return Strand{
		bases: slices.Clone(bases),
	}
}

// ParseStrand reads a strand from its letters. Spaces are ignored.
func ParseStrand(text string) (Strand, error) {
	bases := make([]Base, 0, len(text))
	for i, r := range text {
		if r == ' ' {
			continue
		}
		b, err := ParseBase(r)
		if err != nil {
			return Strand{}, fmt.Errorf("parse strand at %d: %w", i, err)
		}
		bases = append(bases, b)
	}
	return Strand{
		bases: bases,
	}, nil
}

func MustParseStrand(text string) Strand {
	s, err := ParseStrand(text)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Strand) String() string {
	var b strings.Builder
	b.Grow(len(s.bases))
	for _, base := range s.bases {
		b.WriteString(base.String())
	}
	return b.String()
}

func (s Strand) Len() int {
	return len(s.bases)
}

func (s Strand) At(i int) Base {
	return s.bases[i]
}

func (s Strand) Equal(other Strand) bool {
	return slices.Equal(s.bases, other.bases)
}

func (s Strand) Bases() iter.Seq2[int, Base] {
	return func(yield func(int, Base) bool) {
		for i, b := range s.bases {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Duplets yields consecutive non-overlapping base pairs; an odd trailing base is dropped.
func (s Strand) Duplets() iter.Seq[Duplet] {
	return func(yield func(Duplet) bool) {
		for i := 0; i+1 < len(s.bases); i += 2 {
			if !yield(Duplet{
				First:  s.bases[i],
				Second: s.bases[i+1],
			}) {
				return
			}
		}
	}
}

// Index returns the position of the first occurrence of b, or -1.
func (s Strand) Index(b Base) int {
	return slices.Index(s.bases, b)
}
