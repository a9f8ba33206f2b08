package typo

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Enzyme is an immutable sequence of amino acids.
type Enzyme struct {
	aminoAcids []AminoAcid
}

func NewEnzyme(aminoAcids ...AminoAcid) Enzyme {
	for i, a := range aminoAcids {
		if !a.Valid() {
			panic(fmt.Errorf("%w at %d: %v", ErrInvalidAminoAcid, i, a))
		}
	}
	return Enzyme{
		aminoAcids: slices.Clone(aminoAcids),
	}
}

// ParseEnzyme reads hyphen-joined short names like "cop-ina-rpy".
func ParseEnzyme(text string) (Enzyme, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Enzyme{}, ErrEmptyEnzyme
	}
	parts := strings.Split(text, "-")
	aminoAcids := make([]AminoAcid, 0, len(parts))
	for i, part := range parts {
		a, err := ParseAminoAcid(part)
		if err != nil {
			return Enzyme{}, fmt.Errorf("parse enzyme at token %d: %w", i, err)
		}
		aminoAcids = append(aminoAcids, a)
	}
	return Enzyme{
		aminoAcids: aminoAcids,
	}, nil
}

func MustParseEnzyme(text string) Enzyme {
	e, err := ParseEnzyme(text)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Enzyme) String() string {
	names := make([]string, len(e.aminoAcids))
	for i, a := range e.aminoAcids {
		names[i] = a.String()
	}
	return strings.Join(names, "-")
}

func (e Enzyme) Len() int {
	return len(e.aminoAcids)
}

func (e Enzyme) At(i int) AminoAcid {
	return e.aminoAcids[i]
}

func (e Enzyme) Equal(other Enzyme) bool {
	return slices.Equal(e.aminoAcids, other.aminoAcids)
}

func (e Enzyme) AminoAcids() iter.Seq2[int, AminoAcid] {
	return func(yield func(int, AminoAcid) bool) {
		for i, a := range e.aminoAcids {
			if !yield(i, a) {
				return
			}
		}
	}
}
