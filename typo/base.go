package typo

import "fmt"

// Base is a nucleotide. The zero value NoBase marks an empty slot in a BasePair.
type Base uint8

const (
	NoBase Base = iota
	A
	C
	G
	T
)

var allBases = [...]Base{A, C, G, T}

// AllBases returns the four bases in A, C, G, T order.
func AllBases() []Base {
	return allBases[:]
}

func (b Base) String() string {
	switch b {
	case A:
		return "A"
	case C:
		return "C"
	case G:
		return "G"
	case T:
		return "T"
	case NoBase:
		return " "
	}
	return fmt.Sprintf("Base(%d)", uint8(b))
}

func (b Base) Valid() bool {
	return b >= A && b <= T
}

func (b Base) Complement() Base {
	switch b {
	case A:
		return T
	case T:
		return A
	case C:
		return G
	case G:
		return C
	}
	return NoBase
}

func (b Base) Type() BaseType {
	switch b {
	case A, G:
		return Purine
	case C, T:
		return Pyrimidine
	}
	return 0
}

func (b Base) IsPurine() bool {
	return b == A || b == G
}

func (b Base) IsPyrimidine() bool {
	return b == C || b == T
}

func (b Base) Is(t BaseType) bool {
	switch t {
	case Purine:
		return b.IsPurine()
	case Pyrimidine:
		return b.IsPyrimidine()
	}
	return false
}

func ParseBase(r rune) (Base, error) {
	switch r {
	case 'A':
		return A, nil
	case 'C':
		return C, nil
	case 'G':
		return G, nil
	case 'T':
		return T, nil
	}
	return NoBase, fmt.Errorf("%w: %q", ErrInvalidBase, r)
}
