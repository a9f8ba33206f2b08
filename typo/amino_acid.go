package typo

import "fmt"

type AminoAcid uint8

const (
	Cut AminoAcid = iota + 1
	Del
	Swi
	Mvr
	Mvl
	Cop
	Off
	Ina
	Inc
	Ing
	Int
	Rpy
	Rpu
	Lpy
	Lpu
)

type aminoAcidInfo struct {
	name string
	turn Turn
}

var aminoAcidInfos = [...]aminoAcidInfo{
	Cut: {"cut", S},
	Del: {"del", S},
	Swi: {"swi", R},
	Mvr: {"mvr", S},
	Mvl: {"mvl", S},
	Cop: {"cop", R},
	Off: {"off", L},
	Ina: {"ina", S},
	Inc: {"inc", R},
	Ing: {"ing", R},
	Int: {"int", L},
	Rpy: {"rpy", R},
	Rpu: {"rpu", L},
	Lpy: {"lpy", L},
	Lpu: {"lpu", L},
}

var aminoAcidsByName = func() map[string]AminoAcid {
	ret := make(map[string]AminoAcid, len(aminoAcidInfos))
	for i, info := range aminoAcidInfos {
		if info.name == "" {
			continue
		}
		ret[info.name] = AminoAcid(i)
	}
	return ret
}()

// AllAminoAcids returns the fifteen amino acids in table order.
func AllAminoAcids() []AminoAcid {
	ret := make([]AminoAcid, 0, len(aminoAcidInfos)-1)
	for a := Cut; a <= Lpu; a++ {
		ret = append(ret, a)
	}
	return ret
}

func (a AminoAcid) Valid() bool {
	return a >= Cut && a <= Lpu
}

func (a AminoAcid) String() string {
	if !a.Valid() {
		return fmt.Sprintf("AminoAcid(%d)", uint8(a))
	}
	return aminoAcidInfos[a].name
}

// Turn is the kink this amino acid puts into the folded enzyme.
func (a AminoAcid) Turn() Turn {
	if !a.Valid() {
		return S
	}
	return aminoAcidInfos[a].turn
}

func ParseAminoAcid(s string) (AminoAcid, error) {
	a, ok := aminoAcidsByName[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAminoAcid, s)
	}
	return a, nil
}

// inserted returns the base placed by ina, inc, ing and int.
func (a AminoAcid) inserted() (Base, bool) {
	switch a {
	case Ina:
		return A, true
	case Inc:
		return C, true
	case Ing:
		return G, true
	case Int:
		return T, true
	}
	return NoBase, false
}

// search returns the step direction and target class of rpy, rpu, lpy and lpu.
func (a AminoAcid) search() (direction int, target BaseType, ok bool) {
	switch a {
	case Rpy:
		return 1, Pyrimidine, true
	case Rpu:
		return 1, Purine, true
	case Lpy:
		return -1, Pyrimidine, true
	case Lpu:
		return -1, Purine, true
	}
	return 0, 0, false
}
