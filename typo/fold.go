package typo

// Folder computes the tertiary structure of enzymes.
type Folder struct {
	// CountEnds makes the first and last amino acids contribute their turns
	// too. Hofstadter's rule, the default, skips them.
	CountEnds bool
}

func (f Folder) TurningNumber(enzyme Enzyme) int {
	aminoAcids := enzyme.aminoAcids
	if !f.CountEnds {
		if len(aminoAcids) <= 2 {
			return 0
		}
		aminoAcids = aminoAcids[1 : len(aminoAcids)-1]
	}
	n := 0
	for _, a := range aminoAcids {
		n += a.Turn().Int()
	}
	return n
}

func (f Folder) Fold(enzyme Enzyme) Orientation {
	return OrientationOf(f.TurningNumber(enzyme))
}

// BindingSite returns the index of the first base the enzyme attaches to.
func (f Folder) BindingSite(enzyme Enzyme, strand Strand) (int, bool) {
	i := strand.Index(f.Fold(enzyme).BindingAffinity())
	if i < 0 {
		return 0, false
	}
	return i, true
}

func Fold(enzyme Enzyme) Orientation {
	return Folder{}.Fold(enzyme)
}

func BindingSite(enzyme Enzyme, strand Strand) (int, bool) {
	return Folder{}.BindingSite(enzyme, strand)
}
