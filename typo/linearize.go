package typo

import "slices"

// Linearize reads the strands held by a workspace, left to right. Each maximal
// run of primary bases is one strand; each maximal run of complement bases is
// one strand read in reverse, since the complement runs antiparallel.
func Linearize(pairs []BasePair) []Strand {
	var ret []Strand
	var primary, complement []Base

	flushPrimary := func() {
		if len(primary) > 0 {
			ret = append(ret, Strand{
				bases: primary,
			})
			primary = nil
		}
	}
	flushComplement := func() {
		if len(complement) > 0 {
			slices.Reverse(complement)
			ret = append(ret, Strand{
				bases: complement,
			})
			complement = nil
		}
	}

	for _, pair := range pairs {
		if pair.Primary != NoBase {
			primary = append(primary, pair.Primary)
		} else {
			flushPrimary()
		}
		if pair.Complement != NoBase {
			complement = append(complement, pair.Complement)
		} else {
			flushComplement()
		}
	}
	flushPrimary()
	flushComplement()

	return ret
}
