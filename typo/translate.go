package typo

// codeTable is indexed by [first][second]; zero entries are punctuation.
var codeTable = [5][5]AminoAcid{
	A: {A: 0, C: Cut, G: Del, T: Swi},
	C: {A: Mvr, C: Mvl, G: Cop, T: Off},
	G: {A: Ina, C: Inc, G: Ing, T: Int},
	T: {A: Rpy, C: Rpu, G: Lpy, T: Lpu},
}

// TranslateDuplet returns false for the AA punctuation duplet.
func TranslateDuplet(d Duplet) (AminoAcid, bool) {
	if !d.First.Valid() || !d.Second.Valid() {
		return 0, false
	}
	a := codeTable[d.First][d.Second]
	return a, a != 0
}

// Translate reads the enzymes coded by a strand. Punctuation ends the current
// enzyme; empty enzymes are never produced.
func Translate(strand Strand) []Enzyme {
	var enzymes []Enzyme
	var buf []AminoAcid
	for duplet := range strand.Duplets() {
		a, ok := TranslateDuplet(duplet)
		if ok {
			buf = append(buf, a)
			continue
		}
		if len(buf) > 0 {
			enzymes = append(enzymes, Enzyme{
				aminoAcids: buf,
			})
			buf = nil
		}
	}
	if len(buf) > 0 {
		enzymes = append(enzymes, Enzyme{
			aminoAcids: buf,
		})
	}
	return enzymes
}
