package typo

// Rewriter applies enzymes to strands.
type Rewriter struct {
	Folder Folder

	// HoldCursorOnInsert leaves the cursor on the cell left of an inserted
	// base instead of moving it onto the new cell.
	HoldCursorOnInsert bool
}

// Rewrite returns every strand present after the enzyme acted on strand:
// pieces cleaved by cut in the order they came off, then the linearized
// workspace. An enzyme with no binding site returns strand unchanged.
func (r Rewriter) Rewrite(enzyme Enzyme, strand Strand) []Strand {
	return r.NewMachine(enzyme, strand).Result()
}

func Rewrite(enzyme Enzyme, strand Strand) []Strand {
	return Rewriter{}.Rewrite(enzyme, strand)
}
