package typo

// Duplet is the unit of translation.
type Duplet struct {
	First  Base
	Second Base
}

func (d Duplet) String() string {
	return d.First.String() + d.Second.String()
}
