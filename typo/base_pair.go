package typo

// BasePair is one workspace cell. Either slot may hold NoBase.
type BasePair struct {
	Primary    Base
	Complement Base
}

func (p *BasePair) Swap() {
	p.Primary, p.Complement = p.Complement, p.Primary
}

func (p *BasePair) FillComplement() {
	if p.Primary != NoBase {
		p.Complement = p.Primary.Complement()
	}
}

// IsHole reports a cell whose primary was deleted.
func (p BasePair) IsHole() bool {
	return p.Primary == NoBase
}
