package typo

import (
	"fmt"
	"slices"
)

// Halt tells why an enzyme let go of the strand before finishing its program.
type Halt uint8

const (
	NotHalted Halt = iota
	HaltLeftEdge
	HaltRightEdge
	HaltHole
	HaltNoComplement
)

func (h Halt) String() string {
	switch h {
	case NotHalted:
		return "none"
	case HaltLeftEdge:
		return "left_edge"
	case HaltRightEdge:
		return "right_edge"
	case HaltHole:
		return "hole"
	case HaltNoComplement:
		return "no_complement"
	}
	return fmt.Sprintf("Halt(%d)", uint8(h))
}

// Step records one executed amino acid.
type Step struct {
	Index     int
	AminoAcid AminoAcid
	From      int
	To        int
	CopyMode  bool
	Cleaved   []Strand
	Halt      Halt
}

// Machine is the state of one enzyme working on one strand.
type Machine struct {
	Enzyme Enzyme
	Strand Strand
	Bound  bool

	Pairs    []BasePair
	Cursor   int
	CopyMode bool
	Emitted  []Strand
	IP       int
	Halt     Halt

	holdCursor bool
	finished   bool
}

func (r Rewriter) NewMachine(enzyme Enzyme, strand Strand) *Machine {
	m := &Machine{
		Enzyme:     enzyme,
		Strand:     strand,
		holdCursor: r.HoldCursorOnInsert,
	}
	site, ok := r.Folder.BindingSite(enzyme, strand)
	if !ok {
		return m
	}
	m.Bound = true
	m.Cursor = site
	m.Pairs = make([]BasePair, strand.Len())
	for i, b := range strand.bases {
		m.Pairs[i].Primary = b
	}
	return m
}

func (m *Machine) Halted() bool {
	return m.Halt != NotHalted
}

// Done reports whether no instruction is left to execute.
func (m *Machine) Done() bool {
	return !m.Bound || m.Halted() || m.IP >= m.Enzyme.Len()
}

// Run executes the remaining instructions, yielding after each one.
// Stopping the iteration early leaves the machine resumable.
func (m *Machine) Run(yield func(*Step) bool) {
	for !m.Done() {
		step := m.step()
		if !yield(step) {
			return
		}
	}
}

// Result runs the machine to the end and returns the output strands.
// An empty strand yields no output.
func (m *Machine) Result() []Strand {
	if !m.Bound {
		if m.Strand.Len() == 0 {
			return nil
		}
		return []Strand{m.Strand}
	}
	for range m.Run {
	}
	if !m.finished {
		m.Emitted = append(m.Emitted, Linearize(m.Pairs)...)
		m.finished = true
	}
	return slices.Clone(m.Emitted)
}

func (m *Machine) step() *Step {
	a := m.Enzyme.At(m.IP)
	step := &Step{
		Index:     m.IP,
		AminoAcid: a,
		From:      m.Cursor,
	}
	m.IP++

	switch a {

	case Cut:
		suffix := m.Pairs[m.Cursor+1:]
		step.Cleaved = Linearize(suffix)
		m.Emitted = append(m.Emitted, step.Cleaved...)
		m.Pairs = slices.Clip(m.Pairs[:m.Cursor+1])

	case Del:
		m.Pairs[m.Cursor].Primary = NoBase
		if m.Cursor == 0 {
			m.Halt = HaltLeftEdge
			break
		}
		m.Cursor--
		if m.Pairs[m.Cursor].IsHole() {
			m.Halt = HaltHole
		}

	case Swi:
		if m.Pairs[m.Cursor].Complement == NoBase {
			m.Halt = HaltNoComplement
			break
		}
		for i := range m.Pairs {
			m.Pairs[i].Swap()
		}
		slices.Reverse(m.Pairs)
		m.Cursor = len(m.Pairs) - 1 - m.Cursor

	case Mvr:
		m.move(1)

	case Mvl:
		m.move(-1)

	case Cop:
		m.CopyMode = true
		m.Pairs[m.Cursor].FillComplement()

	case Off:
		m.CopyMode = false

	case Ina, Inc, Ing, Int:
		b, _ := a.inserted()
		pair := BasePair{
			Primary: b,
		}
		if m.CopyMode {
			pair.Complement = b.Complement()
		}
		m.Pairs = slices.Insert(m.Pairs, m.Cursor+1, pair)
		if !m.holdCursor {
			m.Cursor++
		}

	case Rpy, Rpu, Lpy, Lpu:
		direction, target, _ := a.search()
		for m.move(direction) {
			if m.Pairs[m.Cursor].Primary.Is(target) {
				break
			}
		}

	default:
		panic(fmt.Errorf("bad amino acid: %v", a))
	}

	step.To = m.Cursor
	step.CopyMode = m.CopyMode
	step.Halt = m.Halt
	return step
}

// move steps the cursor once, halting at an edge or a hole. In copy mode the
// landing cell gets its complement filled.
func (m *Machine) move(direction int) bool {
	next := m.Cursor + direction
	if next < 0 {
		m.Halt = HaltLeftEdge
		return false
	}
	if next >= len(m.Pairs) {
		m.Halt = HaltRightEdge
		return false
	}
	m.Cursor = next
	if m.Pairs[next].IsHole() {
		m.Halt = HaltHole
		return false
	}
	if m.CopyMode {
		m.Pairs[next].FillComplement()
	}
	return true
}
