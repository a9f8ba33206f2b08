package typo

type Orientation uint8

const (
	Right Orientation = iota
	Up
	Left
	Down
)

// OrientationOf maps a turning number to the direction of the enzyme's last
// segment, taking the first segment as pointing right.
func OrientationOf(turningNumber int) Orientation {
	// Euclidean modulus so negative sums wrap correctly.
	switch ((turningNumber % 4) + 4) % 4 {
	case 0:
		return Right
	case 1:
		return Down
	case 2:
		return Left
	default:
		return Up
	}
}

func (o Orientation) String() string {
	switch o {
	case Right:
		return "R"
	case Up:
		return "U"
	case Left:
		return "L"
	case Down:
		return "D"
	}
	return "?"
}

// BindingAffinity is the base an enzyme folded this way attaches to.
func (o Orientation) BindingAffinity() Base {
	switch o {
	case Right:
		return A
	case Up:
		return C
	case Down:
		return G
	case Left:
		return T
	}
	return NoBase
}
