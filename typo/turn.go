package typo

type Turn int8

const (
	L Turn = -1
	S Turn = 0
	R Turn = 1
)

func (t Turn) Int() int {
	return int(t)
}

func (t Turn) String() string {
	switch t {
	case L:
		return "l"
	case S:
		return "s"
	case R:
		return "r"
	}
	return "?"
}
