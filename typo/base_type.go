package typo

type BaseType uint8

const (
	Purine BaseType = iota + 1
	Pyrimidine
)

func (t BaseType) String() string {
	switch t {
	case Purine:
		return "purine"
	case Pyrimidine:
		return "pyrimidine"
	}
	return "unknown"
}
