package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// Deterministic reports whether runs should be reproducible without an explicit seed.
func (m Mode) Deterministic() bool {
	return m != ModeProduction
}
