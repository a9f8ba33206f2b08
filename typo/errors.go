package typo

import "errors"

var (
	ErrInvalidBase      = errors.New("invalid base")
	ErrInvalidAminoAcid = errors.New("invalid amino acid")
	ErrEmptyEnzyme      = errors.New("empty enzyme")
)
