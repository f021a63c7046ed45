package domain

import "errors"

// Validation errors returned by the fretboard model. Callers match them with errors.Is.
var (
	ErrInvalidTuning       = errors.New("invalid tuning")
	ErrInvalidNote         = errors.New("invalid note")
	ErrOutOfRange          = errors.New("position out of range")
	ErrInvalidChord        = errors.New("invalid chord")
	ErrInvalidChordQuality = errors.New("invalid chord quality")
)
