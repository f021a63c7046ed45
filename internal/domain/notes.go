// Package domain contains the fretboard model and the workflow that drives its presenters.
package domain

import (
	"fmt"

	m "github.com/mouse-blink/fretmap/internal/model"
)

// semitones is the size of the chromatic cycle.
const semitones = 12

var noteNames = [semitones]m.Note{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var pitchClasses = func() map[m.Note]m.PitchClass {
	index := make(map[m.Note]m.PitchClass, semitones)
	for i, name := range noteNames {
		index[name] = m.PitchClass(i)
	}

	return index
}()

// NoteNames returns the 12 canonical note names in pitch-class order.
func NoteNames() []m.Note {
	names := make([]m.Note, semitones)
	copy(names, noteNames[:])

	return names
}

// PitchClassOf resolves a canonical note name to its pitch class.
func PitchClassOf(note m.Note) (m.PitchClass, error) {
	pc, ok := pitchClasses[note]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, note)
	}

	return pc, nil
}

// NoteOf returns the canonical name of a pitch class. Values outside [0,11] wrap around.
func NoteOf(pc m.PitchClass) m.Note {
	return noteNames[wrap(int(pc))]
}

// Transpose steps a pitch class by n semitones modulo 12.
func Transpose(pc m.PitchClass, n int) m.PitchClass {
	return m.PitchClass(wrap(int(pc) + n))
}

func wrap(n int) int {
	n %= semitones
	if n < 0 {
		n += semitones
	}

	return n
}
