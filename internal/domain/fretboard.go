package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/fretmap/internal/model"
)

// Fretboard is the note at every (string, fret) coordinate for one tuning.
// It is built once by NewFretboard and never mutated, so a single value can
// be shared between goroutines.
type Fretboard struct {
	tuning  m.Tuning
	maxFret int
	// strings[s-1][f] is the note on string s at fret f.
	strings [][]m.Note
}

// NewFretboard computes the notes of frets 0..maxFret on every string of tuning.
func NewFretboard(tuning m.Tuning, maxFret int) (*Fretboard, error) {
	if len(tuning) == 0 {
		return nil, fmt.Errorf("%w: no strings", ErrInvalidTuning)
	}

	if maxFret < 0 {
		return nil, fmt.Errorf("%w: negative fret count %d", ErrInvalidTuning, maxFret)
	}

	if maxFret > m.MaxFretLimit {
		return nil, fmt.Errorf("%w: fret count %d above %d", ErrInvalidTuning, maxFret, m.MaxFretLimit)
	}

	strings := make([][]m.Note, len(tuning))

	for i, open := range tuning {
		start, err := PitchClassOf(open)
		if err != nil {
			return nil, fmt.Errorf("%w: string %d: %w", ErrInvalidTuning, i+1, err)
		}

		frets := make([]m.Note, maxFret+1)
		for f := range frets {
			frets[f] = NoteOf(Transpose(start, f))
		}

		strings[i] = frets
	}

	own := make(m.Tuning, len(tuning))
	copy(own, tuning)

	return &Fretboard{tuning: own, maxFret: maxFret, strings: strings}, nil
}

// StringCount returns the number of strings.
func (fb *Fretboard) StringCount() int {
	return len(fb.strings)
}

// MaxFret returns the highest fret number.
func (fb *Fretboard) MaxFret() int {
	return fb.maxFret
}

// Tuning returns a copy of the open-string notes, string 1 first.
func (fb *Fretboard) Tuning() m.Tuning {
	tuning := make(m.Tuning, len(fb.tuning))
	copy(tuning, fb.tuning)

	return tuning
}

// Note returns the note at the given string (1-based) and fret (0-based).
func (fb *Fretboard) Note(str, fret int) (m.Note, error) {
	if str < 1 || str > len(fb.strings) {
		return "", fmt.Errorf("%w: string %d not in [1, %d]", ErrOutOfRange, str, len(fb.strings))
	}

	if fret < 0 || fret > fb.maxFret {
		return "", fmt.Errorf("%w: fret %d not in [0, %d]", ErrOutOfRange, fret, fb.maxFret)
	}

	return fb.strings[str-1][fret], nil
}

// Scale returns every position holding note, ordered by string then fret.
func (fb *Fretboard) Scale(note m.Note) ([]m.Position, error) {
	if _, err := PitchClassOf(note); err != nil {
		return nil, err
	}

	return fb.positionsOf(map[m.Note]bool{note: true}), nil
}

// Chord returns every position holding a note of the chord spec, ordered by
// string then fret.
//
// An unknown quality marker yields an empty result and no error, even for a
// one-character spec. An unknown or missing root is an error.
func (fb *Fretboard) Chord(spec string) ([]m.Position, error) {
	chord, err := ParseChord(spec)
	if errors.Is(err, ErrInvalidChordQuality) {
		return []m.Position{}, nil
	}

	if err != nil {
		return nil, err
	}

	notes, err := ChordNotes(chord)
	if err != nil {
		return nil, err
	}

	targets := make(map[m.Note]bool, len(notes))
	for _, n := range notes {
		targets[n] = true
	}

	return fb.positionsOf(targets), nil
}

func (fb *Fretboard) positionsOf(targets map[m.Note]bool) []m.Position {
	positions := []m.Position{}

	for s, frets := range fb.strings {
		for f, note := range frets {
			if targets[note] {
				positions = append(positions, m.Position{String: s + 1, Fret: f})
			}
		}
	}

	return positions
}

// Strings returns a copy of the whole table keyed by string number.
func (fb *Fretboard) Strings() map[int][]m.Note {
	table := make(map[int][]m.Note, len(fb.strings))

	for s, frets := range fb.strings {
		row := make([]m.Note, len(frets))
		copy(row, frets)
		table[s+1] = row
	}

	return table
}

// Row returns a copy of the notes on one string.
func (fb *Fretboard) Row(str int) ([]m.Note, error) {
	if str < 1 || str > len(fb.strings) {
		return nil, fmt.Errorf("%w: string %d not in [1, %d]", ErrOutOfRange, str, len(fb.strings))
	}

	row := make([]m.Note, len(fb.strings[str-1]))
	copy(row, fb.strings[str-1])

	return row, nil
}
