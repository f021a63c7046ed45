package controller

import (
	"errors"

	m "github.com/mouse-blink/fretmap/internal/model"
)

// sampleBoard is a two-string board tuned E and A, frets 0..3.
func sampleBoard() m.Board {
	return m.Board{
		Tuning: m.Tuning{"E", "A"},
		Rows: [][]m.Note{
			{"E", "F", "Gb", "G"},
			{"A", "Bb", "B", "C"},
		},
		Classes: [][]m.PitchClass{
			{4, 5, 6, 7},
			{9, 10, 11, 0},
		},
		View: m.ViewNames,
	}
}

func samplePalette() m.Palette {
	return m.Palette{
		Notes:  []m.Note{"C", "E", "G"},
		Chords: []string{"CM", "Cm", "C+", "C-"},
	}
}

var errUnknownNote = errors.New("unknown note")

// stubFinder answers from fixed tables.
type stubFinder struct {
	scales map[m.Note][]m.Position
	chords map[string][]m.Position
}

func (f stubFinder) Scale(note m.Note) ([]m.Position, error) {
	positions, ok := f.scales[note]
	if !ok {
		return nil, errUnknownNote
	}

	return positions, nil
}

func (f stubFinder) Chord(spec string) ([]m.Position, error) {
	return f.chords[spec], nil
}
