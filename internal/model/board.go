package model

import "strconv"

// Board is a fretboard snapshot prepared for a presenter.
type Board struct {
	// Title describes the active highlight, e.g. "Chord CM".
	Title  string
	Tuning Tuning
	// Rows[s-1][f] is the note on string s at fret f.
	Rows [][]Note
	// Classes mirrors Rows with pitch-class numbers.
	Classes   [][]PitchClass
	View      ViewMode
	Highlight PositionSet
}

// Label returns the text of a cell in the board's view mode.
func (b Board) Label(str, fret int) string {
	if b.View == ViewNumbers && str-1 < len(b.Classes) && fret < len(b.Classes[str-1]) {
		return strconv.Itoa(int(b.Classes[str-1][fret]))
	}

	return string(b.Rows[str-1][fret])
}

// Highlighted reports whether a cell is part of the active highlight.
func (b Board) Highlighted(str, fret int) bool {
	return b.Highlight.Contains(Position{String: str, Fret: fret})
}

// MaxFret returns the highest fret shown on the board.
func (b Board) MaxFret() int {
	if len(b.Rows) == 0 {
		return -1
	}

	return len(b.Rows[0]) - 1
}

// Palette lists what an interactive presenter offers for highlighting.
type Palette struct {
	Notes  []Note
	Chords []string
}
