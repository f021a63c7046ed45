// Package model defines the data structures shared by the fretboard model and its presenters.
package model

// Note is the canonical name of a pitch class, e.g. "C" or "Db".
type Note string

// PitchClass is the index of a note within the chromatic cycle, in [0,11].
type PitchClass int

// Tuning lists the open-string note of every string. Index 0 holds string 1.
type Tuning []Note

// Position is a (string, fret) coordinate on the fretboard.
// Strings are numbered from 1, frets from 0 (open string).
type Position struct {
	String int `json:"string" yaml:"string"`
	Fret   int `json:"fret"   yaml:"fret"`
}

// PositionSet is a set of positions used for membership tests while rendering.
type PositionSet map[Position]struct{}

// NewPositionSet builds a set from a list of positions.
func NewPositionSet(positions ...Position) PositionSet {
	set := make(PositionSet, len(positions))
	for _, p := range positions {
		set[p] = struct{}{}
	}

	return set
}

// Contains reports whether p is in the set. A nil set contains nothing.
func (s PositionSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}
