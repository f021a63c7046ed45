// Package controller provides presenters for fretboard boards and query results.
package controller

import (
	m "github.com/mouse-blink/fretmap/internal/model"
)

// Finder answers highlight queries for an interactive presenter.
// *domain.Fretboard satisfies it.
type Finder interface {
	Scale(note m.Note) ([]m.Position, error)
	Chord(spec string) ([]m.Position, error)
}

// UI defines the interface for displaying fretboards and query results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayBoard(board m.Board) error
	DisplayNote(pos m.Position, note m.Note, pc m.PitchClass) error
	DisplayPositions(query string, notes []m.Note, positions []m.Position) error
	DisplayChords(specs []string) error
	// Explore runs an interactive session until the user quits.
	Explore(board m.Board, palette m.Palette, finder Finder) error
}
