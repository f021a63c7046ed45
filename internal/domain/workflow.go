package domain

import (
	"fmt"
	"log/slog"

	"github.com/mouse-blink/fretmap/internal/controller"
	m "github.com/mouse-blink/fretmap/internal/model"
)

// BoardArgs selects what to highlight on a rendered board.
// When both Note and Chord are set, Note wins.
type BoardArgs struct {
	Config m.Config
	Note   m.Note
	Chord  string
}

// NoteArgs identifies one fretboard cell.
type NoteArgs struct {
	Config m.Config
	String int
	Fret   int
}

// ScaleArgs is a note query.
type ScaleArgs struct {
	Config m.Config
	Note   m.Note
}

// ChordArgs is a chord query such as "CM" or "Eb-".
type ChordArgs struct {
	Config m.Config
	Chord  string
}

// ExploreArgs starts the interactive explorer.
type ExploreArgs struct {
	Config m.Config
}

// Workflow defines the fretboard operations exposed on the command line.
type Workflow interface {
	Board(args BoardArgs) error
	Note(args NoteArgs) error
	Scale(args ScaleArgs) error
	Chord(args ChordArgs) error
	Chords() error
	Explore(args ExploreArgs) error
}

type workflow struct {
	ui     controller.UI
	logger *slog.Logger
}

// NewWorkflow creates a new Workflow that reports through ui.
// A nil logger logs to slog.Default() as it is at call time.
func NewWorkflow(ui controller.UI, logger *slog.Logger) Workflow {
	return &workflow{ui: ui, logger: logger}
}

func (w *workflow) log() *slog.Logger {
	if w.logger != nil {
		return w.logger
	}

	return slog.Default()
}

// FretboardFromConfig builds the fretboard described by cfg.
func FretboardFromConfig(cfg m.Config) (*Fretboard, error) {
	tuning := cfg.Tuning
	if len(tuning) == 0 {
		tuning = m.StandardTuning()
	}

	return NewFretboard(tuning, cfg.MaxFret)
}

// NewBoard prepares a presenter snapshot of fb with the given highlight.
func NewBoard(fb *Fretboard, view m.ViewMode, title string, highlight []m.Position) m.Board {
	rows := make([][]m.Note, fb.StringCount())
	classes := make([][]m.PitchClass, fb.StringCount())

	for s := range rows {
		rows[s] = make([]m.Note, len(fb.strings[s]))
		classes[s] = make([]m.PitchClass, len(fb.strings[s]))

		for f, note := range fb.strings[s] {
			rows[s][f] = note
			classes[s][f] = pitchClasses[note]
		}
	}

	if view == "" {
		view = m.ViewNames
	}

	board := m.Board{
		Title:   title,
		Tuning:  fb.Tuning(),
		Rows:    rows,
		Classes: classes,
		View:    view,
	}

	if highlight != nil {
		board.Highlight = m.NewPositionSet(highlight...)
	}

	return board
}

// DefaultPalette offers every note and every chord spec.
func DefaultPalette() m.Palette {
	return m.Palette{
		Notes:  NoteNames(),
		Chords: ChordSpecs(),
	}
}

func (w *workflow) fretboard(cfg m.Config) (*Fretboard, error) {
	fb, err := FretboardFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build fretboard: %w", err)
	}

	w.log().Debug("fretboard ready",
		slog.Int("strings", fb.StringCount()),
		slog.Int("max_fret", fb.MaxFret()))

	return fb, nil
}

// Board renders the fretboard, highlighting a note or chord when requested.
func (w *workflow) Board(args BoardArgs) error {
	fb, err := w.fretboard(args.Config)
	if err != nil {
		return err
	}

	var (
		title     string
		highlight []m.Position
	)

	switch {
	case args.Note != "":
		highlight, err = fb.Scale(args.Note)
		title = "Note " + string(args.Note)
	case args.Chord != "":
		highlight, err = fb.Chord(args.Chord)
		title = "Chord " + args.Chord
	}

	if err != nil {
		return err
	}

	return w.ui.DisplayBoard(NewBoard(fb, args.Config.View, title, highlight))
}

// Note displays the note at one position.
func (w *workflow) Note(args NoteArgs) error {
	fb, err := w.fretboard(args.Config)
	if err != nil {
		return err
	}

	note, err := fb.Note(args.String, args.Fret)
	if err != nil {
		return err
	}

	return w.ui.DisplayNote(m.Position{String: args.String, Fret: args.Fret}, note, pitchClasses[note])
}

// Scale displays every position of a note.
func (w *workflow) Scale(args ScaleArgs) error {
	fb, err := w.fretboard(args.Config)
	if err != nil {
		return err
	}

	positions, err := fb.Scale(args.Note)
	if err != nil {
		return err
	}

	return w.ui.DisplayPositions(string(args.Note), []m.Note{args.Note}, positions)
}

// Chord displays every position of a chord's notes.
// An unknown quality marker shows an empty result.
func (w *workflow) Chord(args ChordArgs) error {
	fb, err := w.fretboard(args.Config)
	if err != nil {
		return err
	}

	positions, err := fb.Chord(args.Chord)
	if err != nil {
		return err
	}

	var notes []m.Note

	if chord, err := ParseChord(args.Chord); err == nil {
		notes, _ = ChordNotes(chord)
	} else {
		w.log().Warn("unknown chord quality", slog.String("chord", args.Chord))
	}

	return w.ui.DisplayPositions(args.Chord, notes, positions)
}

// Chords lists every supported chord spec.
func (w *workflow) Chords() error {
	return w.ui.DisplayChords(ChordSpecs())
}

// Explore hands the fretboard to the interactive presenter.
func (w *workflow) Explore(args ExploreArgs) error {
	fb, err := w.fretboard(args.Config)
	if err != nil {
		return err
	}

	return w.ui.Explore(NewBoard(fb, args.Config.View, "", nil), DefaultPalette(), fb)
}
