package controller

import (
	"bytes"
	"strings"
	"testing"

	m "github.com/mouse-blink/fretmap/internal/model"
)

func TestTUI_DisplayBoard(t *testing.T) {
	tests := []struct {
		name         string
		board        func() m.Board
		wantContains []string
	}{
		{
			name:         "names view",
			board:        sampleBoard,
			wantContains: []string{"Fretboard", "E", "Bb", "Gb"},
		},
		{
			name: "numbers view",
			board: func() m.Board {
				b := sampleBoard()
				b.View = m.ViewNumbers

				return b
			},
			wantContains: []string{"10", "11"},
		},
		{
			name: "with title",
			board: func() m.Board {
				b := sampleBoard()
				b.Title = "Chord CM"
				b.Highlight = m.NewPositionSet(m.Position{String: 2, Fret: 3})

				return b
			},
			wantContains: []string{"Chord CM", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			ui := NewTUI(&buf)
			if err := ui.DisplayBoard(tt.board()); err != nil {
				t.Fatalf("DisplayBoard() error = %v", err)
			}

			got := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("DisplayBoard() output does not contain %q\nGot: %q", want, got)
				}
			}
		})
	}
}

func TestRenderBoard_OneLinePerString(t *testing.T) {
	out := renderBoard(sampleBoard())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("renderBoard() = %d lines, want 3 (header + 2 strings)\n%s", len(lines), out)
	}

	if !strings.Contains(lines[1], "Gb") || strings.Contains(lines[1], "Bb") {
		t.Fatalf("string 1 row = %q, want E string notes only", lines[1])
	}
}

func TestTUI_DisplayNote(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	if err := ui.DisplayNote(m.Position{String: 6, Fret: 8}, "C", 0); err != nil {
		t.Fatalf("DisplayNote() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{"String", "6", "8", "C"} {
		if !strings.Contains(got, want) {
			t.Errorf("DisplayNote() output does not contain %q\nGot: %q", want, got)
		}
	}
}

func TestTUI_DisplayPositions_GroupsByString(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)

	positions := []m.Position{
		{String: 1, Fret: 0}, {String: 1, Fret: 12},
		{String: 2, Fret: 5},
	}
	if err := ui.DisplayPositions("E", []m.Note{"E"}, positions); err != nil {
		t.Fatalf("DisplayPositions() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{"string 1: frets 0, 12", "string 2: frets 5", "Total: 3"} {
		if !strings.Contains(got, want) {
			t.Errorf("DisplayPositions() output does not contain %q\nGot: %q", want, got)
		}
	}
}

func TestTUI_DisplayPositions_Empty(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	if err := ui.DisplayPositions("Cx", nil, nil); err != nil {
		t.Fatalf("DisplayPositions() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No positions found") {
		t.Fatalf("DisplayPositions() = %q, want empty notice", buf.String())
	}
}

func TestTUI_DisplayChords(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	if err := ui.DisplayChords([]string{"CM", "Cm", "C+", "C-", "DbM"}); err != nil {
		t.Fatalf("DisplayChords() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("DisplayChords() = %d lines, want 2\n%s", len(lines), buf.String())
	}

	if !strings.Contains(lines[1], "DbM") {
		t.Fatalf("second line = %q, want DbM", lines[1])
	}
}
