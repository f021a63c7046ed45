package controller

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/fretmap/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// ErrNotInteractive is returned by SimpleUI.Explore.
var ErrNotInteractive = errors.New("interactive mode requires a terminal")

// SimpleUI implements UI using plain tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayBoard prints the board as a table, one row per string.
// Highlighted cells are wrapped in brackets.
func (s *SimpleUI) DisplayBoard(board m.Board) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(boardHeader(board))
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	for str := 1; str <= len(board.Rows); str++ {
		row := make([]string, 0, len(board.Rows[str-1])+1)
		row = append(row, strconv.Itoa(str))

		for fret := range board.Rows[str-1] {
			label := board.Label(str, fret)
			if board.Highlighted(str, fret) {
				label = "[" + label + "]"
			}

			row = append(row, label)
		}

		table.Append(row)
	}

	table.Render()

	if board.Title != "" {
		s.printf("%s\n", board.Title)
	}

	s.printf("\n%s", tableBuffer.String())

	if len(board.Highlight) > 0 {
		s.printf("\n%d highlighted position(s)\n", len(board.Highlight))
	}

	return nil
}

// DisplayNote prints a single note lookup.
func (s *SimpleUI) DisplayNote(pos m.Position, note m.Note, pc m.PitchClass) error {
	s.printf("string %d fret %d: %s (%d)\n", pos.String, pos.Fret, note, pc)

	return nil
}

// DisplayPositions prints the result of a scale or chord query.
func (s *SimpleUI) DisplayPositions(query string, notes []m.Note, positions []m.Position) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"String", "Fret"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, p := range positions {
		table.Append([]string{strconv.Itoa(p.String), strconv.Itoa(p.Fret)})
	}

	table.SetFooter([]string{"Total", strconv.Itoa(len(positions))})
	table.Render()

	s.printf("%s: %s\n", query, joinNotes(notes))
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayChords prints every chord spec, one root per line.
func (s *SimpleUI) DisplayChords(specs []string) error {
	for i := 0; i < len(specs); i += 4 {
		end := min(i+4, len(specs))
		s.printf("%s\n", strings.Join(specs[i:end], "  "))
	}

	return nil
}

// Explore is not available without a terminal.
func (s *SimpleUI) Explore(_ m.Board, _ m.Palette, _ Finder) error {
	return ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func boardHeader(board m.Board) []string {
	header := make([]string, 0, board.MaxFret()+2)
	header = append(header, "String")

	for fret := 0; fret <= board.MaxFret(); fret++ {
		header = append(header, strconv.Itoa(fret))
	}

	return header
}

func joinNotes(notes []m.Note) string {
	if len(notes) == 0 {
		return "-"
	}

	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = string(n)
	}

	return strings.Join(parts, " ")
}
