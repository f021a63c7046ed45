package controller

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/fretmap/internal/model"
)

const cellWidth = 4

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	fretNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(cellWidth).
			Align(lipgloss.Center)

	stringNumberStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Width(cellWidth).
				Align(lipgloss.Right).
				PaddingRight(1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Width(cellWidth).
			Align(lipgloss.Center)

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TUI implements UI using lipgloss styling and a Bubble Tea explorer.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayBoard prints the styled board and exits.
func (t *TUI) DisplayBoard(board m.Board) error {
	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(boardTitle(board)),
		"",
		renderBoard(board),
	))

	return err
}

// DisplayNote prints a single note lookup.
func (t *TUI) DisplayNote(pos m.Position, note m.Note, pc m.PitchClass) error {
	_, err := fmt.Fprintf(t.output, "String %s fret %s: %s (%s)\n",
		accentStyle.Render(strconv.Itoa(pos.String)),
		accentStyle.Render(strconv.Itoa(pos.Fret)),
		titleStyle.Render(string(note)),
		strconv.Itoa(int(pc)),
	)

	return err
}

// DisplayPositions prints the positions found by a scale or chord query.
func (t *TUI) DisplayPositions(query string, notes []m.Note, positions []m.Position) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render(query), accentStyle.Render(joinNotes(notes)))

	if len(positions) == 0 {
		b.WriteString("  No positions found\n")
	}

	byString := make(map[int][]string)
	order := make([]int, 0)

	for _, p := range positions {
		if _, ok := byString[p.String]; !ok {
			order = append(order, p.String)
		}

		byString[p.String] = append(byString[p.String], strconv.Itoa(p.Fret))
	}

	for _, str := range order {
		fmt.Fprintf(&b, "  string %d: frets %s\n", str, strings.Join(byString[str], ", "))
	}

	fmt.Fprintf(&b, "  Total: %s position(s)\n", accentStyle.Render(strconv.Itoa(len(positions))))

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayChords prints every chord spec grouped by root.
func (t *TUI) DisplayChords(specs []string) error {
	var b strings.Builder

	for i := 0; i < len(specs); i += 4 {
		end := min(i+4, len(specs))
		for _, spec := range specs[i:end] {
			b.WriteString(cellStyle.Render(spec))
		}

		b.WriteString("\n")
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// Explore runs the interactive explorer until the user quits.
func (t *TUI) Explore(board m.Board, palette m.Palette, finder Finder) error {
	model := newExploreModel(board, palette, finder)
	model.width = terminalWidth(t.output)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func boardTitle(board m.Board) string {
	if board.Title == "" {
		return "Fretboard"
	}

	return "Fretboard · " + board.Title
}

// renderBoard draws the grid: a fret-number header, then one row per string.
func renderBoard(board m.Board) string {
	var b strings.Builder

	b.WriteString(stringNumberStyle.Render(""))

	for fret := 0; fret <= board.MaxFret(); fret++ {
		b.WriteString(fretNumberStyle.Render(strconv.Itoa(fret)))
	}

	b.WriteString("\n")

	for str := 1; str <= len(board.Rows); str++ {
		b.WriteString(stringNumberStyle.Render(strconv.Itoa(str)))

		for fret := range board.Rows[str-1] {
			style := cellStyle
			if board.Highlighted(str, fret) {
				style = highlightStyle
			}

			b.WriteString(style.Render(board.Label(str, fret)))
		}

		b.WriteString("\n")
	}

	return b.String()
}
