package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/fretmap/internal/model"
)

// pickDelegate renders one picker entry per line.
type pickDelegate struct{}

func (d pickDelegate) Height() int  { return 1 }
func (d pickDelegate) Spacing() int { return 0 }
func (d pickDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d pickDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	entry, ok := item.(pickItem)
	if !ok {
		return
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).PaddingLeft(2)
	if index == l.Index() {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			PaddingLeft(2)
	}

	_, _ = fmt.Fprint(w, style.Render(entry.label))
}

// exploreModel shows the fretboard and lets the user pick a note or chord to highlight.
type exploreModel struct {
	board   m.Board
	palette m.Palette
	finder  Finder
	picker  list.Model
	picking pickerKind
	status  string
	failed  bool
	width   int
	height  int
}

func newExploreModel(board m.Board, palette m.Palette, finder Finder) exploreModel {
	picker := list.New([]list.Item{}, pickDelegate{}, 20, 14)
	picker.SetShowPagination(true)
	picker.SetShowFilter(true)
	picker.SetShowHelp(false)
	picker.SetShowStatusBar(false)
	picker.Styles.Title = titleStyle
	picker.FilterInput.Placeholder = "Filter…"

	if board.View == "" {
		board.View = m.ViewNames
	}

	return exploreModel{
		board:   board,
		palette: palette,
		finder:  finder,
		picker:  picker,
	}
}

func (em exploreModel) Init() tea.Cmd {
	return nil
}

func (em exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.width = msg.Width
		em.height = msg.Height
		em.picker.SetHeight(max(msg.Height-len(em.board.Rows)-8, 5))

		return em, nil

	case tea.KeyMsg:
		if em.picking != pickNone {
			return em.handlePickerKey(msg)
		}

		return em.handleBoardKey(msg)
	}

	return em, nil
}

func (em exploreModel) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return em, tea.Quit

	case "v":
		if em.board.View == m.ViewNumbers {
			em.board.View = m.ViewNames
		} else {
			em.board.View = m.ViewNumbers
		}

	case "n":
		em = em.openPicker(pickNote)

	case "c":
		em = em.openPicker(pickChord)

	case "x":
		em.board.Highlight = nil
		em.board.Title = ""
		em.status = ""
		em.failed = false
	}

	return em, nil
}

func (em exploreModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if em.picker.FilterState() == list.Filtering {
		var cmd tea.Cmd

		em.picker, cmd = em.picker.Update(msg)

		return em, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		return em, tea.Quit

	case "esc", "q":
		em.picking = pickNone

		return em, nil

	case "enter":
		item, ok := em.picker.SelectedItem().(pickItem)
		em.picking = pickNone

		if ok {
			em = em.applyHighlight(item)
		}

		return em, nil
	}

	var cmd tea.Cmd

	em.picker, cmd = em.picker.Update(msg)

	return em, cmd
}

func (em exploreModel) openPicker(kind pickerKind) exploreModel {
	var items []list.Item

	switch kind {
	case pickNote:
		em.picker.Title = "Highlight note"

		for _, n := range em.palette.Notes {
			items = append(items, pickItem{label: string(n), kind: pickNote})
		}
	case pickChord:
		em.picker.Title = "Highlight chord"

		for _, spec := range em.palette.Chords {
			items = append(items, pickItem{label: spec, kind: pickChord})
		}
	case pickNone:
		return em
	}

	em.picker.ResetFilter()
	em.picker.SetItems(items)
	em.picker.Select(0)
	em.picking = kind

	return em
}

func (em exploreModel) applyHighlight(item pickItem) exploreModel {
	var (
		positions []m.Position
		err       error
		title     string
	)

	switch item.kind {
	case pickNote:
		positions, err = em.finder.Scale(m.Note(item.label))
		title = "Note " + item.label
	case pickChord:
		positions, err = em.finder.Chord(item.label)
		title = "Chord " + item.label
	case pickNone:
		return em
	}

	if err != nil {
		em.status = err.Error()
		em.failed = true

		return em
	}

	em.board.Highlight = m.NewPositionSet(positions...)
	em.board.Title = title
	em.status = fmt.Sprintf("%d position(s)", len(positions))
	em.failed = false

	return em
}

func (em exploreModel) View() string {
	sections := []string{
		titleStyle.Padding(1, 0, 0, 2).Render(boardTitle(em.board)),
		lipgloss.NewStyle().Padding(1, 0, 0, 0).Render(renderBoard(em.board)),
	}

	if em.status != "" {
		status := accentStyle
		if em.failed {
			status = errorStyle
		}

		sections = append(sections, status.PaddingLeft(2).Render(em.status))
	}

	if em.picking != pickNone {
		sections = append(sections, em.picker.View())
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		PaddingLeft(2).
		Render("v view • n note • c chord • x clear • / filter • q quit")

	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
