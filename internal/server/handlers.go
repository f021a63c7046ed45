package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mouse-blink/fretmap/internal/domain"
	m "github.com/mouse-blink/fretmap/internal/model"
)

// FretboardResponse is the body of GET /api/v1/fretboard.
type FretboardResponse struct {
	Tuning  m.Tuning            `json:"tuning"`
	MaxFret int                 `json:"max_fret"`
	View    m.ViewMode          `json:"view"`
	Strings map[string][]string `json:"strings"`
}

// NoteResponse is the body of GET /api/v1/notes/:string/:fret.
type NoteResponse struct {
	String     int          `json:"string"`
	Fret       int          `json:"fret"`
	Note       m.Note       `json:"note"`
	PitchClass m.PitchClass `json:"pitch_class"`
}

// PositionsResponse is the body of scale and chord queries.
type PositionsResponse struct {
	Query     string       `json:"query"`
	Notes     []m.Note     `json:"notes"`
	Positions []m.Position `json:"positions"`
}

// ChordsResponse is the body of GET /api/v1/chords.
type ChordsResponse struct {
	Chords []string `json:"chords"`
}

// ErrorResponse is returned with every 4xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getFretboard(c *gin.Context) {
	view := m.ViewMode(c.DefaultQuery("view", string(m.ViewNames)))
	if view != m.ViewNames && view != m.ViewNumbers {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "view must be names or numbers"})
		return
	}

	board := domain.NewBoard(s.fb, view, "", nil)

	strings := make(map[string][]string, len(board.Rows))
	for str := 1; str <= len(board.Rows); str++ {
		labels := make([]string, len(board.Rows[str-1]))
		for fret := range labels {
			labels[fret] = board.Label(str, fret)
		}

		strings[strconv.Itoa(str)] = labels
	}

	c.JSON(http.StatusOK, FretboardResponse{
		Tuning:  board.Tuning,
		MaxFret: board.MaxFret(),
		View:    view,
		Strings: strings,
	})
}

func (s *Server) getNote(c *gin.Context) {
	str, errString := strconv.Atoi(c.Param("string"))
	fret, errFret := strconv.Atoi(c.Param("fret"))

	if errString != nil || errFret != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "string and fret must be integers"})
		return
	}

	note, err := s.fb.Note(str, fret)
	if err != nil {
		s.fail(c, err)
		return
	}

	pc, _ := domain.PitchClassOf(note)

	c.JSON(http.StatusOK, NoteResponse{String: str, Fret: fret, Note: note, PitchClass: pc})
}

func (s *Server) getScale(c *gin.Context) {
	note := m.Note(c.Param("note"))

	positions, err := s.fb.Scale(note)
	if err != nil {
		s.fail(c, err)
		return
	}

	queryPositions.WithLabelValues("scale").Observe(float64(len(positions)))

	c.JSON(http.StatusOK, PositionsResponse{Query: string(note), Notes: []m.Note{note}, Positions: positions})
}

func (s *Server) getChord(c *gin.Context) {
	spec := c.Param("spec")

	positions, err := s.fb.Chord(spec)
	if err != nil {
		s.fail(c, err)
		return
	}

	notes := []m.Note{}
	if chord, err := domain.ParseChord(spec); err == nil {
		notes, _ = domain.ChordNotes(chord)
	}

	queryPositions.WithLabelValues("chord").Observe(float64(len(positions)))

	c.JSON(http.StatusOK, PositionsResponse{Query: spec, Notes: notes, Positions: positions})
}

func (s *Server) listChords(c *gin.Context) {
	c.JSON(http.StatusOK, ChordsResponse{Chords: domain.ChordSpecs()})
}

// fail maps model errors to status codes.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrOutOfRange):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidNote),
		errors.Is(err, domain.ErrInvalidChord),
		errors.Is(err, domain.ErrInvalidChordQuality):
		status = http.StatusBadRequest
	}

	c.JSON(status, ErrorResponse{Error: err.Error()})
}
