package domain

import (
	"fmt"

	m "github.com/mouse-blink/fretmap/internal/model"
)

type quality struct {
	marker    byte
	name      m.ChordQuality
	intervals []int
}

// qualities is ordered by marker as offered in chord pickers.
var qualities = []quality{
	{marker: 'M', name: m.QualityMajor, intervals: []int{0, 4, 7}},
	{marker: 'm', name: m.QualityMinor, intervals: []int{0, 3, 7}},
	{marker: '+', name: m.QualityAugmented, intervals: []int{0, 4, 8}},
	{marker: '-', name: m.QualityDiminished, intervals: []int{0, 3, 6}},
}

func qualityByMarker(marker byte) (quality, bool) {
	for _, q := range qualities {
		if q.marker == marker {
			return q, true
		}
	}

	return quality{}, false
}

func qualityByName(name m.ChordQuality) (quality, bool) {
	for _, q := range qualities {
		if q.name == name {
			return q, true
		}
	}

	return quality{}, false
}

// ParseChord splits a chord spec such as "Db-" into root and quality.
// The last character is the quality marker, everything before it is the root.
// The marker is checked before the root, so "x" is an unknown quality while "M" has no root.
func ParseChord(spec string) (m.Chord, error) {
	if spec == "" {
		return m.Chord{}, fmt.Errorf("%w: empty", ErrInvalidChord)
	}

	q, ok := qualityByMarker(spec[len(spec)-1])
	if !ok {
		return m.Chord{}, fmt.Errorf("%w: %q in %q", ErrInvalidChordQuality, spec[len(spec)-1:], spec)
	}

	root := m.Note(spec[:len(spec)-1])
	if root == "" {
		return m.Chord{}, fmt.Errorf("%w: %q has no root", ErrInvalidChord, spec)
	}

	if _, err := PitchClassOf(root); err != nil {
		return m.Chord{}, fmt.Errorf("chord %q: %w", spec, err)
	}

	return m.Chord{Root: root, Quality: q.name}, nil
}

// ChordNotes returns the notes of a chord in interval order, root first.
func ChordNotes(chord m.Chord) ([]m.Note, error) {
	root, err := PitchClassOf(chord.Root)
	if err != nil {
		return nil, err
	}

	q, ok := qualityByName(chord.Quality)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChordQuality, chord.Quality)
	}

	notes := make([]m.Note, 0, len(q.intervals))
	for _, iv := range q.intervals {
		notes = append(notes, NoteOf(Transpose(root, iv)))
	}

	return notes, nil
}

// ChordSpec formats a chord back into its "<root><marker>" form.
func ChordSpec(chord m.Chord) string {
	q, ok := qualityByName(chord.Quality)
	if !ok {
		return string(chord.Root)
	}

	return string(chord.Root) + string(q.marker)
}

// ChordSpecs lists every supported chord spec, grouped by root: "CM", "Cm", "C+", "C-", "DbM", ...
func ChordSpecs() []string {
	specs := make([]string, 0, semitones*len(qualities))
	for _, root := range noteNames {
		for _, q := range qualities {
			specs = append(specs, string(root)+string(q.marker))
		}
	}

	return specs
}
