package domain

import (
	"testing"

	m "github.com/mouse-blink/fretmap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchClassOf_IsBijective(t *testing.T) {
	seen := make(map[m.PitchClass]bool)

	for i, name := range NoteNames() {
		pc, err := PitchClassOf(name)
		require.NoError(t, err)
		assert.Equal(t, m.PitchClass(i), pc)
		assert.Equal(t, name, NoteOf(pc))
		assert.False(t, seen[pc], "pitch class %d assigned twice", pc)

		seen[pc] = true
	}

	assert.Len(t, seen, 12)
}

func TestPitchClassOf_Unknown(t *testing.T) {
	for _, name := range []m.Note{"", "c", "C#", "H", "Cb"} {
		_, err := PitchClassOf(name)
		require.ErrorIs(t, err, ErrInvalidNote, "note %q", name)
	}
}

func TestNoteNames_ReturnsCopy(t *testing.T) {
	names := NoteNames()
	names[0] = "X"

	assert.Equal(t, m.Note("C"), NoteNames()[0])
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		name string
		pc   m.PitchClass
		n    int
		want m.PitchClass
	}{
		{name: "no step", pc: 4, n: 0, want: 4},
		{name: "within octave", pc: 4, n: 3, want: 7},
		{name: "wraps", pc: 11, n: 1, want: 0},
		{name: "several octaves", pc: 4, n: 28, want: 8},
		{name: "downwards", pc: 0, n: -1, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transpose(tt.pc, tt.n); got != tt.want {
				t.Fatalf("Transpose(%d, %d) = %d, want %d", tt.pc, tt.n, got, tt.want)
			}
		})
	}
}

func TestNoteOf_Wraps(t *testing.T) {
	if got := NoteOf(13); got != "Db" {
		t.Fatalf("NoteOf(13) = %q, want Db", got)
	}

	if got := NoteOf(-2); got != "Bb" {
		t.Fatalf("NoteOf(-2) = %q, want Bb", got)
	}
}
