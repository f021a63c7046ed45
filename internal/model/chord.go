package model

// ChordQuality identifies the interval pattern of a triad.
type ChordQuality string

const (
	// QualityMajor is written "M" and spans 0, 4 and 7 semitones.
	QualityMajor ChordQuality = "major"
	// QualityMinor is written "m" and spans 0, 3 and 7 semitones.
	QualityMinor ChordQuality = "minor"
	// QualityAugmented is written "+" and spans 0, 4 and 8 semitones.
	QualityAugmented ChordQuality = "augmented"
	// QualityDiminished is written "-" and spans 0, 3 and 6 semitones.
	QualityDiminished ChordQuality = "diminished"
)

// Chord is a parsed chord query.
type Chord struct {
	Root    Note
	Quality ChordQuality
}
