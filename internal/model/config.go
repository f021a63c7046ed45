package model

// Path represents a file system path.
type Path string

// ViewMode selects how a presenter labels fretboard cells.
type ViewMode string

const (
	// ViewNames shows note names ("C", "Db", ...).
	ViewNames ViewMode = "names"
	// ViewNumbers shows pitch-class numbers (0..11).
	ViewNumbers ViewMode = "numbers"
)

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// Config is the on-disk configuration of fretmap.
type Config struct {
	Tuning  Tuning       `yaml:"tuning"`
	MaxFret int          `yaml:"max_fret"`
	View    ViewMode     `yaml:"view"`
	Server  ServerConfig `yaml:"server"`
}

// DefaultMaxFret is the fret count used when none is configured.
const DefaultMaxFret = 14

// MaxFretLimit is the highest fret count a fretboard accepts.
const MaxFretLimit = 48

// StandardTuning returns the standard six-string tuning, string 1 first.
func StandardTuning() Tuning {
	return Tuning{"E", "B", "G", "D", "A", "E"}
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() Config {
	return Config{
		Tuning:  StandardTuning(),
		MaxFret: DefaultMaxFret,
		View:    ViewNames,
		Server: ServerConfig{
			Address: ":8080",
		},
	}
}
