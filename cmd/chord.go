package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretmap/internal/domain"
)

// chordCmd represents the chord command.
var chordCmd = newChordCmd()

// chordsCmd represents the chords command.
var chordsCmd = newChordsCmd()

func newChordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chord SPEC",
		Short: "List every position of a chord's notes",
		Long: `List every position of a chord's notes. SPEC is a root note followed by
M (major), m (minor), + (augmented) or - (diminished), e.g. CM or Eb-.
An unknown quality marker matches nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return workflow.Chord(domain.ChordArgs{Config: cfg, Chord: args[0]})
		},
	}
	return cmd
}

func newChordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chords",
		Short: "List every supported chord spec",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Chords()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(chordCmd)
	rootCmd.AddCommand(chordsCmd)
}
