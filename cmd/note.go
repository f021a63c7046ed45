package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretmap/internal/domain"
)

// noteCmd represents the note command.
var noteCmd = newNoteCmd()

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note STRING FRET",
		Short: "Show the note at a string and fret",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			str, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("string must be an integer: %q", args[0])
			}

			fret, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("fret must be an integer: %q", args[1])
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return workflow.Note(domain.NoteArgs{Config: cfg, String: str, Fret: fret})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(noteCmd)
}
