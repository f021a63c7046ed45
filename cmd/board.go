package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretmap/internal/domain"
	m "github.com/mouse-blink/fretmap/internal/model"
)

var boardNoteFlag string
var boardChordFlag string

// boardCmd represents the board command.
var boardCmd = newBoardCmd()

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the fretboard, optionally highlighting a note or chord",
		Long: `Print the fretboard with one row per string and one column per fret.
--note takes precedence over --chord when both are given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return workflow.Board(domain.BoardArgs{
				Config: cfg,
				Note:   m.Note(boardNoteFlag),
				Chord:  boardChordFlag,
			})
		},
	}
	cmd.Flags().StringVar(&boardNoteFlag, "note", "", "note to highlight (C, Db, D, ...)")
	cmd.Flags().StringVar(&boardChordFlag, "chord", "", "chord to highlight (CM, Dbm, E+, F-, ...)")

	return cmd
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
