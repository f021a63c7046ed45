package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretmap/internal/domain"
	m "github.com/mouse-blink/fretmap/internal/model"
)

// scaleCmd represents the scale command.
var scaleCmd = newScaleCmd()

func newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale NOTE",
		Short: "List every position of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return workflow.Scale(domain.ScaleArgs{Config: cfg, Note: m.Note(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(scaleCmd)
}
