// Package cmd provides the root command and CLI setup for fretmap.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mouse-blink/fretmap/internal/adapter"
	"github.com/mouse-blink/fretmap/internal/controller"
	"github.com/mouse-blink/fretmap/internal/domain"
	m "github.com/mouse-blink/fretmap/internal/model"
	"github.com/spf13/cobra"
)

var configStore adapter.ConfigStore
var workflow domain.Workflow
var ui controller.UI
var interactive bool

func init() {
	interactive = controller.IsTTY(os.Stdout)
	ui = controller.NewUI(rootCmd, interactive)
	configStore = adapter.NewConfigStore()
	workflow = domain.NewWorkflow(ui, nil)
}

var configFlag string
var tuningFlag []string
var fretsFlag int
var numbersFlag bool
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fretmap",
		Short: "Find notes and chords on a guitar fretboard",
		Long: `Fretmap maps every string and fret of a stringed instrument to its note
and finds every position of a note or chord.

Run without a subcommand in a terminal to open the interactive explorer:
  v   toggle note names / pitch-class numbers
  n   pick a note to highlight
  c   pick a chord to highlight (CM, Cm, C+, C-, ...)
  x   clear the highlight
  q   quit

Chords are written as a root followed by one quality marker:
  M major, m minor, + augmented, - diminished`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if interactive {
				return workflow.Explore(domain.ExploreArgs{Config: cfg})
			}

			return workflow.Board(domain.BoardArgs{Config: cfg})
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "config file (default $HOME/.fretmap/fretmap.yaml)")
	cmd.PersistentFlags().StringSliceVarP(&tuningFlag, "tuning", "t", nil, "open-string notes from string 1, comma separated (e.g. E,B,G,D,A,E)")
	cmd.PersistentFlags().IntVar(&fretsFlag, "frets", m.DefaultMaxFret, fmt.Sprintf("highest fret to show (at most %d)", m.MaxFretLimit))
	cmd.PersistentFlags().BoolVarP(&numbersFlag, "numbers", "n", false, "show pitch-class numbers (0-11) instead of note names")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setupLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads the config file and applies flag overrides.
// An explicit --config path must exist; the default path is created on first run.
func loadConfig(cmd *cobra.Command) (m.Config, error) {
	var (
		cfg m.Config
		err error
	)

	if configFlag != "" {
		cfg, err = configStore.Load(m.Path(configFlag))
	} else {
		var path m.Path

		path, err = configStore.DefaultPath()
		if err == nil {
			cfg, err = configStore.LoadOrCreate(path)
		}
	}

	if err != nil {
		return m.Config{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("tuning") {
		cfg.Tuning = make(m.Tuning, 0, len(tuningFlag))
		for _, note := range tuningFlag {
			cfg.Tuning = append(cfg.Tuning, m.Note(note))
		}
	}

	if flags.Changed("frets") {
		cfg.MaxFret = fretsFlag
	}

	if flags.Changed("numbers") {
		cfg.View = m.ViewNames
		if numbersFlag {
			cfg.View = m.ViewNumbers
		}
	}

	slog.Debug("config loaded",
		slog.String("tuning", fmt.Sprint(cfg.Tuning)),
		slog.Int("max_fret", cfg.MaxFret),
		slog.String("view", string(cfg.View)))

	return cfg, nil
}
