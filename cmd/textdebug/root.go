package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "textdebug",
		Short: "Inspect and validate text layout debug overlay presets",
		Long: `textdebug works with the overlay presets used to visualize text layout
internals (baselines, frame/line/run/glyph bounds). It lists the built-in
presets, renders any preset as terminal color swatches, and validates
custom preset files before they ship.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")

	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
}

func setupLogging(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}
