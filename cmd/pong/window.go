package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/window"
)

var flagTitle string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and start a match. Sound plays in-process, so no
external audio tool is needed.

Controls:
  W/S, Up/Down  - Move your paddle
  Space/P       - Pause
  R             - Reset scores and serve
  H             - Toggle help
  Esc/Q         - Quit

Examples:
  pong window
  pong window --two-player --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagTitle, "title", "Pong", "Window title")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := window.Run(window.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Logger:  logger,
		Title:   flagTitle,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
