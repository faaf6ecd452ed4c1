package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a match in the current terminal.

Controls:
  W/S, Up/Down  - Move your paddle
  Space/P       - Pause
  R             - Reset scores and serve
  H             - Toggle help
  Esc/Q         - Quit

With --two-player the arrows move the right paddle.

Terminals report key presses but not releases, so holding a key relies on
auto-repeat; a tap moves the paddle briefly.

Examples:
  pong play
  pong play --difficulty easy
  pong play --seed 42 --log pong.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard)
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

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	engine := audio.NewEngine(cfg.Audio, logger)
	if err := engine.Start(); err != nil {
		logger.Warn("audio unavailable", "err", err)
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Player:  engine,
		Logger:  logger,
		Width:   width,
		Height:  height,
	})

	// Stop audio before potential exit
	engine.Stop()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
