// pong is a two-paddle arcade game for the terminal, a desktop window, or
// remote play over SSH.
//
// Usage:
//
//	pong play       - Play in this terminal
//	pong window     - Play in a desktop window
//	pong serve      - Start SSH server for remote play
//	pong config     - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60; the game always simulates at 60 Hz)
//	--seed <value>        - Set RNG seed for reproducible serves
//	--config <path>       - Load a custom pong.yaml
//	--difficulty <name>   - CPU preset: easy, normal, hard
//	--two-player          - Right paddle is a second human
//	--mute                - Disable sound
//	--log <path>          - Write logs to a file
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagTwoPlayer  bool
	flagMute       bool
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two paddles, one ball",
	Long: `Pong is the classic two-paddle arcade game against a beatable CPU
opponent, or against a friend on the same keyboard.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  pong play
  pong play --difficulty hard
  pong window --two-player
  pong serve --ssh :2222
  pong config > ~/.pong/configs/pong.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate for input and drawing (the simulation always runs at 60 Hz)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pong config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "CPU preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagTwoPlayer, "two-player", false, "Right paddle is controlled by a second player")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the process logger. fallback receives logs when --log
// is not set; the terminal adapter passes io.Discard since it owns the screen.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig resolves the match config from the search path and applies the
// command-line overrides.
func loadConfig(logger *log.Logger) (config.PongConfig, error) {
	cfg, source, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Info("config loaded", "source", source)

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPongPreset(&cfg, preset)

	if flagTwoPlayer {
		cfg.Gameplay.TwoPlayer = true
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// runtimeConfig builds the platform settings from the global flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	return rt
}
