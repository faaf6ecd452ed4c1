package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default pong.yaml, ready to copy and edit.

Config search order:
  1. --config <path>
  2. ~/.pong/configs/pong.yaml
  3. ./configs/pong.yaml
  4. Embedded defaults

With --resolved, print the config that play would use instead, after the
search path and the --difficulty, --two-player and --mute overrides.

Examples:
  pong config > ~/.pong/configs/pong.yaml
  pong config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective config instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if err := printConfig(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printConfig(w io.Writer) error {
	if !flagResolved {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	return enc.Close()
}
