// tagstorm animates text tags that fly into a 3D field, collide and push
// each other around, rendered in the terminal.
//
// Usage:
//
//	tagstorm list              - List available scenes
//	tagstorm play [scene]      - Watch a scene (menu if none given)
//	tagstorm sim <scene>       - Run a scene headless and print statistics
//	tagstorm runs [scene]      - Show stored runs
//	tagstorm serve             - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.tagstorm/runs.db)
//	--config <path>       - Engine config YAML
//	--scene-config <path> - Scene config YAML
//	--intensity <preset>  - calm, normal, violent or frozen
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tagstorm/internal/config"
	"github.com/vovakirdan/tagstorm/internal/scene"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagSceneConfig string
	flagIntensity   string
	flagLogLevel    string

	logger    *log.Logger
	intensity config.Intensity
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tagstorm",
	Short: "tagstorm - colliding text tags in your terminal",
	Long: `tagstorm flies text tags into a 3D field where they collide, push each
other aside, shrink on impact and settle with a gentle wobble.

Available commands:
  list     - Show all available scenes
  play     - Watch a scene (interactive menu without arguments)
  sim      - Run a scene headless and print statistics
  runs     - View stored runs
  serve    - Start SSH server for remote viewing

Examples:
  tagstorm list
  tagstorm play burst
  tagstorm play rain --intensity violent
  tagstorm sim burst --ticks 600 --seed 7
  tagstorm runs --plain
  tagstorm serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tagstorm/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSceneConfig, "scene-config", "", "Path to custom scene config YAML")
	rootCmd.PersistentFlags().StringVar(&flagIntensity, "intensity", "", "Intensity preset: calm, normal, violent, frozen")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and hands the loaded configuration to the scenes.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tagstorm",
		Level:           level,
	})

	intensity, err = config.ParseIntensity(flagIntensity)
	if err != nil {
		return err
	}

	ec, err := config.LoadEngine(flagConfig)
	if err != nil {
		return err
	}
	sc, err := config.LoadScene(flagSceneConfig)
	if err != nil {
		return err
	}
	config.ApplyIntensity(&ec, intensity)

	scene.Configure(ec, sc, logger)
	logger.Debug("configured", "intensity", intensity, "fps", flagFPS)
	return nil
}
