package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tagstorm/internal/core"
	"github.com/vovakirdan/tagstorm/internal/platform/tui"
	"github.com/vovakirdan/tagstorm/internal/registry"
	"github.com/vovakirdan/tagstorm/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Watch a scene",
	Long: `Start the given scene, or pick one from a menu when none is given.
Runs that caused any impact are stored when you leave them.

Controls:
  Space/Enter  - Launch a tag
  B            - Launch a volley
  P            - Pause
  R            - Reset the scene
  Esc          - Back to the menu
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  tagstorm play
  tagstorm play rain
  tagstorm play burst --intensity violent
  tagstorm play drift --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'tagstorm list' to see available scenes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Scenes still run, runs are just not kept
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	opts := tui.Options{
		Store:     store,
		Intensity: string(intensity),
		Logger:    logger,
	}

	if len(args) == 1 {
		if err := playScene(args[0], cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scene: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := menuLoop(store, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func playScene(sceneID string, cfg core.RuntimeConfig, opts tui.Options) error {
	sc, err := registry.Create(sceneID)
	if err != nil {
		return err
	}
	_, err = tui.Run(sc, cfg, opts)
	return err
}

// menuLoop alternates between the menu and the chosen scene or run board
// until the user quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig, opts tui.Options) error {
	opts.Embedded = true
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsRuns:
			goBack, err := tui.RunRunBoard(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case res.SceneID != "":
			sc, err := registry.Create(res.SceneID)
			if err != nil {
				return err
			}
			result, err := tui.Run(sc, cfg, opts)
			if err != nil {
				return err
			}
			logger.Info("scene finished", "scene", res.SceneID,
				"impacts", result.State.Impacts, "score", result.State.Score)
			if !result.BackToMenu {
				return nil
			}

		default:
			return nil
		}
	}
}
