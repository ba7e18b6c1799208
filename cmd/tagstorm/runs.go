package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tagstorm/internal/platform/tui"
	"github.com/vovakirdan/tagstorm/internal/registry"
	"github.com/vovakirdan/tagstorm/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [scene]",
	Short: "Show stored runs",
	Long: `Browse stored runs in an interactive table, or print them as plain text.
Without a scene, the plain output lists every scene's summary.

Examples:
  tagstorm runs
  tagstorm runs burst
  tagstorm runs rain --plain --limit 5
  tagstorm runs drift --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as plain text instead of the interactive board")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print in plain mode")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete stored runs (of the scene, or all)")
}

func runRuns(_ *cobra.Command, args []string) {
	sceneID := ""
	if len(args) == 1 {
		sceneID = args[0]
		if !registry.Exists(sceneID) {
			fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
			fmt.Fprintln(os.Stderr, "Run 'tagstorm list' to see available scenes.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = store.ClearRuns(sceneID)
		if err == nil {
			fmt.Println("Runs cleared.")
		}
	case flagPlain && sceneID == "":
		err = printSummary(store)
	case flagPlain:
		err = printRuns(store, sceneID, flagLimit)
	default:
		cfg := runtimeConfig()
		_, err = tui.RunRunBoard(store, sceneID, cfg.ScreenW, cfg.ScreenH)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printRuns(store *storage.Store, sceneID string, limit int) error {
	runs, err := store.TopRuns(sceneID, limit)
	if err != nil {
		return err
	}

	fmt.Printf("Top runs - %s\n", sceneID)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'tagstorm play %s' to record the first one!\n", sceneID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-7s  %-7s  %-8s  %s\n",
		"Rank", "Score", "Impacts", "Cascade", "Peak", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-7s  %-7s  %-8s  %s\n",
		"----", "-----", "-------", "-------", "----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-7d  %-7d  %-7.1f  %-8s  %s\n",
			i+1, r.Score, r.Impacts, r.CascadeHits, r.PeakEnergy, r.Intensity,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if count, err := store.RunCount(sceneID); err == nil {
		fmt.Printf("Runs stored: %d\n", count)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllSceneStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-5s  %-8s  %-8s  %-8s  %-7s  %s\n",
		"Scene", "Runs", "Best", "Average", "Impacts", "Peak", "Last")
	fmt.Printf("  %-8s  %-5s  %-8s  %-8s  %-8s  %-7s  %s\n",
		"-----", "----", "----", "-------", "-------", "----", "----")
	for _, sc := range registry.List() {
		st, ok := stats[sc.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-8d  %-8.1f  %-8d  %-7.1f  %s\n",
			st.SceneID, st.Runs, st.BestScore, st.AvgScore, st.TotalImpacts, st.PeakEnergy,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
