package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tagstorm/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long:  `Shows a list of all scenes registered in tagstorm.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	fmt.Println("Available scenes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, sc := range scenes {
		maxIDLen = max(maxIDLen, len(sc.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, sc := range scenes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, sc.ID, sc.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tagstorm play <id>' to watch a scene.")
}
