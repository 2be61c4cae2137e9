package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/satbox/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions <scene>",
	Short: "Show recorded sessions for a scene",
	Long: `Display the top 10 recorded sessions for the specified scene,
ordered by collision count.

Examples:
  satbox sessions playground`,
	Args: cobra.ExactArgs(1),
	Run:  runSessions,
}

func runSessions(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.TopSessions(sceneID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sessions - %s\n", sceneID)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'satbox play %s' to record the first one.\n", sceneID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-10s  %-10s  %s\n", "Rank", "Hits", "Ticks", "Duration", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-10s  %s\n", "----", "----", "-----", "--------", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10d  %-10s  %s\n", i+1, entry.Collisions, entry.Ticks, fmt.Sprintf("%ds", entry.Duration), dateStr)
	}
}
