// satbox is a terminal sandbox for convex collision detection.
//
// Usage:
//
//	satbox list              - List available scenes
//	satbox play [scene]      - Run a scene interactively
//	satbox check [scene]     - Headless pairwise collision report
//	satbox sessions <scene>  - Show recorded sessions for a scene
//	satbox serve             - Start SSH server for remote sandboxing
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.satbox/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "satbox",
	Short: "satbox - Convex collision sandbox in your terminal",
	Long: `satbox loads a scene of convex bodies and runs them through a
separating-axis collision pipeline, live in your terminal.

Available commands:
  list     - Show all available scenes
  play     - Run a scene interactively
  check    - Headless pairwise collision report
  sessions - View recorded sessions for a scene
  serve    - Start SSH server for remote sandboxing

Examples:
  satbox list
  satbox play playground
  satbox play ./scenes/orbit.yaml
  satbox check playground --sacrifice-mtv
  satbox serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.satbox/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(serveCmd)
}
