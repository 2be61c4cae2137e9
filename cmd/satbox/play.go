package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/satbox/internal/core"
	"github.com/vovakirdan/satbox/internal/platform/tui"
	"github.com/vovakirdan/satbox/internal/scene"
	"github.com/vovakirdan/satbox/internal/storage"
)

var flagSacrificeMTV bool

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Run a scene interactively",
	Long: `Load a scene and run it in the terminal. The argument is a scene
name resolved via the usual search order, or a path to a YAML file.
Without an argument the built-in playground scene is used.

Controls:
  WASD/Arrows - Nudge the selected body
  [ / ]       - Rotate the selected body
  Tab         - Select the next body
  Space       - Toggle overlap resolution
  P           - Pause
  R           - Restart the scene
  Q/Ctrl+C    - Quit

Examples:
  satbox play
  satbox play playground
  satbox play ./scenes/orbit.yaml
  satbox play playground --sacrifice-mtv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSacrificeMTV, "sacrifice-mtv", false, "Deduplicate rectangle axes (faster, MTV may be suboptimal)")
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneName := scene.DefaultSceneName
	if len(args) > 0 {
		sceneName = args[0]
	}

	scn, err := scene.Load(sceneName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot load scene %q: %v\n", sceneName, err)
		fmt.Fprintln(os.Stderr, "Run 'satbox list' to see available scenes.")
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the sandbox still works
		store = nil
	}

	runErr := tui.Run(scn, store, cfg, flagSacrificeMTV)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}
