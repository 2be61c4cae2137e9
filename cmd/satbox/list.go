package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/satbox/internal/scene"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long:  `Shows every scene found in ./scenes and ~/.satbox/scenes, plus the built-in default.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenes := make([]scene.Scene, 0, 8)

	if def, err := scene.Default(); err == nil {
		scenes = append(scenes, def)
	}
	for _, root := range []string{"scenes", scene.UserSceneDir()} {
		found, err := scene.LoadAll(root)
		if err != nil {
			continue
		}
		for _, s := range found {
			if !containsScene(scenes, s.Name) {
				scenes = append(scenes, s)
			}
		}
	}

	if len(scenes) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	fmt.Println("Available scenes:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range scenes {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Bodies", "Bounds")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "------")

	for _, s := range scenes {
		fmt.Printf("  %-*s  %-6d  %gx%g\n", maxNameLen, s.Name, len(s.Bodies), s.Bounds.W, s.Bounds.H)
	}

	fmt.Println()
	fmt.Println("Run 'satbox play <name>' to start a scene.")
}

func containsScene(scenes []scene.Scene, name string) bool {
	for _, s := range scenes {
		if s.Name == name {
			return true
		}
	}
	return false
}
