package scene

import (
	_ "embed"
)

// DefaultSceneName is the scene used when no scene is specified.
const DefaultSceneName = "playground"

//go:embed defaults/playground.yaml
var defaultPlaygroundYAML []byte

// Default returns the embedded default scene.
func Default() (Scene, error) {
	return Parse(defaultPlaygroundYAML)
}
