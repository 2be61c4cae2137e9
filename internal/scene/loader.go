package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse parses and validates a scene from YAML bytes.
func Parse(data []byte) (Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("scene: yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// LoadFile loads and validates a single scene file.
func LoadFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	s.FilePath = path
	return s, nil
}

// Load resolves a scene by name or path.
// Search order: explicit path -> ~/.satbox/scenes/<name>.yaml ->
// ./scenes/<name>.yaml -> embedded default (for the default scene name).
func Load(nameOrPath string) (Scene, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultSceneName
	}

	// Explicit path to a file
	if strings.ContainsRune(nameOrPath, os.PathSeparator) || strings.HasSuffix(nameOrPath, ".yaml") || strings.HasSuffix(nameOrPath, ".yml") {
		return LoadFile(nameOrPath)
	}

	// User scene directory
	if userPath := userScenePath(nameOrPath + ".yaml"); userPath != "" {
		if s, err := LoadFile(userPath); err == nil {
			return s, nil
		}
	}

	// Local scenes directory
	if s, err := LoadFile(filepath.Join("scenes", nameOrPath+".yaml")); err == nil {
		return s, nil
	}

	// Embedded default
	if nameOrPath == DefaultSceneName {
		return Default()
	}

	return Scene{}, fmt.Errorf("scene: unknown scene %q", nameOrPath)
}

// LoadAll scans a directory recursively and loads every valid scene file.
// Scenes are sorted by name for deterministic listings; invalid files are
// skipped.
func LoadAll(root string) ([]Scene, error) {
	var scenes []Scene

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		s, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		scenes = append(scenes, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scene: scan %s: %w", root, err)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// UserSceneDir returns the per-user scene directory (~/.satbox/scenes), or
// empty if the home directory is unavailable.
func UserSceneDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".satbox", "scenes")
}

// userScenePath returns the path under the user scene directory, or empty
// if the home directory is unavailable.
func userScenePath(filename string) string {
	dir := UserSceneDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
