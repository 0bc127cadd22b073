package overlay

import (
	"path/filepath"
)

// SearchPaths returns overlay directories in precedence order.
func SearchPaths(configDir string) []string {
	paths := make([]string, 0, 2)
	if configDir != "" {
		paths = append(paths, filepath.Join(configDir, "overlays"))
	}
	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "prism", "overlays"))
	return paths
}

// LoadFromSearchPaths loads overlays from the search paths and the builtins
// with first-hit precedence by name.
func LoadFromSearchPaths(configDir string) ([]*Overlay, error) {
	seen := make(map[string]*Overlay)
	order := make([]string, 0)

	add := func(overlays []*Overlay) {
		for _, overlay := range overlays {
			if _, exists := seen[overlay.Name]; exists {
				continue
			}
			seen[overlay.Name] = overlay
			order = append(order, overlay.Name)
		}
	}

	for _, path := range SearchPaths(configDir) {
		overlays, err := LoadOverlaysFromDir(path)
		if err != nil {
			return nil, err
		}
		add(overlays)
	}

	builtins, err := LoadBuiltinOverlays()
	if err != nil {
		return nil, err
	}
	add(builtins)

	resolved := make([]*Overlay, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}
	return resolved, nil
}

// Find loads an overlay by name, or from a file when name has a YAML
// extension.
func Find(configDir, name string) (*Overlay, error) {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return LoadOverlay(name)
	}

	overlays, err := LoadFromSearchPaths(configDir)
	if err != nil {
		return nil, err
	}
	for _, overlay := range overlays {
		if overlay.Name == name {
			return overlay, nil
		}
	}
	return nil, ErrOverlayNotFound
}
