package overlay

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadOverlay reads a single overlay from disk.
func LoadOverlay(path string) (*Overlay, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("overlay path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overlay %s: %w", path, err)
	}

	overlay, err := parseOverlay(data)
	if err != nil {
		return nil, fmt.Errorf("parse overlay %s: %w", path, err)
	}
	overlay.Source = path
	return overlay, nil
}

// LoadOverlaysFromDir loads all overlays from a directory. A missing
// directory yields no overlays.
func LoadOverlaysFromDir(dir string) ([]*Overlay, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Overlay{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Overlay{}, nil
		}
		return nil, fmt.Errorf("read overlays dir %s: %w", dir, err)
	}

	overlays := make([]*Overlay, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		overlay, err := LoadOverlay(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		overlays = append(overlays, overlay)
	}

	sort.Slice(overlays, func(i, j int) bool {
		return overlays[i].Name < overlays[j].Name
	})

	return overlays, nil
}

func parseOverlay(data []byte) (*Overlay, error) {
	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, err
	}

	overlay.Name = strings.TrimSpace(overlay.Name)
	tokens := make(map[string]ColorPair, len(overlay.Tokens))
	for key, value := range overlay.Tokens {
		key = strings.ToLower(strings.TrimSpace(key))
		if _, dup := tokens[key]; dup {
			return nil, &OverlayValidationError{Field: "tokens", Key: key, Message: "token remapped twice"}
		}
		tokens[key] = value
	}
	overlay.Tokens = tokens

	if err := overlay.Validate(); err != nil {
		return nil, err
	}
	return &overlay, nil
}
