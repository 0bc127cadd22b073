package overlay

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinOverlays returns the overlays bundled with prism.
func LoadBuiltinOverlays() ([]*Overlay, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin overlays: %w", err)
	}

	overlays := make([]*Overlay, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin overlay %s: %w", entry.Name(), err)
		}
		overlay, err := parseOverlay(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin overlay %s: %w", entry.Name(), err)
		}
		overlay.Source = "builtin"
		overlays = append(overlays, overlay)
	}

	sort.Slice(overlays, func(i, j int) bool {
		return overlays[i].Name < overlays[j].Name
	})

	return overlays, nil
}
