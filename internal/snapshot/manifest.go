package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one snapshot in the output manifest.
type ManifestEntry struct {
	Seq      int     `json:"seq"`
	Label    string  `json:"label"`
	Renderer string  `json:"renderer"`
	Image    string  `json:"image"`
	Coverage float64 `json:"coverage"`
}

// WriteManifest writes the successful results as JSON to path, creating its
// directory if needed.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Seq:      r.Seq,
			Label:    r.Label,
			Renderer: r.Renderer,
			Image:    r.Image,
			Coverage: r.Coverage,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("snapshot: manifest dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
