package cage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Load reads the cage rectangle from disk. A missing file returns an empty rect.
func Load(path string) (Rect, error) {
	var r Rect
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return r, nil
		}
		return r, err
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return r, err
	}
	return r, nil
}

// Save writes the cage rectangle to disk, creating parent directories as needed.
func Save(path string, r Rect) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
