package cage

import (
	"path/filepath"
	"testing"
)

// TestSaveLoad_RoundTrip verifies saving and loading preserves the rectangle.
func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cage.json")
	in := Rect{X: 1, Y: 2, W: 3, H: 4}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

// TestLoad_MissingFile_ReturnsEmpty verifies missing files return zero data.
func TestLoad_MissingFile_ReturnsEmpty(t *testing.T) {
	out, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if out != (Rect{}) {
		t.Fatalf("expected empty rect, got %+v", out)
	}
}
