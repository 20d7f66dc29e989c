package doclint

import (
	"os"
	"path/filepath"
	"testing"
)

// TestMissingDocs_ModuleIsClean verifies every function in the module carries a doc comment.
func TestMissingDocs_ModuleIsClean(t *testing.T) {
	findings, err := MissingDocs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("MissingDocs failed: %v", err)
	}
	for _, f := range findings {
		t.Errorf("%s", f)
	}
}

// TestMissingDocs_ReportsUndocumented verifies undocumented functions are reported and the rest are not.
func TestMissingDocs_ReportsUndocumented(t *testing.T) {
	dir := t.TempDir()
	src := "package p\n\n// documented does nothing.\nfunc documented() {}\n\nfunc bare() {}\n"
	if err := os.WriteFile(filepath.Join(dir, "p.go"), []byte(src), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	skipped := filepath.Join(dir, "_skip")
	if err := os.Mkdir(skipped, 0o700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(skipped, "q.go"), []byte("package q\n\nfunc hidden() {}\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	findings, err := MissingDocs(dir)
	if err != nil {
		t.Fatalf("MissingDocs failed: %v", err)
	}
	if len(findings) != 1 || findings[0].Name != "bare" || findings[0].Pos.Line != 6 {
		t.Fatalf("expected one finding for bare at line 6, got %v", findings)
	}
}
