package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestClassify_Text(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "notes.txt", []byte("plain text content\n"))

	if got := Classify(path); got != ClassText {
		t.Errorf("expected %q, got %q", ClassText, got)
	}
}

func TestClassify_Empty(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "empty", nil)

	if got := Classify(path); got != ClassEmpty {
		t.Errorf("expected %q, got %q", ClassEmpty, got)
	}
}

func TestClassify_Image(t *testing.T) {
	dir := t.TempDir()
	// Minimal PNG header is enough for content sniffing
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	path := writeTestFile(t, dir, "logo.png", png)

	if got := Classify(path); got != ClassImage {
		t.Errorf("expected %q, got %q", ClassImage, got)
	}
}

func TestClassify_Binary(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "blob", []byte{0x00, 0x01, 0x02, 0xff, 0xfe})

	if got := Classify(path); got != ClassBinary {
		t.Errorf("expected %q, got %q", ClassBinary, got)
	}
}

func TestClassify_MissingFile(t *testing.T) {
	if got := Classify(filepath.Join(t.TempDir(), "does-not-exist")); got != ClassUnknown {
		t.Errorf("expected %q for missing file, got %q", ClassUnknown, got)
	}
}
