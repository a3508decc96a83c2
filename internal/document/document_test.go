package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("one  two\nthree\n"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Source != "sample.txt" {
		t.Fatalf("expected source sample.txt, got %q", doc.Source)
	}
	if len(doc.Words) != 3 {
		t.Fatalf("expected 3 words, got %v", doc.Words)
	}
	if doc.Empty() {
		t.Fatalf("document with words reported empty")
	}
}

func TestLoadZeroByteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write empty: %v", err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("zero-byte file must not be an error: %v", err)
	}
	if !doc.Empty() {
		t.Fatalf("expected empty document, got %v", doc.Words)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFromReader(t *testing.T) {
	doc, err := FromReader("stdin", strings.NewReader("  spaced   out  "))
	if err != nil {
		t.Fatalf("from reader: %v", err)
	}
	if doc.Source != "stdin" {
		t.Fatalf("expected source stdin, got %q", doc.Source)
	}
	if len(doc.Words) != 2 || doc.Words[0] != "spaced" || doc.Words[1] != "out" {
		t.Fatalf("unexpected words: %v", doc.Words)
	}
}

func TestFromTextWhitespaceOnly(t *testing.T) {
	doc := FromText("paste", " \t\n ")
	if !doc.Empty() {
		t.Fatalf("whitespace-only text must yield no words, got %v", doc.Words)
	}
}
