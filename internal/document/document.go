// Package document loads input text for reading.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/verte-zerg/glance/internal/text"
)

// Document holds one raw input text and its derived word sequence. A new
// input replaces the document wholesale; it is never edited in place.
type Document struct {
	Source string
	Text   string
	Words  []string
}

// Load reads the whole file at path as text. Empty or whitespace-only files
// are valid and produce an empty word sequence.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return newDocument(filepath.Base(path), string(data)), nil
}

// FromReader drains r into a document named source. Used for piped stdin.
func FromReader(source string, r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return newDocument(source, string(data)), nil
}

// FromText wraps already-held text in a document.
func FromText(source, raw string) Document {
	return newDocument(source, raw)
}

func newDocument(source, raw string) Document {
	return Document{
		Source: source,
		Text:   raw,
		Words:  text.Tokenize(raw),
	}
}

// Empty reports whether the document has no words.
func (d Document) Empty() bool {
	return len(d.Words) == 0
}
