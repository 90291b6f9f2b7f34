// Package document loads planning documents and resolves their companion
// records. The engine never reads the filesystem directly; it goes through a
// Source so validation runs can operate on virtual document sets.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSourceNotFound indicates the requested document does not exist in the
// source. Callers distinguish this structural failure from content findings.
var ErrSourceNotFound = errors.New("source document not found")

// Document is an immutable named blob of raw text. Loaded fresh per
// validation run; the engine never caches across runs.
type Document struct {
	// Name is the source-relative handle the document was loaded by.
	Name string

	// Text is the raw content.
	Text string
}

// Source provides read access to a set of documents by name.
type Source interface {
	// Load returns the document for the given name, or an error wrapping
	// ErrSourceNotFound when it does not exist.
	Load(name string) (Document, error)
}

// DirSource loads documents from the local filesystem, with names resolved
// relative to Root (or used as-is when Root is empty).
type DirSource struct {
	Root string
}

// Load implements Source.
func (s DirSource) Load(name string) (Document, error) {
	path := name
	if s.Root != "" {
		path = filepath.Join(s.Root, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, fmt.Errorf("loading %s: %w", name, ErrSourceNotFound)
		}
		return Document{}, fmt.Errorf("loading %s: %w", name, err)
	}

	return Document{Name: name, Text: string(data)}, nil
}

// MapSource is an in-memory Source keyed by document name. Used in tests and
// by embedders that already hold document content.
type MapSource map[string]string

// Load implements Source.
func (s MapSource) Load(name string) (Document, error) {
	text, ok := s[name]
	if !ok {
		return Document{}, fmt.Errorf("loading %s: %w", name, ErrSourceNotFound)
	}
	return Document{Name: name, Text: text}, nil
}
