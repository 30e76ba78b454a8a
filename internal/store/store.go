// Package store persists an address book to a JSON file on disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/field"
)

// Sentinel errors for caller-checkable conditions.
var (
	// ErrEmptyPath is returned when a Store is used with an empty file path.
	ErrEmptyPath = errors.New("store: file path cannot be empty")
	// ErrFileNotFound tags explicit loads of a path that does not exist.
	// Load itself reports absence via its found return instead.
	ErrFileNotFound = errors.New("store: file not found")
)

// dateLayout is the on-disk birthday encoding.
const dateLayout = "2006-01-02"

// contactJSON is the on-disk shape of a single contact.
type contactJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// bookJSON is the on-disk shape of the whole book. Contacts are stored as
// an array so insertion order survives the round trip.
type bookJSON struct {
	Contacts []contactJSON `json:"contacts"`
}

// FileStore persists the address book as a JSON file at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore that reads and writes the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file path this store reads and writes.
func (s *FileStore) Path() string { return s.path }

// Save writes the book to the store's path, creating parent directories
// as needed.
func (s *FileStore) Save(b *book.Book) error {
	return s.SaveTo(s.path, b)
}

// SaveTo writes the book to an explicit path.
func (s *FileStore) SaveTo(path string, b *book.Book) error {
	if path == "" {
		return ErrEmptyPath
	}

	doc := bookJSON{Contacts: make([]contactJSON, 0, b.Len())}
	for _, rec := range b.Records() {
		c := contactJSON{Name: rec.Name(), Phones: rec.Phones()}
		if bd, ok := rec.Birthday(); ok {
			c.Birthday = bd.Format(dateLayout)
		}
		doc.Contacts = append(doc.Contacts, c)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: creating directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshaling: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("store: writing %s: %w", path, err)
	}
	return nil
}

// Load reads the book from the store's path. It returns (book, true, nil)
// when the file exists, (empty, false, nil) when it does not, and a wrapped
// error for unreadable or malformed content.
func (s *FileStore) Load() (*book.Book, bool, error) {
	return s.LoadFrom(s.path)
}

// LoadFrom reads the book from an explicit path.
func (s *FileStore) LoadFrom(path string) (*book.Book, bool, error) {
	if path == "" {
		return nil, false, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return book.New(), false, nil
		}
		return nil, false, fmt.Errorf("store: reading %s: %w", path, err)
	}

	var doc bookJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("store: parsing %s: %w", path, err)
	}

	b := book.New()
	for _, c := range doc.Contacts {
		rec := book.NewRecord(c.Name)
		for _, number := range c.Phones {
			if err := rec.AddPhone(number); err != nil {
				return nil, false, fmt.Errorf("store: contact %q: %w", c.Name, err)
			}
		}
		if c.Birthday != "" {
			t, err := time.Parse(dateLayout, c.Birthday)
			if err != nil {
				return nil, false, fmt.Errorf("store: contact %q: parsing birthday %q: %w", c.Name, c.Birthday, err)
			}
			bd, err := field.NewBirthday(t)
			if err != nil {
				return nil, false, fmt.Errorf("store: contact %q: %w", c.Name, err)
			}
			rec.SetBirthday(bd)
		}
		if err := b.Add(rec); err != nil {
			return nil, false, fmt.Errorf("store: %w", err)
		}
	}
	return b, true, nil
}
