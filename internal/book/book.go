package book

import (
	"fmt"
	"strings"
)

// Entry is a (name, phones) pair as surfaced by search and pagination.
type Entry struct {
	Name   string
	Phones []string
}

// Book is the address book: a mapping from contact name to Record plus a
// deterministic insertion-order index. A record's name always equals its key.
type Book struct {
	records map[string]*Record
	order   []string
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts a record keyed by its name. Adding a name already present
// fails with ErrExists and leaves the book unchanged.
func (b *Book) Add(rec *Record) error {
	name := rec.Name()
	if _, ok := b.records[name]; ok {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	b.records[name] = rec
	b.order = append(b.order, name)
	return nil
}

// Find returns the record for name, or ErrNotFound.
func (b *Book) Find(name string) (*Record, error) {
	rec, ok := b.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return rec, nil
}

// Delete removes the record for name, or reports ErrNotFound.
func (b *Book) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of contacts.
func (b *Book) Len() int { return len(b.records) }

// Search returns all contacts whose name or any phone number contains
// query as a substring, in insertion order. Birthdays are not searched.
func (b *Book) Search(query string) []Entry {
	var out []Entry
	for _, name := range b.order {
		rec := b.records[name]
		if strings.Contains(name, query) || anyContains(rec.Phones(), query) {
			out = append(out, Entry{Name: name, Phones: rec.Phones()})
		}
	}
	return out
}

func anyContains(values []string, query string) bool {
	for _, v := range values {
		if strings.Contains(v, query) {
			return true
		}
	}
	return false
}

// Entries returns all contacts as (name, phones) pairs in insertion order.
func (b *Book) Entries() []Entry {
	out := make([]Entry, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, Entry{Name: name, Phones: b.records[name].Phones()})
	}
	return out
}

// Records returns all records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}
