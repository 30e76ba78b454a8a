package book

import (
	"errors"
	"fmt"
)

// ErrPageSize is returned when a pager is requested with a non-positive size.
var ErrPageSize = errors.New("book: page size must be positive")

// Pager is a one-shot cursor over a snapshot of the book's entries, taken
// at creation. Mutations after creation do not affect pages already promised.
type Pager struct {
	entries []Entry
	size    int
	offset  int
}

// Pager creates a cursor over the current entries with pages of up to size.
func (b *Book) Pager(size int) (*Pager, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrPageSize, size)
	}
	return &Pager{entries: b.Entries(), size: size}, nil
}

// Next returns the next page of entries. It reports false once the cursor
// is exhausted; an empty book exhausts immediately.
func (p *Pager) Next() ([]Entry, bool) {
	if p.offset >= len(p.entries) {
		return nil, false
	}
	end := p.offset + p.size
	if end > len(p.entries) {
		end = len(p.entries)
	}
	page := p.entries[p.offset:end]
	p.offset = end
	return page, true
}
