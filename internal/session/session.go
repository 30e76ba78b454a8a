// Package session implements the line-oriented interactive command loop.
// One line is read, dispatched by command prefix, and fully executed before
// the next is read; domain errors are converted to printed sentences at
// this boundary while anything unrecognized ends the session.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/field"
	"github.com/smileynet/rolodex/internal/store"
)

// ErrMissingArgs is returned by handlers given fewer arguments than they need.
var ErrMissingArgs = errors.New("session: missing arguments")

// Session owns the book, its persistence, and the pagination cursor for one
// interactive run. It is single-threaded by construction.
type Session struct {
	book     *book.Book
	store    *store.FileStore
	pager    *book.Pager
	pageSize int
	now      func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithPageSize sets the page size used when show_all is given no argument.
func WithPageSize(n int) Option {
	return func(s *Session) { s.pageSize = n }
}

// WithClock overrides the clock used for birthday countdowns.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a Session over the given book and store.
func New(b *book.Book, st *store.FileStore, opts ...Option) *Session {
	s := &Session{
		book:     b,
		store:    st,
		pageSize: 5,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads commands from r one line at a time and prints one response per
// line to w, until a terminal command or EOF. Recognized domain errors are
// printed and the loop continues; any other error is returned.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, args, ok := match(line)
		if !ok {
			_, _ = fmt.Fprintln(w, "Give me a correct command please")
			continue
		}

		out, err := cmd.run(s, args)
		if err != nil {
			msg, recognized := presentError(err)
			if !recognized {
				return err
			}
			_, _ = fmt.Fprintln(w, msg)
			continue
		}

		_, _ = fmt.Fprintln(w, out)
		if cmd.terminal {
			return nil
		}
	}
	return scanner.Err()
}

// command is one entry in the dispatch table.
type command struct {
	name     string
	run      func(s *Session, args string) (string, error)
	terminal bool
}

// commands is the fixed dispatch table. Order does not decide ambiguous
// prefixes; match picks the longest name, so add_phone wins over add.
var commands = []command{
	{name: "add_phone", run: (*Session).addPhone},
	{name: "add", run: (*Session).add},
	{name: "edit_phone", run: (*Session).editPhone},
	{name: "set_birthday", run: (*Session).setBirthday},
	{name: "days_to_birthday", run: (*Session).daysToBirthday},
	{name: "delete", run: (*Session).delete},
	{name: "find", run: (*Session).find},
	{name: "search", run: (*Session).search},
	{name: "show_all", run: (*Session).showAll},
	{name: "next", run: (*Session).nextPage},
	{name: "save", run: (*Session).save},
	{name: "load", run: (*Session).load},
	{name: "exit", run: (*Session).goodBye, terminal: true},
	{name: "close", run: (*Session).goodBye, terminal: true},
	{name: ".", run: (*Session).goodBye, terminal: true},
}

// match resolves a line to the command whose name is the longest prefix
// ending at a word boundary, and returns the remainder as the argument string.
func match(line string) (command, string, bool) {
	var best command
	found := false
	for _, cmd := range commands {
		if line != cmd.name && !strings.HasPrefix(line, cmd.name+" ") {
			continue
		}
		if !found || len(cmd.name) > len(best.name) {
			best = cmd
			found = true
		}
	}
	if !found {
		return command{}, "", false
	}
	return best, strings.TrimSpace(line[len(best.name):]), true
}

// presentError converts recognized error kinds to user-facing sentences.
// It reports false for anything that should end the session.
func presentError(err error) (string, bool) {
	switch {
	case errors.Is(err, book.ErrNotFound):
		return "The contact does not exist.", true
	case errors.Is(err, book.ErrExists):
		return "That contact already exists.", true
	case errors.Is(err, book.ErrPhoneNotFound):
		return "The old phone number does not exist.", true
	case errors.Is(err, book.ErrDuplicatePhone):
		return "That phone number is already on record.", true
	case errors.Is(err, book.ErrPageSize):
		return "Page size must be a positive number.", true
	case errors.Is(err, field.ErrInvalid):
		return "The value you provided is not valid.", true
	case errors.Is(err, ErrMissingArgs):
		return "Not enough arguments for that command.", true
	case errors.Is(err, store.ErrFileNotFound):
		return "The file does not exist.", true
	}
	return "", false
}

// splitArgs splits an argument string into fields, requiring at least min.
func splitArgs(args string, min int) ([]string, error) {
	fields := strings.Fields(args)
	if len(fields) < min {
		return nil, fmt.Errorf("%w: want at least %d, got %d", ErrMissingArgs, min, len(fields))
	}
	return fields, nil
}

func (s *Session) add(args string) (string, error) {
	fields, err := splitArgs(args, 2)
	if err != nil {
		return "", err
	}
	name, phone := fields[0], fields[1]

	rec := book.NewRecord(name)
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}

	warning := ""
	if len(fields) > 2 {
		text := strings.Join(fields[2:], " ")
		bd, err := field.ParseBirthday(text)
		if err != nil {
			// Unparseable birthday text does not block the add.
			warning = fmt.Sprintf(" (birthday %q not recognized, skipped)", text)
		} else {
			rec.SetBirthday(bd)
		}
	}

	if err := s.book.Add(rec); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s added%s", name, warning), nil
}

func (s *Session) addPhone(args string) (string, error) {
	fields, err := splitArgs(args, 2)
	if err != nil {
		return "", err
	}
	rec, err := s.book.Find(fields[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddPhone(fields[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number added for %s", fields[0]), nil
}

func (s *Session) editPhone(args string) (string, error) {
	fields, err := splitArgs(args, 3)
	if err != nil {
		return "", err
	}
	rec, err := s.book.Find(fields[0])
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(fields[1], fields[2]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number for %s changed", fields[0]), nil
}

func (s *Session) setBirthday(args string) (string, error) {
	fields, err := splitArgs(args, 2)
	if err != nil {
		return "", err
	}
	rec, err := s.book.Find(fields[0])
	if err != nil {
		return "", err
	}
	bd, err := field.ParseBirthday(strings.Join(fields[1:], " "))
	if err != nil {
		return "", err
	}
	rec.SetBirthday(bd)
	return fmt.Sprintf("Birthday for %s set to %s", fields[0], bd), nil
}

func (s *Session) daysToBirthday(args string) (string, error) {
	fields, err := splitArgs(args, 1)
	if err != nil {
		return "", err
	}
	rec, err := s.book.Find(fields[0])
	if err != nil {
		return "", err
	}
	days, ok := rec.DaysToBirthday(s.now())
	if !ok {
		return fmt.Sprintf("%s has no birthday on file", fields[0]), nil
	}
	return fmt.Sprintf("%d day(s) until %s's birthday", days, fields[0]), nil
}

func (s *Session) delete(args string) (string, error) {
	fields, err := splitArgs(args, 1)
	if err != nil {
		return "", err
	}
	if err := s.book.Delete(fields[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s deleted", fields[0]), nil
}

func (s *Session) find(args string) (string, error) {
	fields, err := splitArgs(args, 1)
	if err != nil {
		return "", err
	}
	rec, err := s.book.Find(fields[0])
	if err != nil {
		return "", err
	}
	return rec.String(), nil
}

func (s *Session) search(args string) (string, error) {
	matches := s.book.Search(strings.TrimSpace(args))
	if len(matches) == 0 {
		return "Nothing found.", nil
	}
	return formatEntries(matches), nil
}

func (s *Session) showAll(args string) (string, error) {
	size := s.pageSize
	if trimmed := strings.TrimSpace(args); trimmed != "" {
		n, err := parsePositiveInt(trimmed)
		if err != nil {
			return "", err
		}
		size = n
	}

	pager, err := s.book.Pager(size)
	if err != nil {
		return "", err
	}

	page, ok := pager.Next()
	if !ok {
		s.pager = nil
		return "No more records.", nil
	}
	s.pager = pager
	return formatEntries(page), nil
}

func (s *Session) nextPage(args string) (string, error) {
	if s.pager == nil {
		return "Nothing to page through. Run show_all first.", nil
	}
	page, ok := s.pager.Next()
	if !ok {
		s.pager = nil
		return "No more records.", nil
	}
	return formatEntries(page), nil
}

func (s *Session) save(args string) (string, error) {
	path := strings.TrimSpace(args)
	if path == "" {
		path = s.store.Path()
	}
	if err := s.store.SaveTo(path, s.book); err != nil {
		return "", err
	}
	return fmt.Sprintf("Data saved to %s", path), nil
}

func (s *Session) load(args string) (string, error) {
	path := strings.TrimSpace(args)
	if path == "" {
		path = s.store.Path()
	}
	loaded, found, err := s.store.LoadFrom(path)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: %s", store.ErrFileNotFound, path)
	}
	s.book = loaded
	s.pager = nil
	return fmt.Sprintf("Loaded %d contact(s) from %s", loaded.Len(), path), nil
}

func (s *Session) goodBye(args string) (string, error) {
	if err := s.store.Save(s.book); err != nil {
		return "", err
	}
	return "Good bye!", nil
}

// Book returns the session's current book. The load command replaces it,
// so callers must not cache the pointer passed to New across Run.
func (s *Session) Book() *book.Book { return s.book }

// formatEntries renders (name, phones) pairs one per line.
func formatEntries(entries []book.Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%s: %s", e.Name, strings.Join(e.Phones, "; "))
	}
	return strings.Join(lines, "\n")
}

// parsePositiveInt parses a page size argument, tagging failures as
// invalid-value so the loop presents them instead of ending the session.
func parsePositiveInt(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", field.ErrInvalid, s)
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, nil
}
