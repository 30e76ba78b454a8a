package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/field"
	"github.com/smileynet/rolodex/internal/session"
	"github.com/smileynet/rolodex/internal/store"
	"github.com/smileynet/rolodex/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Session SessionCmd       `cmd:"" default:"1" help:"Run the interactive contact session."`
	Browse  BrowseCmd        `cmd:"" help:"Browse contacts in a full-screen TUI."`
	Add     AddCmd           `cmd:"" help:"Add a contact and save."`
	Search  SearchCmd        `cmd:"" help:"Search contacts by name or phone number."`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bookStore abstracts persistence for testable command wiring.
type bookStore interface {
	Load() (*book.Book, bool, error)
	Save(b *book.Book) error
}

// Compile-time check: FileStore satisfies bookStore.
var _ bookStore = (*store.FileStore)(nil)

// SessionCmd runs the line-oriented interactive session.
type SessionCmd struct {
	Store    string `help:"Contact file path (overrides config)."`
	PageSize int    `help:"Default page size for show_all." default:"0"`
}

// Run builds real dependencies and starts the session on stdin/stdout.
func (s *SessionCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	// Apply CLI flag overrides.
	if s.Store != "" {
		cfg.Storage.Path = s.Store
	}
	if s.PageSize > 0 {
		cfg.Session.PageSize = s.PageSize
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	st := store.NewFileStore(cfg.Storage.Path)
	b, _, err := st.Load()
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	sess := session.New(b, st, session.WithPageSize(cfg.Session.PageSize))
	return sess.Run(os.Stdin, os.Stdout)
}

// BrowseCmd opens the full-screen contact browser.
type BrowseCmd struct {
	Store string `help:"Contact file path (overrides config)."`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds real dependencies and launches the browser TUI.
func (b *BrowseCmd) Run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	if b.Store != "" {
		cfg.Storage.Path = b.Store
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	bk, _, err := store.NewFileStore(cfg.Storage.Path).Load()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	m := tui.NewModel(browseContacts(bk, time.Now()), cfg.Session.PageSize)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return b.run(true, prog)
}

// run executes the tea program, enabling testable wiring.
func (b *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// browseContacts converts book records into browser rows.
func browseContacts(bk *book.Book, now time.Time) []tui.Contact {
	records := bk.Records()
	contacts := make([]tui.Contact, len(records))
	for i, rec := range records {
		c := tui.Contact{
			Name:           rec.Name(),
			Phones:         rec.Phones(),
			DaysToBirthday: -1,
		}
		if bd, ok := rec.Birthday(); ok {
			c.Birthday = bd.Format("02-01-2006")
			if days, ok := rec.DaysToBirthday(now); ok {
				c.DaysToBirthday = days
			}
		}
		contacts[i] = c
	}
	return contacts
}

// AddCmd adds a single contact and saves the book.
type AddCmd struct {
	Name     string `arg:"" help:"Contact name."`
	Phone    string `arg:"" help:"Phone number (10 digits)."`
	Birthday string `arg:"" optional:"" help:"Birthday (DD-MM-YYYY)."`
}

// Run loads the book, adds the contact, and saves.
func (a *AddCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return a.run(os.Stdout, store.NewFileStore(cfg.Storage.Path))
}

// run executes the add against the given store, enabling testable wiring.
func (a *AddCmd) run(w io.Writer, st bookStore) error {
	bk, _, err := st.Load()
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	rec := book.NewRecord(a.Name)
	if err := rec.AddPhone(a.Phone); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if a.Birthday != "" {
		bd, err := field.ParseBirthday(a.Birthday)
		if err != nil {
			return fmt.Errorf("add: %w", err)
		}
		rec.SetBirthday(bd)
	}

	if err := bk.Add(rec); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if err := st.Save(bk); err != nil {
		return fmt.Errorf("add: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Contact %s added\n", a.Name)
	return nil
}

// SearchCmd searches contacts by name or phone substring.
type SearchCmd struct {
	Query string `arg:"" help:"Substring to match against names and numbers."`
}

// Run loads the book and prints one line per match.
func (s *SearchCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	return s.run(os.Stdout, store.NewFileStore(cfg.Storage.Path))
}

// run executes the search against the given store, enabling testable wiring.
func (s *SearchCmd) run(w io.Writer, st bookStore) error {
	bk, _, err := st.Load()
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	matches := bk.Search(s.Query)
	if len(matches) == 0 {
		_, _ = fmt.Fprintln(w, "Nothing found.")
		return nil
	}
	for _, e := range matches {
		_, _ = fmt.Fprintf(w, "%s: %s\n", e.Name, strings.Join(e.Phones, "; "))
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
