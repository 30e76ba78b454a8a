// Package tui implements the full-screen contact browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Contact is one row in the browser. DaysToBirthday is negative when no
// birthday is set.
type Contact struct {
	Name           string
	Phones         []string
	Birthday       string
	DaysToBirthday int
}

// Model is the Bubble Tea model for browsing contacts: a filter input, a
// page cursor, and a styled list. It performs no I/O of its own.
type Model struct {
	contacts []Contact
	visible  []Contact
	filter   textinput.Model
	pager    paginator.Model

	filtering bool
	quitting  bool
	width     int // Window size, kept for future responsive layout.
	height    int
}

// NewModel creates a browser over the given contacts with pages of pageSize.
func NewModel(contacts []Contact, pageSize int) Model {
	if pageSize <= 0 {
		pageSize = 5
	}

	ti := textinput.New()
	ti.Placeholder = "name or number"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = pageSize
	p.ActiveDot = activeDot
	p.InactiveDot = inactiveDot
	p.SetTotalPages(max(len(contacts), 1))

	return Model{
		contacts: contacts,
		visible:  contacts,
		filter:   ti,
		pager:    p,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

// updateFiltering handles keys while the filter input has focus.
func (m Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// updateBrowsing handles keys while the list has focus.
func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "/":
		m.filtering = true
		return m, m.filter.Focus()
	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	return m, cmd
}

// applyFilter recomputes the visible contacts from the filter text and
// resets the cursor to the first page.
func (m *Model) applyFilter() {
	query := m.filter.Value()
	if query == "" {
		m.visible = m.contacts
	} else {
		var matched []Contact
		for _, c := range m.contacts {
			if contactMatches(c, query) {
				matched = append(matched, c)
			}
		}
		m.visible = matched
	}
	m.pager.Page = 0
	m.pager.SetTotalPages(max(len(m.visible), 1))
}

// contactMatches reports whether the query is a substring of the contact
// name or any phone number. Birthdays are not searched.
func contactMatches(c Contact, query string) bool {
	if strings.Contains(c.Name, query) {
		return true
	}
	for _, p := range c.Phones {
		if strings.Contains(p, query) {
			return true
		}
	}
	return false
}

// View renders the contact list with filter, pager, and help lines.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("rolodex"))
	sb.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		sb.WriteString(m.filter.View())
		sb.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		sb.WriteString(dimStyle.Render("No contacts."))
		sb.WriteString("\n")
	} else {
		start, end := m.pager.GetSliceBounds(len(m.visible))
		for _, c := range m.visible[start:end] {
			sb.WriteString(renderContact(c))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.pager.View())
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("left/right page · / filter · esc clear · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// renderContact renders one contact row.
func renderContact(c Contact) string {
	line := fmt.Sprintf("  %s  %s", nameStyle.Render(c.Name), dimStyle.Render(strings.Join(c.Phones, " ")))
	if c.Birthday != "" {
		line += "  " + BirthdayBadge(c.Birthday, c.DaysToBirthday)
	}
	return line
}

// Visible returns the currently filtered contacts, for tests.
func (m Model) Visible() []Contact { return m.visible }
