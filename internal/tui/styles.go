package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Paginator dots.
const (
	activeDot   = "●"
	inactiveDot = "○"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	nameStyle = lipgloss.NewStyle().Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
)

// Birthday badge colors: due within a week = orange, within a month =
// yellow, otherwise gray.
var (
	badgeSoonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "208", Dark: "208"})
	badgeNearStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})
	badgeFarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
)

// BirthdayBadge returns a styled label like "01-02-1990 (in 12d)", colored
// by how soon the birthday falls. A negative days value renders the date
// without a countdown.
func BirthdayBadge(date string, days int) string {
	if days < 0 {
		return badgeFarStyle.Render(date)
	}
	label := fmt.Sprintf("%s (in %dd)", date, days)
	if days == 0 {
		label = fmt.Sprintf("%s (today!)", date)
	}
	switch {
	case days <= 7:
		return badgeSoonStyle.Render(label)
	case days <= 31:
		return badgeNearStyle.Render(label)
	default:
		return badgeFarStyle.Render(label)
	}
}
