package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/oukeidos/bunkai/internal/analysis"
)

// DisableColor forces plain ASCII output regardless of terminal support.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var (
	subjectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#569cd6")).
			Bold(true)

	verbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06c75")).
			Bold(true)

	objectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98c379")).
			Bold(true)

	complementStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d19a66")).
			Bold(true)

	modifierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true).
			Underline(true)

	plainStyle = lipgloss.NewStyle()

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06c75")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#e06c75")).
			Padding(0, 1)
)

// styleFor maps a role to its display style. Unknown roles render plain, the
// same as "none", so an off-contract response still displays.
func styleFor(role analysis.Role) lipgloss.Style {
	switch role {
	case analysis.RoleSubject:
		return subjectStyle
	case analysis.RoleVerb:
		return verbStyle
	case analysis.RoleObject:
		return objectStyle
	case analysis.RoleComplement:
		return complementStyle
	case analysis.RoleModifier:
		return modifierStyle
	default:
		return plainStyle
	}
}
