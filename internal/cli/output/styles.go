package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used for text output.
// On non-terminals every style is a no-op so output stays plain.
type Styles struct {
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Emphasis      lipgloss.Style
	Success       lipgloss.Style
	Warning       lipgloss.Style
	Error         lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

func newStyles(tty bool) *Styles {
	if !tty || termenv.EnvColorProfile() == termenv.Ascii {
		return &Styles{
			Bold:          lipgloss.NewStyle(),
			Muted:         lipgloss.NewStyle(),
			Emphasis:      lipgloss.NewStyle(),
			Success:       lipgloss.NewStyle(),
			Warning:       lipgloss.NewStyle(),
			Error:         lipgloss.NewStyle(),
			StatusSuccess: lipgloss.NewStyle(),
			StatusFailed:  lipgloss.NewStyle(),
		}
	}
	return &Styles{
		Bold:          lipgloss.NewStyle().Bold(true),
		Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Emphasis:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warning:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		StatusFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}
