package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the renderer. When the output is
// not a terminal, every style is a no-op so piped output stays free of ANSI
// escape codes.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns the style set for the given TTY state.
func NewStyles(isTTY bool) *Styles {
	if !isTTY {
		plain := lipgloss.NewStyle()
		return &Styles{
			Header:  plain,
			Success: plain,
			Error:   plain,
			Warning: plain,
			Info:    plain,
			Muted:   plain,
		}
	}
	return &Styles{
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}
