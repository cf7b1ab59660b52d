package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// palette is the colour set for status output.
type palette struct {
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

func defaultPalette() palette {
	return palette{
		Accent:  lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

// styles holds the lipgloss styles used by the commands.
// The zero value renders plain text.
type styles struct {
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// newStyles returns styles for w. Colour is used only when w is a terminal.
func newStyles(w io.Writer) styles {
	if !isTerminal(w) {
		return plainStyles()
	}

	r := lipgloss.NewRenderer(w)
	p := defaultPalette()
	return styles{
		Heading: r.NewStyle().Bold(true).Foreground(p.Accent),
		Muted:   r.NewStyle().Foreground(p.Muted),
		Success: r.NewStyle().Bold(true).Foreground(p.Success),
		Warning: r.NewStyle().Foreground(p.Warning),
		Error:   r.NewStyle().Foreground(p.Error),
	}
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{
		Heading: plain,
		Muted:   plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
