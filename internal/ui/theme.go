package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done                                          lipgloss.Style
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor
	SymDone, SymPending, SymOK, SymFail           string
}

// NewTheme builds the named theme on r. Unknown names get "classic".
func NewTheme(r *lipgloss.Renderer, name string) Theme {
	s := r.NewStyle
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       s().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       s().Faint(true),
			Accent:      s().Foreground(lipgloss.Color("14")),
			Success:     s().Foreground(lipgloss.Color("10")),
			Error:       s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     s().Foreground(lipgloss.Color("11")),
			Done:        s().Faint(true).Strikethrough(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			SymDone:     "◼",
			SymPending:  "◻",
			SymOK:       "✔",
			SymFail:     "✖",
		}
	case "mono":
		return Theme{
			Name:        "mono",
			Title:       s(),
			Muted:       s(),
			Accent:      s(),
			Success:     s(),
			Error:       s(),
			Pending:     s(),
			Done:        s(),
			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},
			SymDone:     "x",
			SymPending:  "-",
			SymOK:       "ok:",
			SymFail:     "error:",
		}
	default:
		return Theme{
			Name:        "classic",
			Title:       s().Bold(true),
			Muted:       s().Faint(true),
			Accent:      s().Foreground(lipgloss.Color("12")),
			Success:     s().Foreground(lipgloss.Color("42")),
			Error:       s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     s().Foreground(lipgloss.Color("214")),
			Done:        s().Faint(true).Strikethrough(true),
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.Color("8"),
			SymDone:     "✔",
			SymPending:  "•",
			SymOK:       "✔",
			SymFail:     "✖",
		}
	}
}
