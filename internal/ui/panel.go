package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// panel frames lines with the theme border.
func (p *Printer) panel(lines []string) string {
	return p.r.NewStyle().
		Border(p.theme.Border).
		BorderForeground(p.theme.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
