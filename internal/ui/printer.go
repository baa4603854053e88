// Package ui renders the todo list, the command menu and status lines.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
)

// Command is one entry of the command menu.
type Command struct {
	Key, Help string
}

// Printer writes styled output to a single writer. Colors are chosen for
// that writer, so a non-terminal gets plain text.
type Printer struct {
	w     io.Writer
	r     *lipgloss.Renderer
	theme Theme
	group bool
}

// NewPrinter returns a printer for w using the named theme.
func NewPrinter(w io.Writer, theme string, group bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{w: w, r: r, theme: NewTheme(r, theme), group: group}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Theme returns the active theme.
func (p *Printer) Theme() Theme { return p.theme }

// List draws the header, progress bar and every todo with its 1-based number.
func (p *Printer) List(todos []model.Todo) {
	t := p.theme
	done, pending := stats(todos)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(todos),
	)

	lines := []string{header, t.Muted.Render(ProgressBar(done, done+pending, 28)), ""}
	if p.group {
		lines = append(lines, p.groupLines(todos)...)
	} else {
		lines = append(lines, p.flatLines(todos, func(model.Todo) bool { return true })...)
	}
	fmt.Fprintln(p.w, p.panel(lines))
}

// Line formats one todo the way the list shows it.
func (p *Printer) Line(number int, td model.Todo) string {
	marker := td.Marker()
	content := td.Content
	if td.Completed {
		marker = p.theme.Success.Render(marker)
		content = p.theme.Done.Render(content)
	}
	return fmt.Sprintf("%2d: [%s] >> %s", number, marker, content)
}

func (p *Printer) flatLines(todos []model.Todo, keep func(model.Todo) bool) []string {
	var out []string
	for i, td := range todos {
		if keep(td) {
			out = append(out, p.Line(i+1, td))
		}
	}
	if len(out) == 0 {
		return []string{p.theme.Muted.Render("(none)")}
	}
	return out
}

// groupLines keeps each todo's list number so the numbers typed at the
// prompt still match.
func (p *Printer) groupLines(todos []model.Todo) []string {
	lines := []string{p.theme.Accent.Render("Pending")}
	lines = append(lines, p.flatLines(todos, func(t model.Todo) bool { return !t.Completed })...)
	lines = append(lines, "", p.theme.Accent.Render("Done"))
	lines = append(lines, p.flatLines(todos, func(t model.Todo) bool { return t.Completed })...)
	return lines
}

// Commands prints the command menu.
func (p *Printer) Commands(cmds []Command) {
	fmt.Fprintln(p.w, p.theme.Title.Render("- Commands:"))
	for _, c := range cmds {
		fmt.Fprintf(p.w, " %s: %s\n", p.theme.Accent.Render(c.Key), c.Help)
	}
}

// OK prints a success line.
func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.w, p.theme.Success.Render(p.theme.SymOK+" "+msg))
}

// Fail prints a failure line.
func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.w, p.theme.Error.Render(p.theme.SymFail+" "+msg))
}

// Hint prints a muted line.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.w, p.theme.Muted.Render(msg))
}

// Println writes an unstyled line.
func (p *Printer) Println(msg string) {
	fmt.Fprintln(p.w, msg)
}

func stats(todos []model.Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
