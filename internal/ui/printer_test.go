package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/todolist/internal/model"
)

var sample = []model.Todo{
	{Completed: true, Content: "Buy milk"},
	{Content: "Call Sam"},
}

func TestListPlain(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, "classic", false).List(sample)

	out := buf.String()
	assert.Contains(t, out, " 1: [X] >> Buy milk")
	assert.Contains(t, out, " 2: [ ] >> Call Sam")
	assert.Contains(t, out, "Total 2")
	assert.Contains(t, out, " 50%")
	assert.NotContains(t, out, "\x1b[", "non-terminal output must be plain")
	assert.Less(t, strings.Index(out, "Buy milk"), strings.Index(out, "Call Sam"))
}

func TestListGroupedKeepsNumbers(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, "mono", true).List(sample)

	out := buf.String()
	pending := strings.Index(out, "Pending")
	done := strings.Index(out, "Done")
	assert.True(t, pending >= 0 && done > pending)
	assert.Greater(t, strings.Index(out, " 1: [X] >> Buy milk"), done)
	assert.Less(t, strings.Index(out, " 2: [ ] >> Call Sam"), done)
	assert.Contains(t, out, "+", "mono uses an ASCII border")
}

func TestListEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, "neon", false).List(nil)
	assert.Contains(t, buf.String(), "(none)")
	assert.Contains(t, buf.String(), "Total 0")
}

func TestCommandsAndStatus(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, "mono", false)
	p.Commands([]Command{{Key: "q", Help: "quit"}, {Key: "n", Help: "create new todo"}})
	p.OK("saved")
	p.Fail("boom")
	p.Hint("psst")

	assert.Equal(t, "- Commands:\n q: quit\n n: create new todo\nok: saved\nerror: boom\npsst\n", buf.String())
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
}

func TestUnknownThemeFallsBack(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "classic", NewPrinter(&buf, "plaid", false).Theme().Name)
}
