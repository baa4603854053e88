// Package tui is the full-screen list view. It edits the same store the
// command shell does and persists through the same codec.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Options tune the program.
type Options struct {
	Theme string
	In    io.Reader
	Out   io.Writer
}

// listItem adapts a todo to bubbles/list.Item.
type listItem struct {
	todo model.Todo
}

func (i listItem) Title() string       { return i.todo.Content }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Content }

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type modelTUI struct {
	store *store.Store
	codec store.Codec
	path  string
	theme ui.Theme

	list    list.Model
	ti      textinput.Model
	mode    mode
	editIdx int
	changed bool
	status  string
	errMsg  string

	// single-level undo of the last delete
	undo []model.Todo
}

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	theme ui.Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	box := d.theme.Muted.Render("[ ]")
	text := it.todo.Content
	if it.todo.Completed {
		box = d.theme.Success.Render("[X]")
		text = d.theme.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Accent.Render("> ")
	}
	fmt.Fprintf(w, "%s%2d: %s %s", prefix, index+1, box, text)
}

var (
	addBind    = key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add"))
	editBind   = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind = key.NewBinding(key.WithKeys(" ", "c"), key.WithHelp("space", "toggle"))
	deleteBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoBind   = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	saveBind   = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save"))
	reloadBind = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
)

func newModel(st *store.Store, codec store.Codec, path, theme string) modelTUI {
	th := ui.NewTheme(lipgloss.DefaultRenderer(), theme)

	l := list.New(nil, itemDelegate{theme: th}, 80, 20)
	l.Title = "Todos"
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	// list positions must stay equal to store indices
	l.SetFilteringEnabled(false)
	l.Styles.Title = th.Title
	l.SetStatusBarItemName("todo", "todos")
	short := func() []key.Binding {
		return []key.Binding{toggleBind, addBind, editBind, deleteBind, undoBind, saveBind, reloadBind}
	}
	l.AdditionalShortHelpKeys = short
	l.AdditionalFullHelpKeys = short

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := modelTUI{store: st, codec: codec, path: path, theme: th, list: l, ti: ti}
	m.refresh(0)
	return m
}

// refresh rebuilds the list from the store and selects sel (clamped).
func (m *modelTUI) refresh(sel int) {
	todos := m.store.All()
	items := make([]list.Item, len(todos))
	for i, t := range todos {
		items[i] = listItem{todo: t}
	}
	m.list.SetItems(items)
	if sel >= len(items) {
		sel = len(items) - 1
	}
	if sel >= 0 {
		m.list.Select(sel)
	}
	done, pending := m.store.Stats()
	m.list.Title = fmt.Sprintf("Todos  %s %d  %s %d  %s",
		m.theme.SymDone, done, m.theme.SymPending, pending, ui.ProgressBar(done, done+pending, 12))
}

// Run loads path into st and runs the program. Changes are saved on quit.
func Run(st *store.Store, codec store.Codec, path string, opts Options) error {
	todos, err := codec.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	st.ReplaceAll(todos)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.In != nil {
		progOpts = append(progOpts, tea.WithInput(opts.In))
	}
	if opts.Out != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Out))
	}
	final, err := tea.NewProgram(newModel(st, codec, path, opts.Theme), progOpts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(modelTUI); ok && fm.changed {
		if err := codec.Save(path, st.All()); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	return nil
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(ws.Width-4, ws.Height-6)
		return m, nil
	}
	if m.mode != modeList {
		return m.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	m.status, m.errMsg = "", ""
	i := m.list.Index()

	switch {
	case km.String() == "q" || km.String() == "esc" || km.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(km, toggleBind):
		if err := m.store.ToggleCompleted(i); err == nil {
			m.changed = true
			m.refresh(i)
		}
		return m, nil
	case key.Matches(km, deleteBind):
		before := m.store.All()
		if err := m.store.Delete(i); err == nil {
			m.undo = before
			m.changed = true
			m.refresh(i)
		}
		return m, nil
	case key.Matches(km, undoBind):
		if m.undo != nil {
			m.store.ReplaceAll(m.undo)
			m.undo = nil
			m.changed = true
			m.refresh(i)
		}
		return m, nil
	case key.Matches(km, addBind):
		m.mode = modeAdd
		m.ti.SetValue("")
		m.ti.Placeholder = "New todo..."
		m.ti.Focus()
		return m, textinput.Blink
	case key.Matches(km, editBind):
		t, err := m.store.Get(i)
		if err != nil {
			return m, nil
		}
		m.mode = modeEdit
		m.editIdx = i
		m.ti.SetValue(t.Content)
		m.ti.CursorEnd()
		m.ti.Placeholder = "Edit todo..."
		m.ti.Focus()
		return m, textinput.Blink
	case key.Matches(km, saveBind):
		if err := m.codec.Save(m.path, m.store.All()); err != nil {
			m.errMsg = "save: " + err.Error()
		} else {
			m.changed = false
			m.status = "saved " + m.path
		}
		return m, nil
	case key.Matches(km, reloadBind):
		todos, err := m.codec.Load(m.path)
		if err != nil {
			m.errMsg = "reload: " + err.Error()
			return m, nil
		}
		m.store.ReplaceAll(todos)
		m.undo = nil
		m.changed = false
		m.status = "reloaded " + m.path
		m.refresh(i)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			content := strings.TrimSpace(m.ti.Value())
			if content == "" {
				m.errMsg = "Content cannot be empty"
				return m, nil
			}
			if m.mode == modeAdd {
				m.store.Add(model.Todo{Content: content})
				m.changed = true
				m.refresh(m.store.Count() - 1)
			} else if old, err := m.store.Get(m.editIdx); err == nil {
				old.Content = content
				_ = m.store.Update(m.editIdx, old)
				m.changed = true
				m.refresh(m.editIdx)
			}
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *modelTUI) closeInput() {
	m.mode = modeList
	m.errMsg = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m modelTUI) View() string {
	content := m.list.View()
	if m.mode != modeList {
		title := "Add new todo"
		if m.mode == modeEdit {
			title = "Edit todo"
		}
		if m.errMsg != "" {
			title += "  " + m.theme.Error.Render(m.errMsg)
		}
		bar := lipgloss.NewStyle().Border(m.theme.Border).BorderForeground(m.theme.BorderColor).Padding(0, 1)
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	} else if m.errMsg != "" {
		content += "\n" + m.theme.Error.Render(m.theme.SymFail+" "+m.errMsg)
	} else if m.status != "" {
		content += "\n" + m.theme.Success.Render(m.theme.SymOK+" "+m.status)
	}
	return lipgloss.NewStyle().
		Border(m.theme.Border).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1).
		Render(content)
}
