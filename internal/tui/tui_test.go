package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/textstore"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m modelTUI, msgs ...tea.Msg) modelTUI {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(modelTUI)
		require.True(t, ok)
	}
	return m
}

func setup(t *testing.T, contents string) (modelTUI, *store.Store, string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "todos.list")
	require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))
	codec := textstore.New(nil)
	todos, err := codec.Load(p)
	require.NoError(t, err)
	st := store.New()
	st.ReplaceAll(todos)
	return newModel(st, codec, p, "mono"), st, p
}

func TestToggleDeleteUndo(t *testing.T) {
	m, st, _ := setup(t, "X:Buy milk\n :Call Sam\n")

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	got, _ := st.Get(0)
	assert.False(t, got.Completed)
	assert.True(t, m.changed)

	m = press(t, m, keyRunes("d"))
	require.Equal(t, 1, st.Count())
	got, _ = st.Get(0)
	assert.Equal(t, "Call Sam", got.Content)
	assert.Len(t, m.list.Items(), 1)

	m = press(t, m, keyRunes("u"))
	assert.Equal(t, []model.Todo{{Content: "Buy milk"}, {Content: "Call Sam"}}, st.All())
	assert.Len(t, m.list.Items(), 2)
}

func TestAddAndEdit(t *testing.T) {
	m, st, _ := setup(t, " :first\n")

	m = press(t, m, keyRunes("a"), keyRunes("second"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 2, st.Count())
	got, _ := st.Get(1)
	assert.Equal(t, model.Todo{Content: "second"}, got)
	assert.Equal(t, 1, m.list.Index())
	assert.Equal(t, modeList, m.mode)

	m = press(t, m, keyRunes("e"), tea.KeyMsg{Type: tea.KeyBackspace}, keyRunes("D"), tea.KeyMsg{Type: tea.KeyEnter})
	got, _ = st.Get(1)
	assert.Equal(t, "seconD", got.Content)
}

func TestAddRejectsEmpty(t *testing.T) {
	m, st, _ := setup(t, "")

	m = press(t, m, keyRunes("a"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, st.Count())
	assert.Equal(t, modeAdd, m.mode)
	assert.NotEmpty(t, m.errMsg)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
}

func TestSaveAndReload(t *testing.T) {
	m, st, p := setup(t, "X:Buy milk\n :Call Sam\n")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, keyRunes("c"), keyRunes("s"))
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "X:Buy milk\nX:Call Sam\n", string(b))
	assert.False(t, m.changed)
	assert.Contains(t, m.status, "saved")

	require.NoError(t, os.WriteFile(p, []byte(" :only\n"), 0o644))
	m = press(t, m, keyRunes("r"))
	assert.Equal(t, []model.Todo{{Content: "only"}}, st.All())
	assert.Len(t, m.list.Items(), 1)
}

type failingCodec struct{}

func (failingCodec) Load(string) ([]model.Todo, error) { return nil, errors.New("disk gone") }
func (failingCodec) Save(string, []model.Todo) error   { return errors.New("disk gone") }

func TestReloadFailureKeepsStore(t *testing.T) {
	st := store.New()
	st.Add(model.Todo{Content: "keep"})
	m := newModel(st, failingCodec{}, "todos.list", "classic")

	m = press(t, m, keyRunes("r"))
	assert.Equal(t, []model.Todo{{Content: "keep"}}, st.All())
	assert.Contains(t, m.errMsg, "disk gone")

	m = press(t, m, keyRunes("s"))
	assert.Contains(t, m.errMsg, "save")
	assert.Contains(t, m.View(), "disk gone")
}

func TestKeysOnEmptyList(t *testing.T) {
	m, st, _ := setup(t, "")
	m = press(t, m, keyRunes("d"), keyRunes("c"), keyRunes("e"))
	assert.Equal(t, 0, st.Count())
	assert.Equal(t, modeList, m.mode)
	assert.False(t, m.changed)
}

func TestQuit(t *testing.T) {
	m, _, _ := setup(t, "")
	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
