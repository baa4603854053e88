package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/ui"
)

// ErrInvalidInput is returned when the user keeps typing something that is
// not a number, or nothing at all, where a value is required.
var ErrInvalidInput = errors.New("invalid input")

// maxAttempts bounds re-prompting for a single value.
const maxAttempts = 3

var commands = []ui.Command{
	{Key: "q", Help: "quit"},
	{Key: "e", Help: "edit a todo"},
	{Key: "c", Help: "toggle completeness of a todo"},
	{Key: "d", Help: "delete a todo"},
	{Key: "n", Help: "create new todo"},
	{Key: "r", Help: "reload list of todos"},
	{Key: "s", Help: "save todo list to disk"},
	{Key: "x", Help: "export todo list as JSON"},
	{Key: "h", Help: "show help"},
}

// ShellOptions wires the shell to its collaborators.
type ShellOptions struct {
	Path    string
	Codec   store.Codec
	Export  store.Codec // nil uses jsonstore
	Input   LineInput
	Printer *ui.Printer
	Logger  *log.Logger
}

// Shell is the single-letter command loop over one store.
type Shell struct {
	store   *store.Store
	path    string
	codec   store.Codec
	export  store.Codec
	in      LineInput
	out     *ui.Printer
	log     *log.Logger
	dirty   bool
	quitArm bool
}

// NewShell returns a shell driving st.
func NewShell(st *store.Store, opts ShellOptions) *Shell {
	sh := &Shell{
		store:  st,
		path:   opts.Path,
		codec:  opts.Codec,
		export: opts.Export,
		in:     opts.Input,
		out:    opts.Printer,
		log:    opts.Logger,
	}
	if sh.export == nil {
		sh.export = jsonstore.Codec{}
	}
	if sh.log == nil {
		sh.log = logging.Discard()
	}
	return sh
}

// Load replaces the store with the list file. On error the store is left
// as it was.
func (sh *Shell) Load() error {
	todos, err := sh.codec.Load(sh.path)
	if err != nil {
		return fmt.Errorf("load %s: %w", sh.path, err)
	}
	sh.store.ReplaceAll(todos)
	sh.dirty = false
	return nil
}

// Save writes the store to the list file.
func (sh *Shell) Save() error {
	if err := sh.codec.Save(sh.path, sh.store.All()); err != nil {
		return fmt.Errorf("save %s: %w", sh.path, err)
	}
	sh.dirty = false
	return nil
}

// Dirty reports whether the store changed since the last load or save.
func (sh *Shell) Dirty() bool { return sh.dirty }

// Run shows the list and menu, then executes commands until the user quits
// or input ends. Only input failures other than end of input are returned.
func (sh *Shell) Run() error {
	for {
		sh.out.List(sh.store.All())
		sh.out.Commands(commands)

		input, err := sh.in.ReadLine("Choose a command: ")
		if err != nil {
			return endOfInput(err)
		}
		cmd := strings.TrimSpace(input)
		sh.log.Debug("command", "input", cmd)

		if cmd != "q" {
			sh.quitArm = false
		}
		quit, err := sh.dispatch(cmd)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if !errors.Is(err, ErrInvalidInput) {
				return err
			}
		}
		if quit {
			return nil
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// dispatch runs one command. Errors the user can recover from are printed
// here; read failures are returned.
func (sh *Shell) dispatch(cmd string) (quit bool, err error) {
	switch cmd {
	case "":
		return false, nil
	case "q":
		if sh.dirty && !sh.quitArm {
			sh.quitArm = true
			sh.out.Fail("unsaved changes, press q again to quit or s to save")
			return false, nil
		}
		return true, nil
	case "n":
		return false, sh.newTodo()
	case "e":
		return false, sh.editTodo()
	case "c":
		return false, sh.withIndex("Mark which todo as complete? ", sh.store.ToggleCompleted)
	case "d":
		return false, sh.withIndex("Delete which todo? ", sh.store.Delete)
	case "s":
		if err := sh.Save(); err != nil {
			sh.out.Fail(err.Error())
			return false, nil
		}
		sh.out.OK("saved " + sh.path)
	case "r":
		if err := sh.Load(); err != nil {
			sh.out.Fail(err.Error())
			sh.out.Hint("Kept the list in memory unchanged")
			return false, nil
		}
		sh.out.OK("reloaded " + sh.path)
	case "x":
		dst := jsonstore.ExportPath(sh.path)
		if err := sh.export.Save(dst, sh.store.All()); err != nil {
			sh.out.Fail("export " + dst + ": " + err.Error())
			return false, nil
		}
		sh.out.OK("exported " + dst)
	case "h", "?":
		sh.out.Commands(commands)
		sh.out.Hint(fmt.Sprintf("List file: %s. Todos are numbered from 1.", sh.path))
	default:
		sh.out.Fail("Invalid command given, stop being silly!")
	}
	return false, nil
}

func (sh *Shell) newTodo() error {
	content, err := sh.readText("Enter the todo contents: ")
	if err != nil {
		return err
	}
	sh.store.Add(model.Todo{Content: content})
	sh.dirty = true
	return nil
}

func (sh *Shell) editTodo() error {
	n, err := sh.readNumber("Edit which todo? ")
	if err != nil {
		return err
	}
	old, err := sh.store.Get(n - 1)
	if err != nil {
		sh.indexFailed(n)
		return nil
	}
	sh.out.Println(fmt.Sprintf("Editing '%s'", old.Content))
	content, err := sh.readText("Enter new content for this todo: ")
	if err != nil {
		return err
	}
	if err := sh.store.Update(n-1, model.Todo{Completed: old.Completed, Content: content}); err != nil {
		sh.indexFailed(n)
		return nil
	}
	sh.dirty = true
	return nil
}

// withIndex asks for a 1-based todo number and applies op to its index.
func (sh *Shell) withIndex(prompt string, op func(int) error) error {
	n, err := sh.readNumber(prompt)
	if err != nil {
		return err
	}
	if err := op(n - 1); err != nil {
		if errors.Is(err, store.ErrIndexOutOfRange) {
			sh.indexFailed(n)
			return nil
		}
		return err
	}
	sh.dirty = true
	return nil
}

func (sh *Shell) indexFailed(n int) {
	sh.out.Fail(fmt.Sprintf("index out of range: have %d, got %d", sh.store.Count(), n))
	sh.out.Hint("Pick a number from the list above")
}

// readNumber re-prompts until it gets an integer. It does not range-check;
// the store does that.
func (sh *Shell) readNumber(prompt string) (int, error) {
	for i := 0; i < maxAttempts; i++ {
		line, err := sh.in.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		s := strings.TrimSpace(line)
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		if s == "" {
			sh.out.Fail("a todo number is required")
		} else {
			sh.out.Fail("not a number: " + s)
		}
	}
	sh.out.Hint("Back to the menu")
	return 0, ErrInvalidInput
}

func (sh *Shell) readText(prompt string) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		line, err := sh.in.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if s := strings.TrimSpace(line); s != "" {
			return s, nil
		}
		sh.out.Fail("content cannot be empty")
	}
	sh.out.Hint("Back to the menu")
	return "", ErrInvalidInput
}
