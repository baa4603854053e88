package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/store/textstore"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Streams are the process input and outputs.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process stdio.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Run parses args, loads the list and runs the shell or the TUI.
// It returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, st Streams) int {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(st.Err)
	fs.Usage = func() { PrintHelp(st.Err, fs) }

	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		out := ui.NewPrinter(st.Err, config.DefaultTheme, false)
		out.Fail(err.Error())
		return 2
	}

	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(st.Err, opts)
	if cfg.ConfigFile != "" {
		logger.Debug("using config file", "path", cfg.ConfigFile)
	}

	codec := codecFor(cfg.File, logger)
	todos := store.New()
	errOut := ui.NewPrinter(st.Err, cfg.Theme, false)

	if cfg.TUI {
		if err := tui.Run(todos, codec, cfg.File, tui.Options{Theme: cfg.Theme, In: st.In, Out: st.Out}); err != nil {
			errOut.Fail("tui: " + err.Error())
			return 1
		}
		return 0
	}

	in, err := newLineInput(st.In, st.Out, cfg.HistoryFile)
	if err != nil {
		logger.Warn("readline unavailable, using plain input", "err", err)
	}
	defer in.Close()

	sh := NewShell(todos, ShellOptions{
		Path:    cfg.File,
		Codec:   codec,
		Input:   in,
		Printer: ui.NewPrinter(st.Out, cfg.Theme, cfg.Group),
		Logger:  logger,
	})
	if err := sh.Load(); err != nil {
		errOut.Fail(err.Error())
		return 1
	}
	if err := sh.Run(); err != nil {
		errOut.Fail("input: " + err.Error())
		return 1
	}
	return 0
}

// codecFor picks the storage format from the file extension.
func codecFor(path string, logger *log.Logger) store.Codec {
	if jsonstore.IsJSON(path) {
		return jsonstore.Codec{}
	}
	return textstore.New(logger)
}

// PrintHelp prints usage and the flag defaults.
func PrintHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `todo - a tiny interactive todo list

Usage:
  todo [flags]

Commands inside the loop:
  n  create new todo          e  edit a todo
  c  toggle completeness      d  delete a todo
  s  save todo list to disk   r  reload list of todos
  x  export as JSON           q  quit

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
