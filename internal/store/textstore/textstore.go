package textstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
)

// Line-oriented storage: one todo per line, "<marker>:<content>\n" where the
// marker is "X" for done and " " for pending. Nothing is escaped, so content
// with a newline will not survive a round trip.

// DefaultFileName is used when no path is configured.
const DefaultFileName = "todos.list"

const (
	separator  = ":"
	doneMarker = "X"
	maxLine    = 1 << 20
)

// ErrMalformedLine is matched by every MalformedLineError.
var ErrMalformedLine = errors.New("malformed line")

// MalformedLineError describes a stored line with no separator.
// Such lines are skipped; decoding continues with the next one.
type MalformedLineError struct {
	Line int // 1-based
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: missing %q separator: %q", e.Line, separator, e.Text)
}

func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedLine }

// Decode reads todos in file order. Lines without a separator are skipped
// and returned as malformed; err is only set for read failures.
func Decode(r io.Reader) (todos []model.Todo, malformed []*MalformedLineError, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	todos = []model.Todo{}
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		marker, content, ok := strings.Cut(line, separator)
		if !ok {
			malformed = append(malformed, &MalformedLineError{Line: n, Text: line})
			continue
		}
		todos = append(todos, model.Todo{
			Completed: marker == doneMarker,
			Content:   content,
		})
	}
	if serr := sc.Err(); serr != nil {
		return nil, malformed, fmt.Errorf("read file: %w", serr)
	}
	return todos, malformed, nil
}

// Encode writes one newline-terminated line per todo.
func Encode(w io.Writer, todos []model.Todo) error {
	for _, t := range todos {
		if _, err := io.WriteString(w, t.Marker()+separator+t.Content+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Codec is the store.Codec for the line format.
// A nil Logger discards messages.
type Codec struct {
	Logger *log.Logger
}

var _ store.Codec = (*Codec)(nil)

// New returns a codec that warns about skipped lines on logger.
func New(logger *log.Logger) *Codec {
	return &Codec{Logger: logger}
}

// Load creates path if missing, then decodes it.
func (c *Codec) Load(path string) ([]model.Todo, error) {
	f, err := store.OpenOrCreate(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	todos, malformed, err := Decode(f)
	if err != nil {
		return nil, err
	}
	lg := c.logger()
	for _, m := range malformed {
		lg.Warn("skipping malformed line", "path", path, "line", m.Line, "text", m.Text)
	}
	lg.Debug("loaded todos", "path", path, "count", len(todos), "skipped", len(malformed))
	return todos, nil
}

// Save replaces path with the encoded todos.
func (c *Codec) Save(path string, todos []model.Todo) error {
	if err := store.WriteFile(path, func(w io.Writer) error {
		return Encode(w, todos)
	}); err != nil {
		return err
	}
	c.logger().Debug("saved todos", "path", path, "count", len(todos))
	return nil
}

func (c *Codec) logger() *log.Logger {
	if c == nil || c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}
