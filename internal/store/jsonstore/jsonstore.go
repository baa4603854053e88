package jsonstore

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
)

// JSON-backed storage. Single file, human-readable, portable.
// Used for .json list files and for exporting a copy of the line format.

// Ext marks a path as JSON.
const Ext = ".json"

// Codec is the store.Codec for JSON arrays of todos.
type Codec struct{}

var _ store.Codec = Codec{}

// ExportPath returns the JSON export location for a list file. It never
// returns listPath itself.
func ExportPath(listPath string) string {
	base := strings.TrimSuffix(listPath, filepath.Ext(listPath))
	if IsJSON(listPath) {
		return base + ".export" + Ext
	}
	return base + Ext
}

// IsJSON reports whether path should be handled by this codec.
func IsJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// Load creates path holding an empty array if missing, then decodes it.
func (Codec) Load(path string) ([]model.Todo, error) {
	f, err := store.OpenOrCreate(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	todos := []model.Todo{}
	if len(strings.TrimSpace(string(b))) == 0 {
		return todos, nil
	}
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return todos, nil
}

// Save replaces path with the indented JSON array.
func (Codec) Save(path string, todos []model.Todo) error {
	if todos == nil {
		todos = []model.Todo{}
	}
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return store.WriteFile(path, func(w io.Writer) error {
		if _, err := w.Write(b); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	})
}
