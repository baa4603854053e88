// Package store holds the in-memory, ordered todo list.
//
// A Store is owned by a single control goroutine (the command shell or the
// TUI event loop). It does no locking.
package store

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/todolist/internal/model"
)

// ErrIndexOutOfRange is matched by every IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports an index outside [0, Count).
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: have %d, got %d", e.Count, e.Index)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// Codec loads and saves a whole todo list at a path.
type Codec interface {
	Load(path string) ([]model.Todo, error)
	Save(path string, todos []model.Todo) error
}

// Store is an ordered todo list with dense 0-based indices.
type Store struct {
	todos []model.Todo
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Add appends a todo to the end of the list.
func (s *Store) Add(t model.Todo) {
	s.todos = append(s.todos, t)
}

// Get returns a copy of the todo at index.
func (s *Store) Get(index int) (model.Todo, error) {
	if err := s.check(index); err != nil {
		return model.Todo{}, err
	}
	return s.todos[index], nil
}

// Update replaces the todo at index, keeping its position.
func (s *Store) Update(index int, t model.Todo) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.todos[index] = t
	return nil
}

// ToggleCompleted flips the completion flag at index.
func (s *Store) ToggleCompleted(index int) error {
	t, err := s.Get(index)
	if err != nil {
		return err
	}
	t.Completed = !t.Completed
	return s.Update(index, t)
}

// Delete removes the todo at index; later entries move down by one.
func (s *Store) Delete(index int) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.todos = append(s.todos[:index], s.todos[index+1:]...)
	return nil
}

// Count returns the number of todos.
func (s *Store) Count() int { return len(s.todos) }

// Clear empties the store.
func (s *Store) Clear() { s.todos = nil }

// All returns a copy of the list in order.
func (s *Store) All() []model.Todo {
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// ReplaceAll swaps in a copy of todos. Callers load first and swap only on
// success, so a failed load never leaves a partial list behind.
func (s *Store) ReplaceAll(todos []model.Todo) {
	next := make([]model.Todo, len(todos))
	copy(next, todos)
	s.todos = next
}

// Stats counts done and pending todos.
func (s *Store) Stats() (done, pending int) {
	for _, t := range s.todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s *Store) check(index int) error {
	if index < 0 || index >= len(s.todos) {
		return &IndexError{Index: index, Count: len(s.todos)}
	}
	return nil
}
