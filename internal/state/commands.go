// Package state holds the todo list transition function. Every mutation is a
// Command value and Apply is the only way a list changes.
package state

import model "todo-tracker.com/todo-tracker/pkg/models"

// Command is one of Add, Toggle, Delete, Update or Set.
type Command interface {
	command()
}

// Add appends a fully formed todo. The caller generates ID and CreatedAt.
type Add struct {
	Todo model.Todo
}

type Toggle struct {
	ID string
}

type Delete struct {
	ID string
}

type Update struct {
	ID    string
	Patch model.TodoPatch
}

// Set replaces the whole list. Used once when a snapshot is restored.
type Set struct {
	Todos []model.Todo
}

func (Add) command()    {}
func (Toggle) command() {}
func (Delete) command() {}
func (Update) command() {}
func (Set) command()    {}
