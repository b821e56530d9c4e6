// Package command provides the handler registry.
package command

import (
	"fmt"
	"sort"
	"sync"
)

// Result is what a handler reports back to the caller.
type Result struct {
	// Message is an optional status line for the application to show.
	Message string
	// NeedsRedraw asks the UI to re-render.
	NeedsRedraw bool
}

// Handler executes a parsed command.
type Handler interface {
	Execute(cmd Command) (Result, error)
	// Description is a one-line summary shown by help and completion.
	Description() string
}

// HandlerFunc adapts a function into a Handler with a description.
type HandlerFunc struct {
	Fn   func(cmd Command) (Result, error)
	Desc string
}

func (h HandlerFunc) Execute(cmd Command) (Result, error) {
	return h.Fn(cmd)
}

func (h HandlerFunc) Description() string {
	if h.Desc == "" {
		return "no description"
	}
	return h.Desc
}

// Registry maps command names to handlers. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	history  *History
}

// NewRegistry creates an empty registry with a default-size history.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		history:  NewHistory(100),
	}
}

// Register binds name to handler, replacing any previous binding.
func (r *Registry) Register(name string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = handler
}

// Unregister removes the binding for name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, name)
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the description for name, or "" when unknown.
func (r *Registry) Describe(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h, ok := r.handlers[name]; ok {
		return h.Description()
	}
	return ""
}

// Execute parses input, dispatches it and records it in history.
func (r *Registry) Execute(input string) (Result, error) {
	cmd, err := Parse(input)
	if err != nil {
		return Result{}, err
	}

	r.mu.RLock()
	handler, ok := r.handlers[cmd.Name]
	r.mu.RUnlock()
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrNotFound, cmd.Name)
	}

	r.history.Push(input)
	return handler.Execute(cmd)
}

// History exposes the execution history.
func (r *Registry) History() *History {
	return r.history
}
