package runtime

import (
	"sort"
	"sync"

	"largo/interpreter-go/pkg/reason"
)

// Environment is the flat global symbol table for one session. Reads and
// writes are guarded so a single writer can coexist with many readers.
type Environment struct {
	mu     sync.RWMutex
	values map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Define inserts or replaces a binding.
func (e *Environment) Define(name string, value Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.values[name] = value
}

// Lookup retrieves a binding.
func (e *Environment) Lookup(name string) (Value, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.values[name]
	return v, ok
}

// Get retrieves a binding, failing with the evaluator's unbound-symbol reason.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.Lookup(name); ok {
		return v, nil
	}
	return nil, reason.Newf("unexpected symbol `%s`", name)
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns the bound names in sorted order.
func (e *Environment) Keys() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of bindings.
func (e *Environment) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.values)
}
