package object

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

var nextID atomic.Uint64

// Environment is one frame of the scope chain. Bindings keep their insertion
// order; values are deep-copied on the way in and on the way out.
type Environment struct {
	ID     uint64
	Parent *Environment

	names  []string
	values map[string]Value

	mu sync.RWMutex
}

func nextEnvID() uint64 {
	return nextID.Add(1)
}

func NewEnvironment() *Environment {
	return &Environment{
		ID:     nextEnvID(),
		values: make(map[string]Value),
	}
}

// NewEnclosedEnvironment creates an empty frame whose lookups fall back to parent.
func NewEnclosedEnvironment(parent *Environment) *Environment {
	env := NewEnvironment()
	env.Parent = parent
	return env
}

// Get resolves name through the scope chain and returns a copy of the bound
// value, or an UnboundSymbol error when no frame binds it.
func (e *Environment) Get(name string) Value {
	for env := e; env != nil; env = env.Parent {
		env.mu.RLock()
		val, ok := env.values[name]
		env.mu.RUnlock()
		if ok {
			return val.Copy()
		}
	}
	return NewError(UNBOUND_SYMBOL, "Unbound Symbol '%s'", name)
}

// Put binds name in this frame only, replacing an existing binding in place.
func (e *Environment) Put(name string, val Value) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.values[name]; !exists {
		e.names = append(e.names, name)
	}
	e.values[name] = val.Copy()

	slog.Debug("binding value",
		slog.Uint64("env", e.ID),
		slog.String("name", name),
		slog.Any("type", val.Type()))
}

// Define binds name in the root frame of the chain.
func (e *Environment) Define(name string, val Value) {
	e.Root().Put(name, val)
}

func (e *Environment) Root() *Environment {
	env := e
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// Copy duplicates this frame's bindings. The parent link is shared, not copied.
func (e *Environment) Copy() *Environment {
	if e == nil {
		return nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	env := &Environment{
		ID:     nextEnvID(),
		Parent: e.Parent,
		names:  make([]string, len(e.names)),
		values: make(map[string]Value, len(e.values)),
	}
	copy(env.names, e.names)
	for k, v := range e.values {
		env.values[k] = v.Copy()
	}
	return env
}

// Names lists the names bound in this frame in the order they were first bound.
func (e *Environment) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// Lookup is Get without the copy or the chain walk; it reports whether this
// frame itself binds name.
func (e *Environment) Lookup(name string) (Value, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	val, ok := e.values[name]
	return val, ok
}
