package agent

import "fmt"

// Entry pairs an agent function with its display name.
type Entry struct {
	Func Func
	Name string
}

// Registry is an explicit, ordered collection of agents handed to world
// construction. It is a plain value, not a process-wide singleton, so
// tests and callers can assemble isolated registries.
type Registry struct {
	entries []Entry
}

// Register adds an agent. An empty name gets a positional fallback.
func (r *Registry) Register(fn Func, name string) {
	if name == "" {
		name = fmt.Sprintf("agent_%d", len(r.entries)+1)
	}
	r.entries = append(r.entries, Entry{Func: fn, Name: name})
}

// Entries returns the registered agents in registration order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	return len(r.entries)
}
