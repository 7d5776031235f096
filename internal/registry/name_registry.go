package registry

import "sync"

// DefaultCollisionMarker is appended to a name that has already been emitted
const DefaultCollisionMarker = "_"

// NameRegistry records every exported name handed out during a run. It is
// append-only and shared by all documents, so the order of Register calls
// decides which declaration keeps the plain name.
type NameRegistry struct {
	names  map[string]int
	order  []string
	marker string
	mu     sync.Mutex
}

// NewNameRegistry creates an empty registry using marker to break collisions
func NewNameRegistry(marker string) *NameRegistry {
	if marker == "" {
		marker = DefaultCollisionMarker
	}
	return &NameRegistry{
		names:  make(map[string]int),
		marker: marker,
	}
}

// Register records name and returns the name to emit. A name seen before gets
// the marker appended once; there is no second retry, so a third declaration
// with the same base name comes back identical to the second.
func (r *NameRegistry) Register(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[name]; exists {
		name += r.marker
	}
	r.names[name]++
	r.order = append(r.order, name)
	return name
}

// Contains reports whether name has been emitted
func (r *NameRegistry) Contains(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.names[name]
	return exists
}

// Names returns every registered name in registration order, repeats included
func (r *NameRegistry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Collisions returns the names that were handed out more than once. These
// are the unresolved third-collision cases.
func (r *NameRegistry) Collisions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var duplicates []string
	reported := make(map[string]bool)
	for _, name := range r.order {
		if r.names[name] > 1 && !reported[name] {
			duplicates = append(duplicates, name)
			reported[name] = true
		}
	}
	return duplicates
}

// Len returns the number of registrations
func (r *NameRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}
