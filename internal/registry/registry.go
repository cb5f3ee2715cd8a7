// Package registry tracks live object instances by numeric id. It backs the
// leak diagnostics exposed by the public packages: constructors register an
// instance, destructors remove it, and tests compare the live count before
// and after a scenario.
package registry

import "sync"

// ID identifies a registered instance. IDs are never reused within a
// Registry's lifetime.
type ID uint64

// Registry is a mutex-guarded id-to-instance map. The zero value is not
// usable; call New.
type Registry struct {
	mu    sync.Mutex
	next  ID
	items map[ID]any
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{next: 1, items: make(map[ID]any)}
}

// Put registers an instance and returns its id.
func (r *Registry) Put(v any) ID {
	r.mu.Lock()
	id := r.next
	r.next++
	r.items[id] = v
	r.mu.Unlock()
	return id
}

// Get returns the instance registered under id, if any.
func (r *Registry) Get(id ID) (any, bool) {
	r.mu.Lock()
	v, ok := r.items[id]
	r.mu.Unlock()
	return v, ok
}

// Del removes the instance registered under id. Deleting an unknown id is a
// no-op.
func (r *Registry) Del(id ID) {
	r.mu.Lock()
	delete(r.items, id)
	r.mu.Unlock()
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	n := len(r.items)
	r.mu.Unlock()
	return n
}
