package ownkit

import (
	"github.com/ownkit/ownkit-go/internal/registry"
)

// liveCounted records every Counted instance between construction and
// destruction. It exists for leak diagnostics only and is not part of the
// modeled object semantics.
var liveCounted = registry.New()

// Counted is a string-holding type with an intrusive, manually managed
// reference count. A fresh instance starts with a count of one, held by its
// creator. The instance is destroyed exactly when the count goes from one to
// zero; destruction is terminal.
//
// Counted must not be copied by value: a struct copy would duplicate the
// count and desynchronize it from the instance it describes. Use Clone to get
// an independent instance, or Ref to become a co-owner of this one. The count
// is unsynchronized; see the package documentation for the threading
// discipline.
type Counted struct {
	datum string
	refs  int
	dead  bool
	id    registry.ID
}

// NewCounted constructs a Counted with a count of one. The caller holds that
// reference and must eventually Unref it.
func NewCounted(datum string) *Counted {
	c := &Counted{datum: datum, refs: 1}
	c.id = liveCounted.Put(c)
	return c
}

// Get returns the stored string.
func (c *Counted) Get() string {
	c.mustBeAlive("Get")
	return c.datum
}

// Ref adds an owning reference. Call it whenever a new owning handle to the
// instance is created; every Ref obligates exactly one later Unref.
func (c *Counted) Ref() {
	c.mustBeAlive("Ref")
	c.refs++
}

// Unref drops an owning reference. When the count reaches zero the instance
// is destroyed as a direct side effect: it leaves the live-instance registry
// and every later use panics. Unref on an already-destroyed instance panics.
func (c *Counted) Unref() {
	c.mustBeAlive("Unref")
	c.refs--
	if c.refs == 0 {
		c.dead = true
		liveCounted.Del(c.id)
	}
}

// Clone returns a fresh instance holding a copy of the string, with its own
// count of one owned by the caller. The receiver's count is not consulted or
// changed. This is the only supported way to duplicate a Counted.
func (c *Counted) Clone() *Counted {
	c.mustBeAlive("Clone")
	return NewCounted(c.datum)
}

// RefCount returns the current count. A destroyed instance reports zero.
// Diagnostic accessor; not part of the ownership contract.
func (c *Counted) RefCount() int {
	return c.refs
}

// Destroyed reports whether the count has reached zero.
func (c *Counted) Destroyed() bool {
	return c.dead
}

func (c *Counted) mustBeAlive(op string) {
	if c.dead {
		panic("ownkit: " + op + " on destroyed Counted")
	}
}

// LiveCounted returns the number of Counted instances that have been
// constructed but not yet destroyed. Tests use it to assert that a scenario
// released everything it created.
func LiveCounted() int {
	return liveCounted.Len()
}
