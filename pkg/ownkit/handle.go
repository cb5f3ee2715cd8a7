package ownkit

// Owned is an exclusive-ownership handle. Whoever holds a non-empty Owned is
// responsible for the instance; transferring it (Holder.Adopt, or Release to
// a new holder) leaves the previous handle empty so the same instance is
// never owned twice.
type Owned[T any] struct {
	ptr *T
}

// TakeOwnership wraps a pointer in an exclusive handle. The caller must not
// retain or share the raw pointer afterward.
func TakeOwnership[T any](p *T) Owned[T] {
	return Owned[T]{ptr: p}
}

// Release empties the handle and returns the instance, transferring
// responsibility to the caller. Releasing an empty handle is a no-op and
// returns nil.
func (o *Owned[T]) Release() *T {
	p := o.ptr
	o.ptr = nil
	return p
}

// Empty reports whether the handle currently owns anything.
func (o Owned[T]) Empty() bool {
	return o.ptr == nil
}

// Borrow returns a non-owning view of the owned instance without giving up
// ownership. The view is valid only while this handle (or its successor after
// a transfer) keeps the instance alive.
func (o Owned[T]) Borrow() Borrowed[T] {
	return Borrowed[T]{ptr: o.ptr}
}

// Borrowed is a non-owning view. It carries no lifecycle responsibility and
// must never be used to destroy the referent.
type Borrowed[T any] struct {
	ptr *T
}

// BorrowFrom wraps a pointer in a non-owning view. The instance's owner is
// unaffected and remains responsible for keeping it alive.
func BorrowFrom[T any](p *T) Borrowed[T] {
	return Borrowed[T]{ptr: p}
}

// Ptr returns the viewed instance, or nil for an empty view.
func (b Borrowed[T]) Ptr() *T {
	return b.ptr
}

// Empty reports whether the view refers to anything.
func (b Borrowed[T]) Empty() bool {
	return b.ptr == nil
}
