package ownkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnedReleaseTransfers(t *testing.T) {
	t.Parallel()

	d := NewDatum("exclusive")
	o := TakeOwnership(&d)
	require.False(t, o.Empty())

	p := o.Release()
	require.Same(t, &d, p)
	assert.True(t, o.Empty(), "handle must be empty after Release")
}

func TestOwnedReleaseEmptyIsNoop(t *testing.T) {
	t.Parallel()

	var o Owned[Datum]
	assert.True(t, o.Empty())
	assert.Nil(t, o.Release())
	assert.Nil(t, o.Release(), "repeated Release of an empty handle stays a no-op")
}

func TestOwnedBorrowKeepsOwnership(t *testing.T) {
	t.Parallel()

	d := NewDatum("viewed")
	o := TakeOwnership(&d)

	b := o.Borrow()
	require.Same(t, &d, b.Ptr())
	assert.False(t, o.Empty(), "borrowing must not drain the owning handle")
}

func TestBorrowedEmpty(t *testing.T) {
	t.Parallel()

	var b Borrowed[Datum]
	assert.True(t, b.Empty())
	assert.Nil(t, b.Ptr())

	d := NewDatum("x")
	b = BorrowFrom(&d)
	assert.False(t, b.Empty())
	assert.Same(t, &d, b.Ptr())
}
