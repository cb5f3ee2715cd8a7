package ownkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountedStartsAtOne(t *testing.T) {
	c := NewCounted("fresh")
	require.Equal(t, 1, c.RefCount())
	require.False(t, c.Destroyed())
	assert.Equal(t, "fresh", c.Get())

	c.Unref()
	assert.True(t, c.Destroyed())
}

func TestCountedRefUnrefLifecycle(t *testing.T) {
	// Fresh instance at count 1: one Ref then two Unrefs destroy it exactly
	// at the second Unref.
	c := NewCounted("shared")
	c.Ref()
	require.Equal(t, 2, c.RefCount())

	c.Unref()
	require.False(t, c.Destroyed())
	require.Equal(t, 1, c.RefCount())

	c.Unref()
	assert.True(t, c.Destroyed())
	assert.Equal(t, 0, c.RefCount())
}

func TestCountedUseAfterDestroyPanics(t *testing.T) {
	c := NewCounted("gone")
	c.Unref()

	assert.PanicsWithValue(t, "ownkit: Ref on destroyed Counted", func() { c.Ref() })
	assert.PanicsWithValue(t, "ownkit: Unref on destroyed Counted", func() { c.Unref() })
	assert.PanicsWithValue(t, "ownkit: Get on destroyed Counted", func() { c.Get() })
	assert.PanicsWithValue(t, "ownkit: Clone on destroyed Counted", func() { c.Clone() })
}

func TestCountedCloneIsIndependent(t *testing.T) {
	c := NewCounted("original")
	c.Ref() // count 2

	clone := c.Clone()
	require.Equal(t, 1, clone.RefCount(), "clone must start with its own count of one")
	require.Equal(t, 2, c.RefCount(), "cloning must not touch the source count")
	assert.Equal(t, "original", clone.Get())

	clone.Unref()
	assert.True(t, clone.Destroyed())
	assert.False(t, c.Destroyed())

	c.Unref()
	c.Unref()
}

func TestLiveCountedTracksLifecycle(t *testing.T) {
	before := LiveCounted()

	a := NewCounted("a")
	b := NewCounted("b")
	require.Equal(t, before+2, LiveCounted())

	a.Unref()
	require.Equal(t, before+1, LiveCounted())

	b.Unref()
	assert.Equal(t, before, LiveCounted())
}
