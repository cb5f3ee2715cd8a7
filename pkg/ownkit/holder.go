package ownkit

// Holder stores one Datum under each ownership discipline plus one owning
// handle to a Counted. Each method's signature states the contract: value
// parameters copy, pointer parameters borrow caller storage, Owned parameters
// transfer, Borrowed parameters share.
//
// Invariants: at most one Datum is exclusively owned through the Owned slot
// at a time (adopting a replacement drops the previous occupant), and the
// Counted slot's count reflects exactly the owning references the Holder
// holds.
type Holder struct {
	prefix  string
	value   Datum
	owned   Owned[Datum]
	shared  Borrowed[Datum]
	counted *Counted
}

// NewHolder constructs a Holder with the given prefix and empty slots.
func NewHolder(prefix string) *Holder {
	return &Holder{prefix: prefix}
}

// AddPrefix returns the message with the holder's prefix prepended, along
// with the combined length in bytes.
func (h *Holder) AddPrefix(msg string) (string, int) {
	out := h.prefix + msg
	return out, len(out)
}

// SetValue stores an independent copy of d. Later mutation of the caller's
// original does not affect the stored copy.
func (h *Holder) SetValue(d Datum) {
	h.value = d
}

// SetValueFrom copies the caller's live instance into the value slot. No
// ownership moves; the caller's instance must outlive the call, nothing more.
func (h *Holder) SetValueFrom(d *Datum) {
	h.value = *d
}

// CopyValueInto writes the stored value into caller-supplied storage. The
// caller owns that storage before and after.
func (h *Holder) CopyValueInto(d *Datum) {
	*d = h.value
}

// Value returns an independent copy of the stored value.
func (h *Holder) Value() Datum {
	return h.value
}

// Adopt drains the caller's handle and takes exclusive ownership of its
// instance. A previous occupant of the slot is released first. The caller's
// handle is empty on return, so the instance cannot be used or released
// through it afterward. Adopting an empty handle clears the slot.
func (h *Holder) Adopt(o *Owned[Datum]) {
	h.owned = TakeOwnership(o.Release())
}

// ReleaseOwned clears the exclusive slot and transfers its instance to the
// caller. When the slot is empty the returned handle is empty; releasing
// nothing is not an error.
func (h *Holder) ReleaseOwned() Owned[Datum] {
	out := h.owned
	h.owned = Owned[Datum]{}
	return out
}

// Share stores a non-owning view. The caller keeps ownership and must keep
// the instance alive for as long as the view may be read; the holder never
// destroys it.
func (h *Holder) Share(b Borrowed[Datum]) {
	h.shared = b
}

// SharedView returns the stored non-owning view. It stays valid only as long
// as the instance's real owner keeps it alive.
func (h *Holder) SharedView() Borrowed[Datum] {
	return h.shared
}

// AcquireCounted returns the held Counted with a fresh owning reference
// applied: the caller must eventually Unref the returned instance exactly
// once. Returns nil when the holder holds none.
func (h *Holder) AcquireCounted() *Counted {
	if h.counted == nil {
		return nil
	}
	h.counted.Ref()
	return h.counted
}

// PeekCounted returns the held Counted without touching its count, or nil
// when the holder holds none. The caller must not Unref the result and must
// not retain it beyond the holder's own reference.
func (h *Holder) PeekCounted() *Counted {
	return h.counted
}

// AdoptCounted consumes the caller's owning reference to c: the previous
// occupant is Unref'd (possibly destroying it) and c is stored without a Ref.
// Passing nil clears the slot.
func (h *Holder) AdoptCounted(c *Counted) {
	if h.counted != nil {
		h.counted.Unref()
	}
	h.counted = c
}

// ShareCounted makes the holder an independent co-owner of c: the previous
// occupant is Unref'd, c is Ref'd and stored. The caller keeps its own
// reference and remains responsible for it. c must not be nil; use
// AdoptCounted(nil) to clear the slot.
func (h *Holder) ShareCounted(c *Counted) {
	if c == nil {
		panic("ownkit: ShareCounted of nil Counted")
	}
	if h.counted != nil {
		h.counted.Unref()
	}
	c.Ref()
	h.counted = c
}
