// Package ownkit models the ownership-transfer disciplines that show up at
// language-binding boundaries: pass-by-value copies, borrowed references,
// exclusive (transferring) handles, and intrusive reference counting.
//
// The package exposes a small object model. Datum is a plain value type,
// TaggedDatum a distinct type implementing the same capability set, Counted a
// manually reference-counted type, and Holder a container that stores each of
// them under a different ownership discipline. Owning and non-owning
// references are distinct types (Owned and Borrowed) so that transfer versus
// borrow is visible in signatures rather than in comments.
//
// # Ownership disciplines
//
// Exclusive ownership moves through Owned handles: Holder.Adopt drains the
// caller's handle, Holder.ReleaseOwned clears the internal slot and hands the
// instance back. Borrowed views carry no lifecycle responsibility and must
// not outlive the instance's owner.
//
// Counted instances are alive while their count is at least one. Unref on a
// count of one destroys the instance; that transition is terminal. Holders of
// an owning reference must Unref exactly once; Peek-style observations must
// not.
//
// # Concurrency
//
// The reference count is deliberately unsynchronized. Instances follow a
// single-owner-thread discipline: all Ref/Unref traffic for an instance must
// come from one goroutine. This mirrors the native object models the package
// describes, which impose no locking of their own.
package ownkit
