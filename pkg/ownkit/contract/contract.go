package contract

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateOp indicates two operations in one class share a name.
	ErrDuplicateOp = errors.New("contract: duplicate operation name")

	// ErrOutTransfer indicates an out-direction parameter marked as
	// transferring ownership, which is contradictory: the callee writes into
	// caller storage and cannot take ownership of it.
	ErrOutTransfer = errors.New("contract: out parameter cannot transfer ownership")

	// ErrHalfRefCounted indicates a class naming only one of its count
	// management methods.
	ErrHalfRefCounted = errors.New("contract: incref and decref must be set together")

	// ErrUnnamed indicates a class, operation, or parameter without a name.
	ErrUnnamed = errors.New("contract: name must not be empty")
)

// Direction states which way a parameter's data flows.
type Direction int

const (
	// In flows caller to callee.
	In Direction = iota
	// Out flows callee to caller through caller-supplied storage.
	Out
	// InOut flows both ways.
	InOut
)

// String returns the conventional annotation spelling.
func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	case InOut:
		return "inout"
	default:
		return "unknown"
	}
}

// Param describes one operation parameter.
type Param struct {
	Name      string
	Type      string
	Direction Direction

	// Transfer reports whether the callee takes ownership of the passed
	// instance. False means the caller retains ownership and the callee only
	// borrows or copies.
	Transfer bool
}

// Result describes an operation's return value.
type Result struct {
	Type string

	// CallerOwns reports whether the caller becomes responsible for
	// releasing the returned instance. False means the return is a borrowed
	// observation of something the callee still owns.
	CallerOwns bool
}

// Op describes one operation: its parameters and, when it returns an
// instance, the ownership of that return.
type Op struct {
	Name   string
	Params []Param
	Result *Result
}

// Class describes one type's full operation surface. A reference-counted
// class names its count management methods in IncRef and DecRef; plain
// classes leave both empty.
type Class struct {
	Name   string
	IncRef string
	DecRef string
	Ops    []Op
}

// RefCounted reports whether the class manages instances by count.
func (c Class) RefCounted() bool {
	return c.IncRef != "" && c.DecRef != ""
}

// Op returns the named operation, if present.
func (c Class) Op(name string) (Op, bool) {
	for _, op := range c.Ops {
		if op.Name == name {
			return op, true
		}
	}
	return Op{}, false
}

// Validate checks the class description for structural contradictions. It
// returns the first problem found, wrapped with enough context to locate it.
func (c Class) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: class", ErrUnnamed)
	}
	if (c.IncRef == "") != (c.DecRef == "") {
		return fmt.Errorf("%w: class %s", ErrHalfRefCounted, c.Name)
	}

	seen := make(map[string]bool, len(c.Ops))
	for _, op := range c.Ops {
		if op.Name == "" {
			return fmt.Errorf("%w: operation in class %s", ErrUnnamed, c.Name)
		}
		if seen[op.Name] {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateOp, c.Name, op.Name)
		}
		seen[op.Name] = true

		for _, p := range op.Params {
			if p.Name == "" {
				return fmt.Errorf("%w: parameter of %s.%s", ErrUnnamed, c.Name, op.Name)
			}
			if p.Direction == Out && p.Transfer {
				return fmt.Errorf("%w: %s.%s(%s)", ErrOutTransfer, c.Name, op.Name, p.Name)
			}
		}
	}
	return nil
}
