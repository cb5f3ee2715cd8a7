// Package contract describes ownership contracts as data.
//
// Binding generators and interface-documentation tools need a machine-readable
// answer to three questions about every operation: which way does each
// parameter flow, does the callee take ownership of it, and does the caller
// own the return value. This package encodes those answers for the ownkit
// object model and validates that an encoding is structurally coherent.
//
// The vocabulary is the one binding tools conventionally use: a parameter has
// a Direction (in, out, or in/out) and a Transfer flag; a result has a
// CallerOwns flag; a reference-counted class names its increment and
// decrement methods so generated code can manage counts on the caller's
// behalf.
package contract
