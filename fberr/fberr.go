// Package fberr defines the typed panic payload the Builder raises when a
// caller violates the construction protocol (see flatbuffers.Builder). These
// are logic errors, not recoverable results: the Builder still signals them
// by panicking, but wraps the panic value in a *ProtocolError built with
// golang.org/x/xerrors so a recovering caller — or a test — can inspect
// what went wrong with errors.As instead of matching a message substring.
package fberr

import "golang.org/x/xerrors"

// Kind classifies a protocol violation.
type Kind int

const (
	// NestedViolation: an operation that requires the builder to be idle
	// (StartObject, StartVector, CreateString, ...) was called while a
	// table or vector was already under construction. The Builder also
	// raises it when PrependSOffsetT/PrependUOffsetT get a target offset
	// beyond what has been written, and when PrependStructSlot's x is not
	// the current offset.
	NestedViolation Kind = iota
	// NotNestedViolation: an operation that requires the builder to be
	// nested (Slot and the PrependXSlot methods that call it,
	// PrependStructSlot, EndObject, EndVector) was called while idle.
	NotNestedViolation
	// NotFinished: FinishedBytes was called before Finish.
	NotFinished
	// AlreadyFinished: Finish was called twice without an intervening
	// Reset.
	AlreadyFinished
	// ObjectTooLarge: a table's inline size reached or exceeded 65536
	// bytes, which does not fit the 16-bit vtable offset format.
	ObjectTooLarge
	// BufferTooLarge: growth would exceed MaxBufferSize (2 GiB - 1).
	BufferTooLarge
	// BadFileIdentifierLength: a file identifier was not exactly
	// FileIdentifierLength bytes.
	BadFileIdentifierLength
	// DuplicateVtableField: the same vtable slot id was written twice in
	// one table.
	DuplicateVtableField
	// MissingRequiredField: Required found a zero vtable slot for a
	// field the caller declared mandatory.
	MissingRequiredField
)

func (k Kind) String() string {
	switch k {
	case NestedViolation:
		return "nested violation"
	case NotNestedViolation:
		return "not-nested violation"
	case NotFinished:
		return "not finished"
	case AlreadyFinished:
		return "already finished"
	case ObjectTooLarge:
		return "object too large"
	case BufferTooLarge:
		return "buffer too large"
	case BadFileIdentifierLength:
		return "bad file identifier length"
	case DuplicateVtableField:
		return "duplicate vtable field"
	case MissingRequiredField:
		return "missing required field"
	default:
		return "unknown protocol error"
	}
}

// ProtocolError is the payload panic() is called with whenever the Builder
// detects a usage-protocol violation or a capacity limit breach.
type ProtocolError struct {
	Kind Kind
	err  error
}

func (e *ProtocolError) Error() string { return e.err.Error() }

// Unwrap exposes any wrapped cause so errors.Is/errors.As keep working
// through a ProtocolError.
func (e *ProtocolError) Unwrap() error { return xerrors.Unwrap(e.err) }

// New builds a ProtocolError of the given Kind with a formatted message.
// Pass a %w verb in format to wrap an underlying cause.
func New(kind Kind, format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{
		Kind: kind,
		err:  xerrors.Errorf("fbbuild: "+kind.String()+": "+format, args...),
	}
}
