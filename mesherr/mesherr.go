// Package mesherr defines the error taxonomy shared by every meshkit
// package: a small set of typed errors, each tagged with a stable Kind
// discriminant so callers can branch on error category without string
// matching, and each wrapping an optional cause for errors.Is/As chains.
//
// Error policy (matching lvlath's per-package errors.go convention):
//   - One exported sentinel per Kind is declared below. Callers SHOULD
//     use errors.Is(err, mesherr.ErrX) to branch on error category;
//     Kind()/KindOf remain available where a switch over every category
//     at once is more convenient than a chain of errors.Is checks.
//   - Only typed errors and the sentinels below are returned across
//     package boundaries; no bare fmt.Errorf leaks a kind-less error
//     from an exported function. The one pass-through is a cancelled
//     interp evaluation, which returns its context's error unchanged.
//   - Every typed error implements error, Kind() Kind and Unwrap() error.
//   - Lower-level errors are attached as the cause of Wrap, whose Unwrap
//     exposes them, so errors.Is/As keep working through op -> interp ->
//     caller chains.
package mesherr

import (
	"errors"
	"fmt"
)

// ErrNonManifold indicates an input or intermediate mesh state violates
// the manifoldness invariants. Usage: if errors.Is(err,
// mesherr.ErrNonManifold) { /* reject the edit */ }.
var ErrNonManifold = errors.New("mesherr: non-manifold mesh")

// ErrCorruptMesh indicates an invariant failed mid-traversal, typically
// a bounded-loop overflow or a missing required pointer discovered by a
// loop-following routine.
var ErrCorruptMesh = errors.New("mesherr: corrupt mesh")

// ErrMissingPointer indicates a halfedge lacks a next/twin/vertex/face
// pointer required by the operation in progress.
var ErrMissingPointer = errors.New("mesherr: missing pointer")

// ErrInvalidSelection indicates a selection-expression parse or
// resolution failure (syntax error, or an index outside the live
// element range).
var ErrInvalidSelection = errors.New("mesherr: invalid selection")

// ErrChannelBorrowed indicates a conflicting channel lease: a writer
// against a live reader/writer, or vice versa.
var ErrChannelBorrowed = errors.New("mesherr: channel borrowed")

// ErrChannelMissing indicates a request against a channel name/id that
// does not exist in the group.
var ErrChannelMissing = errors.New("mesherr: channel missing")

// ErrChannelTypeMismatch indicates a channel access whose requested
// (key kind, value kind) does not match the channel's own.
var ErrChannelTypeMismatch = errors.New("mesherr: channel type mismatch")

// ErrGraphCycle indicates a cycle was discovered while topologically
// sorting a dataflow graph's ancestors.
var ErrGraphCycle = errors.New("mesherr: graph cycle")

// ErrMissingInput indicates an unresolved connection-only input on a
// dataflow node.
var ErrMissingInput = errors.New("mesherr: missing input")

// ErrTypeMismatch indicates a dataflow type mismatch between a
// connection's producer output and its consumer input.
var ErrTypeMismatch = errors.New("mesherr: type mismatch")

// ErrUnknownOp indicates no operation is registered under a node's
// op_name.
var ErrUnknownOp = errors.New("mesherr: unknown op")

// ErrIoError indicates a failure delegated from an external
// collaborator (e.g. OBJ import/export).
var ErrIoError = errors.New("mesherr: io error")

// sentinelFor returns k's exported sentinel, or nil for KindUnknown
// (which has none).
func sentinelFor(k Kind) error {
	switch k {
	case KindNonManifold:
		return ErrNonManifold
	case KindCorruptMesh:
		return ErrCorruptMesh
	case KindMissingPointer:
		return ErrMissingPointer
	case KindInvalidSelection:
		return ErrInvalidSelection
	case KindChannelBorrowed:
		return ErrChannelBorrowed
	case KindChannelMissing:
		return ErrChannelMissing
	case KindChannelTypeMismatch:
		return ErrChannelTypeMismatch
	case KindGraphCycle:
		return ErrGraphCycle
	case KindMissingInput:
		return ErrMissingInput
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindUnknownOp:
		return ErrUnknownOp
	case KindIoError:
		return ErrIoError
	default:
		return nil
	}
}

// Kind discriminates the category of a meshkit error for programmatic
// handling, independent of the human-readable message.
type Kind int

const (
	// KindUnknown is the zero value; it should never be returned by a
	// well-formed meshkit error.
	KindUnknown Kind = iota
	// KindNonManifold reports that an input or intermediate mesh state
	// violates the manifoldness invariants (spec.md invariants 5/6).
	KindNonManifold
	// KindCorruptMesh reports that an invariant failed mid-traversal,
	// typically a bounded-loop overflow or a missing required pointer
	// discovered by a loop-following routine rather than a single step.
	KindCorruptMesh
	// KindMissingPointer reports that a halfedge lacks a next/twin/vertex
	// /face pointer required by the operation in progress.
	KindMissingPointer
	// KindInvalidSelection reports a selection-expression parse or
	// resolution failure.
	KindInvalidSelection
	// KindChannelBorrowed reports a conflicting channel lease (a writer
	// against a live reader/writer, or vice versa).
	KindChannelBorrowed
	// KindChannelMissing reports a request against a channel name/id that
	// does not exist in the group.
	KindChannelMissing
	// KindChannelTypeMismatch reports a channel access whose requested
	// (key kind, value kind) does not match the channel's own.
	KindChannelTypeMismatch
	// KindGraphCycle reports a cycle discovered while topologically
	// sorting a dataflow graph's ancestors.
	KindGraphCycle
	// KindMissingInput reports an unresolved connection-only input on a
	// dataflow node.
	KindMissingInput
	// KindTypeMismatch reports a dataflow type mismatch between a
	// connection's producer output and its consumer input.
	KindTypeMismatch
	// KindUnknownOp reports that no operation is registered under a
	// node's op_name.
	KindUnknownOp
	// KindIoError reports a failure delegated from an external
	// collaborator (e.g. OBJ import/export).
	KindIoError
)

// String renders the Kind using the names from spec.md §7.
func (k Kind) String() string {
	switch k {
	case KindNonManifold:
		return "NonManifold"
	case KindCorruptMesh:
		return "CorruptMesh"
	case KindMissingPointer:
		return "MissingPointer"
	case KindInvalidSelection:
		return "InvalidSelection"
	case KindChannelBorrowed:
		return "ChannelBorrowed"
	case KindChannelMissing:
		return "ChannelMissing"
	case KindChannelTypeMismatch:
		return "ChannelTypeMismatch"
	case KindGraphCycle:
		return "GraphCycle"
	case KindMissingInput:
		return "MissingInput"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindUnknownOp:
		return "UnknownOp"
	case KindIoError:
		return "IoError"
	default:
		return "Unknown"
	}
}

// Error is the concrete typed error every meshkit package returns. It
// carries a Kind discriminant, a human-readable description, and an
// optional cause for chaining.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// New builds an Error of the given kind with a formatted description.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind whose Unwrap returns cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}

// Kind returns the stable discriminant for programmatic handling.
func (e *Error) Kind() Kind { return e.kind }

// Error implements the error interface with a display string suitable
// for logs and end-user surfaces.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("meshkit: %s: %s: %v", e.kind, e.msg, e.cause)
	}
	return fmt.Sprintf("meshkit: %s: %s", e.kind, e.msg)
}

// Description returns the human-readable description without the kind
// prefix, suitable for display at an external boundary per spec.md §6.
func (e *Error) Description() string { return e.msg }

// Unwrap exposes the wrapped cause, if any, for errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target shares this error's Kind — either another
// *Error of the same Kind, so
// errors.Is(err, mesherr.New(mesherr.KindNonManifold, "")) works as a
// category check without matching the message, or that Kind's
// exported sentinel, so errors.Is(err, mesherr.ErrNonManifold) works
// the way lvlath's own packages' sentinels do.
func (e *Error) Is(target error) bool {
	if other, ok := target.(*Error); ok {
		return other.kind == e.kind
	}
	return target == sentinelFor(e.kind)
}

// KindOf extracts the Kind from err if it is (or wraps) a *mesherr.Error,
// returning KindUnknown otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}
