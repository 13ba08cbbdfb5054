// Package errs defines the typed error values shared by every cldes
// subpackage: automaton, product, and supervisor all raise *errs.Error
// instead of ad-hoc errors, so a caller can branch on Kind regardless of
// which package raised it.
package errs

import "fmt"

// ErrorKind classifies the failure modes a cldes operation can report.
// Query absence ("no transition") is never one of these — it is reported
// through an ordinary boolean/ok return, the same way the teacher
// distinguishes dfa/lazy.ErrorKind categories from an ordinary "no match".
type ErrorKind uint8

const (
	// InvalidState: a state index was >= the automaton's state count.
	InvalidState ErrorKind = iota

	// InvalidEvent: an event id was >= the alphabet cap, or not a member
	// of the alphabet where membership is required.
	InvalidEvent

	// NondeterminismDetected: inserting an edge would give (state, event)
	// two distinct targets.
	NondeterminismDetected

	// NotPrepared: an inverse-transition query ran before allocateInverted.
	NotPrepared

	// EmptyResult is a warning, not a fatal error: the operation (Trim,
	// SupC) found no state to keep and returned a valid one-state
	// placeholder automaton with no transitions and no marked states.
	EmptyResult

	// SealedMutation: an edit ran against a matrix that had already been
	// sealed and not reopened.
	SealedMutation
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidState:
		return "InvalidState"
	case InvalidEvent:
		return "InvalidEvent"
	case NondeterminismDetected:
		return "NondeterminismDetected"
	case NotPrepared:
		return "NotPrepared"
	case EmptyResult:
		return "EmptyResult"
	case SealedMutation:
		return "SealedMutation"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Error reports a cldes failure. Construction-time invariant violations and
// query errors both use it; RemoveBadStates pruning never does, since
// pruning is the normal outcome of supervisor synthesis, not a failure.
type Error struct {
	Kind ErrorKind
	Op   string // operation that raised the error, e.g. "Automaton.Edit"
	Err  error  // optional wrapped cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cldes: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("cldes: %s: %s", e.Op, e.Kind)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, &Error{Kind: InvalidState}) without caring about Op.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds an *Error for op/kind, optionally wrapping cause.
func New(op string, kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}
