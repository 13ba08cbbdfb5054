package automaton

import (
	"fmt"

	"github.com/godes/cldes/errs"
	"github.com/godes/cldes/eventset"
)

// Editor batches transition inserts against an Automaton. Obtain one with
// Edit, call Insert any number of times, then Close (or let the caller drop
// it and call Automaton.Seal directly) — grounded on the teacher's
// nfa.Builder, which batches state/transition inserts behind a similar
// build-then-finish handle instead of mutating the NFA's compiled form
// directly.
type Editor struct {
	a      *Automaton
	closed bool
}

// Edit reopens a, if it was sealed, and returns an Editor ready to accept
// Insert calls.
func (a *Automaton) Edit() *Editor {
	if a.sealed {
		a.g.Unseal()
		a.sealed = false
	}
	return &Editor{a: a}
}

// Insert adds the transition δ(from, e) = to. It fails with
// InvalidState/InvalidEvent if from, to, or e are out of range, and with
// NondeterminismDetected if (from, e) already maps to a different target —
// the deterministic-automaton invariant spec.md requires Automaton to
// enforce at construction time rather than leaving as a caller obligation.
func (ed *Editor) Insert(from, e, to int) error {
	a := ed.a
	if from < 0 || from >= a.n || to < 0 || to >= a.n {
		return errs.New("Automaton.Edit.Insert", errs.InvalidState, fmt.Errorf("transition (%d, %d, %d) out of range for %d states", from, e, to, a.n))
	}
	if e < 0 || e >= eventset.MaxEvents {
		return errs.New("Automaton.Edit.Insert", errs.InvalidEvent, fmt.Errorf("event %d out of range", e))
	}

	key := from*eventset.MaxEvents + e
	if existing, ok := a.edgeTarget[key]; ok && existing != to {
		return errs.New("Automaton.Edit.Insert", errs.NondeterminismDetected,
			fmt.Errorf("state %d already has a transition on event %d to state %d, cannot also add %d", from, e, existing, to))
	}
	if err := a.g.Add(from, to, e); err != nil {
		return err
	}
	a.edgeTarget[key] = to
	a.invG, a.in = nil, nil
	a.out[from].Set(e)
	a.sigma.Set(e)
	return nil
}

// Add is a convenience alias for Insert matching spec.md's operation name
// for TransitionEditor.
func (ed *Editor) Add(from, e, to int) error { return ed.Insert(from, e, to) }

// Close seals the underlying Automaton, compressing every Insert since Edit
// into CSR form. Calling Insert after Close returns a SealedMutation error.
func (ed *Editor) Close() {
	if ed.closed {
		return
	}
	ed.a.Seal()
	ed.closed = true
}
