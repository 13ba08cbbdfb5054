// Package automaton implements the concrete, sparse bit-packed automaton
// (Automaton) and the polymorphic query contract (Base) that both it and
// the lazy synchronous product (package product) satisfy.
//
// The package is grounded on the teacher's nfa.NFA/nfa.Builder pair: a
// dense []State construction type paired with row-style accessors, here
// generalized to a state count that is not known until construction and
// to a sparse, not dense, transition table.
package automaton

import "github.com/godes/cldes/eventset"

// Base is the capability set every automaton-shaped value exposes: plain
// queries plus the inverse-graph prepare/release lifecycle. It replaces
// the CRTP static polymorphism of the original C++ design (DESystemBase)
// with a Go interface — no inheritance is needed since Concrete (this
// package's Automaton) and the lazy product (package product) share no
// implementation, only this contract.
type Base interface {
	// Size returns the number of states, n.
	Size() int

	// Initial returns the initial state q0.
	Initial() int

	// Marked returns the marked states, ascending.
	Marked() []int

	// Alphabet returns the alphabet Σ actually in use.
	Alphabet() eventset.Set

	// ContainsTrans reports whether δ(q, e) is defined.
	ContainsTrans(q, e int) bool

	// Trans returns δ(q, e) and true, or (0, false) if undefined. "none"
	// is an ordinary absence signal, not an error.
	Trans(q, e int) (int, bool)

	// ContainsInvTrans reports whether some q_from has δ(q_from, e) = q.
	// Requires AllocateInverted to have run; otherwise returns
	// errs.NotPrepared.
	ContainsInvTrans(q, e int) (bool, error)

	// InvTrans returns every q_from with δ(q_from, e) = q, ascending and
	// deduplicated. Requires AllocateInverted to have run.
	InvTrans(q, e int) ([]int, error)

	// StateEvents returns out[q], the events enabled at q.
	StateEvents(q int) eventset.Set

	// InvStateEvents returns in[q], the events on edges arriving at q.
	InvStateEvents(q int) eventset.Set

	// AllocateInverted prepares the inverse graph for InvTrans /
	// ContainsInvTrans. Idempotent.
	AllocateInverted()

	// ClearInverted releases the inverse graph. Idempotent.
	ClearInverted()
}
