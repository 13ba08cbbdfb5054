package automaton

import (
	"github.com/godes/cldes/errs"
	"github.com/godes/cldes/sparsebit"
)

// fixpoint repeatedly multiplies x by m through a's configured BitMultiplier
// until the result stops changing, then returns the set indices. B already
// carries the identity ("self-loop via union") trick, so each iteration is
// monotone: once a state is reached it stays reached, guaranteeing
// termination within n steps.
func fixpoint(m *sparsebit.BitMatrix, mult BitMultiplier, seed *sparsebit.BitVector) *sparsebit.BitVector {
	x := seed
	for {
		y := mult.MultiplyBool(m, x)
		if y.Equal(x) {
			return y
		}
		x = y
	}
}

// AccessiblePart returns the states reachable from the initial state by
// following zero or more transitions, ascending. Always includes q0.
func (a *Automaton) AccessiblePart() []int {
	a.ensureSealed()
	seed := sparsebit.FromStates(a.n, a.q0)
	return fixpoint(a.b, a.cfg.multiplier, seed).Slice()
}

// CoaccessiblePart returns the states from which some marked state is
// reachable, ascending. If no state is marked, returns an empty slice — the
// fixpoint of the all-zero seed stays all-zero, so no special case is
// needed.
func (a *Automaton) CoaccessiblePart() []int {
	a.ensureSealed()
	seed := sparsebit.FromStates(a.n, a.markedSet...)
	bt := a.b.Transpose()
	return fixpoint(bt, a.cfg.multiplier, seed).Slice()
}

// TrimStates returns the states that are both accessible and coaccessible,
// ascending — the intersection AccessiblePart() ∩ CoaccessiblePart().
func (a *Automaton) TrimStates() []int {
	acc := toBitVector(a.n, a.AccessiblePart())
	coacc := toBitVector(a.n, a.CoaccessiblePart())
	out := make([]int, 0)
	for i := 0; i < a.n; i++ {
		if acc.Test(i) && coacc.Test(i) {
			out = append(out, i)
		}
	}
	return out
}

func toBitVector(n int, states []int) *sparsebit.BitVector {
	return sparsebit.FromStates(n, states...)
}

// Trim returns a new Automaton restricted to TrimStates(), with states
// renumbered to a dense, ascending [0, n') range preserving relative order,
// and every edge whose endpoints both survive carried over. If q0 does not
// survive trimming, Trim still returns a valid one-state placeholder
// automaton (no transitions, no marked states) paired with a non-nil
// *errs.Error{Kind: EmptyResult} — a
// warning, not a fatal error, matching spec.md §7's treatment of the
// degenerate case.
func (a *Automaton) Trim() (*Automaton, error) {
	keep := a.TrimStates()
	remap := make(map[int]int, len(keep))
	for newID, old := range keep {
		remap[old] = newID
	}

	newQ0, q0ok := remap[a.q0]
	var marked []int
	for _, q := range a.markedSet {
		if nq, ok := remap[q]; ok {
			marked = append(marked, nq)
		}
	}

	n := len(keep)
	if n == 0 || !q0ok {
		empty, _ := New(1, 0, nil, withSameConfig(a))
		empty.Seal()
		return empty, errs.New("Automaton.Trim", errs.EmptyResult, nil)
	}

	out, err := New(n, newQ0, marked, withSameConfig(a))
	if err != nil {
		return nil, err
	}
	a.ensureSealed()
	ed := out.Edit()
	for _, old := range keep {
		cols, vals := a.g.Row(old)
		for i, j := range cols {
			nj, ok := remap[j]
			if !ok {
				continue
			}
			ni := remap[old]
			es := vals[i]
			es.Each(func(e int) {
				_ = ed.Insert(ni, e, nj)
			})
		}
	}
	ed.Close()
	return out, nil
}

func withSameConfig(a *Automaton) Option {
	return WithMultiplier(a.cfg.multiplier)
}
