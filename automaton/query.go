package automaton

import (
	"github.com/godes/cldes/errs"
	"github.com/godes/cldes/eventset"
)

// ContainsTrans reports whether δ(q, e) is defined.
func (a *Automaton) ContainsTrans(q, e int) bool {
	_, ok := a.Trans(q, e)
	return ok
}

// Trans returns δ(q, e) and true, or (0, false) if undefined or out of
// range. Out-of-range q/e are treated as "no transition", not an error,
// matching Base's contract that absence is an ordinary query outcome.
func (a *Automaton) Trans(q, e int) (int, bool) {
	if q < 0 || q >= a.n {
		return 0, false
	}
	a.ensureSealed()
	cols, vals := a.g.Row(q)
	for i, j := range cols {
		if vals[i].Test(e) {
			return j, true
		}
	}
	return 0, false
}

// StateEvents returns the events enabled at q (out[q]), the empty set for
// an out-of-range q.
func (a *Automaton) StateEvents(q int) eventset.Set {
	if q < 0 || q >= a.n {
		return eventset.Set{}
	}
	a.ensureSealed()
	return a.out[q]
}

// AllocateInverted builds the inverse transition graph (invG = Gᵗ and the
// per-state in[] event sets) so InvTrans and ContainsInvTrans can answer in
// O(deg) instead of scanning every row. Idempotent: a second call while the
// inverse graph is already current is a no-op. Editor.Insert discards the
// inverse graph, so a call after later edits rebuilds it.
func (a *Automaton) AllocateInverted() {
	a.ensureSealed()
	if a.invG != nil {
		return
	}
	a.invG = a.g.Transpose()
	a.in = make([]eventset.Set, a.n)
	for q := 0; q < a.n; q++ {
		_, vals := a.invG.Row(q)
		for _, es := range vals {
			a.in[q] = a.in[q].Union(es)
		}
	}
}

// ClearInverted releases the inverse graph built by AllocateInverted.
// Idempotent.
func (a *Automaton) ClearInverted() {
	a.invG = nil
	a.in = nil
}

// ContainsInvTrans reports whether some q_from has δ(q_from, e) = q. Returns
// errs.NotPrepared if AllocateInverted has not run.
func (a *Automaton) ContainsInvTrans(q, e int) (bool, error) {
	if a.invG == nil {
		return false, errs.New("Automaton.ContainsInvTrans", errs.NotPrepared, nil)
	}
	if q < 0 || q >= a.n {
		return false, nil
	}
	return a.in[q].Test(e), nil
}

// InvTrans returns every q_from with δ(q_from, e) = q, ascending. Returns
// errs.NotPrepared if AllocateInverted has not run.
func (a *Automaton) InvTrans(q, e int) ([]int, error) {
	if a.invG == nil {
		return nil, errs.New("Automaton.InvTrans", errs.NotPrepared, nil)
	}
	if q < 0 || q >= a.n {
		return nil, nil
	}
	cols, vals := a.invG.Row(q)
	out := make([]int, 0, len(cols))
	for i, j := range cols {
		if vals[i].Test(e) {
			out = append(out, j)
		}
	}
	return out, nil
}

// InvStateEvents returns in[q], the events on edges arriving at q. Empty if
// AllocateInverted has not run or q is out of range.
func (a *Automaton) InvStateEvents(q int) eventset.Set {
	if a.invG == nil || q < 0 || q >= a.n {
		return eventset.Set{}
	}
	return a.in[q]
}
