package automaton

import "github.com/godes/cldes/eventset"

// Clone returns a deep copy of a, independent of further edits to either
// value. Supplemented over the original, which left copy semantics to
// DESystem's implicit C++ copy constructor — Go needs an explicit method
// since Automaton holds slice and map fields a struct copy would alias.
func (a *Automaton) Clone() *Automaton {
	a.ensureSealed()

	out := &Automaton{
		n:          a.n,
		q0:         a.q0,
		markedSet:  append([]int(nil), a.markedSet...),
		sigma:      a.sigma,
		g:          a.g.Clone(),
		out:        append([]eventset.Set(nil), a.out...),
		edgeTarget: make(map[int]int, len(a.edgeTarget)),
		sealed:     true,
		cfg:        a.cfg,
	}
	for k, v := range a.edgeTarget {
		out.edgeTarget[k] = v
	}
	out.b = a.b.Clone()
	if a.invG != nil {
		out.invG = a.invG.Clone()
		out.in = append([]eventset.Set(nil), a.in...)
	}
	return out
}
