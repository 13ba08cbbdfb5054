// Package supervisor implements monolithic supervisor synthesis:
// controllability-respecting guided exploration over the lazy synchronous
// product of a plant and a specification, with inverse-BFS bad-state
// pruning, producing a trimmed concrete automaton that realizes the
// supremal controllable sublanguage of L(E) ∩ L(P) relative to P and the
// uncontrollable event set.
//
// Grounded on original_source/libcldes/cldes/src/operations/SuperProxyCore.hpp's
// findRemovedStates_ (the inverse-BFS bad-state propagation) and
// Operations.hpp's guided-exploration loop, restated as a plain
// stack-and-set traversal instead of CRTP template methods.
package supervisor

import (
	"sort"

	"github.com/godes/cldes/automaton"
	"github.com/godes/cldes/eventset"
	"github.com/godes/cldes/product"
)

// Synth computes the supervisor for plant p, specification e, and the
// uncontrollable event set unc (ids beyond either alphabet are silently
// ignored, since eventset.Set.Test on an out-of-range id is always false).
// It returns a new, trimmed automaton.Automaton; p and e are left
// unmodified (their inverse graphs, allocated during synthesis, are
// released before Synth returns).
func Synth(p, e automaton.Base, unc eventset.Set) (*automaton.Automaton, error) {
	prod := product.New(p, e)
	prod.AllocateInverted()
	defer func() {
		p.ClearInverted()
		e.ClearInverted()
	}()

	v := make(map[int]bool)
	r := make(map[int]bool)
	stack := []int{prod.Initial()}

	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v[q] || r[q] {
			continue
		}

		enQ := prod.StateEvents(q)
		qx, _ := prod.Decode(q)
		forced := unc.Intersect(p.StateEvents(qx))

		if !forced.Subset(enQ) {
			removeBadStates(prod, unc, v, r, q)
			continue
		}

		v[q] = true
		enQ.Each(func(ev int) {
			next, ok := prod.Trans(q, ev)
			if ok {
				stack = append(stack, next)
			}
		})
	}

	retained := make([]int, 0, len(v))
	for q := range v {
		retained = append(retained, q)
	}
	sort.Ints(retained)

	materialized, err := prod.ToConcreteOver(retained)
	if err != nil {
		return materialized, err
	}
	return materialized.Trim()
}

// removeBadStates runs the inverse-BFS bad-state propagation rooted at q: a
// state from which an uncontrollable event leads to a bad state is itself
// uncontrollably forced into badness and must be pruned too.
func removeBadStates(prod *product.Product, unc eventset.Set, v, r map[int]bool, q int) {
	uncProd := unc.Intersect(prod.Alphabet())

	local := []int{q}
	r[q] = true
	for len(local) > 0 {
		x := local[len(local)-1]
		local = local[:len(local)-1]

		delete(v, x)

		candidates := prod.InvStateEvents(x).Intersect(uncProd)
		candidates.Each(func(ev int) {
			preds, err := prod.InvTrans(x, ev)
			if err != nil {
				return
			}
			for _, xp := range preds {
				if !r[xp] {
					r[xp] = true
					local = append(local, xp)
				}
			}
		})
	}
}
