package product

import (
	"sort"

	"github.com/godes/cldes/automaton"
	"github.com/godes/cldes/errs"
)

// ToConcrete eagerly materializes the whole product (every state from 0 to
// Size()-1) into a concrete automaton.Automaton.
func (p *Product) ToConcrete() (*automaton.Automaton, error) {
	all := make([]int, p.Size())
	for i := range all {
		all[i] = i
	}
	return p.ToConcreteOver(all)
}

// ToConcreteOver materializes only the states in v (supervisor synthesis
// supplies the pruned retained set V here) into a concrete
// automaton.Automaton, following §4.7's eager-materialization steps:
//
//  1. sort v ascending and assign each q a dense rank;
//  2. for each q in ascending order, consult StateEvents(q); for each
//     enabled e, compute q' = Trans(q, e); if q' is also in v, carry the
//     edge over under the two states' new ranks; if q' is not in v, the
//     edge is silently pruned — it is not inserted, so it cannot appear in
//     the output's stateEvents;
//  3. seal; remap q0 and M_P ∩ v.
//
// If q0 (p.Initial()) does not survive into v, ToConcreteOver still returns
// a valid one-state placeholder automaton (no transitions, no marked
// states) paired with a non-nil
// *errs.Error{Kind: EmptyResult}, the same advisory-error convention
// automaton.Trim uses for its own degenerate case.
func (p *Product) ToConcreteOver(v []int) (*automaton.Automaton, error) {
	keep := append([]int(nil), v...)
	sort.Ints(keep)
	remap := make(map[int]int, len(keep))
	for rank, q := range keep {
		remap[q] = rank
	}

	newQ0, q0ok := remap[p.Initial()]
	var marked []int
	for _, q := range p.Marked() {
		if nq, ok := remap[q]; ok {
			marked = append(marked, nq)
		}
	}

	if len(keep) == 0 || !q0ok {
		empty, _ := automaton.New(1, 0, nil)
		empty.Seal()
		return empty, errs.New("Product.ToConcreteOver", errs.EmptyResult, nil)
	}

	out, err := automaton.New(len(keep), newQ0, marked)
	if err != nil {
		return nil, err
	}
	ed := out.Edit()
	for _, q := range keep {
		en := p.StateEvents(q)
		en.Each(func(e int) {
			qp, ok := p.Trans(q, e)
			if !ok {
				return
			}
			nqp, ok := remap[qp]
			if !ok {
				return // transition pruned: target not retained
			}
			_ = ed.Insert(remap[q], e, nqp)
		})
	}
	ed.Close()
	return out, nil
}
