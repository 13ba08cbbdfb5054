// Package product implements the lazy synchronous product (parallel
// composition) of two discrete event systems: a virtual automaton over the
// encoded index q = qy·nA + qx that never materializes the nA·nB transition
// table, plus eager materialization into a concrete automaton.Automaton
// when one is actually needed (or when only a pruned subset of states is
// wanted, as supervisor synthesis requires).
//
// Grounded on original_source/libcldes/cldes/src/operations/SuperProxyCore.hpp,
// which builds exactly this index encoding and the same shared/soloA/soloB
// event partition; restated here as a plain Go value implementing
// automaton.Base instead of a CRTP proxy template.
package product

import (
	"sort"

	"github.com/godes/cldes/automaton"
	"github.com/godes/cldes/eventset"
)

// Product is a lazy view over two factor automata A and B. It implements
// automaton.Base directly: every query decodes the encoded index, consults
// the factors, and re-encodes, without ever allocating a transition table
// of its own.
//
// Product holds non-owning references to A and B; its lifetime must not
// exceed either factor's, the same borrowing discipline
// SuperProxyCore.hpp's reference members impose on the original.
type Product struct {
	a, b automaton.Base
	nA   int

	shared, soloA, soloB eventset.Set
}

// New returns the lazy product of a and b. shared/soloA/soloB and nA are
// computed once here and never change, since a Product's factors are
// treated as immutable for its entire lifetime.
func New(a, b automaton.Base) *Product {
	shared := a.Alphabet().Intersect(b.Alphabet())
	return &Product{
		a:      a,
		b:      b,
		nA:     a.Size(),
		shared: shared,
		soloA:  shared.Complement(a.Alphabet()),
		soloB:  shared.Complement(b.Alphabet()),
	}
}

// encode packs (qx, qy) into the product's linear index, A-index fastest.
func (p *Product) encode(qx, qy int) int { return qy*p.nA + qx }

// decode unpacks a product index into (qx, qy).
func (p *Product) decode(q int) (qx, qy int) { return q % p.nA, q / p.nA }

// Encode is the exported form of encode, the inverse of Decode.
func (p *Product) Encode(qx, qy int) int { return p.encode(qx, qy) }

// Decode is the exported form of decode, used by supervisor synthesis to
// recover the plant coordinate qx needed for the controllability check.
func (p *Product) Decode(q int) (qx, qy int) { return p.decode(q) }

// Size returns nA·nB.
func (p *Product) Size() int { return p.a.Size() * p.b.Size() }

// Initial returns the encoded initial state (qx0, qy0).
func (p *Product) Initial() int { return p.encode(p.a.Initial(), p.b.Initial()) }

// Marked returns every encoded state (qx, qy) with qx marked in A and qy
// marked in B, ascending: |Marked()| = |A.Marked()| · |B.Marked()|.
func (p *Product) Marked() []int {
	out := make([]int, 0, len(p.a.Marked())*len(p.b.Marked()))
	for _, qy := range p.b.Marked() {
		for _, qx := range p.a.Marked() {
			out = append(out, p.encode(qx, qy))
		}
	}
	sort.Ints(out)
	return out
}

// Alphabet returns Σ_A ∪ Σ_B.
func (p *Product) Alphabet() eventset.Set { return p.a.Alphabet().Union(p.b.Alphabet()) }

// StateEvents returns the events enabled at the product state q, per the
// partition rule: (out_A[qx] ∩ out_B[qy]) ∪ (out_A[qx] ∩ soloA) ∪
// (out_B[qy] ∩ soloB).
func (p *Product) StateEvents(q int) eventset.Set {
	qx, qy := p.decode(q)
	outA, outB := p.a.StateEvents(qx), p.b.StateEvents(qy)
	return outA.Intersect(outB).
		Union(outA.Intersect(p.soloA)).
		Union(outB.Intersect(p.soloB))
}

// InvStateEvents returns the events on edges arriving at q under the same
// partition rule applied to the factors' inverse graphs: (in_A[qx] ∩
// in_B[qy]) ∪ (in_A[qx] ∩ soloA) ∪ (in_B[qy] ∩ soloB). Both factors must
// have had AllocateInverted called.
func (p *Product) InvStateEvents(q int) eventset.Set {
	qx, qy := p.decode(q)
	inA, inB := p.a.InvStateEvents(qx), p.b.InvStateEvents(qy)
	return inA.Intersect(inB).
		Union(inA.Intersect(p.soloA)).
		Union(inB.Intersect(p.soloB))
}

// ContainsTrans reports whether δ_P(q, e) is defined.
func (p *Product) ContainsTrans(q, e int) bool {
	_, ok := p.Trans(q, e)
	return ok
}

// Trans applies the partitioned synchronization rule: if e is shared, both
// factors must step on e; if e ∈ soloA, only A steps; if e ∈ soloB, only B
// steps. The result re-encodes the stepped pair.
func (p *Product) Trans(q, e int) (int, bool) {
	qx, qy := p.decode(q)
	switch {
	case p.shared.Test(e):
		nqx, ok := p.a.Trans(qx, e)
		if !ok {
			return 0, false
		}
		nqy, ok := p.b.Trans(qy, e)
		if !ok {
			return 0, false
		}
		return p.encode(nqx, nqy), true
	case p.soloA.Test(e):
		nqx, ok := p.a.Trans(qx, e)
		if !ok {
			return 0, false
		}
		return p.encode(nqx, qy), true
	case p.soloB.Test(e):
		nqy, ok := p.b.Trans(qy, e)
		if !ok {
			return 0, false
		}
		return p.encode(qx, nqy), true
	default:
		return 0, false
	}
}

// ContainsInvTrans reports whether some predecessor x′ has δ_P(x′, e) = q.
func (p *Product) ContainsInvTrans(q, e int) (bool, error) {
	preds, err := p.InvTrans(q, e)
	return len(preds) > 0, err
}

// InvTrans returns every predecessor x′ with δ_P(x′, e) = q. For e ∈
// shared, it is the cross product of the two children's preimage lists in
// canonical encoding order (qy_from outer, qx_from inner); for a solo
// event, only the stepping factor's preimage varies and the other
// coordinate is held fixed at q's.
func (p *Product) InvTrans(q, e int) ([]int, error) {
	qx, qy := p.decode(q)
	switch {
	case p.shared.Test(e):
		fromXs, err := p.a.InvTrans(qx, e)
		if err != nil {
			return nil, err
		}
		fromYs, err := p.b.InvTrans(qy, e)
		if err != nil {
			return nil, err
		}
		out := make([]int, 0, len(fromXs)*len(fromYs))
		for _, fy := range fromYs {
			for _, fx := range fromXs {
				out = append(out, p.encode(fx, fy))
			}
		}
		sort.Ints(out)
		return out, nil
	case p.soloA.Test(e):
		fromXs, err := p.a.InvTrans(qx, e)
		if err != nil {
			return nil, err
		}
		out := make([]int, 0, len(fromXs))
		for _, fx := range fromXs {
			out = append(out, p.encode(fx, qy))
		}
		sort.Ints(out)
		return out, nil
	case p.soloB.Test(e):
		fromYs, err := p.b.InvTrans(qy, e)
		if err != nil {
			return nil, err
		}
		out := make([]int, 0, len(fromYs))
		for _, fy := range fromYs {
			out = append(out, p.encode(qx, fy))
		}
		sort.Ints(out)
		return out, nil
	default:
		return nil, nil
	}
}

// AllocateInverted forwards to both factors.
func (p *Product) AllocateInverted() {
	p.a.AllocateInverted()
	p.b.AllocateInverted()
}

// ClearInverted forwards to both factors.
func (p *Product) ClearInverted() {
	p.a.ClearInverted()
	p.b.ClearInverted()
}

// SoloA returns Σ_A \ shared, the events only A reacts to.
func (p *Product) SoloA() eventset.Set { return p.soloA }

// SoloB returns Σ_B \ shared, the events only B reacts to.
func (p *Product) SoloB() eventset.Set { return p.soloB }

// Shared returns Σ_A ∩ Σ_B.
func (p *Product) Shared() eventset.Set { return p.shared }
