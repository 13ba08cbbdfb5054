package automaton

import (
	"fmt"
	"sort"

	"github.com/godes/cldes/errs"
	"github.com/godes/cldes/eventset"
	"github.com/godes/cldes/sparsebit"
)

// Automaton is the concrete, sparse bit-packed representation of a discrete
// event system: a state count, an initial state, a marked set, an alphabet,
// and a transition function stored as an EventMatrix (G) paired with its
// structural nonzero-pattern BitMatrix (B = nonzero(G)ᵀ ∪ I, see Seal), grounded on
// original_source/libcldes/cldes/DESystem.hpp. It implements Base.
type Automaton struct {
	n         int
	q0        int
	markedSet []int

	sigma eventset.Set

	g *sparsebit.EventMatrix // transition function, row-major
	b *sparsebit.BitMatrix   // transpose of nonzero(g) ∪ identity, the reachability kernel

	invG *sparsebit.EventMatrix // transpose of g, allocated on demand
	out  []eventset.Set         // out[q]: events enabled at q
	in   []eventset.Set         // in[q]: events on edges into q, valid once invG is set

	// edgeTarget detects nondeterminism at insert time: key is
	// i*eventset.MaxEvents+e, value is the single target state already
	// recorded for that (state, event) pair.
	edgeTarget map[int]int

	sealed bool
	cfg    Config
}

// New builds an Automaton with n states, initial state q0, and the given
// marked states. The transition function starts empty; use Edit to populate
// it before calling any reachability or query method other than Size,
// Initial, and Marked.
func New(n, q0 int, marked []int, opts ...Option) (*Automaton, error) {
	if n <= 0 {
		return nil, errs.New("automaton.New", errs.InvalidState, fmt.Errorf("state count must be positive, got %d", n))
	}
	if q0 < 0 || q0 >= n {
		return nil, errs.New("automaton.New", errs.InvalidState, fmt.Errorf("initial state %d out of range for %d states", q0, n))
	}
	markedSet := append([]int(nil), marked...)
	sort.Ints(markedSet)
	for _, q := range markedSet {
		if q < 0 || q >= n {
			return nil, errs.New("automaton.New", errs.InvalidState, fmt.Errorf("marked state %d out of range for %d states", q, n))
		}
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Automaton{
		n:          n,
		q0:         q0,
		markedSet:  markedSet,
		g:          sparsebit.NewEventMatrix(n),
		out:        make([]eventset.Set, n),
		edgeTarget: make(map[int]int),
		cfg:        cfg,
	}
	return a, nil
}

// Size returns the number of states.
func (a *Automaton) Size() int { return a.n }

// Initial returns the initial state.
func (a *Automaton) Initial() int { return a.q0 }

// Marked returns the marked states, ascending. The caller must not mutate
// the returned slice.
func (a *Automaton) Marked() []int { return a.markedSet }

// IsMarked reports whether q is a marked state.
func (a *Automaton) IsMarked(q int) bool {
	i := sort.SearchInts(a.markedSet, q)
	return i < len(a.markedSet) && a.markedSet[i] == q
}

// Alphabet returns the alphabet Σ actually in use, the union of every
// inserted transition's event plus any events set through DebugSetAlphabet.
func (a *Automaton) Alphabet() eventset.Set { return a.sigma }

// DebugSetAlphabet widens the reported alphabet to include every event in
// extra, without requiring a transition to exist for it. Supplemented over
// the original's implicit alphabet (inferred purely from edges present) so
// that tests and tooling can assert on a nominal Σ that includes events the
// automaton deliberately disables at every state.
func (a *Automaton) DebugSetAlphabet(extra eventset.Set) {
	a.sigma = a.sigma.Union(extra)
}

func (a *Automaton) ensureSealed() {
	if !a.sealed {
		a.Seal()
	}
}

// Seal compresses the transition function built so far into CSR form and
// derives the structural bit matrix B = in_bits(G) ∪ I, grounded on
// original_source/libcldes/cldes/DESystem.hpp's bit_graph_ = in_bits + I: B
// is stored transposed relative to G (B[i][j] set iff an edge j→i exists) so
// that the boolean SpGEMM step y = B·x, with y[i] = ⋁_j B[i][j]∧x[j], grows
// the set of states reachable by following an edge forward into i from an
// already-reached predecessor j. AccessiblePart uses B directly; the
// coaccessibility fixpoint uses B's transpose (outgoing edges) instead.
func (a *Automaton) Seal() {
	a.g.Seal()
	structural := a.g.BitMatrix()
	b := sparsebit.New(a.n)
	for i := 0; i < a.n; i++ {
		_ = b.Add(i, i)
	}
	for i := 0; i < a.n; i++ {
		for _, j := range structural.Row(i) {
			_ = b.Add(j, i)
		}
	}
	b.Seal()
	a.b = b
	a.sealed = true
}
