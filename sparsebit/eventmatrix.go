package sparsebit

import (
	"fmt"
	"sort"

	"github.com/godes/cldes/errs"
	"github.com/godes/cldes/eventset"
)

// EventMatrix is a square sparse matrix whose nonzero entries are
// eventset.Set values: EventMatrix[i][j] is the set of events labeling the
// edge i→j. It shares BitMatrix's triplet-build/Seal lifecycle, but a
// repeated Add for the same (i, j) accumulates by OR instead of being
// deduplicated away.
type EventMatrix struct {
	n        int
	sealed   bool
	triplets []eventTriplet

	rowStart []int
	cols     []int
	vals     []eventset.Set
}

type eventTriplet struct {
	i, j int
	set  eventset.Set
}

// NewEventMatrix returns an empty, unsealed n×n EventMatrix.
func NewEventMatrix(n int) *EventMatrix {
	return &EventMatrix{n: n}
}

// N returns the matrix's dimension.
func (m *EventMatrix) N() int { return m.n }

// Sealed reports whether the matrix is in its compressed, read-only form.
func (m *EventMatrix) Sealed() bool { return m.sealed }

// Resize changes the matrix dimension. Only valid before Seal.
func (m *EventMatrix) Resize(n int) error {
	if m.sealed {
		return errs.New("EventMatrix.Resize", errs.SealedMutation, nil)
	}
	m.n = n
	return nil
}

// Add ORs event e into entry (i, j).
func (m *EventMatrix) Add(i, j, e int) error {
	if m.sealed {
		return errs.New("EventMatrix.Add", errs.SealedMutation, nil)
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return errs.New("EventMatrix.Add", errs.InvalidState, fmt.Errorf("(%d, %d) out of range for %d states", i, j, m.n))
	}
	if e < 0 || e >= eventset.MaxEvents {
		return errs.New("EventMatrix.Add", errs.InvalidEvent, fmt.Errorf("event %d out of range", e))
	}
	s := eventset.Of(e)
	m.triplets = append(m.triplets, eventTriplet{i, j, s})
	return nil
}

// Unseal reopens a sealed matrix for further Add calls, re-deriving the
// triplet list from the current compressed rows.
func (m *EventMatrix) Unseal() {
	if !m.sealed {
		return
	}
	m.triplets = m.triplets[:0]
	for i := 0; i < m.n; i++ {
		lo, hi := m.rowStart[i], m.rowStart[i+1]
		for k := lo; k < hi; k++ {
			m.triplets = append(m.triplets, eventTriplet{i, m.cols[k], m.vals[k]})
		}
	}
	m.sealed = false
}

// Seal sorts the accumulated triplets by (i, j) and merges duplicate
// (i, j) pairs by OR-ing their event sets, compressing into CSR form.
func (m *EventMatrix) Seal() {
	if m.sealed {
		return
	}
	sort.Slice(m.triplets, func(a, b int) bool {
		if m.triplets[a].i != m.triplets[b].i {
			return m.triplets[a].i < m.triplets[b].i
		}
		return m.triplets[a].j < m.triplets[b].j
	})

	m.rowStart = make([]int, m.n+1)
	m.cols = make([]int, 0, len(m.triplets))
	m.vals = make([]eventset.Set, 0, len(m.triplets))

	ti := 0
	for i := 0; i < m.n; i++ {
		m.rowStart[i] = len(m.cols)
		for ti < len(m.triplets) && m.triplets[ti].i == i {
			t := m.triplets[ti]
			if n := len(m.cols); n > m.rowStart[i] && m.cols[n-1] == t.j {
				m.vals[n-1] = m.vals[n-1].Union(t.set)
			} else {
				m.cols = append(m.cols, t.j)
				m.vals = append(m.vals, t.set)
			}
			ti++
		}
	}
	m.rowStart[m.n] = len(m.cols)

	m.triplets = nil
	m.sealed = true
}

// Row returns the sorted (column, events) pairs for row i's nonzero
// entries. The returned slices must not be mutated by the caller.
func (m *EventMatrix) Row(i int) (cols []int, vals []eventset.Set) {
	if !m.sealed || i < 0 || i >= m.n {
		return nil, nil
	}
	lo, hi := m.rowStart[i], m.rowStart[i+1]
	return m.cols[lo:hi], m.vals[lo:hi]
}

// Get returns the event set labeling edge (i, j), or the empty set if
// there is none.
func (m *EventMatrix) Get(i, j int) eventset.Set {
	if !m.sealed || i < 0 || i >= m.n {
		return eventset.Set{}
	}
	cols := m.cols[m.rowStart[i]:m.rowStart[i+1]]
	idx := sort.SearchInts(cols, j)
	if idx < len(cols) && cols[idx] == j {
		return m.vals[m.rowStart[i]+idx]
	}
	return eventset.Set{}
}

// NNZ returns the number of nonzero (i, j) entries (not the number of
// events — a single entry may carry several events).
func (m *EventMatrix) NNZ() int {
	if !m.sealed {
		return len(m.triplets)
	}
	return len(m.cols)
}

// Clone returns a deep copy of m, independent of further edits to either.
func (m *EventMatrix) Clone() *EventMatrix {
	c := &EventMatrix{n: m.n, sealed: m.sealed}
	c.triplets = append([]eventTriplet(nil), m.triplets...)
	c.rowStart = append([]int(nil), m.rowStart...)
	c.cols = append([]int(nil), m.cols...)
	c.vals = append([]eventset.Set(nil), m.vals...)
	return c
}

// Transpose returns a new, sealed EventMatrix equal to the transpose of m:
// entry (j, i) of the result carries the same event set as entry (i, j) of
// m. Used by Automaton.AllocateInverted to build the inverse graph.
func (m *EventMatrix) Transpose() *EventMatrix {
	t := NewEventMatrix(m.n)
	for i := 0; i < m.n; i++ {
		cols, vals := m.Row(i)
		for k, j := range cols {
			t.triplets = append(t.triplets, eventTriplet{j, i, vals[k]})
		}
	}
	t.Seal()
	return t
}

// BitMatrix returns the structural (nonzero-pattern) BitMatrix of m, i.e.
// the matrix with a 1 wherever m's event set is nonempty. Automaton uses
// this to keep its companion bit graph in sync with G.
func (m *EventMatrix) BitMatrix() *BitMatrix {
	b := New(m.n)
	for i := 0; i < m.n; i++ {
		cols, vals := m.Row(i)
		for k, j := range cols {
			if vals[k].Any() {
				b.triplets = append(b.triplets, bitTriplet{i, j})
			}
		}
	}
	b.Seal()
	return b
}
