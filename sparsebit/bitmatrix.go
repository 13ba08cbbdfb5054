// Package sparsebit implements the two sparse matrix types the automaton
// package builds its traversal primitives on: BitMatrix, a square sparse
// boolean adjacency matrix, and EventMatrix, the same shape with an
// eventset.Set as the nonzero value instead of a bare boolean.
//
// Both types share the same build/seal lifecycle, grounded on the
// teacher's internal/sparse.SparseSet: triplets accumulate during a build
// phase, then Seal sorts and compresses them into a row-compressed (CSR)
// form that supports O(1) amortized row iteration. Building into a sealed
// matrix is a programmer error for direct callers; Automaton (the only
// caller that edits after seal) reopens explicitly via Unseal.
package sparsebit

import (
	"fmt"
	"sort"

	"github.com/godes/cldes/errs"
)

// BitMatrix is a square sparse boolean matrix with CSR-style storage.
// Row and column iteration are both supported: column-major access is
// obtained by calling Transpose, which returns a new BitMatrix rather than
// maintaining a second physical layout — the matrices this package serves
// are rebuilt far less often than they are traversed, so a one-time
// transpose amortizes better than dual CSR+CSC bookkeeping on every edit.
type BitMatrix struct {
	n        int
	sealed   bool
	triplets []bitTriplet

	rowStart []int // len n+1
	cols     []int // len nnz, ascending within each row
}

type bitTriplet struct{ i, j int }

// New returns an empty, unsealed n×n BitMatrix.
func New(n int) *BitMatrix {
	return &BitMatrix{n: n}
}

// Identity returns a sealed n×n BitMatrix with exactly the diagonal set —
// the structural "everybody has a self-loop" matrix I.
func Identity(n int) *BitMatrix {
	m := New(n)
	for i := 0; i < n; i++ {
		m.triplets = append(m.triplets, bitTriplet{i, i})
	}
	m.Seal()
	return m
}

// N returns the matrix's dimension.
func (m *BitMatrix) N() int { return m.n }

// Sealed reports whether the matrix is in its compressed, read-only form.
func (m *BitMatrix) Sealed() bool { return m.sealed }

// Resize changes the matrix dimension. Only valid before Seal.
func (m *BitMatrix) Resize(n int) error {
	if m.sealed {
		return errs.New("BitMatrix.Resize", errs.SealedMutation, nil)
	}
	m.n = n
	return nil
}

// Add inserts the bit (i, j). Building into a sealed matrix is a
// programmer error, reported as errs.SealedMutation — callers that need to
// mutate a sealed matrix must call Unseal first.
func (m *BitMatrix) Add(i, j int) error {
	if m.sealed {
		return errs.New("BitMatrix.Add", errs.SealedMutation, nil)
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return errs.New("BitMatrix.Add", errs.InvalidState, fmt.Errorf("(%d, %d) out of range for %d states", i, j, m.n))
	}
	m.triplets = append(m.triplets, bitTriplet{i, j})
	return nil
}

// Unseal reopens a sealed matrix for further Add calls, re-deriving the
// triplet list from the current compressed rows. Idempotent.
func (m *BitMatrix) Unseal() {
	if !m.sealed {
		return
	}
	m.triplets = m.triplets[:0]
	for i := 0; i < m.n; i++ {
		for _, j := range m.cols[m.rowStart[i]:m.rowStart[i+1]] {
			m.triplets = append(m.triplets, bitTriplet{i, j})
		}
	}
	m.sealed = false
}

// Seal sorts and deduplicates the accumulated triplets into compressed
// rows. Idempotent: sealing an already-sealed matrix is a no-op.
func (m *BitMatrix) Seal() {
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

	ti := 0
	for i := 0; i < m.n; i++ {
		m.rowStart[i] = len(m.cols)
		for ti < len(m.triplets) && m.triplets[ti].i == i {
			j := m.triplets[ti].j
			if len(m.cols) == m.rowStart[i] || m.cols[len(m.cols)-1] != j {
				m.cols = append(m.cols, j)
			}
			ti++
		}
	}
	m.rowStart[m.n] = len(m.cols)

	m.triplets = nil
	m.sealed = true
}

// Row returns the sorted, deduplicated column indices of row i's nonzero
// entries. The returned slice must not be mutated by the caller.
func (m *BitMatrix) Row(i int) []int {
	if !m.sealed || i < 0 || i >= m.n {
		return nil
	}
	return m.cols[m.rowStart[i]:m.rowStart[i+1]]
}

// Test reports whether bit (i, j) is set.
func (m *BitMatrix) Test(i, j int) bool {
	if !m.sealed || i < 0 || i >= m.n {
		return false
	}
	row := m.cols[m.rowStart[i]:m.rowStart[i+1]]
	idx := sort.SearchInts(row, j)
	return idx < len(row) && row[idx] == j
}

// NNZ returns the number of nonzero entries.
func (m *BitMatrix) NNZ() int {
	if !m.sealed {
		return len(m.triplets)
	}
	return len(m.cols)
}

// Clone returns a deep copy of m, independent of further edits to either.
func (m *BitMatrix) Clone() *BitMatrix {
	c := &BitMatrix{n: m.n, sealed: m.sealed}
	c.triplets = append([]bitTriplet(nil), m.triplets...)
	c.rowStart = append([]int(nil), m.rowStart...)
	c.cols = append([]int(nil), m.cols...)
	return c
}

// Transpose returns a new, sealed BitMatrix equal to the transpose of m.
func (m *BitMatrix) Transpose() *BitMatrix {
	t := New(m.n)
	for i := 0; i < m.n; i++ {
		for _, j := range m.Row(i) {
			t.triplets = append(t.triplets, bitTriplet{j, i})
		}
	}
	t.Seal()
	return t
}

// SpGEMMBool computes y = m · x over the boolean semiring (OR of ANDs):
// y[i] = 1 iff some j has m[i][j] = 1 and x[j] = 1. Cost is O(nnz(m)), the
// same bound spec'd for one BFS step.
func (m *BitMatrix) SpGEMMBool(x *BitVector) *BitVector {
	y := NewBitVector(m.n)
	for i := 0; i < m.n; i++ {
		for _, j := range m.Row(i) {
			if x.Test(j) {
				y.Set(i)
				break
			}
		}
	}
	return y
}
