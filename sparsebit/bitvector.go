package sparsebit

import "math/bits"

// BitVector is a dense-packed 0/1 vector of length n, used by the
// reachability engine to represent the current BFS frontier — spec.md's
// "sparse column vector x of length n over {0,1}". Unlike eventset.Set it
// is sized at runtime to the automaton's state count, which has no
// compile-time cap.
type BitVector struct {
	bits []uint64
	n    int
}

// NewBitVector returns a zeroed vector of length n.
func NewBitVector(n int) *BitVector {
	return &BitVector{bits: make([]uint64, (n+63)/64), n: n}
}

// Set marks index i as 1.
func (v *BitVector) Set(i int) {
	if i < 0 || i >= v.n {
		return
	}
	v.bits[i>>6] |= 1 << (uint(i) & 63)
}

// Test reports whether index i is 1.
func (v *BitVector) Test(i int) bool {
	if i < 0 || i >= v.n {
		return false
	}
	return v.bits[i>>6]&(1<<(uint(i)&63)) != 0
}

// Len returns the vector's length n.
func (v *BitVector) Len() int { return v.n }

// Popcount returns the number of 1 entries.
func (v *BitVector) Popcount() int {
	c := 0
	for _, w := range v.bits {
		c += bits.OnesCount64(w)
	}
	return c
}

// Equal reports whether v and o have the same length and the same bits
// set — used by the reachability engine's fixpoint test (y = x).
func (v *BitVector) Equal(o *BitVector) bool {
	if v.n != o.n {
		return false
	}
	for i := range v.bits {
		if v.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// Union computes v |= o in place and returns v.
func (v *BitVector) Union(o *BitVector) *BitVector {
	for i := range v.bits {
		v.bits[i] |= o.bits[i]
	}
	return v
}

// Each calls f once for every set index, in ascending order.
func (v *BitVector) Each(f func(i int)) {
	for w, word := range v.bits {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			idx := w<<6 + b
			if idx >= v.n {
				return
			}
			f(idx)
			word &= word - 1
		}
	}
}

// Slice returns the set indices as a sorted slice.
func (v *BitVector) Slice() []int {
	out := make([]int, 0, v.Popcount())
	v.Each(func(i int) { out = append(out, i) })
	return out
}

// FromStates returns a BitVector of length n with exactly the given
// indices set.
func FromStates(n int, states ...int) *BitVector {
	v := NewBitVector(n)
	for _, s := range states {
		v.Set(s)
	}
	return v
}
