// Package eventset implements a fixed-width bit set over event ids.
//
// A Set models the alphabet Σ (or any subset of it) of a discrete event
// system: event ids are integers in [0, MaxEvents), and every operation is
// a handful of word-sized instructions — no dynamic resizing, no heap
// allocation on the hot path of union/intersection/test.
package eventset

import "math/bits"

// MaxEvents is the compile-time cap on the number of distinct events an
// automaton's alphabet may contain. Event ids are drawn from [0, MaxEvents).
const MaxEvents = 255

// words is the number of uint64 words backing a Set: 255 bits round up to
// four 64-bit words, the same layout a fixed-width bitset over a byte-sized
// universe always uses.
const words = 4

// Set is a fixed-width bit vector of length MaxEvents. The zero value is
// the empty set and is ready to use.
type Set struct {
	bits [words]uint64
}

// Of builds a Set containing exactly the given event ids.
func Of(events ...int) Set {
	var s Set
	for _, e := range events {
		s.Set(e)
	}
	return s
}

// Test reports whether event e is a member of the set.
func (s Set) Test(e int) bool {
	if e < 0 || e >= MaxEvents {
		return false
	}
	return s.bits[e>>6]&(1<<(uint(e)&63)) != 0
}

// Set adds event e to the set. Out-of-range ids are silently ignored, the
// way spec'd callers (e.g. SupervisorSynth's Unc parameter) are expected to
// tolerate event ids beyond the alphabet cap.
func (s *Set) Set(e int) {
	if e < 0 || e >= MaxEvents {
		return
	}
	s.bits[e>>6] |= 1 << (uint(e) & 63)
}

// Clear removes event e from the set.
func (s *Set) Clear(e int) {
	if e < 0 || e >= MaxEvents {
		return
	}
	s.bits[e>>6] &^= 1 << (uint(e) & 63)
}

// Any reports whether the set has at least one member.
func (s Set) Any() bool {
	return s.bits[0] != 0 || s.bits[1] != 0 || s.bits[2] != 0 || s.bits[3] != 0
}

// None reports whether the set is empty.
func (s Set) None() bool {
	return !s.Any()
}

// Popcount returns the number of set bits.
func (s Set) Popcount() int {
	return bits.OnesCount64(s.bits[0]) + bits.OnesCount64(s.bits[1]) +
		bits.OnesCount64(s.bits[2]) + bits.OnesCount64(s.bits[3])
}

// Union returns the bitwise OR of s and o.
func (s Set) Union(o Set) Set {
	return Set{[words]uint64{
		s.bits[0] | o.bits[0],
		s.bits[1] | o.bits[1],
		s.bits[2] | o.bits[2],
		s.bits[3] | o.bits[3],
	}}
}

// Intersect returns the bitwise AND of s and o.
func (s Set) Intersect(o Set) Set {
	return Set{[words]uint64{
		s.bits[0] & o.bits[0],
		s.bits[1] & o.bits[1],
		s.bits[2] & o.bits[2],
		s.bits[3] & o.bits[3],
	}}
}

// SymmetricDifference returns the bitwise XOR of s and o.
func (s Set) SymmetricDifference(o Set) Set {
	return Set{[words]uint64{
		s.bits[0] ^ o.bits[0],
		s.bits[1] ^ o.bits[1],
		s.bits[2] ^ o.bits[2],
		s.bits[3] ^ o.bits[3],
	}}
}

// Complement returns the complement of s within universe (events present in
// universe but not in s).
func (s Set) Complement(universe Set) Set {
	return Set{[words]uint64{
		universe.bits[0] &^ s.bits[0],
		universe.bits[1] &^ s.bits[1],
		universe.bits[2] &^ s.bits[2],
		universe.bits[3] &^ s.bits[3],
	}}
}

// Subset reports whether s is a subset of o (s ⊆ o ⇔ s ∧ ¬o = 0).
func (s Set) Subset(o Set) bool {
	return s.bits[0]&^o.bits[0] == 0 &&
		s.bits[1]&^o.bits[1] == 0 &&
		s.bits[2]&^o.bits[2] == 0 &&
		s.bits[3]&^o.bits[3] == 0
}

// Equal reports whether s and o contain exactly the same events.
func (s Set) Equal(o Set) bool {
	return s.bits == o.bits
}

// Shift returns a set with every member event id increased by n (members
// that would land at or beyond MaxEvents are dropped).
func (s Set) Shift(n int) Set {
	var out Set
	s.Each(func(e int) {
		out.Set(e + n)
	})
	return out
}

// First returns the lowest member event id and true, or (0, false) if s is
// empty.
func (s Set) First() (int, bool) {
	return s.Next(-1)
}

// Next returns the smallest member event id strictly greater than from, and
// true, or (0, false) if there is none. Calling Next repeatedly starting at
// -1 enumerates the set's members in ascending order, mirroring the
// FirstSet/NextSet idiom of a fixed bitset and the ascending StateIter
// contract used elsewhere in this module.
func (s Set) Next(from int) (int, bool) {
	e := from + 1
	if e < 0 {
		e = 0
	}
	if e >= MaxEvents {
		return 0, false
	}
	word := e >> 6
	bit := uint(e) & 63

	first := s.bits[word] >> bit
	if first != 0 {
		return e + bits.TrailingZeros64(first), true
	}
	for w := word + 1; w < words; w++ {
		if s.bits[w] != 0 {
			return w<<6 + bits.TrailingZeros64(s.bits[w]), true
		}
	}
	return 0, false
}

// Each calls f once for every member event id, in ascending order.
func (s Set) Each(f func(e int)) {
	for e, ok := s.First(); ok; e, ok = s.Next(e) {
		f(e)
	}
}

// Slice returns the set's members as a sorted slice.
func (s Set) Slice() []int {
	out := make([]int, 0, s.Popcount())
	s.Each(func(e int) { out = append(out, e) })
	return out
}
