package eventset

import (
	"reflect"
	"testing"
)

func TestSetTestSetClear(t *testing.T) {
	var s Set
	if s.Test(3) {
		t.Fatal("zero value should not contain 3")
	}
	s.Set(3)
	if !s.Test(3) {
		t.Fatal("expected 3 to be set")
	}
	s.Clear(3)
	if s.Test(3) {
		t.Fatal("expected 3 to be cleared")
	}
}

func TestSetOutOfRangeIgnored(t *testing.T) {
	var s Set
	s.Set(-1)
	s.Set(MaxEvents)
	s.Set(1000)
	if s.Any() {
		t.Fatal("out-of-range Set calls should be no-ops")
	}
	if s.Test(-1) || s.Test(MaxEvents) {
		t.Fatal("out-of-range Test calls should return false")
	}
}

func TestSetPopcount(t *testing.T) {
	tests := []struct {
		events []int
		want   int
	}{
		{nil, 0},
		{[]int{0}, 1},
		{[]int{0, 1, 2}, 3},
		{[]int{0, 63, 64, 127, 128, 254}, 6},
	}
	for _, tt := range tests {
		s := Of(tt.events...)
		if got := s.Popcount(); got != tt.want {
			t.Errorf("Of(%v).Popcount() = %d, want %d", tt.events, got, tt.want)
		}
	}
}

func TestSetUnionIntersect(t *testing.T) {
	a := Of(0, 1, 2)
	b := Of(1, 2, 3)

	union := a.Union(b)
	if !reflect.DeepEqual(union.Slice(), []int{0, 1, 2, 3}) {
		t.Errorf("Union = %v, want [0 1 2 3]", union.Slice())
	}

	inter := a.Intersect(b)
	if !reflect.DeepEqual(inter.Slice(), []int{1, 2}) {
		t.Errorf("Intersect = %v, want [1 2]", inter.Slice())
	}

	xor := a.SymmetricDifference(b)
	if !reflect.DeepEqual(xor.Slice(), []int{0, 3}) {
		t.Errorf("SymmetricDifference = %v, want [0 3]", xor.Slice())
	}
}

func TestSetComplement(t *testing.T) {
	universe := Of(0, 1, 2, 3)
	s := Of(1, 2)
	comp := s.Complement(universe)
	if !reflect.DeepEqual(comp.Slice(), []int{0, 3}) {
		t.Errorf("Complement = %v, want [0 3]", comp.Slice())
	}
}

func TestSetSubset(t *testing.T) {
	tests := []struct {
		a, b Set
		want bool
	}{
		{Of(1, 2), Of(1, 2, 3), true},
		{Of(1, 2, 3), Of(1, 2), false},
		{Set{}, Of(1), true},
		{Of(1), Of(1), true},
	}
	for _, tt := range tests {
		if got := tt.a.Subset(tt.b); got != tt.want {
			t.Errorf("%v.Subset(%v) = %v, want %v", tt.a.Slice(), tt.b.Slice(), got, tt.want)
		}
	}
}

func TestSetEqual(t *testing.T) {
	if !Of(1, 2, 3).Equal(Of(3, 2, 1)) {
		t.Fatal("sets with same members in different insertion order should be equal")
	}
	if Of(1, 2).Equal(Of(1, 2, 3)) {
		t.Fatal("sets with different members should not be equal")
	}
}

func TestSetEnumerationAscending(t *testing.T) {
	s := Of(200, 5, 64, 0, 255) // 255 is out of range and dropped
	var got []int
	s.Each(func(e int) { got = append(got, e) })
	want := []int{0, 5, 64, 200}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Each order = %v, want %v", got, want)
	}
}

func TestSetFirstNext(t *testing.T) {
	s := Of(5, 70, 130)
	e, ok := s.First()
	if !ok || e != 5 {
		t.Fatalf("First() = (%d, %v), want (5, true)", e, ok)
	}
	e, ok = s.Next(e)
	if !ok || e != 70 {
		t.Fatalf("Next(5) = (%d, %v), want (70, true)", e, ok)
	}
	e, ok = s.Next(e)
	if !ok || e != 130 {
		t.Fatalf("Next(70) = (%d, %v), want (130, true)", e, ok)
	}
	_, ok = s.Next(e)
	if ok {
		t.Fatal("Next(130) should report no further members")
	}
}

func TestSetShift(t *testing.T) {
	s := Of(0, 1, 2)
	shifted := s.Shift(10)
	if !reflect.DeepEqual(shifted.Slice(), []int{10, 11, 12}) {
		t.Errorf("Shift(10) = %v, want [10 11 12]", shifted.Slice())
	}
	// shifting past MaxEvents drops the overflowed member
	overflow := Of(MaxEvents - 1).Shift(5)
	if overflow.Any() {
		t.Errorf("Shift past MaxEvents should drop overflowed members, got %v", overflow.Slice())
	}
}

func TestSetAnyNone(t *testing.T) {
	var empty Set
	if empty.Any() {
		t.Error("empty set Any() should be false")
	}
	if !empty.None() {
		t.Error("empty set None() should be true")
	}
	full := Of(1)
	if !full.Any() || full.None() {
		t.Error("non-empty set Any()/None() mismatch")
	}
}
