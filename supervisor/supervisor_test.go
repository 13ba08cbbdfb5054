package supervisor

import (
	"testing"

	"github.com/godes/cldes/automaton"
	"github.com/godes/cldes/eventset"
)

// buildS5Plant builds spec scenario S5's plant P: n=4, q0=0, M={0}, events
// a0=0, a1=1, b0=2, b1=3.
func buildS5Plant(t *testing.T) *automaton.Automaton {
	t.Helper()
	p, err := automaton.New(4, 0, []int{0})
	if err != nil {
		t.Fatalf("automaton.New: %v", err)
	}
	ed := p.Edit()
	edges := [][3]int{
		{0, 0, 1}, // 0-a0->1
		{0, 1, 2}, // 0-a1->2
		{1, 2, 0}, // 1-b0->0
		{1, 1, 3}, // 1-a1->3
		{2, 3, 0}, // 2-b1->0
		{2, 0, 3}, // 2-a0->3
		{3, 3, 1}, // 3-b1->1
		{3, 2, 2}, // 3-b0->2
	}
	for _, e := range edges {
		if err := ed.Insert(e[0], e[1], e[2]); err != nil {
			t.Fatalf("Insert%v: %v", e, err)
		}
	}
	ed.Close()
	return p
}

// buildS5Spec builds spec scenario S5's specification E: n=2, q0=0,
// M={0,1}, events a1=1, b0=2.
func buildS5Spec(t *testing.T) *automaton.Automaton {
	t.Helper()
	e, err := automaton.New(2, 0, []int{0, 1})
	if err != nil {
		t.Fatalf("automaton.New: %v", err)
	}
	ed := e.Edit()
	if err := ed.Insert(0, 2, 1); err != nil { // 0-b0->1
		t.Fatalf("Insert: %v", err)
	}
	if err := ed.Insert(1, 1, 0); err != nil { // 1-a1->0
		t.Fatalf("Insert: %v", err)
	}
	ed.Close()
	return e
}

func TestS5SupervisorSynth(t *testing.T) {
	p := buildS5Plant(t)
	e := buildS5Spec(t)
	unc := eventset.Of(2, 3) // b0, b1

	s, err := Synth(p, e, unc)
	if err != nil {
		t.Fatalf("Synth: %v", err)
	}
	if s.Size() != 6 {
		t.Fatalf("supervisor size = %d, want 6", s.Size())
	}
	if s.Initial() != 0 {
		t.Errorf("supervisor Initial() = %d, want 0", s.Initial())
	}

	// a0=0, a1=1, b0=2, b1=3. Expected adjacency per spec scenario S5.
	want := map[[2]int]int{
		{0, 0}: 1,
		{1, 2}: 4,
		{2, 0}: 3, {2, 3}: 0,
		{3, 2}: 5, {3, 3}: 1,
		{4, 1}: 2,
		{5, 3}: 4,
	}
	for from := 0; from < 6; from++ {
		for ev := 0; ev < 4; ev++ {
			got, ok := s.Trans(from, ev)
			want_, wantOk := want[[2]int{from, ev}]
			if ok != wantOk || (ok && got != want_) {
				t.Errorf("Trans(%d, %d) = (%d, %v), want (%d, %v)", from, ev, got, ok, want_, wantOk)
			}
		}
	}
}

// TestSupCWithEmptyUncIsJustTrim checks that when Unc is empty nothing can
// ever be "forced", so synthesis of the S5 plant against an identical copy
// of itself retains as many states as Trim retains on its own. It does not
// check the general controllability invariant (Unc ∩ out_P[qx] ⊆ out_S[s]):
// Synth does not expose the (qx, qy) decoding for the finished automaton.
func TestSupCWithEmptyUncIsJustTrim(t *testing.T) {
	p := buildS5Plant(t)
	self := buildS5Plant(t)

	s, err := Synth(p, self, eventset.Set{})
	if err != nil {
		t.Fatalf("Synth: %v", err)
	}

	trimmed, err := p.Trim()
	if err != nil {
		t.Fatalf("Trim: %v", err)
	}
	// supC(A, A, ∅) ≅ trim(A): same state count, since the shared-event
	// product of an automaton with an identical copy of itself is
	// isomorphic to the automaton itself restricted to its own alphabet.
	if s.Size() != trimmed.Size() {
		t.Errorf("supC(A, A, ∅).Size() = %d, want trim(A).Size() = %d", s.Size(), trimmed.Size())
	}
}
