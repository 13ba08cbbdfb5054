package automaton

import (
	"reflect"
	"testing"

	"github.com/godes/cldes/errs"
	"github.com/godes/cldes/eventset"
)

// buildS1 builds the automaton from spec scenario S1: n=4, q0=0, M={0,2},
// Σ={a=0,b=1,g=2}. The conflicting "2-a->1" listed alongside "2-a->3" is
// resolved in favor of 2-a->3, the assignment required for state 3 to be
// reachable at all (S1's own AccessiblePart claim depends on it).
func buildS1(t *testing.T) *Automaton {
	t.Helper()
	a, err := New(4, 0, []int{0, 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ed := a.Edit()
	edges := [][3]int{
		{0, 0, 0}, // 0-a->0
		{0, 2, 2}, // 0-g->2
		{1, 0, 0}, // 1-a->0
		{1, 1, 1}, // 1-b->1
		{2, 2, 1}, // 2-g->1
		{2, 1, 2}, // 2-b->2
		{2, 0, 3}, // 2-a->3
	}
	for _, e := range edges {
		if err := ed.Insert(e[0], e[1], e[2]); err != nil {
			t.Fatalf("Insert%v: %v", e, err)
		}
	}
	ed.Close()
	return a
}

func TestS1AccessibleCoaccessibleTrim(t *testing.T) {
	a := buildS1(t)

	if got := a.AccessiblePart(); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Errorf("AccessiblePart = %v, want [0 1 2 3]", got)
	}
	if got := a.CoaccessiblePart(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("CoaccessiblePart = %v, want [0 1 2]", got)
	}
	if got := a.TrimStates(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("TrimStates = %v, want [0 1 2]", got)
	}

	trimmed, err := a.Trim()
	if err != nil {
		t.Fatalf("Trim: %v", err)
	}
	if trimmed.Size() != 3 {
		t.Errorf("trimmed.Size() = %d, want 3", trimmed.Size())
	}
	if trimmed.Initial() != 0 {
		t.Errorf("trimmed.Initial() = %d, want 0", trimmed.Initial())
	}
}

func TestTrimIdempotent(t *testing.T) {
	a := buildS1(t)
	once, err := a.Trim()
	if err != nil {
		t.Fatalf("Trim: %v", err)
	}
	twice, err := once.Trim()
	if err != nil {
		t.Fatalf("Trim(Trim): %v", err)
	}
	if twice.Size() != once.Size() {
		t.Errorf("trim(trim(A)) has %d states, want %d", twice.Size(), once.Size())
	}
}

func TestTrimEmptyResultWhenInitialDoesNotSurvive(t *testing.T) {
	a, err := New(2, 0, []int{1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// q0=0 has no outgoing edges and is not marked: accessible={0},
	// coaccessible={1}, trim states = {} so q0 does not survive.
	ed := a.Edit()
	ed.Close()

	out, err := a.Trim()
	if out == nil {
		t.Fatal("Trim must return a valid automaton even on the degenerate case")
	}
	if !errs_IsEmptyResult(err) {
		t.Errorf("Trim on a degenerate input should report EmptyResult, got %v", err)
	}
}

func errs_IsEmptyResult(err error) bool {
	e, ok := err.(*errs.Error)
	return ok && e.Kind == errs.EmptyResult
}

// TestInverseTransitionAscendingMultiSource exercises spec.md S6's intent —
// invTrans returns every source state ascending — on the target where it
// actually holds for S1's retained edges: state 1 receives no event-a edge
// (only g from 2 and b from itself), while state 0 receives event-a edges
// from both 0 (self) and 1.
func TestInverseTransitionAscendingMultiSource(t *testing.T) {
	a := buildS1(t)
	a.AllocateInverted()

	got, err := a.InvTrans(0, 0) // event a = 0
	if err != nil {
		t.Fatalf("InvTrans: %v", err)
	}
	if !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("InvTrans(0, a) = %v, want [0 1]", got)
	}

	got, err = a.InvTrans(1, 2) // event g = 2
	if err != nil {
		t.Fatalf("InvTrans: %v", err)
	}
	if !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("InvTrans(1, g) = %v, want [2]", got)
	}
}

func TestInvTransBeforeAllocateIsNotPrepared(t *testing.T) {
	a := buildS1(t)
	_, err := a.InvTrans(0, 0)
	e, ok := err.(*errs.Error)
	if !ok || e.Kind != errs.NotPrepared {
		t.Errorf("InvTrans before AllocateInverted should report NotPrepared, got %v", err)
	}
}

func TestClearInvertedReleasesInverseGraph(t *testing.T) {
	a := buildS1(t)
	a.AllocateInverted()
	a.ClearInverted()
	if _, err := a.InvTrans(0, 0); err == nil {
		t.Error("InvTrans after ClearInverted should report NotPrepared again")
	}
}

func TestNondeterminismDetected(t *testing.T) {
	a, err := New(2, 0, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ed := a.Edit()
	if err := ed.Insert(0, 0, 1); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	err = ed.Insert(0, 0, 0)
	e, ok := err.(*errs.Error)
	if !ok || e.Kind != errs.NondeterminismDetected {
		t.Errorf("second target for (0, a) should report NondeterminismDetected, got %v", err)
	}
}

func TestRepeatedInsertSameTargetIsNotNondeterminism(t *testing.T) {
	a, err := New(2, 0, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ed := a.Edit()
	if err := ed.Insert(0, 0, 1); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := ed.Insert(0, 0, 1); err != nil {
		t.Errorf("re-inserting the same (state, event, target) should be a no-op, got %v", err)
	}
}

func TestStateEventsAndBitMatrixInvariant(t *testing.T) {
	a := buildS1(t)
	a.ensureSealed()

	want := map[int][]int{
		0: {0, 2},
		1: {0, 1},
		2: {0, 1, 2},
	}
	for q, w := range want {
		if got := a.StateEvents(q).Slice(); !reflect.DeepEqual(got, w) {
			t.Errorf("StateEvents(%d) = %v, want %v", q, got, w)
		}
	}
	if got := a.StateEvents(3).Slice(); len(got) != 0 {
		t.Errorf("StateEvents(3) = %v, want empty", got)
	}
}

func TestAlphabetTracksInsertedEvents(t *testing.T) {
	a := buildS1(t)
	if got := a.Alphabet().Slice(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("Alphabet() = %v, want [0 1 2]", got)
	}
}

func TestDebugSetAlphabetWidensReportedAlphabet(t *testing.T) {
	a := buildS1(t)
	a.DebugSetAlphabet(eventset.Of(5))
	if !a.Alphabet().Test(5) {
		t.Error("DebugSetAlphabet should widen Alphabet() even without a transition on that event")
	}
}
