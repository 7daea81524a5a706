package history

import (
	"errors"
	"reflect"
	"testing"

	"github.com/switchforge/switchforge/pkg/portcfg"
)

func state(ports ...int) Snapshot {
	s := make(Snapshot)
	for _, p := range ports {
		s[p] = portcfg.PortConfig{
			Mode:   portcfg.ModeAccess,
			Access: portcfg.AccessFields{DataVLAN: 10},
		}
	}
	return s
}

// Drives the manager the way the session does: Record the pre-mutation
// state, then mutate.
func TestUndoRedo_Walkthrough(t *testing.T) {
	m := NewManager()

	initial := state()     // empty
	afterA := state(1)     // apply A
	afterB := state(1, 2)  // apply B
	current := afterB.Clone()

	m.Record(initial) // before A
	m.Record(afterA)  // before B

	// undo -> state after A
	restored, err := m.Undo(current)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !reflect.DeepEqual(restored, afterA) {
		t.Errorf("first undo = %v, want state after A", restored)
	}
	current = restored

	// undo -> initial state
	restored, err = m.Undo(current)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !reflect.DeepEqual(restored, initial) {
		t.Errorf("second undo = %v, want initial state", restored)
	}
	current = restored

	// undo at the beginning is a no-op
	if _, err := m.Undo(current); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("third undo error = %v, want ErrNothingToUndo", err)
	}

	// redo twice walks back to B
	restored, err = m.Redo()
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if !reflect.DeepEqual(restored, afterA) {
		t.Errorf("first redo = %v, want state after A", restored)
	}
	restored, err = m.Redo()
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if !reflect.DeepEqual(restored, afterB) {
		t.Errorf("second redo = %v, want state after B", restored)
	}

	// redo at the end is a no-op
	if _, err := m.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("redo error = %v, want ErrNothingToRedo", err)
	}
}

func TestRecordAfterUndoDiscardsRedo(t *testing.T) {
	m := NewManager()

	initial := state()
	afterA := state(1)

	m.Record(initial) // before A
	m.Record(afterA)  // before B

	current := state(1, 2)
	restored, err := m.Undo(current)
	if err != nil {
		t.Fatal(err)
	}
	if !m.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	// New mutation C from the restored state discards the redo tail
	m.Record(restored)
	if m.CanRedo() {
		t.Error("redo should be discarded by a new Record")
	}

	// And the new mutation itself is undoable
	afterC := state(1, 3)
	got, err := m.Undo(afterC)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, restored) {
		t.Errorf("undo after C = %v, want state before C", got)
	}
}

func TestUndoAtInitialStateIsNoOp(t *testing.T) {
	m := NewManager()
	if _, err := m.Undo(state()); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo on empty history = %v, want ErrNothingToUndo", err)
	}
	if m.CanUndo() || m.CanRedo() {
		t.Error("empty history should report no undo/redo")
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	m := NewManager()
	live := state(1)
	m.Record(live)

	// Mutating the live map after Record must not affect stored history
	live[2] = portcfg.PortConfig{Mode: portcfg.ModeTrunk}

	restored, err := m.Undo(live)
	if err != nil {
		t.Fatal(err)
	}
	if len(restored) != 1 {
		t.Errorf("stored snapshot was aliased to live state: %v", restored)
	}
}

func TestReset(t *testing.T) {
	m := NewManager()
	m.Record(state(1))
	m.Reset()
	if m.CanUndo() || m.Len() != 0 {
		t.Error("Reset did not clear history")
	}
}
