// Package history implements linear snapshot-based undo/redo over the
// port configuration store.
package history

import (
	"errors"

	"github.com/switchforge/switchforge/pkg/portcfg"
)

// No-op outcomes reported when the cursor is at either end of history.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Snapshot is an immutable deep copy of the full port-to-config mapping.
// PortConfig is a value type, so copying the map copies everything.
type Snapshot map[int]portcfg.PortConfig

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	c := make(Snapshot, len(s))
	for port, cfg := range s {
		c[port] = cfg
	}
	return c
}

// Manager keeps an ordered list of snapshots and a cursor. Mutating
// operations push the pre-mutation state; undo walks the cursor backward,
// redo forward. A push after an undo discards the redoable tail.
type Manager struct {
	snapshots []Snapshot
	cursor    int
}

// NewManager creates an empty history (cursor -1).
func NewManager() *Manager {
	return &Manager{cursor: -1}
}

// Record pushes the current (pre-mutation) state. Entries beyond the cursor
// are discarded first, so a new mutation after an undo invalidates redo.
// Call exactly once before each mutating operation.
func (m *Manager) Record(current Snapshot) {
	m.snapshots = m.snapshots[:m.cursor+1]
	m.snapshots = append(m.snapshots, current.Clone())
	m.cursor++
}

// Undo returns the snapshot to restore, stepping the cursor backward.
// When undoing from the head of history the current state is first pushed
// so a later Redo can return to it.
func (m *Manager) Undo(current Snapshot) (Snapshot, error) {
	if m.cursor < 0 {
		return nil, ErrNothingToUndo
	}
	if m.cursor == len(m.snapshots)-1 {
		m.snapshots = append(m.snapshots, current.Clone())
	}
	restored := m.snapshots[m.cursor].Clone()
	m.cursor--
	return restored, nil
}

// Redo returns the next snapshot forward in history, stepping the cursor.
func (m *Manager) Redo() (Snapshot, error) {
	if !m.CanRedo() {
		return nil, ErrNothingToRedo
	}
	m.cursor++
	return m.snapshots[m.cursor+1].Clone(), nil
}

// CanUndo reports whether an undo step is available.
func (m *Manager) CanUndo() bool {
	return m.cursor >= 0
}

// CanRedo reports whether a redo step is available. The snapshot at
// cursor+1 corresponds to the current state, so a redo target exists only
// beyond it.
func (m *Manager) CanRedo() bool {
	return m.cursor < len(m.snapshots)-2
}

// Len returns the number of stored snapshots.
func (m *Manager) Len() int {
	return len(m.snapshots)
}

// Reset discards all history.
func (m *Manager) Reset() {
	m.snapshots = nil
	m.cursor = -1
}
