// Package selection owns the current multi-port selection and the anchor
// port used for range selection.
package selection

import "sort"

// Modifier is the keyboard modifier held during a port click.
type Modifier int

const (
	ModNone Modifier = iota
	ModCtrl
	ModShift
)

// Model implements click / ctrl-click / shift-click selection semantics over
// the ports 1..totalPorts. A single change-notification hook fires after any
// operation that changes the selected set; when to re-render is the
// caller's decision.
type Model struct {
	selected   map[int]struct{}
	anchor     int // 0 = none
	totalPorts int
	onChange   func()
}

// NewModel creates an empty selection over ports 1..totalPorts.
func NewModel(totalPorts int) *Model {
	return &Model{
		selected:   make(map[int]struct{}),
		totalPorts: totalPorts,
	}
}

// OnChange registers the change-notification hook.
func (m *Model) OnChange(fn func()) {
	m.onChange = fn
}

func (m *Model) notify() {
	if m.onChange != nil {
		m.onChange()
	}
}

// Click applies one click to the selection. Out-of-range ports are ignored.
//
//   - Plain click selects only the clicked port and moves the anchor there;
//     it is a no-op when the selection is already exactly that port.
//   - Ctrl-click toggles the clicked port and moves the anchor there.
//   - Shift-click unions the inclusive range between the anchor and the
//     clicked port into the selection; the anchor stays put so repeated
//     shift-clicks grow from the same pivot. Without an anchor it degrades
//     to a plain click.
func (m *Model) Click(port int, mod Modifier) {
	if port < 1 || port > m.totalPorts {
		return
	}

	switch {
	case mod == ModCtrl:
		if _, ok := m.selected[port]; ok {
			delete(m.selected, port)
		} else {
			m.selected[port] = struct{}{}
		}
		m.anchor = port

	case mod == ModShift && m.anchor != 0:
		lo, hi := m.anchor, port
		if lo > hi {
			lo, hi = hi, lo
		}
		for p := lo; p <= hi; p++ {
			m.selected[p] = struct{}{}
		}
		// anchor unchanged: chained shift-clicks keep the same pivot

	default:
		if len(m.selected) == 1 {
			if _, ok := m.selected[port]; ok {
				return
			}
		}
		m.selected = map[int]struct{}{port: {}}
		m.anchor = port
	}

	m.notify()
}

// Replace sets the selection to exactly the given ports, anchoring on the
// lowest one. Out-of-range ports are dropped. Used by non-interactive
// callers that address ports by range expression rather than clicks.
func (m *Model) Replace(ports []int) {
	m.selected = make(map[int]struct{}, len(ports))
	m.anchor = 0
	for _, p := range ports {
		if p < 1 || p > m.totalPorts {
			continue
		}
		m.selected[p] = struct{}{}
		if m.anchor == 0 || p < m.anchor {
			m.anchor = p
		}
	}
	m.notify()
}

// Selected returns the selected ports in ascending order.
func (m *Model) Selected() []int {
	ports := make([]int, 0, len(m.selected))
	for p := range m.selected {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	return ports
}

// Has reports whether port is selected.
func (m *Model) Has(port int) bool {
	_, ok := m.selected[port]
	return ok
}

// Count returns the number of selected ports.
func (m *Model) Count() int {
	return len(m.selected)
}

// Anchor returns the anchor port, if set.
func (m *Model) Anchor() (int, bool) {
	return m.anchor, m.anchor != 0
}

// Clear empties the selection and drops the anchor.
func (m *Model) Clear() {
	if len(m.selected) == 0 && m.anchor == 0 {
		return
	}
	m.selected = make(map[int]struct{})
	m.anchor = 0
	m.notify()
}

// SetTotalPorts resizes the port space. Shrinking prunes out-of-range ports
// from the selection and clears the anchor if it was pruned.
func (m *Model) SetTotalPorts(n int) {
	m.totalPorts = n
	changed := false
	for p := range m.selected {
		if p > n {
			delete(m.selected, p)
			changed = true
		}
	}
	if m.anchor > n {
		m.anchor = 0
		changed = true
	}
	if changed {
		m.notify()
	}
}

// TotalPorts returns the current port-space bound.
func (m *Model) TotalPorts() int {
	return m.totalPorts
}
