package vlan

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/switchforge/switchforge/pkg/util"
)

// Registry tracks which VLAN IDs have been declared, with optional names.
// Entries are created when referenced by applied configuration or declared
// explicitly, and removed only by Clear.
type Registry struct {
	names map[int]string // known VLAN ID -> display name ("" = unnamed)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[int]string)}
}

// Declare adds a VLAN with an optional display name. Declaring an ID that is
// already known is rejected so callers can surface the collision.
func (r *Registry) Declare(id int, name string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	if strings.Contains(name, " ") {
		return util.NewFieldError("VLAN name", name, "cannot contain spaces")
	}
	if _, ok := r.names[id]; ok {
		return util.NewDuplicateNameError("VLAN", strconv.Itoa(id))
	}
	r.names[id] = name
	return nil
}

// Ensure records id as known without overwriting an existing entry.
// Out-of-range IDs are ignored; callers validate before applying.
func (r *Registry) Ensure(id int) {
	if ValidateID(id) != nil {
		return
	}
	if _, ok := r.names[id]; !ok {
		r.names[id] = ""
	}
}

// Has reports whether id has been declared or referenced.
func (r *Registry) Has(id int) bool {
	_, ok := r.names[id]
	return ok
}

// Name returns the display name for id, or "" if unnamed or unknown.
func (r *Registry) Name(id int) string {
	return r.names[id]
}

// IDs returns all known VLAN IDs in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.names))
	for id := range r.names {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of known VLANs.
func (r *Registry) Len() int {
	return len(r.names)
}

// Missing returns, in ascending order, the subset of ids not yet known.
// Zero values (unset optional fields) are skipped.
func (r *Registry) Missing(ids ...int) []int {
	var missing []int
	seen := make(map[int]bool)
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		if !r.Has(id) {
			missing = append(missing, id)
		}
	}
	sort.Ints(missing)
	return missing
}

// Clear removes every entry.
func (r *Registry) Clear() {
	r.names = make(map[int]string)
}

// Map returns the registry as a string-keyed map for JSON persistence.
func (r *Registry) Map() map[string]string {
	m := make(map[string]string, len(r.names))
	for id, name := range r.names {
		m[strconv.Itoa(id)] = name
	}
	return m
}

// RegistryFromMap rebuilds a registry from its persisted form. Keys that do
// not parse as VLAN IDs are skipped.
func RegistryFromMap(m map[string]string) *Registry {
	r := NewRegistry()
	for key, name := range m {
		id, err := strconv.Atoi(key)
		if err != nil || ValidateID(id) != nil {
			util.Warnf("skipping persisted VLAN entry with bad ID %q", key)
			continue
		}
		r.names[id] = name
	}
	return r
}

// Label formats a VLAN for display, e.g. "VLAN 10: USERS" or "VLAN 10".
func (r *Registry) Label(id int) string {
	if name := r.names[id]; name != "" {
		return fmt.Sprintf("VLAN %d: %s", id, name)
	}
	return fmt.Sprintf("VLAN %d", id)
}
