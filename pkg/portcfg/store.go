package portcfg

import (
	"sort"

	"github.com/switchforge/switchforge/pkg/vlan"
)

// Store owns the mapping from port number to configuration record.
// Entries are created on first configuration, overwritten on later edits,
// and pruned when the total port count shrinks.
type Store struct {
	configs map[int]PortConfig
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{configs: make(map[int]PortConfig)}
}

// Apply validates cfg, then writes its normalized form onto every port in
// ports. Validation failures reject the whole call; no port is touched.
func (s *Store) Apply(ports []int, cfg PortConfig) error {
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, port := range ports {
		s.configs[port] = cfg
	}
	return nil
}

// UpdateNativeVLAN sets the native VLAN on every port in ports that is
// already configured as a trunk. Other ports are silently skipped; the
// updated ports are returned in ascending order. A zero id applies the
// default native VLAN 1.
func (s *Store) UpdateNativeVLAN(ports []int, id int) ([]int, error) {
	if id == 0 {
		id = 1
	}
	if err := vlan.ValidateID(id); err != nil {
		return nil, err
	}

	var updated []int
	for _, port := range ports {
		cfg, ok := s.configs[port]
		if !ok || cfg.Mode != ModeTrunk {
			continue
		}
		cfg.Trunk.NativeVLAN = id
		s.configs[port] = cfg
		updated = append(updated, port)
	}
	sort.Ints(updated)
	return updated, nil
}

// UpdateAllowedVLANs sets the allowed-VLAN list on every port in ports that
// is already configured as a trunk. The list is validated and normalized
// first ("" means "ALL"); non-trunk ports are silently skipped.
func (s *Store) UpdateAllowedVLANs(ports []int, allowed string) ([]int, error) {
	normalized, err := vlan.NormalizeRange(allowed)
	if err != nil {
		return nil, err
	}

	var updated []int
	for _, port := range ports {
		cfg, ok := s.configs[port]
		if !ok || cfg.Mode != ModeTrunk {
			continue
		}
		cfg.Trunk.AllowedVLANs = normalized
		s.configs[port] = cfg
		updated = append(updated, port)
	}
	sort.Ints(updated)
	return updated, nil
}

// Get returns the configuration for port, if present.
func (s *Store) Get(port int) (PortConfig, bool) {
	cfg, ok := s.configs[port]
	return cfg, ok
}

// Remove deletes the configuration for port.
func (s *Store) Remove(port int) {
	delete(s.configs, port)
}

// Clear removes every configuration.
func (s *Store) Clear() {
	s.configs = make(map[int]PortConfig)
}

// Ports returns the configured port numbers in ascending order.
func (s *Store) Ports() []int {
	ports := make([]int, 0, len(s.configs))
	for port := range s.configs {
		ports = append(ports, port)
	}
	sort.Ints(ports)
	return ports
}

// Len returns the number of configured ports.
func (s *Store) Len() int {
	return len(s.configs)
}

// PruneAbove removes entries for ports greater than maxPort and returns the
// removed port numbers in ascending order.
func (s *Store) PruneAbove(maxPort int) []int {
	var removed []int
	for port := range s.configs {
		if port > maxPort {
			removed = append(removed, port)
			delete(s.configs, port)
		}
	}
	sort.Ints(removed)
	return removed
}

// Snapshot returns a copy of the full port-to-config mapping. PortConfig is
// a value type, so a map copy is a deep copy.
func (s *Store) Snapshot() map[int]PortConfig {
	snap := make(map[int]PortConfig, len(s.configs))
	for port, cfg := range s.configs {
		snap[port] = cfg
	}
	return snap
}

// Restore replaces the store contents with the given snapshot.
func (s *Store) Restore(snap map[int]PortConfig) {
	s.configs = make(map[int]PortConfig, len(snap))
	for port, cfg := range snap {
		s.configs[port] = cfg
	}
}
