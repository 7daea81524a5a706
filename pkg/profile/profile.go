// Package profile describes the switch hardware being planned for: the
// interface type, slot numbering, and total port count. Profiles load from
// YAML files so different chassis can be described without code changes.
package profile

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/switchforge/switchforge/pkg/util"
)

// InterfaceType describes one interface family of a chassis.
type InterfaceType struct {
	Prefix string
	Abbrev string
	Speed  string
}

// InterfaceTypes lists the supported interface families.
var InterfaceTypes = map[string]InterfaceType{
	"FastEthernet":       {Prefix: "FastEthernet", Abbrev: "Fa", Speed: "10/100 Mbps"},
	"GigabitEthernet":    {Prefix: "GigabitEthernet", Abbrev: "Gi", Speed: "10/100/1000 Mbps"},
	"TenGigabitEthernet": {Prefix: "TenGigabitEthernet", Abbrev: "Te", Speed: "10 Gbps"},
}

// TypeNames returns the supported interface type names in sorted order.
func TypeNames() []string {
	names := make([]string, 0, len(InterfaceTypes))
	for name := range InterfaceTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const (
	defaultInterfaceType = "GigabitEthernet"
	defaultSlot          = "0"
	defaultSubslot       = "0"
	defaultTotalPorts    = 24
)

// Profile is the hardware description of the switch being configured.
type Profile struct {
	Model         string `yaml:"model"`
	InterfaceType string `yaml:"interface_type"`
	Slot          string `yaml:"slot"`
	Subslot       string `yaml:"subslot"`
	TotalPorts    int    `yaml:"total_ports"`
}

// Default returns the stock 24-port gigabit profile.
func Default() Profile {
	return Profile{
		InterfaceType: defaultInterfaceType,
		Slot:          defaultSlot,
		Subslot:       defaultSubslot,
		TotalPorts:    defaultTotalPorts,
	}
}

// Load reads a profile from a YAML file. Missing fields take defaults; the
// result is validated before being returned.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate checks the profile fields.
func (p Profile) Validate() error {
	var b util.ValidationBuilder
	if _, ok := InterfaceTypes[p.InterfaceType]; !ok {
		b.AddErrorf("unknown interface type %q", p.InterfaceType)
	}
	if !isDigits(p.Slot) {
		b.AddErrorf("slot %q must be numeric", p.Slot)
	}
	if !isDigits(p.Subslot) {
		b.AddErrorf("subslot %q must be numeric", p.Subslot)
	}
	if p.TotalPorts < 1 {
		b.AddErrorf("total ports %d must be at least 1", p.TotalPorts)
	}
	return b.Build()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// Prefix assembles the interface-name prefix, e.g. "GigabitEthernet0/0/".
func (p Profile) Prefix() string {
	return fmt.Sprintf("%s%s/%s/", InterfaceTypes[p.InterfaceType].Prefix, p.Slot, p.Subslot)
}

// InterfaceName returns the full interface name for a port number.
func (p Profile) InterfaceName(port int) string {
	return fmt.Sprintf("%s%d", p.Prefix(), port)
}
