package generate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/switchforge/switchforge/pkg/portcfg"
	"github.com/switchforge/switchforge/pkg/util"
)

// modeCommands returns the indented body lines shared by every interface
// block carrying cfg: mode-specific switchport commands, then portfast and
// QoS-trust lines.
func modeCommands(cfg portcfg.PortConfig) []string {
	var cmds []string

	switch cfg.Mode {
	case portcfg.ModeAccess:
		cmds = append(cmds, " switchport mode access")
		if cfg.Access.DataVLAN != 0 {
			cmds = append(cmds, fmt.Sprintf(" switchport access vlan %d", cfg.Access.DataVLAN))
		}
		if cfg.Access.VoiceVLAN != 0 {
			cmds = append(cmds, fmt.Sprintf(" switchport voice vlan %d", cfg.Access.VoiceVLAN))
		}
	case portcfg.ModeTrunk:
		cmds = append(cmds, " switchport mode trunk", " switchport nonegotiate")
		if cfg.Trunk.NativeVLAN != 0 {
			cmds = append(cmds, fmt.Sprintf(" switchport trunk native vlan %d", cfg.Trunk.NativeVLAN))
		}
		if cfg.Trunk.AllowedVLANs != "" {
			if strings.EqualFold(cfg.Trunk.AllowedVLANs, "all") {
				cmds = append(cmds, " switchport trunk allowed vlan all")
			} else {
				cmds = append(cmds, " switchport trunk allowed vlan "+cfg.Trunk.AllowedVLANs)
			}
		}
	}

	if cfg.PortFast {
		cmds = append(cmds, " spanning-tree portfast")
	}
	if cfg.QoSTrust {
		cmds = append(cmds, " mls qos trust cos")
	}
	return cmds
}

// interfaceBlock emits one full interface block for the given specifier.
func interfaceBlock(specifier string, cfg portcfg.PortConfig) []string {
	lines := []string{SelectorLine(specifier)}
	if cfg.Description != "" {
		lines = append(lines, " description "+cfg.Description)
	}
	lines = append(lines, modeCommands(cfg)...)
	lines = append(lines, " no shutdown", " exit")
	return lines
}

// PortCommands generates grouped interface blocks for the subset of ports
// that are present in cfgs. Ports sharing a structurally identical
// configuration share one block; groups are ordered by their lowest port so
// output is deterministic.
func PortCommands(cfgs map[int]portcfg.PortConfig, ports []int, prefix string) []string {
	groups := make(map[portcfg.PortConfig][]int)
	for _, port := range util.SortedInts(ports) {
		cfg, ok := cfgs[port]
		if !ok {
			continue
		}
		groups[cfg] = append(groups[cfg], port)
	}
	if len(groups) == 0 {
		return nil
	}

	ordered := make([]portcfg.PortConfig, 0, len(groups))
	for cfg := range groups {
		ordered = append(ordered, cfg)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return groups[ordered[i]][0] < groups[ordered[j]][0]
	})

	var lines []string
	for _, cfg := range ordered {
		for _, spec := range CompressRanges(groups[cfg], prefix) {
			lines = append(lines, interfaceBlock(spec, cfg)...)
		}
	}
	return lines
}

// PortSection wraps PortCommands with the banner naming the covered ports.
func PortSection(cfgs map[int]portcfg.PortConfig, ports []int, prefix string) []string {
	var covered []int
	for _, port := range util.SortedInts(ports) {
		if _, ok := cfgs[port]; ok {
			covered = append(covered, port)
		}
	}
	cmds := PortCommands(cfgs, covered, prefix)
	if len(cmds) == 0 {
		return nil
	}
	banner := fmt.Sprintf("! --- Configuration for port(s) %s ---", util.JoinInts(covered))
	return append([]string{banner}, cmds...)
}

// ShowPortBlocks renders one ungrouped block per configured port, each under
// its own banner, for state inspection.
func ShowPortBlocks(cfgs map[int]portcfg.PortConfig, prefix string) []string {
	ports := make([]int, 0, len(cfgs))
	for port := range cfgs {
		ports = append(ports, port)
	}
	sort.Ints(ports)

	var lines []string
	for i, port := range ports {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("! --- Configuration for port %d ---", port))
		lines = append(lines, interfaceBlock(fmt.Sprintf("%s%d", prefix, port), cfgs[port])...)
	}
	return lines
}
