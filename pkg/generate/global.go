package generate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/switchforge/switchforge/pkg/globalcfg"
)

// GlobalCommands emits the device-wide configuration blocks in fixed
// section order: hostname, secrets and line passwords, basic settings, VLAN
// declarations, SVI interface, default gateway. Each block is emitted only
// when its governing fields are populated, preceded by a banner comment and
// separated from the previous block by a blank line.
func GlobalCommands(cfg globalcfg.Config) []string {
	var sections [][]string

	if cfg.Hostname != "" {
		sections = append(sections, []string{
			fmt.Sprintf("! --- Hostname '%s' ---", cfg.Hostname),
			"hostname " + cfg.Hostname,
		})
	}

	if block := passwordSection(cfg); block != nil {
		sections = append(sections, block)
	}

	if cfg.PasswordEncryption || cfg.NoDomainLookup {
		block := []string{"! --- Basic settings ---"}
		if cfg.PasswordEncryption {
			block = append(block, "service password-encryption")
		}
		if cfg.NoDomainLookup {
			block = append(block, "no ip domain-lookup")
		}
		sections = append(sections, block)
	}

	sections = append(sections, vlanSections(cfg.VLANs)...)

	if cfg.HasSVI() {
		block := []string{
			fmt.Sprintf("! --- IP for %s ---", cfg.SVIInterface),
			"interface " + cfg.SVIInterface,
		}
		if cfg.SVIDescription != "" {
			block = append(block, " description "+cfg.SVIDescription)
		}
		if !strings.HasPrefix(strings.ToLower(cfg.SVIInterface), "vlan") {
			block = append(block, " no switchport")
		}
		block = append(block,
			fmt.Sprintf(" ip address %s %s", cfg.SVIIP, cfg.SVIMask),
			" no shutdown",
			" exit",
		)
		sections = append(sections, block)
	}

	if cfg.GatewayIP != "" {
		sections = append(sections, []string{
			fmt.Sprintf("! --- Default Gateway via %s ---", cfg.GatewayIP),
			"ip route 0.0.0.0 0.0.0.0 " + cfg.GatewayIP,
		})
	}

	var lines []string
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section...)
	}
	return lines
}

// passwordSection emits the enable secret and the console/vty line blocks.
// The vty transport-input clause reflects the ssh/telnet flags, falling back
// to "none" when both are off.
func passwordSection(cfg globalcfg.Config) []string {
	if cfg.EnableSecret == "" && cfg.LinePassword == "" {
		return nil
	}

	var desc string
	switch {
	case cfg.EnableSecret != "" && cfg.LinePassword != "":
		desc = "Enable Secret & Line Password(s)"
	case cfg.EnableSecret != "":
		desc = "Enable Secret"
	default:
		desc = "Line Password(s)"
	}

	block := []string{fmt.Sprintf("! --- %s ---", desc)}
	if cfg.EnableSecret != "" {
		block = append(block, "enable secret "+cfg.EnableSecret)
	}
	if cfg.LinePassword != "" {
		block = append(block,
			"line console 0",
			"password "+cfg.LinePassword,
			"login",
			"exit",
			"line vty 0 4",
			"password "+cfg.LinePassword,
			"login",
			transportLine(cfg.VTYSSH, cfg.VTYTelnet),
			"exit",
		)
	}
	return block
}

func transportLine(ssh, telnet bool) string {
	switch {
	case ssh && telnet:
		return "transport input ssh telnet"
	case ssh:
		return "transport input ssh"
	case telnet:
		return "transport input telnet"
	default:
		return "transport input none"
	}
}

// vlanSections emits one declaration block per VLAN, sorted by numeric ID.
// Map keys that do not parse as integers are skipped.
func vlanSections(vlans map[string]string) [][]string {
	ids := make([]int, 0, len(vlans))
	for key := range vlans {
		if id, err := strconv.Atoi(key); err == nil {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	var sections [][]string
	for _, id := range ids {
		block := []string{
			fmt.Sprintf("! --- VLAN %d ---", id),
			fmt.Sprintf("vlan %d", id),
		}
		if name := vlans[strconv.Itoa(id)]; name != "" {
			block = append(block, " name "+name)
		}
		block = append(block, " exit")
		sections = append(sections, block)
	}
	return sections
}
