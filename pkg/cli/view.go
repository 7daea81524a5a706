package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/switchforge/switchforge/pkg/portcfg"
	"github.com/switchforge/switchforge/pkg/selection"
	"github.com/switchforge/switchforge/pkg/template"
	"github.com/switchforge/switchforge/pkg/vlan"
)

// PortsPerRow is the grid width of the port map.
const PortsPerRow = 12

// modeLetter is the one-character mode marker shown in the port grid.
func modeLetter(cfg portcfg.PortConfig, ok bool) string {
	if !ok {
		return "."
	}
	switch cfg.Mode {
	case portcfg.ModeAccess:
		return "A"
	case portcfg.ModeTrunk:
		return "T"
	}
	return "?"
}

// PortGrid renders the port map, PortsPerRow cells per line. Each cell shows
// the port number and its mode letter (A access, T trunk, "." unconfigured);
// selected ports are bracketed and highlighted.
func PortGrid(w io.Writer, store *portcfg.Store, sel *selection.Model) {
	total := sel.TotalPorts()
	for port := 1; port <= total; port++ {
		cfg, ok := store.Get(port)
		cell := fmt.Sprintf("%2d%s", port, modeLetter(cfg, ok))
		if sel.Has(port) {
			cell = Bold(Green("[" + cell + "]"))
		} else {
			cell = " " + cell + " "
		}
		fmt.Fprint(w, cell)
		if port%PortsPerRow == 0 || port == total {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}
}

// vlanSummary renders the VLAN cell of the port table.
func vlanSummary(cfg portcfg.PortConfig) string {
	switch cfg.Mode {
	case portcfg.ModeAccess:
		s := fmt.Sprintf("data %d", cfg.Access.DataVLAN)
		if cfg.Access.VoiceVLAN != 0 {
			s += fmt.Sprintf(", voice %d", cfg.Access.VoiceVLAN)
		}
		return s
	case portcfg.ModeTrunk:
		return fmt.Sprintf("native %d, allowed %s", cfg.Trunk.NativeVLAN, cfg.Trunk.AllowedVLANs)
	}
	return ""
}

func flagSummary(cfg portcfg.PortConfig) string {
	var flags []string
	if cfg.PortFast {
		flags = append(flags, "portfast")
	}
	if cfg.QoSTrust {
		flags = append(flags, "qos")
	}
	return strings.Join(flags, ",")
}

// PortTable renders one row per configured port.
func PortTable(w io.Writer, store *portcfg.Store, interfaceName func(int) string) {
	t := NewTable(w, "PORT", "INTERFACE", "MODE", "VLANS", "FLAGS", "DESCRIPTION")
	for _, port := range store.Ports() {
		cfg, _ := store.Get(port)
		t.Row(
			fmt.Sprintf("%d", port),
			interfaceName(port),
			string(cfg.Mode),
			vlanSummary(cfg),
			flagSummary(cfg),
			cfg.Description,
		)
	}
	t.Flush()
}

// VLANTable renders the declared VLANs.
func VLANTable(w io.Writer, reg *vlan.Registry) {
	t := NewTable(w, "VLAN", "NAME")
	for _, id := range reg.IDs() {
		name := reg.Name(id)
		if name == "" {
			name = Dim("(unnamed)")
		}
		t.Row(fmt.Sprintf("%d", id), name)
	}
	t.Flush()
}

// TemplateTable renders the template catalog, built-ins and user templates
// alike, sorted by name.
func TemplateTable(w io.Writer, engine *template.Engine) {
	builtins := template.Builtins()
	names := engine.Names()
	sort.Strings(names)

	t := NewTable(w, "TEMPLATE", "MODE", "VLANS", "FLAGS", "SOURCE")
	for _, name := range names {
		cfg, _ := engine.Get(name)
		source := "user"
		if _, ok := builtins[name]; ok {
			source = "built-in"
		}
		t.Row(name, string(cfg.Mode), vlanSummary(cfg), flagSummary(cfg), source)
	}
	t.Flush()
}
