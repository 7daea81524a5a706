package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/switchforge/switchforge/pkg/portcfg"
	"github.com/switchforge/switchforge/pkg/selection"
	"github.com/switchforge/switchforge/pkg/template"
	"github.com/switchforge/switchforge/pkg/vlan"
)

func disableColor(t *testing.T) {
	t.Helper()
	old := colorEnabled
	colorEnabled = false
	t.Cleanup(func() { colorEnabled = old })
}

func TestPortGrid(t *testing.T) {
	disableColor(t)

	store := portcfg.NewStore()
	if err := store.Apply([]int{1}, portcfg.PortConfig{
		Mode:   portcfg.ModeAccess,
		Access: portcfg.AccessFields{DataVLAN: 10},
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.Apply([]int{2}, portcfg.PortConfig{Mode: portcfg.ModeTrunk}); err != nil {
		t.Fatal(err)
	}

	sel := selection.NewModel(24)
	sel.Replace([]int{2})

	var buf bytes.Buffer
	PortGrid(&buf, store, sel)
	out := buf.String()

	if !strings.Contains(out, " 1A") {
		t.Errorf("access marker missing:\n%s", out)
	}
	if !strings.Contains(out, "[ 2T]") {
		t.Errorf("selected trunk cell missing:\n%s", out)
	}
	if !strings.Contains(out, " 3.") {
		t.Errorf("unconfigured marker missing:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("24 ports at %d per row should span 2 lines, got %d:\n%s", PortsPerRow, got, out)
	}
}

func TestPortTable(t *testing.T) {
	store := portcfg.NewStore()
	if err := store.Apply([]int{3}, portcfg.PortConfig{
		Mode:        portcfg.ModeAccess,
		Description: "Desk",
		PortFast:    true,
		Access:      portcfg.AccessFields{DataVLAN: 10, VoiceVLAN: 100},
	}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	PortTable(&buf, store, func(p int) string { return fmt.Sprintf("Gi0/0/%d", p) })
	out := buf.String()

	for _, marker := range []string{"Gi0/0/3", "access", "data 10, voice 100", "portfast", "Desk"} {
		if !strings.Contains(out, marker) {
			t.Errorf("port table missing %q:\n%s", marker, out)
		}
	}
}

func TestVLANTable(t *testing.T) {
	disableColor(t)

	reg := vlan.NewRegistry()
	if err := reg.Declare(10, "USERS"); err != nil {
		t.Fatal(err)
	}
	reg.Ensure(20)

	var buf bytes.Buffer
	VLANTable(&buf, reg)
	out := buf.String()

	if !strings.Contains(out, "USERS") {
		t.Errorf("named VLAN missing:\n%s", out)
	}
	if !strings.Contains(out, "(unnamed)") {
		t.Errorf("unnamed VLAN placeholder missing:\n%s", out)
	}
}

func TestTemplateTable(t *testing.T) {
	engine := template.NewEngine()
	if err := engine.Add("Lab", portcfg.PortConfig{
		Mode:   portcfg.ModeAccess,
		Access: portcfg.AccessFields{DataVLAN: 42},
	}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	TemplateTable(&buf, engine)
	out := buf.String()

	if !strings.Contains(out, "built-in") || !strings.Contains(out, "user") {
		t.Errorf("source column wrong:\n%s", out)
	}
	if !strings.Contains(out, "Phone Port") || !strings.Contains(out, "Lab") {
		t.Errorf("template rows missing:\n%s", out)
	}
}
