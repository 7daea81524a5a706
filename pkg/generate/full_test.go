package generate

import (
	"strings"
	"testing"

	"github.com/switchforge/switchforge/pkg/globalcfg"
	"github.com/switchforge/switchforge/pkg/portcfg"
)

func TestFullConfig_Empty(t *testing.T) {
	if got := FullConfig(globalcfg.Config{}, nil, "Gi0/0/"); got != "" {
		t.Errorf("empty state should produce no output, got:\n%s", got)
	}
}

func TestFullConfig_Framing(t *testing.T) {
	global := globalcfg.Config{Hostname: "SW1"}
	cfgs := map[int]portcfg.PortConfig{
		1: access(10, 0, "Uplink"),
	}

	got := FullConfig(global, cfgs, "Gi0/0/")

	if !strings.HasPrefix(got, "!\n! --- Generated Configuration ---\n!\nenable\nconfigure terminal\n!\n") {
		t.Errorf("wrong preamble:\n%s", got)
	}
	if !strings.HasSuffix(got, "!\nend\n!\n! Choose ONE save command:\n! copy running-config startup-config\n! write memory\n!\n") {
		t.Errorf("wrong trailer:\n%s", got)
	}

	hostnameIdx := strings.Index(got, "hostname SW1")
	portIdx := strings.Index(got, "interface Gi0/0/1")
	if hostnameIdx == -1 || portIdx == -1 || hostnameIdx > portIdx {
		t.Errorf("global section must precede port section:\n%s", got)
	}
}

func TestFullConfig_PortsOnly(t *testing.T) {
	cfgs := map[int]portcfg.PortConfig{
		3: trunk(1, "ALL"),
	}
	got := FullConfig(globalcfg.Config{}, cfgs, "Gi0/0/")
	if !strings.Contains(got, "! --- Configuration for port(s) 3 ---") {
		t.Errorf("missing port banner:\n%s", got)
	}
	if strings.Contains(got, "hostname") {
		t.Errorf("unexpected global output:\n%s", got)
	}
}
