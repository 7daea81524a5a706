package generate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/switchforge/switchforge/pkg/globalcfg"
)

func TestGlobalCommands_Empty(t *testing.T) {
	cfg := globalcfg.Config{}
	if got := GlobalCommands(cfg); got != nil {
		t.Errorf("empty config should emit nothing, got %v", got)
	}
}

func TestGlobalCommands_HostnameOnly(t *testing.T) {
	cfg := globalcfg.Config{Hostname: "SW-CORE-01"}
	want := []string{
		"! --- Hostname 'SW-CORE-01' ---",
		"hostname SW-CORE-01",
	}
	if got := GlobalCommands(cfg); !reflect.DeepEqual(got, want) {
		t.Errorf("GlobalCommands = %v, want %v", got, want)
	}
}

func TestGlobalCommands_SectionOrder(t *testing.T) {
	cfg := globalcfg.Default()
	cfg.Hostname = "SW1"
	cfg.EnableSecret = "s3cret"
	cfg.LinePassword = "linepw"
	cfg.VLANs = map[string]string{"10": "DATA", "2": "MGMT"}
	cfg.SVIIP = "10.0.0.2"
	cfg.SVIDescription = "Management"
	cfg.GatewayIP = "10.0.0.1"

	joined := strings.Join(GlobalCommands(cfg), "\n")

	markers := []string{
		"hostname SW1",
		"enable secret s3cret",
		"service password-encryption",
		"! --- VLAN 2 ---",
		"! --- VLAN 10 ---",
		"interface Vlan1",
		"ip route 0.0.0.0 0.0.0.0 10.0.0.1",
	}
	last := -1
	for _, marker := range markers {
		idx := strings.Index(joined, marker)
		if idx == -1 {
			t.Fatalf("missing %q in output:\n%s", marker, joined)
		}
		if idx < last {
			t.Fatalf("%q out of order:\n%s", marker, joined)
		}
		last = idx
	}
}

func TestGlobalCommands_PasswordVariants(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		linePass   string
		wantBanner string
	}{
		{"both", "s", "p", "! --- Enable Secret & Line Password(s) ---"},
		{"secret only", "s", "", "! --- Enable Secret ---"},
		{"line only", "", "p", "! --- Line Password(s) ---"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := globalcfg.Config{EnableSecret: tt.secret, LinePassword: tt.linePass}
			joined := strings.Join(GlobalCommands(cfg), "\n")
			if !strings.Contains(joined, tt.wantBanner) {
				t.Errorf("missing banner %q:\n%s", tt.wantBanner, joined)
			}
		})
	}

	// Line password emits both console and vty blocks.
	cfg := globalcfg.Config{LinePassword: "pw", VTYSSH: true}
	joined := strings.Join(GlobalCommands(cfg), "\n")
	for _, marker := range []string{"line console 0", "line vty 0 4", "password pw", "login"} {
		if !strings.Contains(joined, marker) {
			t.Errorf("missing %q:\n%s", marker, joined)
		}
	}
}

func TestTransportLine(t *testing.T) {
	tests := []struct {
		ssh, telnet bool
		want        string
	}{
		{true, true, "transport input ssh telnet"},
		{true, false, "transport input ssh"},
		{false, true, "transport input telnet"},
		{false, false, "transport input none"},
	}
	for _, tt := range tests {
		if got := transportLine(tt.ssh, tt.telnet); got != tt.want {
			t.Errorf("transportLine(%v, %v) = %q, want %q", tt.ssh, tt.telnet, got, tt.want)
		}
	}
}

func TestGlobalCommands_VLANBlocks(t *testing.T) {
	cfg := globalcfg.Config{
		VLANs: map[string]string{"10": "DATA", "20": "", "junk": "ignored"},
	}
	got := GlobalCommands(cfg)
	want := []string{
		"! --- VLAN 10 ---",
		"vlan 10",
		" name DATA",
		" exit",
		"",
		"! --- VLAN 20 ---",
		"vlan 20",
		" exit",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("vlan blocks = %v, want %v", got, want)
	}
}

func TestGlobalCommands_SVI(t *testing.T) {
	cfg := globalcfg.Config{
		SVIInterface: "Vlan10",
		SVIIP:        "192.168.10.2",
		SVIMask:      "255.255.255.0",
	}
	joined := strings.Join(GlobalCommands(cfg), "\n")
	if !strings.Contains(joined, " ip address 192.168.10.2 255.255.255.0") {
		t.Errorf("missing SVI address:\n%s", joined)
	}
	if strings.Contains(joined, "no switchport") {
		t.Errorf("vlan interface must not get 'no switchport':\n%s", joined)
	}

	// A routed physical interface does get 'no switchport'.
	cfg.SVIInterface = "GigabitEthernet0/0/24"
	joined = strings.Join(GlobalCommands(cfg), "\n")
	if !strings.Contains(joined, " no switchport") {
		t.Errorf("routed interface missing 'no switchport':\n%s", joined)
	}

	// IP without mask emits nothing for the SVI section.
	cfg = globalcfg.Config{SVIInterface: "Vlan1", SVIIP: "10.0.0.1"}
	if got := GlobalCommands(cfg); got != nil {
		t.Errorf("incomplete SVI should be skipped, got %v", got)
	}
}
