package globalcfg

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/switchforge/switchforge/pkg/util"
)

func TestDefault(t *testing.T) {
	c := Default()
	if !c.VTYSSH || !c.VTYTelnet || !c.PasswordEncryption || !c.NoDomainLookup {
		t.Error("default flags should all be on")
	}
	if c.SVIInterface != "Vlan1" || c.SVIMask != "255.255.255.0" {
		t.Errorf("default SVI = %q / %q", c.SVIInterface, c.SVIMask)
	}
	if c.HasSVI() {
		t.Error("default config should not have a complete SVI (no IP)")
	}
}

func TestSetHostname(t *testing.T) {
	c := Default()

	if err := c.SetHostname("core-sw01.example"); err != nil {
		t.Fatalf("SetHostname: %v", err)
	}
	if c.Hostname != "core-sw01.example" {
		t.Errorf("Hostname = %q", c.Hostname)
	}

	for _, bad := range []string{"", "has space", "semi;colon"} {
		if err := c.SetHostname(bad); !errors.Is(err, util.ErrValidationFailed) {
			t.Errorf("SetHostname(%q) error = %v, want validation failure", bad, err)
		}
	}
}

func TestSetSVI(t *testing.T) {
	c := Default()

	if err := c.SetSVI("Vlan10", "10.0.0.1", "255.255.255.0", "mgmt"); err != nil {
		t.Fatalf("SetSVI: %v", err)
	}
	if !c.HasSVI() {
		t.Error("HasSVI() = false after SetSVI")
	}

	if err := c.SetSVI("Vlan10", "999.0.0.1", "255.255.255.0", ""); err == nil {
		t.Error("bad IP should be rejected")
	}
	if err := c.SetSVI("Vlan10", "10.0.0.1", "255.0.255.0", ""); err == nil {
		t.Error("non-contiguous mask should be rejected")
	}
	if err := c.SetSVI("", "10.0.0.1", "255.255.255.0", ""); err == nil {
		t.Error("empty interface should be rejected")
	}
}

func TestSetGateway(t *testing.T) {
	c := Default()
	if err := c.SetGateway("192.168.1.1"); err != nil {
		t.Fatalf("SetGateway: %v", err)
	}
	if err := c.SetGateway("not-an-ip"); err == nil {
		t.Error("bad gateway should be rejected")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	c := Default()
	if err := c.SetHostname("sw1"); err != nil {
		t.Fatal(err)
	}
	c.EnableSecret = "s3cret"
	c.LinePassword = "linepw"
	c.VTYTelnet = false
	c.VLANs = map[string]string{"10": "USERS", "100": "VOICE"}
	if err := c.SetSVI("Vlan10", "10.0.0.2", "255.255.255.0", "mgmt svi"); err != nil {
		t.Fatal(err)
	}
	if err := c.SetGateway("10.0.0.1"); err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	var got Config
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}
