// Package globalcfg holds the device-wide settings: hostname, credentials,
// line transport, VLAN declarations, management SVI, and default gateway.
package globalcfg

import (
	"regexp"

	"github.com/switchforge/switchforge/pkg/util"
)

var hostnameRE = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Config is the device-wide configuration record. Every field is optional;
// an empty field means its command block is not emitted. The zero value is
// not useful; start from Default.
type Config struct {
	Hostname           string            `json:"hostname"`
	EnableSecret       string            `json:"enableSecret"`
	LinePassword       string            `json:"linePassword"`
	VTYSSH             bool              `json:"vtySsh"`
	VTYTelnet          bool              `json:"vtyTelnet"`
	PasswordEncryption bool              `json:"passwordEncryption"`
	NoDomainLookup     bool              `json:"noDomainLookup"`
	VLANs              map[string]string `json:"vlans"`
	SVIInterface       string            `json:"sviInterface"`
	SVIIP              string            `json:"sviIp"`
	SVIMask            string            `json:"sviMask"`
	SVIDescription     string            `json:"sviDescription"`
	GatewayIP          string            `json:"gatewayIp"`
}

// Default returns the out-of-the-box global configuration.
func Default() Config {
	return Config{
		VTYSSH:             true,
		VTYTelnet:          true,
		PasswordEncryption: true,
		NoDomainLookup:     true,
		VLANs:              map[string]string{},
		SVIInterface:       "Vlan1",
		SVIMask:            "255.255.255.0",
	}
}

// SetHostname validates and stores the hostname.
func (c *Config) SetHostname(hostname string) error {
	if hostname == "" {
		return util.NewFieldError("hostname", "", "required")
	}
	if !hostnameRE.MatchString(hostname) {
		return util.NewFieldError("hostname", hostname, "may contain only letters, digits, dots, hyphens and underscores")
	}
	c.Hostname = hostname
	return nil
}

// SetSVI validates and stores the management interface settings.
// The description is free-form and may be empty.
func (c *Config) SetSVI(intf, ip, mask, description string) error {
	if intf == "" {
		return util.NewFieldError("SVI interface", "", "required")
	}
	if !util.IsValidIPv4(ip) {
		return util.NewFieldError("SVI IP address", ip, "must be a dotted-quad IPv4 address")
	}
	if !util.IsValidNetmask(mask) {
		return util.NewFieldError("SVI subnet mask", mask, "must be a dotted-quad netmask")
	}
	c.SVIInterface = intf
	c.SVIIP = ip
	c.SVIMask = mask
	c.SVIDescription = description
	return nil
}

// SetGateway validates and stores the default-gateway address.
func (c *Config) SetGateway(ip string) error {
	if !util.IsValidIPv4(ip) {
		return util.NewFieldError("gateway IP", ip, "must be a dotted-quad IPv4 address")
	}
	c.GatewayIP = ip
	return nil
}

// HasSVI reports whether the SVI block is complete enough to emit.
func (c Config) HasSVI() bool {
	return c.SVIInterface != "" && c.SVIIP != "" && c.SVIMask != ""
}
