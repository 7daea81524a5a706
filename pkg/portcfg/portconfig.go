// Package portcfg defines the per-port configuration record and the store
// that owns the port-number-to-configuration mapping.
package portcfg

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/switchforge/switchforge/pkg/util"
	"github.com/switchforge/switchforge/pkg/vlan"
)

// Mode is the switchport operating mode.
type Mode string

const (
	ModeAccess Mode = "access"
	ModeTrunk  Mode = "trunk"
)

// AccessFields carries the settings legal only for access-mode ports.
// VoiceVLAN is optional; zero means unset.
type AccessFields struct {
	DataVLAN  int
	VoiceVLAN int
}

// TrunkFields carries the settings legal only for trunk-mode ports.
type TrunkFields struct {
	NativeVLAN   int
	AllowedVLANs string
}

// PortConfig is the full configuration record for one port. Access and
// Trunk field groups are mutually exclusive: exactly the group matching
// Mode is populated, the other is zero. The struct is comparable, so the
// command generator can group ports by structural equality directly.
type PortConfig struct {
	Mode        Mode
	Description string
	PortFast    bool
	QoSTrust    bool
	Access      AccessFields
	Trunk       TrunkFields
}

// Normalized returns a copy of c with the other mode's field group zeroed
// and trunk defaults filled in (native VLAN 1, allowed VLANs "ALL").
// Switching a port's mode therefore clears any residual fields.
func (c PortConfig) Normalized() PortConfig {
	switch c.Mode {
	case ModeAccess:
		c.Trunk = TrunkFields{}
	case ModeTrunk:
		c.Access = AccessFields{}
		if c.Trunk.NativeVLAN == 0 {
			c.Trunk.NativeVLAN = 1
		}
		if normalized, err := vlan.NormalizeRange(c.Trunk.AllowedVLANs); err == nil {
			c.Trunk.AllowedVLANs = normalized
		}
	}
	return c
}

// Validate checks the record against the mode-specific field rules.
// The returned error carries the first failing reason.
func (c PortConfig) Validate() error {
	switch c.Mode {
	case ModeAccess:
		if c.Access.DataVLAN == 0 {
			return util.NewFieldError("data VLAN", "", "required for access ports")
		}
		if err := vlan.ValidateID(c.Access.DataVLAN); err != nil {
			return util.NewFieldError("data VLAN", strconv.Itoa(c.Access.DataVLAN),
				fmt.Sprintf("must be between %d and %d", vlan.MinID, vlan.MaxID))
		}
		if c.Access.VoiceVLAN != 0 {
			if err := vlan.ValidateID(c.Access.VoiceVLAN); err != nil {
				return util.NewFieldError("voice VLAN", strconv.Itoa(c.Access.VoiceVLAN),
					fmt.Sprintf("must be between %d and %d", vlan.MinID, vlan.MaxID))
			}
			if c.Access.VoiceVLAN == c.Access.DataVLAN {
				return util.NewFieldError("voice VLAN", strconv.Itoa(c.Access.VoiceVLAN),
					"must be different from data VLAN")
			}
		}
	case ModeTrunk:
		if c.Trunk.NativeVLAN != 0 {
			if err := vlan.ValidateID(c.Trunk.NativeVLAN); err != nil {
				return util.NewFieldError("native VLAN", strconv.Itoa(c.Trunk.NativeVLAN),
					fmt.Sprintf("must be between %d and %d", vlan.MinID, vlan.MaxID))
			}
		}
		if _, err := vlan.NormalizeRange(c.Trunk.AllowedVLANs); err != nil {
			return err
		}
	default:
		return util.NewFieldError("mode", string(c.Mode), "must be access or trunk")
	}
	return nil
}

// ReferencedVLANs returns the VLAN IDs this record references, in field
// order (data, voice, native). Unset fields are omitted; the allowed-VLAN
// list is a range expression and is not expanded.
func (c PortConfig) ReferencedVLANs() []int {
	var ids []int
	switch c.Mode {
	case ModeAccess:
		if c.Access.DataVLAN != 0 {
			ids = append(ids, c.Access.DataVLAN)
		}
		if c.Access.VoiceVLAN != 0 {
			ids = append(ids, c.Access.VoiceVLAN)
		}
	case ModeTrunk:
		if c.Trunk.NativeVLAN != 0 {
			ids = append(ids, c.Trunk.NativeVLAN)
		}
	}
	return ids
}

// portConfigJSON is the flat on-disk shape. VLAN IDs are written as numbers
// but accepted as either numbers or strings on read.
type portConfigJSON struct {
	Mode         Mode      `json:"mode"`
	Description  string    `json:"description,omitempty"`
	PortFast     bool      `json:"portfast"`
	QoSTrust     bool      `json:"qosTrust"`
	DataVLAN     *flexVLAN `json:"dataVlan,omitempty"`
	VoiceVLAN    *flexVLAN `json:"voiceVlan,omitempty"`
	NativeVLAN   *flexVLAN `json:"nativeVlan,omitempty"`
	AllowedVLANs string    `json:"allowedVlans,omitempty"`
}

// flexVLAN is a VLAN ID that unmarshals from a JSON number or string.
type flexVLAN int

func (v *flexVLAN) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case float64:
		if val != float64(int(val)) {
			return fmt.Errorf("VLAN ID %v is not a whole number", val)
		}
		*v = flexVLAN(int(val))
	case string:
		id, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("VLAN ID %q is not a number", val)
		}
		*v = flexVLAN(id)
	default:
		return fmt.Errorf("VLAN ID must be a number or string, got %T", raw)
	}
	return nil
}

func optVLAN(id int) *flexVLAN {
	if id == 0 {
		return nil
	}
	v := flexVLAN(id)
	return &v
}

func vlanValue(v *flexVLAN) int {
	if v == nil {
		return 0
	}
	return int(*v)
}

// MarshalJSON writes the flat record with only the fields legal for the mode.
func (c PortConfig) MarshalJSON() ([]byte, error) {
	out := portConfigJSON{
		Mode:        c.Mode,
		Description: c.Description,
		PortFast:    c.PortFast,
		QoSTrust:    c.QoSTrust,
	}
	switch c.Mode {
	case ModeAccess:
		out.DataVLAN = optVLAN(c.Access.DataVLAN)
		out.VoiceVLAN = optVLAN(c.Access.VoiceVLAN)
	case ModeTrunk:
		out.NativeVLAN = optVLAN(c.Trunk.NativeVLAN)
		out.AllowedVLANs = c.Trunk.AllowedVLANs
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the flat record and rebuilds the tagged union.
func (c *PortConfig) UnmarshalJSON(data []byte) error {
	var in portConfigJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*c = PortConfig{
		Mode:        in.Mode,
		Description: in.Description,
		PortFast:    in.PortFast,
		QoSTrust:    in.QoSTrust,
	}
	switch in.Mode {
	case ModeAccess:
		c.Access = AccessFields{
			DataVLAN:  vlanValue(in.DataVLAN),
			VoiceVLAN: vlanValue(in.VoiceVLAN),
		}
	case ModeTrunk:
		c.Trunk = TrunkFields{
			NativeVLAN:   vlanValue(in.NativeVLAN),
			AllowedVLANs: in.AllowedVLANs,
		}
	}
	return nil
}
