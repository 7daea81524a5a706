// Package session ties the planner state together: the hardware profile,
// the port-configuration store, the selection, the VLAN registry, undo/redo
// history, templates, and the device-wide settings, with JSON persistence
// behind every mutation.
package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/switchforge/switchforge/pkg/generate"
	"github.com/switchforge/switchforge/pkg/globalcfg"
	"github.com/switchforge/switchforge/pkg/history"
	"github.com/switchforge/switchforge/pkg/persist"
	"github.com/switchforge/switchforge/pkg/portcfg"
	"github.com/switchforge/switchforge/pkg/profile"
	"github.com/switchforge/switchforge/pkg/selection"
	"github.com/switchforge/switchforge/pkg/template"
	"github.com/switchforge/switchforge/pkg/util"
	"github.com/switchforge/switchforge/pkg/vlan"
)

// Session is the root object of one planning run. Mutating operations
// snapshot the store into history first, then persist on success. Save
// failures are logged and do not fail the operation; the in-memory state is
// authoritative.
type Session struct {
	Profile   profile.Profile
	Store     *portcfg.Store
	Selection *selection.Model
	Registry  *vlan.Registry
	History   *history.Manager
	Templates *template.Engine
	Global    globalcfg.Config

	adapter *persist.Adapter
}

// New builds a session for the given profile, loading any persisted state
// from the adapter. A nil adapter disables persistence. State files that
// cannot be read are logged and replaced with defaults; persistence problems
// never abort startup.
func New(prof profile.Profile, adapter *persist.Adapter) (*Session, error) {
	s := &Session{
		Profile:   prof,
		Store:     portcfg.NewStore(),
		Selection: selection.NewModel(prof.TotalPorts),
		Registry:  vlan.NewRegistry(),
		History:   history.NewManager(),
		Templates: template.NewEngine(),
		Global:    globalcfg.Default(),
		adapter:   adapter,
	}
	if adapter == nil {
		return s, nil
	}

	cfgs, err := adapter.LoadPorts()
	if err != nil {
		util.Warnf("loading port configs: %v; starting with an empty plan", err)
	}
	for port, cfg := range cfgs {
		cfg = cfg.Normalized()
		if err := cfg.Validate(); err != nil {
			util.Warnf("dropping persisted config for port %d: %v", port, err)
			continue
		}
		if err := s.Store.Apply([]int{port}, cfg); err != nil {
			util.Warnf("dropping persisted config for port %d: %v", port, err)
		}
	}
	if pruned := s.Store.PruneAbove(prof.TotalPorts); len(pruned) > 0 {
		util.Warnf("dropped persisted configs beyond port %d: %v", prof.TotalPorts, pruned)
	}

	global, err := adapter.LoadGlobal()
	if err != nil {
		util.Warnf("loading global config: %v; using defaults", err)
	} else {
		s.Global = global
		s.Registry = vlan.RegistryFromMap(global.VLANs)
	}
	for _, port := range s.Store.Ports() {
		cfg, _ := s.Store.Get(port)
		for _, id := range cfg.ReferencedVLANs() {
			s.Registry.Ensure(id)
		}
	}

	templates, err := adapter.LoadTemplates()
	if err != nil {
		util.Warnf("loading templates: %v; keeping the built-ins", err)
	}
	if templates != nil {
		if rejected := s.Templates.Replace(templates); len(rejected) > 0 {
			util.Warnf("dropped invalid persisted templates: %s", strings.Join(rejected, ", "))
		}
	}
	util.Debugf("loaded state from %s: %d port(s), %d VLAN(s), %d template(s)",
		adapter.Dir(), s.Store.Len(), s.Registry.Len(), s.Templates.Len())
	return s, nil
}

func (s *Session) savePorts() {
	if s.adapter == nil {
		return
	}
	if err := s.adapter.SavePorts(s.Store.Snapshot()); err != nil {
		util.Warnf("saving port configs: %v", err)
	}
}

func (s *Session) saveGlobal() {
	if s.adapter == nil {
		return
	}
	s.Global.VLANs = s.Registry.Map()
	if err := s.adapter.SaveGlobal(s.Global); err != nil {
		util.Warnf("saving global config: %v", err)
	}
}

func (s *Session) saveTemplates() {
	if s.adapter == nil {
		return
	}
	if err := s.adapter.SaveTemplates(s.Templates.All()); err != nil {
		util.Warnf("saving templates: %v", err)
	}
}

// SaveAll persists every state file, used on shutdown.
func (s *Session) SaveAll() {
	s.savePorts()
	s.saveGlobal()
	s.saveTemplates()
}

// SelectRange updates the selection from a range expression such as
// "1-4,7". Two shorthands map to click modifiers: "+N" toggles port N
// (ctrl-click) and "..N" extends from the anchor (shift-click).
func (s *Session) SelectRange(expr string) error {
	if port, mod, ok := clickExpr(expr); ok {
		if port < 1 || port > s.Profile.TotalPorts {
			return util.NewFieldError("port", strconv.Itoa(port),
				"outside the switch's port range")
		}
		s.Selection.Click(port, mod)
		return nil
	}

	ports, err := util.ExpandRange(expr)
	if err != nil {
		return err
	}
	for _, port := range ports {
		if port < 1 || port > s.Profile.TotalPorts {
			return util.NewFieldError("port", strconv.Itoa(port),
				"outside the switch's port range")
		}
	}
	s.Selection.Replace(ports)
	return nil
}

// clickExpr recognizes the "+N" and "..N" selection shorthands.
func clickExpr(expr string) (int, selection.Modifier, bool) {
	var mod selection.Modifier
	var num string
	switch {
	case strings.HasPrefix(expr, "+"):
		mod, num = selection.ModCtrl, expr[1:]
	case strings.HasPrefix(expr, ".."):
		mod, num = selection.ModShift, expr[2:]
	default:
		return 0, 0, false
	}
	port, err := strconv.Atoi(num)
	if err != nil {
		return 0, 0, false
	}
	return port, mod, true
}

// ApplyToSelection validates cfg and writes it onto every selected port,
// recording history and registering the referenced VLANs.
func (s *Session) ApplyToSelection(cfg portcfg.PortConfig) error {
	ports := s.Selection.Selected()
	if len(ports) == 0 {
		return util.ErrNoSelection
	}

	snap := s.Store.Snapshot()
	if err := s.Store.Apply(ports, cfg); err != nil {
		return err
	}
	s.History.Record(snap)
	util.WithPorts(ports).Debugf("applied %s configuration", cfg.Normalized().Mode)

	for _, id := range cfg.Normalized().ReferencedVLANs() {
		s.Registry.Ensure(id)
	}
	s.savePorts()
	s.saveGlobal()
	return nil
}

// MissingVLAN names an undeclared VLAN referenced by a template, paired
// with the registry name suggested for it (DATA_VLAN_10 style; empty when
// no convention applies).
type MissingVLAN struct {
	ID   int
	Name string
}

// ApplyTemplate applies the named template to the selection and returns the
// referenced VLANs not yet in the registry. Missing VLANs are NOT registered
// automatically; the caller decides whether to declare them, typically under
// the suggested names.
func (s *Session) ApplyTemplate(name string) ([]MissingVLAN, error) {
	cfg, ok := s.Templates.Get(name)
	if !ok {
		return nil, util.ErrNotFound
	}
	ports := s.Selection.Selected()
	if len(ports) == 0 {
		return nil, util.ErrNoSelection
	}

	var missing []MissingVLAN
	norm := cfg.Normalized()
	switch norm.Mode {
	case portcfg.ModeAccess:
		for _, id := range s.Registry.Missing(norm.Access.DataVLAN, norm.Access.VoiceVLAN) {
			name := fmt.Sprintf("DATA_VLAN_%d", id)
			if id == norm.Access.VoiceVLAN && id != norm.Access.DataVLAN {
				name = fmt.Sprintf("VOICE_VLAN_%d", id)
			}
			missing = append(missing, MissingVLAN{ID: id, Name: name})
		}
	case portcfg.ModeTrunk:
		for _, id := range s.Registry.Missing(norm.Trunk.NativeVLAN) {
			missing = append(missing, MissingVLAN{ID: id})
		}
	}

	snap := s.Store.Snapshot()
	if err := s.Store.Apply(ports, cfg); err != nil {
		return nil, err
	}
	s.History.Record(snap)
	util.WithOperation("template").Debugf("applied %q to %d port(s)", name, len(ports))
	s.savePorts()
	return missing, nil
}

// SetNativeVLAN updates the native VLAN on the selected trunk ports and
// returns which ports changed. A zero id applies the default VLAN 1.
func (s *Session) SetNativeVLAN(id int) ([]int, error) {
	ports := s.Selection.Selected()
	if len(ports) == 0 {
		return nil, util.ErrNoSelection
	}

	snap := s.Store.Snapshot()
	updated, err := s.Store.UpdateNativeVLAN(ports, id)
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, nil
	}
	s.History.Record(snap)

	if id == 0 {
		id = 1
	}
	s.Registry.Ensure(id)
	s.savePorts()
	s.saveGlobal()
	return updated, nil
}

// SetAllowedVLANs updates the allowed-VLAN list on the selected trunk ports
// and returns which ports changed.
func (s *Session) SetAllowedVLANs(allowed string) ([]int, error) {
	ports := s.Selection.Selected()
	if len(ports) == 0 {
		return nil, util.ErrNoSelection
	}

	snap := s.Store.Snapshot()
	updated, err := s.Store.UpdateAllowedVLANs(ports, allowed)
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, nil
	}
	s.History.Record(snap)
	s.savePorts()
	return updated, nil
}

// Undo restores the previous port-store snapshot.
func (s *Session) Undo() error {
	snap, err := s.History.Undo(s.Store.Snapshot())
	if err != nil {
		return err
	}
	s.Store.Restore(snap)
	s.savePorts()
	return nil
}

// Redo re-applies the next snapshot forward.
func (s *Session) Redo() error {
	snap, err := s.History.Redo()
	if err != nil {
		return err
	}
	s.Store.Restore(snap)
	s.savePorts()
	return nil
}

// ClearPorts removes every port configuration and the selection, recording
// one history entry so the wipe itself is undoable. Declared VLANs and
// global settings are untouched.
func (s *Session) ClearPorts() {
	if s.Store.Len() > 0 {
		s.History.Record(s.Store.Snapshot())
		s.Store.Clear()
		s.savePorts()
	}
	s.Selection.Clear()
}

// Reset restores the factory state: no port configurations, no selection,
// no declared VLANs, no history, default global settings. The cleared state
// is persisted immediately.
func (s *Session) Reset() {
	s.Store.Clear()
	s.Selection.Clear()
	s.Registry.Clear()
	s.History.Reset()
	s.Global = globalcfg.Default()
	s.savePorts()
	s.saveGlobal()
}

// SetTotalPorts resizes the port space, pruning configs and selections
// beyond the new bound. The prune is not recorded in history; undoing a
// resize would resurrect ports the hardware no longer has.
func (s *Session) SetTotalPorts(n int) ([]int, error) {
	if n < 1 {
		return nil, util.NewFieldError("total ports", strconv.Itoa(n), "must be at least 1")
	}
	s.Profile.TotalPorts = n
	s.Selection.SetTotalPorts(n)
	removed := s.Store.PruneAbove(n)
	if len(removed) > 0 {
		s.History.Reset()
		s.savePorts()
	}
	return removed, nil
}

// DeclareVLAN registers a VLAN with an optional name for the global
// configuration section.
func (s *Session) DeclareVLAN(id int, name string) error {
	if err := s.Registry.Declare(id, name); err != nil {
		return err
	}
	s.saveGlobal()
	return nil
}

// SetGlobal replaces the device-wide settings.
func (s *Session) SetGlobal(cfg globalcfg.Config) {
	s.Global = cfg
	s.saveGlobal()
}

// GenerateText renders the full configuration text for the current state.
func (s *Session) GenerateText() string {
	s.Global.VLANs = s.Registry.Map()
	return generate.FullConfig(s.Global, s.Store.Snapshot(), s.Profile.Prefix())
}

// ShowText renders one block per configured port for inspection.
func (s *Session) ShowText() string {
	blocks := generate.ShowPortBlocks(s.Store.Snapshot(), s.Profile.Prefix())
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n") + "\n"
}
