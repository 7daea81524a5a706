// Package template manages named, reusable port configurations. A fresh
// engine carries four built-in templates covering the common port roles;
// user templates can be added, updated and removed alongside them.
package template

import (
	"sort"
	"strings"

	"github.com/switchforge/switchforge/pkg/portcfg"
	"github.com/switchforge/switchforge/pkg/util"
)

// Builtins returns the stock templates keyed by name. Callers get fresh
// copies; mutating the result does not affect later calls.
func Builtins() map[string]portcfg.PortConfig {
	return map[string]portcfg.PortConfig{
		"Access Port": {
			Mode:        portcfg.ModeAccess,
			Description: "Standard Access Port",
			PortFast:    true,
			Access:      portcfg.AccessFields{DataVLAN: 10},
		},
		"Phone Port": {
			Mode:        portcfg.ModeAccess,
			Description: "Voice + Data Port",
			PortFast:    true,
			QoSTrust:    true,
			Access:      portcfg.AccessFields{DataVLAN: 10, VoiceVLAN: 100},
		},
		"AP Port": {
			Mode:        portcfg.ModeTrunk,
			Description: "Access Point Port",
			PortFast:    true,
			QoSTrust:    true,
			Trunk:       portcfg.TrunkFields{NativeVLAN: 10, AllowedVLANs: "10,20,30,100"},
		},
		"Trunk Port": {
			Mode:        portcfg.ModeTrunk,
			Description: "Trunk to Switch",
			QoSTrust:    true,
			Trunk:       portcfg.TrunkFields{NativeVLAN: 10, AllowedVLANs: "ALL"},
		},
	}
}

// Engine is the in-memory template catalog.
type Engine struct {
	templates map[string]portcfg.PortConfig
}

// NewEngine returns an engine seeded with the built-in templates.
func NewEngine() *Engine {
	return &Engine{templates: Builtins()}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return util.NewFieldError("template name", name, "required")
	}
	return nil
}

// Add registers a new template. The name must be unused and the
// configuration must normalize and validate cleanly.
func (e *Engine) Add(name string, cfg portcfg.PortConfig) error {
	if err := validateName(name); err != nil {
		return err
	}
	if _, exists := e.templates[name]; exists {
		return &util.DuplicateNameError{Kind: "template", Name: name}
	}
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.templates[name] = cfg
	return nil
}

// Update replaces an existing template's configuration.
func (e *Engine) Update(name string, cfg portcfg.PortConfig) error {
	if _, exists := e.templates[name]; !exists {
		return util.ErrNotFound
	}
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.templates[name] = cfg
	return nil
}

// Delete removes a template by name.
func (e *Engine) Delete(name string) error {
	if _, exists := e.templates[name]; !exists {
		return util.ErrNotFound
	}
	delete(e.templates, name)
	return nil
}

// Get looks up a template by name.
func (e *Engine) Get(name string) (portcfg.PortConfig, bool) {
	cfg, ok := e.templates[name]
	return cfg, ok
}

// Names returns all template names in sorted order.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of templates.
func (e *Engine) Len() int {
	return len(e.templates)
}

// All returns a copy of the catalog for persistence.
func (e *Engine) All() map[string]portcfg.PortConfig {
	out := make(map[string]portcfg.PortConfig, len(e.templates))
	for name, cfg := range e.templates {
		out[name] = cfg
	}
	return out
}

// Replace swaps the whole catalog, used when loading persisted templates.
// Entries that fail validation are dropped and reported by name; a nil map
// resets the engine to the built-ins.
func (e *Engine) Replace(templates map[string]portcfg.PortConfig) []string {
	if templates == nil {
		e.templates = Builtins()
		return nil
	}
	var rejected []string
	fresh := make(map[string]portcfg.PortConfig, len(templates))
	for name, cfg := range templates {
		cfg = cfg.Normalized()
		if validateName(name) != nil || cfg.Validate() != nil {
			rejected = append(rejected, name)
			continue
		}
		fresh[name] = cfg
	}
	sort.Strings(rejected)
	e.templates = fresh
	return rejected
}
