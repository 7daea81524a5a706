// Package persist reads and writes the planner state as JSON files in a
// data directory: port configurations, global settings, and templates.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/switchforge/switchforge/pkg/globalcfg"
	"github.com/switchforge/switchforge/pkg/portcfg"
	"github.com/switchforge/switchforge/pkg/util"
)

const (
	portsFile     = "port_configs.json"
	globalFile    = "global_configs.json"
	templatesFile = "templates.json"
)

// Adapter persists planner state under a single data directory.
type Adapter struct {
	dir string
}

// NewAdapter returns an adapter rooted at dir. The directory is created on
// first save.
func NewAdapter(dir string) *Adapter {
	return &Adapter{dir: dir}
}

// Dir returns the data directory.
func (a *Adapter) Dir() string {
	return a.dir
}

func (a *Adapter) path(name string) string {
	return filepath.Join(a.dir, name)
}

func (a *Adapter) write(name string, v interface{}) error {
	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(a.path(name), data, 0644)
}

// read unmarshals name into v. Returns (false, nil) when the file does not
// exist so callers can fall back to defaults.
func (a *Adapter) read(name string, v interface{}) (bool, error) {
	data, err := os.ReadFile(a.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", util.ErrInvalidConfig, name, err)
	}
	return true, nil
}

// SavePorts writes the port-configuration map. Port numbers become string
// keys in the JSON object.
func (a *Adapter) SavePorts(cfgs map[int]portcfg.PortConfig) error {
	keyed := make(map[string]portcfg.PortConfig, len(cfgs))
	for port, cfg := range cfgs {
		keyed[strconv.Itoa(port)] = cfg
	}
	return a.write(portsFile, keyed)
}

// LoadPorts reads the port-configuration map. A missing file yields an empty
// map; entries whose keys do not parse as port numbers are dropped and
// logged.
func (a *Adapter) LoadPorts() (map[int]portcfg.PortConfig, error) {
	var keyed map[string]portcfg.PortConfig
	found, err := a.read(portsFile, &keyed)
	if err != nil {
		return nil, err
	}
	cfgs := make(map[int]portcfg.PortConfig)
	if !found {
		return cfgs, nil
	}
	for key, cfg := range keyed {
		port, err := strconv.Atoi(key)
		if err != nil || port < 1 {
			util.Warnf("skipping port config with bad key %q", key)
			continue
		}
		cfgs[port] = cfg
	}
	return cfgs, nil
}

// SaveGlobal writes the device-wide settings.
func (a *Adapter) SaveGlobal(cfg globalcfg.Config) error {
	return a.write(globalFile, cfg)
}

// LoadGlobal reads the device-wide settings, returning the defaults when no
// file exists yet.
func (a *Adapter) LoadGlobal() (globalcfg.Config, error) {
	cfg := globalcfg.Default()
	if _, err := a.read(globalFile, &cfg); err != nil {
		return globalcfg.Config{}, err
	}
	if cfg.VLANs == nil {
		cfg.VLANs = map[string]string{}
	}
	return cfg, nil
}

// SaveTemplates writes the template catalog.
func (a *Adapter) SaveTemplates(templates map[string]portcfg.PortConfig) error {
	return a.write(templatesFile, templates)
}

// LoadTemplates reads the template catalog. A missing file yields (nil, nil)
// so the caller keeps its built-ins.
func (a *Adapter) LoadTemplates() (map[string]portcfg.PortConfig, error) {
	var templates map[string]portcfg.PortConfig
	found, err := a.read(templatesFile, &templates)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return templates, nil
}
