// Package config loads and persists komorebi-go's on-disk configuration
// and watches the user's startup script for changes.
package config

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/komorebi-go/komorebi/wm"
)

// WorkspaceRule is one exe/title -> (monitor, workspace) binding, loaded
// into wm.WorkspaceRules at startup.
type WorkspaceRule struct {
	Identifier   string `json:"identifier"`
	MonitorIdx   int    `json:"monitor_idx"`
	WorkspaceIdx int    `json:"workspace_idx"`
}

// Config is the on-disk shape persisted to $HOME/.komorebi.json.
type Config struct {
	FloatIdentifiers  []string        `json:"float_identifiers"`
	ManageIdentifiers []string        `json:"manage_identifiers"`
	LayeredWhitelist  []string        `json:"layered_whitelist"`
	TrayExes          []string        `json:"tray_exes"`
	TrayClasses       []string        `json:"tray_classes"`
	WorkspaceRules    []WorkspaceRule `json:"workspace_rules"`

	DefaultLayout    wm.Layout `json:"default_layout"`
	WorkspacePadding int       `json:"workspace_padding"`
	ContainerPadding int       `json:"container_padding"`

	// InvisibleBorder overrides wm.InvisibleBorder when non-nil; the daemon
	// applies it once at startup. Left unset to keep the default
	// {12,0,24,12} correction.
	InvisibleBorder *wm.Rect `json:"invisible_border,omitempty"`

	MouseFollowsFocus bool `json:"mouse_follows_focus"`
}

// Default returns komorebi-go's built-in defaults: BSP layout, no padding,
// no identifier overrides.
func Default() *Config {
	return &Config{
		DefaultLayout:     wm.LayoutBSP,
		WorkspacePadding:  0,
		ContainerPadding:  0,
		MouseFollowsFocus: false,
	}
}

// Load reads Config from $HOME/.komorebi.json. If the file doesn't exist,
// it returns Default() and does not treat that as an error.
func Load(log *logrus.Logger) (*Config, error) {
	cfg := Default()

	path, err := FilePath()
	if err != nil {
		log.WithError(err).Warn("config: could not resolve path, using defaults")
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", path).Info("config: no file found, using defaults")
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	log.WithField("path", path).Info("config: loaded")
	return cfg, nil
}

// Save persists c to $HOME/.komorebi.json.
func (c *Config) Save(log *logrus.Logger) error {
	path, err := FilePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	log.WithField("path", path).Info("config: saved")
	return nil
}

// ApplyTo installs the identifier lists and workspace rules from c into a
// live manager's identifier/rule registries.
func (c *Config) ApplyTo(ids *wm.Identifiers, rules *wm.WorkspaceRules) {
	for _, s := range c.FloatIdentifiers {
		ids.AddFloatIdentifier(s)
	}
	for _, s := range c.ManageIdentifiers {
		ids.AddManageIdentifier(s)
	}
	for _, s := range c.LayeredWhitelist {
		ids.AddLayeredWhitelist(s)
	}
	for i, exe := range c.TrayExes {
		class := ""
		if i < len(c.TrayClasses) {
			class = c.TrayClasses[i]
		}
		ids.AddTrayIdentifier(exe, class)
	}
	for _, r := range c.WorkspaceRules {
		rules.Set(r.Identifier, wm.WorkspaceLocation{MonitorIdx: r.MonitorIdx, WorkspaceIdx: r.WorkspaceIdx})
	}
}
