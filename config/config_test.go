package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/komorebi-go/komorebi/wm"
)

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestLoadReturnsDefaultsWhenFileAbsent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(silentLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultLayout != wm.LayoutBSP {
		t.Fatalf("expected default layout BSP, got %v", cfg.DefaultLayout)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := Default()
	cfg.FloatIdentifiers = []string{"winver.exe"}
	cfg.WorkspacePadding = 10
	cfg.WorkspaceRules = []WorkspaceRule{{Identifier: "slack.exe", MonitorIdx: 1, WorkspaceIdx: 2}}

	if err := cfg.Save(silentLogger()); err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}

	loaded, err := Load(silentLogger())
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	if len(loaded.FloatIdentifiers) != 1 || loaded.FloatIdentifiers[0] != "winver.exe" {
		t.Fatalf("expected float identifiers to round-trip, got %v", loaded.FloatIdentifiers)
	}
	if loaded.WorkspacePadding != 10 {
		t.Fatalf("expected workspace padding 10, got %d", loaded.WorkspacePadding)
	}
	if len(loaded.WorkspaceRules) != 1 || loaded.WorkspaceRules[0].MonitorIdx != 1 {
		t.Fatalf("expected workspace rule to round-trip, got %+v", loaded.WorkspaceRules)
	}
}

func TestLoadSurvivesPresentHomeWithoutConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	// A directory that exists but holds no config file yet.
	if err := os.MkdirAll(filepath.Join(home, "sub"), 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	cfg, err := Load(silentLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected a non-nil default config")
	}
}

func TestApplyToInstallsIdentifiersAndRules(t *testing.T) {
	cfg := Default()
	cfg.FloatIdentifiers = []string{"calc.exe"}
	cfg.ManageIdentifiers = []string{"tool.exe"}
	cfg.LayeredWhitelist = []string{"overlay.exe"}
	cfg.TrayExes = []string{"tray.exe"}
	cfg.TrayClasses = []string{"TrayClass"}
	cfg.WorkspaceRules = []WorkspaceRule{{Identifier: "slack.exe", MonitorIdx: 0, WorkspaceIdx: 1}}

	ids := wm.NewIdentifiers()
	rules := wm.NewWorkspaceRules()
	cfg.ApplyTo(ids, rules)

	if !ids.FloatMatches("", "calc.exe", "") {
		t.Fatalf("expected float identifier to be installed")
	}
	if !ids.ManageMatches("tool.exe", "") {
		t.Fatalf("expected manage identifier to be installed")
	}
	if !ids.LayeredWhitelisted("overlay.exe") {
		t.Fatalf("expected layered whitelist entry to be installed")
	}
	if !ids.IsTray("tray.exe", "TrayClass") {
		t.Fatalf("expected tray identifier to be installed")
	}
	loc, ok := rules.Lookup("slack.exe", "")
	if !ok || loc.WorkspaceIdx != 1 {
		t.Fatalf("expected workspace rule to be installed, got %+v (ok=%v)", loc, ok)
	}
}
