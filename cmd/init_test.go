package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HotpotSnowguy/yeet/internal/config"
)

func withFlags(t *testing.T, cfgPath string, force bool) {
	t.Helper()
	oldConfig, oldForce := flagConfig, flagInitForce
	flagConfig, flagInitForce = cfgPath, force
	t.Cleanup(func() { flagConfig, flagInitForce = oldConfig, oldForce })
}

func TestRunInit_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yeet", "config.yaml")
	withFlags(t, path, false)

	if err := runInit(nil, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.MaxResults != 10 || cfg.Search.MinScore != 20 {
		t.Fatalf("unexpected config written: %+v", cfg)
	}
}

func TestRunInit_KeepsExistingUnlessForced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("general:\n  max_results: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	withFlags(t, path, false)
	if err := runInit(nil, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "general:\n  max_results: 3\n" {
		t.Fatalf("existing config was modified:\n%s", data)
	}

	flagInitForce = true
	if err := runInit(nil, nil); err != nil {
		t.Fatalf("runInit --force: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.MaxResults != 10 {
		t.Fatalf("max_results = %d after --force, want 10", cfg.General.MaxResults)
	}
}
