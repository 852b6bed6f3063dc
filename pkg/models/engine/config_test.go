package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeClamps(t *testing.T) {
	cfg := Config{
		StrokeType:     3,
		CylinderCount:  0,
		Layout:         "w",
		Aspiration:     "rocket",
		DisplacementCC: -1,
		ECU:            ECU{IdleRPM: 900, RedlineRPM: 500, RevLimitRPM: 100},
	}.Normalize()

	if cfg.StrokeType != 4 {
		t.Errorf("stroke type = %d, want 4", cfg.StrokeType)
	}
	if cfg.CylinderCount != 1 {
		t.Errorf("cylinder count = %d, want 1", cfg.CylinderCount)
	}
	if cfg.Layout != LayoutInline || cfg.Aspiration != AspirationNatural {
		t.Errorf("unexpected layout/aspiration %q/%q", cfg.Layout, cfg.Aspiration)
	}
	if cfg.DisplacementCC <= 0 || cfg.Piston.StrokeMM <= 0 {
		t.Errorf("geometry not defaulted: %+v", cfg)
	}
	if !(cfg.ECU.IdleRPM <= cfg.ECU.RedlineRPM && cfg.ECU.RedlineRPM <= cfg.ECU.RevLimitRPM) {
		t.Errorf("ecu limits out of order: %+v", cfg.ECU)
	}
	if cfg.Name == "" {
		t.Error("expected a generated name")
	}
}

func TestNormalizeKeepsValidConfig(t *testing.T) {
	for _, p := range Presets() {
		if got := p.Normalize(); got != p {
			t.Errorf("preset %q changed by Normalize: %+v", p.Name, got)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "v6.json")
	body := `{
		"name": "V6 3.0",
		"cylinder_count": 6,
		"layout": "v",
		"displacement_cc": 3000,
		"aspiration": "turbo",
		"ecu": {"idle_rpm": 750, "redline_rpm": 6800, "rev_limit_rpm": 7000}
	}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Name != "V6 3.0" || cfg.CylinderCount != 6 || cfg.Layout != LayoutV || cfg.Aspiration != AspirationTurbo {
		t.Errorf("bad config %+v", cfg)
	}
	// fields missing from the file keep their defaults
	if cfg.StrokeType != 4 || cfg.Piston.StrokeMM != 86 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Error("expected error for malformed file")
	}
}
