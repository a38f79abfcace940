package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Problem != "decay" {
		t.Errorf("expected problem decay, got %s", cfg.Problem)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if cfg.Sqrt.Tol <= 0 {
		t.Error("sqrt tolerance should be positive")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Problem = "oscillator"
	cfg.Method = "euler"
	cfg.Dt = 0.05
	cfg.Steps = 42
	cfg.InitState = []float64{1.5, -0.5}

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Problem != "oscillator" || loaded.Method != "euler" {
		t.Errorf("roundtrip lost fields: %+v", loaded)
	}
	if loaded.Dt != 0.05 || loaded.Steps != 42 {
		t.Errorf("roundtrip lost numbers: %+v", loaded)
	}
	if len(loaded.InitState) != 2 || loaded.InitState[0] != 1.5 {
		t.Errorf("roundtrip lost init state: %v", loaded.InitState)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("decay", "textbook")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Method != "euler" || cfg.Steps != 10 {
		t.Errorf("unexpected preset contents: %+v", cfg)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("decay", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "textbook") != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("oscillator")) == 0 {
		t.Error("expected presets for oscillator")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent problem")
	}
}
