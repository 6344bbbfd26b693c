package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test simulation defaults
	if cfg.Simulation.Steps != 60 {
		t.Errorf("expected 60 steps, got %d", cfg.Simulation.Steps)
	}
	if cfg.Simulation.TimeStep != 1.0/60.0 {
		t.Errorf("expected time step 1/60, got %f", cfg.Simulation.TimeStep)
	}
	if cfg.Simulation.MaxVertices != 2000 {
		t.Errorf("expected max vertices 2000, got %d", cfg.Simulation.MaxVertices)
	}
	if cfg.Simulation.TemporalMemory != 8 {
		t.Errorf("expected temporal memory 8, got %d", cfg.Simulation.TemporalMemory)
	}

	// Blend weights must sum to 1 so the branches stay normalized
	sum := cfg.Simulation.LinearWeight + cfg.Simulation.NonlinearWeight + cfg.Simulation.TemporalWeight
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("expected blend weights to sum to 1, got %f", sum)
	}
	if cfg.Simulation.WrinkleThreshold != 0.1 {
		t.Errorf("expected wrinkle threshold 0.1, got %f", cfg.Simulation.WrinkleThreshold)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clothsim.yaml")

	content := `simulation:
  steps: 120
  max_vertices: 500
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if cfg.Simulation.Steps != 120 {
		t.Errorf("expected 120 steps from file, got %d", cfg.Simulation.Steps)
	}
	if cfg.Simulation.MaxVertices != 500 {
		t.Errorf("expected max vertices 500 from file, got %d", cfg.Simulation.MaxVertices)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug' from file, got %s", cfg.Logging.Level)
	}

	// Values absent from the file keep their defaults
	if cfg.Simulation.TemporalMemory != 8 {
		t.Errorf("expected temporal memory 8 to survive merge, got %d", cfg.Simulation.TemporalMemory)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/clothsim.yaml"); err == nil {
		t.Error("expected error loading nonexistent file")
	}
}

func TestSaveTo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "clothsim.yaml")

	cfg := Default()
	cfg.Simulation.Steps = 90

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Simulation.Steps != 90 {
		t.Errorf("expected 90 steps after round trip, got %d", loaded.Simulation.Steps)
	}
}
