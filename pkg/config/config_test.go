package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.GridSize != 20 {
		t.Errorf("Expected 20x20 grid, got %d", cfg.GridSize)
	}
	if cfg.BaseInterval != 150*time.Millisecond {
		t.Errorf("Expected 150ms base interval, got %v", cfg.BaseInterval)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.env")
	content := "SNAKE_GRID_SIZE=30\nSNAKE_BASE_INTERVAL=200ms\nSNAKE_SEED=42\nSNAKE_START_DIRECTION=up\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"SNAKE_GRID_SIZE", "SNAKE_BASE_INTERVAL", "SNAKE_SEED", "SNAKE_START_DIRECTION"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GridSize != 30 {
		t.Errorf("Expected grid size 30, got %d", cfg.GridSize)
	}
	if cfg.BaseInterval != 200*time.Millisecond {
		t.Errorf("Expected 200ms, got %v", cfg.BaseInterval)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
	if cfg.StartDirection != DirUp {
		t.Errorf("Expected start direction up, got %q", cfg.StartDirection)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("missing env file should be ignored: %v", err)
	}
	if cfg.PointsPerFood != DefaultPointsPerFood {
		t.Errorf("Expected default points, got %d", cfg.PointsPerFood)
	}
}

func TestLoadRejectsBadValue(t *testing.T) {
	t.Setenv("SNAKE_GRID_SIZE", "twenty")
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Error("Expected error for non-numeric grid size")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Game)
	}{
		{"tiny grid", func(c *Game) { c.GridSize = 1 }},
		{"zero cell size", func(c *Game) { c.CellSize = 0 }},
		{"start outside", func(c *Game) { c.StartX = 20 }},
		{"zero interval", func(c *Game) { c.BaseInterval = 0 }},
		{"floor above base", func(c *Game) { c.SpeedFloor = 200 * time.Millisecond }},
		{"zero threshold", func(c *Game) { c.SpeedStepThreshold = 0 }},
		{"bad direction", func(c *Game) { c.StartDirection = "north" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("%s: expected validation error", tc.name)
			}
		})
	}
}
