package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test creates.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg CubeSnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultCubeSnakeConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultCubeSnakeConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadCubeSnake("")
	if err != nil {
		t.Fatalf("LoadCubeSnake: %v", err)
	}
	if cfg != DefaultCubeSnakeConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  grid_size: 4\n")

	cfg, err := LoadCubeSnake(path)
	if err != nil {
		t.Fatalf("LoadCubeSnake: %v", err)
	}
	if cfg.Board.GridSize != 4 {
		t.Errorf("Expected grid size 4, got %d", cfg.Board.GridSize)
	}
	// Keys not in the file keep defaults
	if cfg.Timing.BaseIntervalMs != 150 {
		t.Errorf("Expected base interval 150, got %d", cfg.Timing.BaseIntervalMs)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadCubeSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "board: [not, a, map\n")
	if _, err := LoadCubeSnake(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", "cubesnake.yaml"), "board:\n  grid_size: 7\n")
	cfg, err := LoadCubeSnake("")
	if err != nil {
		t.Fatalf("LoadCubeSnake: %v", err)
	}
	if cfg.Board.GridSize != 7 {
		t.Errorf("Expected local config (7), got %d", cfg.Board.GridSize)
	}

	// User config wins over the local one
	writeFile(t, filepath.Join(home, ".cubesnake", "configs", "cubesnake.yaml"), "board:\n  grid_size: 5\n")
	cfg, err = LoadCubeSnake("")
	if err != nil {
		t.Fatalf("LoadCubeSnake: %v", err)
	}
	if cfg.Board.GridSize != 5 {
		t.Errorf("Expected user config (5), got %d", cfg.Board.GridSize)
	}
}

func TestLoadSkipsMalformedUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".cubesnake", "configs", "cubesnake.yaml"), ":::")

	cfg, err := LoadCubeSnake("")
	if err != nil {
		t.Fatalf("LoadCubeSnake: %v", err)
	}
	if cfg.Board.GridSize != 10 {
		t.Errorf("Expected default grid size, got %d", cfg.Board.GridSize)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CUBESNAKE_GRID_SIZE", "3")
	t.Setenv("CUBESNAKE_BASE_INTERVAL_MS", "200")
	t.Setenv("CUBESNAKE_MIN_INTERVAL_MS", "90")

	cfg, err := LoadCubeSnake("")
	if err != nil {
		t.Fatalf("LoadCubeSnake: %v", err)
	}
	if cfg.Board.GridSize != 3 {
		t.Errorf("Expected grid size 3, got %d", cfg.Board.GridSize)
	}
	if cfg.Timing.BaseIntervalMs != 200 || cfg.Timing.MinIntervalMs != 90 {
		t.Errorf("Expected timing 200/90, got %+v", cfg.Timing)
	}
}

func TestLoadEnvErrors(t *testing.T) {
	isolate(t)
	t.Setenv("CUBESNAKE_GRID_SIZE", "big")

	_, err := LoadCubeSnake("")
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("Expected parse env error, got %v", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	isolate(t)
	t.Setenv("CUBESNAKE_MIN_INTERVAL_MS", "500")

	if _, err := LoadCubeSnake(""); err == nil {
		t.Error("Expected error for min interval above base interval")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultCubeSnakeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	cfg.Board.GridSize = 0
	cfg.Difficulty.Progression.Type = "lunar"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"grid_size", "progression.type"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}
}

func TestLoadCLIEnv(t *testing.T) {
	t.Setenv("CUBESNAKE_PLAYER", "ada")

	e, err := LoadCLIEnv()
	if err != nil {
		t.Fatalf("LoadCLIEnv: %v", err)
	}
	if e.Player != "ada" {
		t.Errorf("Expected player ada, got %q", e.Player)
	}
	if e.DBPath != "~/.cubesnake/scores.db" {
		t.Errorf("Expected default db path, got %q", e.DBPath)
	}
	if e.APIAddr != ":8080" || e.SSHAddr != ":23234" {
		t.Errorf("Expected default addresses, got %q %q", e.APIAddr, e.SSHAddr)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q): %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultCubeSnakeConfig()

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: got %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	if got := dm.Level(0, 0); got != 0.5 {
		t.Errorf("Level(0) = %v, expected 0.5", got)
	}
	if got := dm.Level(50, 0); got != 0.75 {
		t.Errorf("Level(50) = %v, expected 0.75", got)
	}
	if got := dm.Level(500, 0); got != 1.0 {
		t.Errorf("Level(500) = %v, expected 1.0", got)
	}

	dm.SetEnabled(false)
	if got := dm.Level(500, 0); got != 0.5 {
		t.Errorf("disabled Level(500) = %v, expected 0.5", got)
	}
	if dm.IsEnabled() {
		t.Error("Expected IsEnabled() = false")
	}
}

func TestDifficultyLevelTime(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 10},
	})
	if got := dm.Level(999, 5); got != 0.5 {
		t.Errorf("Level(ticks=5) = %v, expected 0.5", got)
	}
}

func TestDifficultyInterval(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
	})
	base, floor := 150*time.Millisecond, 70*time.Millisecond

	if got := dm.Interval(base, floor, 0, 0); got != base {
		t.Errorf("Interval at score 0 = %v, expected %v", got, base)
	}
	if got := dm.Interval(base, floor, 50, 0); got != 110*time.Millisecond {
		t.Errorf("Interval at score 50 = %v, expected 110ms", got)
	}
	if got := dm.Interval(base, floor, 1000, 0); got != floor {
		t.Errorf("Interval past max = %v, expected %v", got, floor)
	}

	// Floor above base is ignored
	if got := dm.Interval(base, time.Second, 1000, 0); got != base {
		t.Errorf("Interval with floor > base = %v, expected %v", got, base)
	}
}

func TestDifficultySetInitialLevelClamps(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Progression: ProgressionConfig{Type: "none"}})
	dm.SetInitialLevel(3)
	if got := dm.Level(0, 0); got != 1.0 {
		t.Errorf("Level = %v, expected clamp to 1.0", got)
	}
}
