package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// isolate points the search paths at empty temp directories.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	local := t.TempDir()
	old := LocalDir
	LocalDir = local
	t.Cleanup(func() { LocalDir = old })
	return local
}

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	tests := []struct {
		id       string
		target   any
		expected any
	}{
		{"dodge", &DodgeConfig{}, DefaultDodgeConfig()},
		{"pong", &PongConfig{}, DefaultPongConfig()},
		{"blaster", &BlasterConfig{}, DefaultBlasterConfig()},
		{"bayam", &BayamConfig{}, DefaultBayamConfig()},
		{"whack", &WhackConfig{}, DefaultWhackConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			data := DefaultYAML(tc.id)
			if data == nil {
				t.Fatalf("DefaultYAML(%q) = nil", tc.id)
			}
			if err := yaml.Unmarshal(data, tc.target); err != nil {
				t.Fatalf("embedded yaml does not parse: %v", err)
			}
			got := reflect.ValueOf(tc.target).Elem().Interface()
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("embedded %s.yaml = %+v\nexpected %+v", tc.id, got, tc.expected)
			}
		})
	}
}

func TestDefaultYAMLUnknownGame(t *testing.T) {
	if DefaultYAML("tetris") != nil {
		t.Error("DefaultYAML() should be nil for an unknown game")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadBlaster("")
	if err != nil {
		t.Fatalf("LoadBlaster() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBlasterConfig()) {
		t.Errorf("LoadBlaster() = %+v, expected defaults", cfg)
	}
}

func TestLoadCustomYAMLPartialOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := "gameplay:\n  players: 2\n  win_score: 3\nball:\n  speed: 9\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() error: %v", err)
	}
	if cfg.Gameplay.Players != 2 || cfg.Gameplay.WinScore != 3 || cfg.Ball.Speed != 9 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Ball.Radius != 10 || cfg.Paddles.Height != 100 {
		t.Errorf("untouched keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "dodge.toml")
	data := "[ship]\nspeed = 8\ncolor = \"orange\"\n\n[meteors]\nmin_interval_ms = 100\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge() error: %v", err)
	}
	if cfg.Ship.Speed != 8 || cfg.Ship.Color != core.ColorOrange {
		t.Errorf("Ship = %+v, expected speed 8 in orange", cfg.Ship)
	}
	if cfg.Meteors.MinIntervalMS != 100 || cfg.Meteors.BaseIntervalMS != 1000 {
		t.Errorf("Meteors = %+v, expected min 100 and base 1000", cfg.Meteors)
	}
}

func TestLoadLocalDirectory(t *testing.T) {
	local := isolate(t)
	if err := os.WriteFile(filepath.Join(local, "whack.yaml"), []byte("grid:\n  rows: 3\n  cols: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWhack("")
	if err != nil {
		t.Fatalf("LoadWhack() error: %v", err)
	}
	if cfg.Grid.Rows != 3 || cfg.Grid.Cols != 3 {
		t.Errorf("Grid = %+v, expected 3x3 from ./configs", cfg.Grid)
	}
	if cfg.Session.Seconds != 30 {
		t.Errorf("Session.Seconds = %v, expected default 30", cfg.Session.Seconds)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadBayam(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadBayam() should fail for a missing custom file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("growth: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBayam(bad); err == nil {
		t.Error("LoadBayam() should fail for malformed yaml")
	}

	badColor := filepath.Join(t.TempDir(), "color.yaml")
	if err := os.WriteFile(badColor, []byte("ship:\n  color: ultraviolet\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDodge(badColor); err == nil {
		t.Error("LoadDodge() should reject an unknown color")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name     string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.name, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	d := DifficultyConfig{InitialLevel: 0.5}
	ApplyPreset(&d, DifficultyHard)
	if !d.Enabled || d.InitialLevel != 0.7 {
		t.Errorf("after hard preset = %+v", d)
	}

	ApplyPreset(&d, DifficultyFixed)
	if d.Enabled || d.InitialLevel != 0.7 {
		t.Errorf("fixed preset should only disable progression, got %+v", d)
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabledHoldsInitialLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
	})
	if dm.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := dm.Level(0, 1000); got != 0.3 {
		t.Errorf("Level() = %v, expected 0.3", got)
	}
}

func TestDifficultySpeedAndInterval(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1, IntervalReduction: 30},
	})

	if got := dm.Speed(2, 0, 0); got != 2 {
		t.Errorf("Speed() at level 0 = %v, expected 2", got)
	}
	if got := dm.Speed(2, 0, 100); got != 4 {
		t.Errorf("Speed() at level 1 = %v, expected 4", got)
	}
	if got := dm.Interval(60, 10, 0, 100); got != 30 {
		t.Errorf("Interval() at level 1 = %d, expected 30", got)
	}
	if got := dm.Interval(60, 45, 0, 100); got != 45 {
		t.Errorf("Interval() should respect the minimum, got %d", got)
	}
}
