package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/skyrocket/pkg/embedded"
)

func TestLoadTuningConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *TuningConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
enemy:
  baseSpeed: 2
shot:
  shieldBonus: 75
`,
			validate: func(t *testing.T, cfg *TuningConfig) {
				if cfg.Enemy.BaseSpeed != 2 {
					t.Errorf("expected baseSpeed = 2, got %f", cfg.Enemy.BaseSpeed)
				}
				if cfg.Shot.ShieldBonus != 75 {
					t.Errorf("expected shieldBonus = 75, got %d", cfg.Shot.ShieldBonus)
				}
				// 未配置的字段保留默认值
				if cfg.Enemy.Radius != 20 {
					t.Errorf("expected default radius = 20, got %f", cfg.Enemy.Radius)
				}
				if cfg.Shot.DestroyBonus != 150 {
					t.Errorf("expected default destroyBonus = 150, got %d", cfg.Shot.DestroyBonus)
				}
			},
		},
		{
			name: "spawn floor above initial rate",
			yamlContent: `
spawn:
  initialRate: 20
  minRate: 30
`,
			wantErr:     true,
			errContains: "initialRate",
		},
		{
			name: "ground fraction out of range",
			yamlContent: `
ground:
  zoneFraction: 1.5
`,
			wantErr:     true,
			errContains: "zoneFraction",
		},
		{
			name: "inverted puff radius range",
			yamlContent: `
shot:
  puffMinRadius: 9
  puffMaxRadius: 3
`,
			wantErr:     true,
			errContains: "puff radius",
		},
		{
			name:        "malformed yaml",
			yamlContent: "enemy: [radius",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg, err := LoadTuningConfig(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadTuningConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadTuningConfigMissingFile(t *testing.T) {
	_, err := LoadTuningConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("DefaultTuning() should be valid: %v", err)
	}
}

// TestRepoTuningMatchesDefaults 确保 data/tuning.yaml 与内置默认值一致
func TestRepoTuningMatchesDefaults(t *testing.T) {
	cfg, err := LoadTuningConfig(filepath.Join("..", "..", EmbeddedTuningPath))
	if err != nil {
		t.Fatalf("failed to load repo tuning: %v", err)
	}
	if *cfg != *DefaultTuning() {
		t.Errorf("data/tuning.yaml diverges from DefaultTuning():\n got  %+v\n want %+v", *cfg, *DefaultTuning())
	}
}

func TestLoadTuningFromEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		EmbeddedTuningPath: &fstest.MapFile{Data: []byte("score:\n  syncInterval: 5\n")},
	})
	defer embedded.Init(nil)

	cfg, err := LoadTuningFromEmbedded()
	if err != nil {
		t.Fatalf("LoadTuningFromEmbedded() error: %v", err)
	}
	if cfg.Score.SyncInterval != 5 {
		t.Errorf("expected syncInterval = 5, got %d", cfg.Score.SyncInterval)
	}
}

func TestResolveTuning(t *testing.T) {
	t.Run("defaults without embedded data", func(t *testing.T) {
		embedded.Init(nil)
		cfg, err := ResolveTuning("")
		if err != nil {
			t.Fatalf("ResolveTuning() error: %v", err)
		}
		if *cfg != *DefaultTuning() {
			t.Error("expected built-in defaults")
		}
	})

	t.Run("embedded data", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			EmbeddedTuningPath: &fstest.MapFile{Data: []byte("render:\n  starCount: 12\n")},
		})
		defer embedded.Init(nil)

		cfg, err := ResolveTuning("")
		if err != nil {
			t.Fatalf("ResolveTuning() error: %v", err)
		}
		if cfg.Render.StarCount != 12 {
			t.Errorf("expected starCount = 12, got %d", cfg.Render.StarCount)
		}
	})

	t.Run("explicit path wins", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			EmbeddedTuningPath: &fstest.MapFile{Data: []byte("render:\n  starCount: 12\n")},
		})
		defer embedded.Init(nil)

		path := filepath.Join(t.TempDir(), "tuning.yaml")
		if err := os.WriteFile(path, []byte("render:\n  starCount: 3\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := ResolveTuning(path)
		if err != nil {
			t.Fatalf("ResolveTuning() error: %v", err)
		}
		if cfg.Render.StarCount != 3 {
			t.Errorf("expected starCount = 3, got %d", cfg.Render.StarCount)
		}
	})

	t.Run("missing explicit path", func(t *testing.T) {
		if _, err := ResolveTuning(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestGroundLineY(t *testing.T) {
	if got := GroundLineY(800, 0.25); got != 600 {
		t.Errorf("GroundLineY(800, 0.25) = %v, want 600", got)
	}
}
