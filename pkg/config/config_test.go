// pkg/config/config_test.go
package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() fails validation: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults_pass",
			mutate: func(*Config) {},
		},
		{
			name:    "zero_tick_rate",
			mutate:  func(c *Config) { c.Physics.TickRate = 0 },
			wantErr: "tickRate",
		},
		{
			name:    "negative_gravity",
			mutate:  func(c *Config) { c.Physics.Gravity = -1 },
			wantErr: "gravity",
		},
		{
			name:    "spawn_inside_sun",
			mutate:  func(c *Config) { c.World.SpawnRadius = 10 },
			wantErr: "spawnRadius",
		},
		{
			name:    "world_smaller_than_sun",
			mutate:  func(c *Config) { c.World.WorldRadius = 40 },
			wantErr: "worldRadius",
		},
		{
			name:    "zero_ship_mass",
			mutate:  func(c *Config) { c.Ship.Mass = 0 },
			wantErr: "ship.mass",
		},
		{
			name:    "negative_cooldown",
			mutate:  func(c *Config) { c.Ship.FireCooldown = -0.5 },
			wantErr: "fireCooldown",
		},
		{
			name:    "zero_projectile_speed",
			mutate:  func(c *Config) { c.Projectile.Speed = 0 },
			wantErr: "projectile.speed",
		},
		{
			name:    "zero_projectile_lifetime",
			mutate:  func(c *Config) { c.Projectile.Lifetime = 0 },
			wantErr: "lifetime",
		},
		{
			name:    "nan_gravity",
			mutate:  func(c *Config) { c.Physics.Gravity = math.NaN() },
			wantErr: "not finite",
		},
		{
			name:    "infinite_sun_mass",
			mutate:  func(c *Config) { c.World.SunMass = math.Inf(1) },
			wantErr: "not finite",
		},
		{
			name:    "negative_score_target",
			mutate:  func(c *Config) { c.Rules.ScoreTarget = -1 },
			wantErr: "scoreTarget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_TimeStep(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TimeStep(); math.Abs(got-1.0/60.0) > 1e-15 {
		t.Errorf("TimeStep() = %v, expected 1/60", got)
	}

	cfg.Physics.TickRate = 120
	if got := cfg.TimeStep(); math.Abs(got-1.0/120.0) > 1e-15 {
		t.Errorf("TimeStep() = %v, expected 1/120", got)
	}
}

func TestSaveLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	original := DefaultConfig()
	original.Physics.Gravity = 250
	original.Rules.ScoreTarget = 5
	original.Physics.MutualGravity = true

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if loaded.Physics.Gravity != 250 {
		t.Errorf("Gravity = %v, expected 250", loaded.Physics.Gravity)
	}
	if loaded.Rules.ScoreTarget != 5 {
		t.Errorf("ScoreTarget = %v, expected 5", loaded.Rules.ScoreTarget)
	}
	if !loaded.Physics.MutualGravity {
		t.Error("MutualGravity not preserved")
	}
	if *loaded != *original {
		t.Errorf("round trip changed config: %+v vs %+v", loaded, original)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadConfig() on a missing file = nil error")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() on malformed JSON = nil error")
	}
}
