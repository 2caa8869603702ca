// pkg/config/env_config_test.go
package config

import (
	"testing"
)

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv("ORBITS_GRAVITY", "200")
	t.Setenv("ORBITS_TICK_RATE", "120")
	t.Setenv("ORBITS_FIRE_COOLDOWN", "0.5")
	t.Setenv("ORBITS_SCORE_TARGET", "7")

	cfg := DefaultConfig()
	if err := ApplyEnvironmentOverrides(cfg); err != nil {
		t.Fatalf("ApplyEnvironmentOverrides() failed: %v", err)
	}

	if cfg.Physics.Gravity != 200 {
		t.Errorf("Gravity = %v, expected 200", cfg.Physics.Gravity)
	}
	if cfg.Physics.TickRate != 120 {
		t.Errorf("TickRate = %v, expected 120", cfg.Physics.TickRate)
	}
	if cfg.Ship.FireCooldown != 0.5 {
		t.Errorf("FireCooldown = %v, expected 0.5", cfg.Ship.FireCooldown)
	}
	if cfg.Rules.ScoreTarget != 7 {
		t.Errorf("ScoreTarget = %v, expected 7", cfg.Rules.ScoreTarget)
	}

	// Untouched fields keep their defaults.
	if cfg.World.SunMass != 1024 {
		t.Errorf("SunMass = %v, expected default 1024", cfg.World.SunMass)
	}
}

func TestApplyEnvironmentOverrides_NoVariables(t *testing.T) {
	cfg := DefaultConfig()
	want := *cfg

	if err := ApplyEnvironmentOverrides(cfg); err != nil {
		t.Fatalf("ApplyEnvironmentOverrides() failed: %v", err)
	}
	if *cfg != want {
		t.Errorf("config changed without environment variables: %+v", cfg)
	}
}

func TestApplyEnvironmentOverrides_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "non_numeric_float", env: "ORBITS_GRAVITY", value: "fast"},
		{name: "non_numeric_int", env: "ORBITS_TICK_RATE", value: "sixty"},
		{name: "float_for_int", env: "ORBITS_SCORE_TARGET", value: "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			if err := ApplyEnvironmentOverrides(DefaultConfig()); err == nil {
				t.Error("ApplyEnvironmentOverrides() = nil, expected parse error")
			}
		})
	}
}

func TestApplyEnvironmentOverrides_ThenValidate(t *testing.T) {
	// An override can push a value out of range; Validate still catches it.
	t.Setenv("ORBITS_GRAVITY", "-50")

	cfg := DefaultConfig()
	if err := ApplyEnvironmentOverrides(cfg); err != nil {
		t.Fatalf("ApplyEnvironmentOverrides() failed: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted a negative gravity override")
	}
}
