// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ApplyEnvironmentOverrides replaces selected tunables with values from
// ORBITS_* environment variables when set. Overrides are applied before
// Validate so an out-of-range override is still rejected at startup.
func ApplyEnvironmentOverrides(c *Config) error {
	floatOverrides := []struct {
		env    string
		target *float64
	}{
		{"ORBITS_GRAVITY", &c.Physics.Gravity},
		{"ORBITS_SUN_MASS", &c.World.SunMass},
		{"ORBITS_WORLD_RADIUS", &c.World.WorldRadius},
		{"ORBITS_THRUST_ACCEL", &c.Ship.ThrustAccel},
		{"ORBITS_ROTATION_RATE", &c.Ship.RotationRate},
		{"ORBITS_FIRE_COOLDOWN", &c.Ship.FireCooldown},
		{"ORBITS_PROJECTILE_SPEED", &c.Projectile.Speed},
		{"ORBITS_PROJECTILE_LIFETIME", &c.Projectile.Lifetime},
	}

	for _, o := range floatOverrides {
		raw, ok := os.LookupEnv(o.env)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", o.env, raw, err)
		}
		*o.target = v
	}

	intOverrides := []struct {
		env    string
		target *int
	}{
		{"ORBITS_TICK_RATE", &c.Physics.TickRate},
		{"ORBITS_SCORE_TARGET", &c.Rules.ScoreTarget},
	}

	for _, o := range intOverrides {
		raw, ok := os.LookupEnv(o.env)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", o.env, raw, err)
		}
		*o.target = v
	}

	return nil
}
