// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Config contains all tunables for an Orbits session. Values are chosen
// for gameplay feel, not physical accuracy.
type Config struct {
	World      WorldConfig      `json:"world"`
	Physics    PhysicsConfig    `json:"physics"`
	Ship       ShipConfig       `json:"ship"`
	Projectile ProjectileConfig `json:"projectile"`
	Rules      RulesConfig      `json:"rules"`
}

// WorldConfig describes the sun and the playable area.
type WorldConfig struct {
	SunMass     float64 `json:"sunMass"`
	SunRadius   float64 `json:"sunRadius"`
	WorldRadius float64 `json:"worldRadius"` // bodies beyond this are culled
	SpawnRadius float64 `json:"spawnRadius"` // orbital radius ships start at
}

// PhysicsConfig contains integration and gravity tunables.
type PhysicsConfig struct {
	Gravity       float64 `json:"gravity"`
	MinSeparation float64 `json:"minSeparation"`
	MutualGravity bool    `json:"mutualGravity"` // ships/projectiles attract each other
	TickRate      int     `json:"tickRate"`      // simulation steps per second
	PathSteps     int     `json:"pathSteps"`     // samples in the predicted orbit overlay
}

// ShipConfig contains per-ship tunables shared by both players.
type ShipConfig struct {
	Mass         float64 `json:"mass"`
	Radius       float64 `json:"radius"`
	ThrustAccel  float64 `json:"thrustAccel"`
	RotationRate float64 `json:"rotationRate"` // radians per second
	FireCooldown float64 `json:"fireCooldown"` // seconds between shots
	FuelCapacity float64 `json:"fuelCapacity"` // seconds of burn, 0 = unlimited
	FuelBurnRate float64 `json:"fuelBurnRate"` // fuel per second of thrust
}

// ProjectileConfig contains projectile tunables.
type ProjectileConfig struct {
	Mass     float64 `json:"mass"`
	Radius   float64 `json:"radius"`
	Speed    float64 `json:"speed"`    // launch speed added to ship velocity
	Lifetime float64 `json:"lifetime"` // seconds before a missed shot expires
}

// RulesConfig contains match rules.
type RulesConfig struct {
	ScoreTarget int `json:"scoreTarget"` // round wins to take the match, 0 = endless
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			SunMass:     1024,
			SunRadius:   48,
			WorldRadius: 1000,
			SpawnRadius: 256,
		},
		Physics: PhysicsConfig{
			Gravity:       100,
			MinSeparation: 1,
			MutualGravity: false,
			TickRate:      60,
			PathSteps:     240,
		},
		Ship: ShipConfig{
			Mass:         1,
			Radius:       8,
			ThrustAccel:  40,
			RotationRate: 3,
			FireCooldown: 1,
			FuelCapacity: 0,
			FuelBurnRate: 0,
		},
		Projectile: ProjectileConfig{
			Mass:     0.01,
			Radius:   2,
			Speed:    120,
			Lifetime: 8,
		},
		Rules: RulesConfig{
			ScoreTarget: 3,
		},
	}
}

// Validate rejects out-of-range tunables before the first simulation tick
// runs. It returns an error describing the first offending field.
func (c *Config) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.Physics.TickRate > 0, "physics.tickRate must be positive"},
		{c.Physics.Gravity > 0, "physics.gravity must be positive"},
		{c.Physics.MinSeparation > 0, "physics.minSeparation must be positive"},
		{c.Physics.PathSteps > 0, "physics.pathSteps must be positive"},
		{c.World.SunMass > 0, "world.sunMass must be positive"},
		{c.World.SunRadius > 0, "world.sunRadius must be positive"},
		{c.World.WorldRadius > c.World.SunRadius, "world.worldRadius must exceed world.sunRadius"},
		{c.World.SpawnRadius > c.World.SunRadius, "world.spawnRadius must exceed world.sunRadius"},
		{c.World.SpawnRadius < c.World.WorldRadius, "world.spawnRadius must be inside world.worldRadius"},
		{c.Ship.Mass > 0, "ship.mass must be positive"},
		{c.Ship.Radius > 0, "ship.radius must be positive"},
		{c.Ship.ThrustAccel > 0, "ship.thrustAccel must be positive"},
		{c.Ship.RotationRate > 0, "ship.rotationRate must be positive"},
		{c.Ship.FireCooldown >= 0, "ship.fireCooldown must not be negative"},
		{c.Ship.FuelCapacity >= 0, "ship.fuelCapacity must not be negative"},
		{c.Ship.FuelBurnRate >= 0, "ship.fuelBurnRate must not be negative"},
		{c.Projectile.Mass > 0, "projectile.mass must be positive"},
		{c.Projectile.Radius > 0, "projectile.radius must be positive"},
		{c.Projectile.Speed > 0, "projectile.speed must be positive"},
		{c.Projectile.Lifetime > 0, "projectile.lifetime must be positive"},
		{c.Rules.ScoreTarget >= 0, "rules.scoreTarget must not be negative"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("invalid configuration: %s", check.field)
		}
	}

	for _, v := range []struct {
		name  string
		value float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"world.sunMass", c.World.SunMass},
		{"ship.thrustAccel", c.Ship.ThrustAccel},
		{"projectile.speed", c.Projectile.Speed},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("invalid configuration: %s is not finite", v.name)
		}
	}

	return nil
}

// TimeStep returns the fixed simulation timestep in seconds.
func (c *Config) TimeStep() float64 {
	return 1.0 / float64(c.Physics.TickRate)
}
