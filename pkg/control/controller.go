// pkg/control/controller.go

// Package control maps per-player input snapshots to thrust and fire
// commands for that player's ship. Each player owns an isolated
// ShipController so one player's key state can never leak into the
// other's.
package control

import (
	"github.com/opd-ai/go-orbits/pkg/entity"
	"github.com/opd-ai/go-orbits/pkg/physics"
)

// InputState is one player's input snapshot for a single tick, produced
// by the input collaborator. Flags carry key-down/key-up semantics.
type InputState struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
	Fire        bool
}

// FireCommand is an edge-triggered request to spawn a projectile from a
// ship. It is consumed by the simulation loop within the same tick.
type FireCommand struct {
	Origin    physics.Vector2D
	Direction physics.Vector2D
	Heading   float64
	Owner     entity.PlayerID
}

// Tuning holds the controller's fixed rates, supplied by configuration.
type Tuning struct {
	ThrustAccel  float64 // acceleration magnitude along heading
	RotationRate float64 // radians per second
	FireCooldown float64 // seconds between shots
	FuelCapacity float64 // seconds of burn; <= 0 means unlimited
	FuelBurnRate float64 // fuel per second of thrust; <= 0 disables burn
}

// ShipController holds one player's control state across ticks.
type ShipController struct {
	Player entity.PlayerID

	tuning   Tuning
	fuel     float64
	cooldown float64
	fireHeld bool // previous tick's fire flag, for edge detection
}

// NewShipController creates a controller for the given player.
func NewShipController(player entity.PlayerID, tuning Tuning) *ShipController {
	return &ShipController{
		Player: player,
		tuning: tuning,
		fuel:   tuning.FuelCapacity,
	}
}

// Reset restores per-round state (fuel, cooldown) while keeping edge
// detection across the round boundary so a held key does not fire into
// the new round.
func (c *ShipController) Reset() {
	c.fuel = c.tuning.FuelCapacity
	c.cooldown = 0
}

// Fuel reports the remaining burn budget, for display.
func (c *ShipController) Fuel() float64 {
	return c.fuel
}

// Update applies one tick of input to the ship. Rotation changes the
// heading directly at the fixed rate; opposing rotate keys cancel to net
// zero. Thrust is returned as an acceleration term so the simulation can
// feed it into the same integrator call as gravity, keeping timestep
// handling consistent. A FireCommand is returned only on the not-held to
// held transition of the fire flag, and only when the weapon cooldown
// has elapsed.
func (c *ShipController) Update(ship *entity.Body, in InputState, dt float64) (physics.Vector2D, *FireCommand) {
	switch {
	case in.RotateLeft && in.RotateRight:
		// Conflicting input resolves to no rotation.
	case in.RotateLeft:
		ship.Heading += c.tuning.RotationRate * dt
	case in.RotateRight:
		ship.Heading -= c.tuning.RotationRate * dt
	}

	var thrust physics.Vector2D
	if in.Thrust && c.hasFuel() {
		thrust = physics.FromAngle(ship.Heading, c.tuning.ThrustAccel)
		if c.tuning.FuelBurnRate > 0 {
			c.fuel -= c.tuning.FuelBurnRate * dt
			if c.fuel < 0 {
				c.fuel = 0
			}
		}
	}

	if c.cooldown > 0 {
		c.cooldown -= dt
		if c.cooldown < 0 {
			c.cooldown = 0
		}
	}

	var cmd *FireCommand
	if in.Fire && !c.fireHeld && c.cooldown == 0 {
		dir := physics.FromAngle(ship.Heading, 1)
		cmd = &FireCommand{
			Origin:    ship.Position.Add(dir.Scale(ship.Radius)),
			Direction: dir,
			Heading:   ship.Heading,
			Owner:     c.Player,
		}
		c.cooldown = c.tuning.FireCooldown
	}
	c.fireHeld = in.Fire

	return thrust, cmd
}

// hasFuel reports whether thrust is currently available.
func (c *ShipController) hasFuel() bool {
	if c.tuning.FuelCapacity <= 0 || c.tuning.FuelBurnRate <= 0 {
		return true
	}
	return c.fuel > 0
}
