// pkg/entity/body.go
package entity

import (
	"fmt"

	"github.com/opd-ai/go-orbits/pkg/physics"
)

// ID is a unique identifier for a simulated body
type ID uint64

// PlayerID identifies one of the local players
type PlayerID int

// Kind is the closed set of body variants. Collision and scoring logic
// switch over it exhaustively; there is no open subclassing.
type Kind int

const (
	Sun Kind = iota
	Ship
	Projectile
)

func (k Kind) String() string {
	switch k {
	case Sun:
		return "sun"
	case Ship:
		return "ship"
	case Projectile:
		return "projectile"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Body represents any simulated mass-bearing object: the sun, a ship, or
// a projectile. The simulation loop is the sole owner and mutator of all
// Body values for a round.
type Body struct {
	ID       ID
	Kind     Kind
	Position physics.Vector2D
	Velocity physics.Vector2D
	Heading  float64 // radians, counter-clockwise positive
	Mass     float64
	Radius   float64
	Player   PlayerID // controlling player, ships only
	Owner    PlayerID // firing player, projectiles only
	Age      float64  // seconds since spawn
	Active   bool
}

// NewSun creates the central attractor. The sun is created once at world
// init; its mass does not change afterwards.
func NewSun(id ID, position physics.Vector2D, mass, radius float64) *Body {
	mustBePositive("sun", mass, radius)
	return &Body{
		ID:       id,
		Kind:     Sun,
		Position: position,
		Mass:     mass,
		Radius:   radius,
		Active:   true,
	}
}

// NewShip creates a player ship at the given spawn state.
func NewShip(id ID, player PlayerID, position, velocity physics.Vector2D, heading, mass, radius float64) *Body {
	mustBePositive("ship", mass, radius)
	return &Body{
		ID:       id,
		Kind:     Ship,
		Position: position,
		Velocity: velocity,
		Heading:  heading,
		Mass:     mass,
		Radius:   radius,
		Player:   player,
		Active:   true,
	}
}

// NewProjectile creates a shot owned by the firing player.
func NewProjectile(id ID, owner PlayerID, position, velocity physics.Vector2D, heading, mass, radius float64) *Body {
	mustBePositive("projectile", mass, radius)
	return &Body{
		ID:       id,
		Kind:     Projectile,
		Position: position,
		Velocity: velocity,
		Heading:  heading,
		Mass:     mass,
		Radius:   radius,
		Owner:    owner,
		Active:   true,
	}
}

// mustBePositive enforces the mass/radius invariant. A violation is a
// defect in body construction, not a runtime condition, so it fails fast.
func mustBePositive(kind string, mass, radius float64) {
	if mass <= 0 {
		panic(fmt.Sprintf("entity: %s created with non-positive mass %v", kind, mass))
	}
	if radius <= 0 {
		panic(fmt.Sprintf("entity: %s created with non-positive radius %v", kind, radius))
	}
}

// Collider returns the body's circular collision shape at its current
// position.
func (b *Body) Collider() physics.Circle {
	return physics.Circle{
		Center: b.Position,
		Radius: b.Radius,
	}
}

// Attractor returns the body as a gravity source.
func (b *Body) Attractor() physics.Attractor {
	return physics.Attractor{
		Position: b.Position,
		Mass:     b.Mass,
	}
}
