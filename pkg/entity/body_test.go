// pkg/entity/body_test.go
package entity

import (
	"testing"

	"github.com/opd-ai/go-orbits/pkg/physics"
)

func TestNewSun(t *testing.T) {
	sun := NewSun(1, physics.Vector2D{}, 1024, 48)

	if sun.Kind != Sun {
		t.Errorf("Kind = %v, expected Sun", sun.Kind)
	}
	if !sun.Active {
		t.Error("new sun is not active")
	}
	if sun.Velocity != (physics.Vector2D{}) {
		t.Errorf("sun has velocity %v, expected zero", sun.Velocity)
	}
}

func TestNewShip(t *testing.T) {
	ship := NewShip(2, 0, physics.Vector2D{X: 256, Y: 0}, physics.Vector2D{X: 0, Y: 20}, 1.5, 1, 8)

	if ship.Kind != Ship {
		t.Errorf("Kind = %v, expected Ship", ship.Kind)
	}
	if ship.Player != 0 {
		t.Errorf("Player = %v, expected 0", ship.Player)
	}
	if ship.Heading != 1.5 {
		t.Errorf("Heading = %v, expected 1.5", ship.Heading)
	}
}

func TestNewProjectile(t *testing.T) {
	p := NewProjectile(3, 1, physics.Vector2D{X: 10, Y: 0}, physics.Vector2D{X: 120, Y: 0}, 0, 0.01, 2)

	if p.Kind != Projectile {
		t.Errorf("Kind = %v, expected Projectile", p.Kind)
	}
	if p.Owner != 1 {
		t.Errorf("Owner = %v, expected 1", p.Owner)
	}
	if p.Age != 0 {
		t.Errorf("Age = %v, expected 0", p.Age)
	}
}

func TestConstructors_PanicOnInvalidMass(t *testing.T) {
	tests := []struct {
		name   string
		create func()
	}{
		{
			name: "zero_mass_sun",
			create: func() {
				NewSun(1, physics.Vector2D{}, 0, 48)
			},
		},
		{
			name: "negative_mass_ship",
			create: func() {
				NewShip(1, 0, physics.Vector2D{}, physics.Vector2D{}, 0, -1, 8)
			},
		},
		{
			name: "zero_radius_projectile",
			create: func() {
				NewProjectile(1, 0, physics.Vector2D{}, physics.Vector2D{}, 0, 0.01, 0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("constructor did not panic on invalid parameters")
				}
			}()
			tt.create()
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Sun, "sun"},
		{Ship, "ship"},
		{Projectile, "projectile"},
		{Kind(42), "kind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", int(tt.kind), got, tt.expected)
		}
	}
}

func TestBody_Collider(t *testing.T) {
	ship := NewShip(1, 0, physics.Vector2D{X: 5, Y: 7}, physics.Vector2D{}, 0, 1, 8)

	c := ship.Collider()
	if c.Center != ship.Position {
		t.Errorf("Collider center = %v, expected %v", c.Center, ship.Position)
	}
	if c.Radius != 8 {
		t.Errorf("Collider radius = %v, expected 8", c.Radius)
	}
}

func TestIDGenerator(t *testing.T) {
	gen := NewIDGenerator()

	for want := ID(1); want <= 5; want++ {
		if got := gen.Next(); got != want {
			t.Errorf("Next() = %v, expected %v", got, want)
		}
	}

	// Two generators number independently; IDs are unique per simulation,
	// not globally.
	other := NewIDGenerator()
	if got := other.Next(); got != 1 {
		t.Errorf("fresh generator Next() = %v, expected 1", got)
	}
}
