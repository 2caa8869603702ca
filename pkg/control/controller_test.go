// pkg/control/controller_test.go
package control

import (
	"math"
	"testing"

	"github.com/opd-ai/go-orbits/pkg/entity"
	"github.com/opd-ai/go-orbits/pkg/physics"
)

const dt = 1.0 / 60.0

func testTuning() Tuning {
	return Tuning{
		ThrustAccel:  40,
		RotationRate: 3,
		FireCooldown: 1,
	}
}

func testShip() *entity.Body {
	return entity.NewShip(1, 0, physics.Vector2D{X: 256, Y: 0}, physics.Vector2D{}, 0, 1, 8)
}

func TestShipController_Rotation(t *testing.T) {
	tests := []struct {
		name     string
		in       InputState
		expected float64
	}{
		{
			name:     "rotate_left",
			in:       InputState{RotateLeft: true},
			expected: 3 * dt,
		},
		{
			name:     "rotate_right",
			in:       InputState{RotateRight: true},
			expected: -3 * dt,
		},
		{
			name:     "both_keys_cancel",
			in:       InputState{RotateLeft: true, RotateRight: true},
			expected: 0,
		},
		{
			name:     "no_rotation_input",
			in:       InputState{Thrust: true},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewShipController(0, testTuning())
			ship := testShip()

			ctrl.Update(ship, tt.in, dt)

			if math.Abs(ship.Heading-tt.expected) > 1e-12 {
				t.Errorf("Heading = %v, expected %v", ship.Heading, tt.expected)
			}
		})
	}
}

func TestShipController_Thrust(t *testing.T) {
	ctrl := NewShipController(0, testTuning())
	ship := testShip()
	ship.Heading = math.Pi / 2

	thrust, _ := ctrl.Update(ship, InputState{Thrust: true}, dt)

	if math.Abs(thrust.Length()-40) > 1e-12 {
		t.Errorf("thrust magnitude = %v, expected 40", thrust.Length())
	}
	if math.Abs(thrust.X) > 1e-9 || thrust.Y < 39 {
		t.Errorf("thrust = %v, expected along +Y heading", thrust)
	}

	// Velocity is not touched here; the simulation integrates the
	// returned acceleration together with gravity.
	if ship.Velocity != (physics.Vector2D{}) {
		t.Errorf("controller mutated velocity: %v", ship.Velocity)
	}

	coast, _ := ctrl.Update(ship, InputState{}, dt)
	if coast != (physics.Vector2D{}) {
		t.Errorf("thrust without input = %v, expected zero", coast)
	}
}

func TestShipController_FireEdgeTriggered(t *testing.T) {
	ctrl := NewShipController(0, testTuning())
	ship := testShip()

	// Hold the key for many ticks: exactly one shot.
	shots := 0
	for i := 0; i < 30; i++ {
		if _, cmd := ctrl.Update(ship, InputState{Fire: true}, dt); cmd != nil {
			shots++
		}
	}
	if shots != 1 {
		t.Fatalf("held fire produced %d shots, expected 1", shots)
	}

	// Releasing during cooldown and pressing again must not fire early.
	ctrl.Update(ship, InputState{}, dt)
	if _, cmd := ctrl.Update(ship, InputState{Fire: true}, dt); cmd != nil {
		t.Fatal("fire during cooldown produced a shot")
	}
}

func TestShipController_FireAfterCooldown(t *testing.T) {
	ctrl := NewShipController(0, testTuning())
	ship := testShip()

	if _, cmd := ctrl.Update(ship, InputState{Fire: true}, dt); cmd == nil {
		t.Fatal("first press did not fire")
	}

	// Run out the 1s cooldown with the key released.
	for i := 0; i < 61; i++ {
		ctrl.Update(ship, InputState{}, dt)
	}

	_, cmd := ctrl.Update(ship, InputState{Fire: true}, dt)
	if cmd == nil {
		t.Fatal("press after cooldown did not fire")
	}
	if cmd.Owner != 0 {
		t.Errorf("FireCommand.Owner = %v, expected 0", cmd.Owner)
	}

	// The shot leaves from the ship's rim along its heading.
	wantOrigin := ship.Position.Add(physics.FromAngle(ship.Heading, ship.Radius))
	if cmd.Origin.Distance(wantOrigin) > 1e-9 {
		t.Errorf("FireCommand.Origin = %v, expected %v", cmd.Origin, wantOrigin)
	}
}

func TestShipController_FuelExhaustion(t *testing.T) {
	tuning := testTuning()
	tuning.FuelCapacity = 1 // one second of burn
	tuning.FuelBurnRate = 1
	ctrl := NewShipController(0, tuning)
	ship := testShip()

	burning := 0
	for i := 0; i < 120; i++ {
		thrust, _ := ctrl.Update(ship, InputState{Thrust: true}, dt)
		if thrust != (physics.Vector2D{}) {
			burning++
		}
	}

	// Sixty ticks of fuel, then the engine is dead.
	if burning < 59 || burning > 61 {
		t.Errorf("thrust applied on %d ticks, expected ~60", burning)
	}
	if ctrl.Fuel() != 0 {
		t.Errorf("Fuel() = %v, expected 0", ctrl.Fuel())
	}

	// Reset refills the tank.
	ctrl.Reset()
	if ctrl.Fuel() != 1 {
		t.Errorf("Fuel() after Reset = %v, expected 1", ctrl.Fuel())
	}
}

func TestShipController_UnlimitedFuelByDefault(t *testing.T) {
	ctrl := NewShipController(0, testTuning())
	ship := testShip()

	for i := 0; i < 10000; i++ {
		thrust, _ := ctrl.Update(ship, InputState{Thrust: true}, dt)
		if thrust == (physics.Vector2D{}) {
			t.Fatalf("thrust cut out at tick %d with fuel disabled", i)
		}
	}
}

func TestShipController_ResetKeepsEdgeState(t *testing.T) {
	ctrl := NewShipController(0, testTuning())
	ship := testShip()

	ctrl.Update(ship, InputState{Fire: true}, dt)
	ctrl.Reset()

	// The key is still held across the round boundary; no shot until it
	// is released and pressed again.
	if _, cmd := ctrl.Update(ship, InputState{Fire: true}, dt); cmd != nil {
		t.Error("held key fired into the new round after Reset")
	}

	ctrl.Update(ship, InputState{}, dt)
	// Cooldown was cleared by Reset, so a fresh press fires.
	if _, cmd := ctrl.Update(ship, InputState{Fire: true}, dt); cmd == nil {
		t.Error("fresh press after Reset did not fire")
	}
}
