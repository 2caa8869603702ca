// pkg/physics/gravity.go
package physics

// Attractor is a mass that exerts gravity on other bodies.
type Attractor struct {
	Position Vector2D
	Mass     float64
}

// GravityField computes gravitational acceleration from a set of
// attracting masses. G is a gameplay tunable, not a physical constant.
type GravityField struct {
	G             float64
	MinSeparation float64 // distances below this are clamped, never fail
}

// NewGravityField creates a field with the given constant and a minimum
// separation clamp.
func NewGravityField(g, minSeparation float64) GravityField {
	return GravityField{G: g, MinSeparation: minSeparation}
}

// Acceleration returns the vector sum of gravitational acceleration at
// target due to every attractor, each contribution G*m/d^2 directed from
// target toward the attractor. Separations below MinSeparation are
// clamped to it; by the time a body is that close, collision handling
// should already have removed it.
func (f GravityField) Acceleration(target Vector2D, attractors []Attractor) Vector2D {
	var accel Vector2D
	for _, a := range attractors {
		delta := a.Position.Sub(target)
		dist := delta.Length()
		if dist < f.MinSeparation {
			dist = f.MinSeparation
		}
		dir, err := delta.Unit()
		if err != nil {
			// Target sits exactly on the attractor; no usable direction.
			continue
		}
		accel = accel.Add(dir.Scale(f.G * a.Mass / (dist * dist)))
	}
	return accel
}
