// pkg/physics/integrate.go
package physics

// Step advances a position/velocity pair by one fixed timestep using
// semi-implicit (symplectic) Euler: velocity is updated first, then the
// position moves with the new velocity. This ordering bounds long-term
// energy drift for orbital motion, which plain explicit Euler does not.
func Step(pos, vel *Vector2D, accel Vector2D, dt float64) {
	*vel = vel.Add(accel.Scale(dt))
	*pos = pos.Add(vel.Scale(dt))
}

// PredictPath integrates a copy of the given state forward steps times
// under the field's gravity and returns the sampled positions, starting
// with the initial position. The caller's state is never mutated, so the
// result is safe to recompute every frame for display. With zero
// attractor mass the path degenerates to a straight line, which is
// accepted behavior.
func PredictPath(pos, vel Vector2D, field GravityField, attractors []Attractor, steps int, dt float64) []Vector2D {
	path := make([]Vector2D, 0, steps+1)
	path = append(path, pos)
	for i := 0; i < steps; i++ {
		Step(&pos, &vel, field.Acceleration(pos, attractors), dt)
		path = append(path, pos)
	}
	return path
}
