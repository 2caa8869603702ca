// pkg/engine/snapshot.go
package engine

import (
	"github.com/opd-ai/go-orbits/pkg/entity"
	"github.com/opd-ai/go-orbits/pkg/physics"
)

// Snapshot is the read-only view of a fully committed tick, consumed by
// the render collaborator. It shares no mutable state with the
// simulation, so a renderer on another goroutine may hold one across
// tick boundaries.
type Snapshot struct {
	Tick   uint64
	Bodies []BodyState
	Paths  []PathState
	Round  RoundState
}

// BodyState is a snapshot of one body's state.
type BodyState struct {
	ID       entity.ID
	Kind     entity.Kind
	Position physics.Vector2D
	Velocity physics.Vector2D
	Heading  float64
	Radius   float64
	Player   entity.PlayerID
	Owner    entity.PlayerID
}

// PathState is a ship's predicted trajectory for the overlay. It is
// display-only and recomputed every snapshot; it is never authoritative.
type PathState struct {
	Player entity.PlayerID
	Points []physics.Vector2D
	Fuel   float64
}

// Snapshot builds the current committed view, including a predicted
// orbital path for every active ship. Prediction integrates copies of
// ship state and leaves the live bodies untouched.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   s.tick,
		Bodies: make([]BodyState, 0, len(s.bodies)),
		Round:  s.Round(),
	}

	for _, body := range s.bodies {
		if !body.Active {
			continue
		}
		snap.Bodies = append(snap.Bodies, BodyState{
			ID:       body.ID,
			Kind:     body.Kind,
			Position: body.Position,
			Velocity: body.Velocity,
			Heading:  body.Heading,
			Radius:   body.Radius,
			Player:   body.Player,
			Owner:    body.Owner,
		})
	}

	for _, slot := range s.slots {
		if !slot.ship.Active {
			continue
		}
		// Attractors are sampled at their current positions and held
		// fixed for the whole prediction, so with mutual gravity the
		// tail of the overlay drifts as the other bodies move.
		snap.Paths = append(snap.Paths, PathState{
			Player: slot.player,
			Points: physics.PredictPath(
				slot.ship.Position,
				slot.ship.Velocity,
				s.field,
				s.attractorsFor(slot.ship),
				s.cfg.Physics.PathSteps,
				s.dt,
			),
			Fuel: slot.controller.Fuel(),
		})
	}

	return snap
}
