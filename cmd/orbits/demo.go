// cmd/orbits/demo.go
package main

import (
	"github.com/opd-ai/go-orbits/pkg/control"
	"github.com/opd-ai/go-orbits/pkg/engine"
	"github.com/opd-ai/go-orbits/pkg/entity"
)

// demoInputs scripts both pilots for the terminal renderer: short thrust
// bursts to perturb the orbits and staggered fire so the players trade
// shots instead of volleying in sync.
func demoInputs(session *engine.Session) map[entity.PlayerID]control.InputState {
	snap := session.Snapshot()
	tick := snap.Tick

	inputs := map[entity.PlayerID]control.InputState{
		0: {
			Thrust: tick%240 < 20,
			Fire:   tick%90 == 0,
		},
	}
	if session.Mode() == engine.ModeVersus {
		inputs[1] = control.InputState{
			Thrust:     tick%240 >= 120 && tick%240 < 140,
			RotateLeft: tick%360 < 30,
			Fire:       tick%90 == 45,
		}
	}
	return inputs
}
