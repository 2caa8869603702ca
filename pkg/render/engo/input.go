// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-orbits/pkg/control"
	"github.com/opd-ai/go-orbits/pkg/entity"
)

// playerButtons names the engo buttons bound for one player. Each player
// gets an independent button set so the two keyboard halves can never
// leak into each other's input state.
type playerButtons struct {
	thrust string
	left   string
	right  string
	fire   string
}

var buttonSets = []playerButtons{
	{thrust: "p1_thrust", left: "p1_left", right: "p1_right", fire: "p1_fire"},
	{thrust: "p2_thrust", left: "p2_left", right: "p2_right", fire: "p2_fire"},
}

// UI buttons shared by both players.
const (
	btnStartSingle = "start_single"
	btnStartVersus = "start_versus"
	btnContinue    = "continue"
	btnQuit        = "quit"
)

// SetupInputBindings registers the two keyboard keymaps and the menu
// keys. Player one flies with WAD and fires with S (the original
// keymap); player two flies with the arrow cluster and fires with down.
func SetupInputBindings() {
	engo.Input.RegisterButton(buttonSets[0].thrust, engo.KeyW)
	engo.Input.RegisterButton(buttonSets[0].left, engo.KeyA)
	engo.Input.RegisterButton(buttonSets[0].right, engo.KeyD)
	engo.Input.RegisterButton(buttonSets[0].fire, engo.KeyS)

	engo.Input.RegisterButton(buttonSets[1].thrust, engo.KeyArrowUp)
	engo.Input.RegisterButton(buttonSets[1].left, engo.KeyArrowLeft)
	engo.Input.RegisterButton(buttonSets[1].right, engo.KeyArrowRight)
	engo.Input.RegisterButton(buttonSets[1].fire, engo.KeyArrowDown)

	engo.Input.RegisterButton(btnStartSingle, engo.KeyOne)
	engo.Input.RegisterButton(btnStartVersus, engo.KeyTwo)
	engo.Input.RegisterButton(btnContinue, engo.KeySpace, engo.KeyEnter)
	engo.Input.RegisterButton(btnQuit, engo.KeyEscape)
}

// PollInput reads one player's button states into an input snapshot.
// Held keys stay true every frame; the controller handles fire edge
// detection, so raw key-down semantics are correct here.
func PollInput(player entity.PlayerID) control.InputState {
	if int(player) < 0 || int(player) >= len(buttonSets) {
		return control.InputState{}
	}
	set := buttonSets[player]
	return control.InputState{
		Thrust:      engo.Input.Button(set.thrust).Down(),
		RotateLeft:  engo.Input.Button(set.left).Down(),
		RotateRight: engo.Input.Button(set.right).Down(),
		Fire:        engo.Input.Button(set.fire).Down(),
	}
}
