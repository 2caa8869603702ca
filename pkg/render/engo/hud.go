// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbits/pkg/engine"
)

// HUDSystem draws the score line and state prompts as screen-space text.
type HUDSystem struct {
	font *common.Font

	scoreLine  *textEntity
	promptLine *textEntity

	lastScore  string
	lastPrompt string
}

// textEntity is one updatable text label.
type textEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// NewHUDSystem creates a HUD using the given preloaded font.
func NewHUDSystem(font *common.Font) *HUDSystem {
	return &HUDSystem{font: font}
}

// Add satisfies the ecs.System interface
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// Update satisfies the ecs.System interface; the HUD is driven by
// ShowState instead.
func (hud *HUDSystem) Update(dt float32) {}

// ShowState refreshes the HUD labels for the current session state.
func (hud *HUDSystem) ShowState(renderSystem *common.RenderSystem, state engine.State, snap engine.Snapshot, matchOver bool) {
	score := hud.formatScore(snap.Round)
	prompt := hud.formatPrompt(state, snap.Round, matchOver)

	if score != hud.lastScore {
		hud.setText(renderSystem, &hud.scoreLine, score, engo.Point{X: 16, Y: 12})
		hud.lastScore = score
	}
	if prompt != hud.lastPrompt {
		hud.setText(renderSystem, &hud.promptLine, prompt, engo.Point{
			X: 16,
			Y: engo.GameHeight()/2 - 12,
		})
		hud.lastPrompt = prompt
	}
}

// formatScore renders the score line for the active round.
func (hud *HUDSystem) formatScore(round engine.RoundState) string {
	if len(round.Scores) == 0 {
		return ""
	}
	if len(round.Scores) == 1 {
		return fmt.Sprintf("P1 %d", round.Scores[0])
	}
	return fmt.Sprintf("P1 %d : %d P2", round.Scores[0], round.Scores[1])
}

// formatPrompt renders the center prompt for menu and round-over states.
func (hud *HUDSystem) formatPrompt(state engine.State, round engine.RoundState, matchOver bool) string {
	switch state {
	case engine.StateMenu:
		return "ORBITS  --  1: single player   2: versus   esc: quit"
	case engine.StateRoundOver:
		who := "nobody"
		if round.Winner != engine.NoPlayer {
			who = fmt.Sprintf("player %d", int(round.Winner)+1)
		}
		if matchOver {
			return fmt.Sprintf("match over, %s wins  --  space: menu", who)
		}
		return fmt.Sprintf("round to %s  --  space: next round", who)
	default:
		return ""
	}
}

// setText replaces a label's entity with new text.
func (hud *HUDSystem) setText(renderSystem *common.RenderSystem, slot **textEntity, text string, at engo.Point) {
	if *slot != nil {
		renderSystem.Remove((*slot).basic)
		*slot = nil
	}
	if text == "" || hud.font == nil {
		return
	}

	te := &textEntity{basic: ecs.NewBasic()}
	te.render = common.RenderComponent{
		Drawable: common.Text{
			Font: hud.font,
			Text: text,
		},
		Color: color.RGBA{R: 220, G: 230, B: 240, A: 255},
	}
	te.space = common.SpaceComponent{
		Position: at,
		Width:    float32(len(text) * 12),
		Height:   24,
	}
	te.render.SetShader(common.HUDShader)

	renderSystem.Add(&te.basic, &te.render, &te.space)
	*slot = te
}
