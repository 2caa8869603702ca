// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbits/pkg/engine"
	"github.com/opd-ai/go-orbits/pkg/entity"
	"github.com/opd-ai/go-orbits/pkg/physics"
)

// bodyEntity pairs an ecs entity with its render components so they can
// be updated in place each frame.
type bodyEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// BodyRenderer draws simulation snapshots with primitive shapes: a disc
// for the sun, triangles for ships, dots for projectiles and predicted
// paths. Bodies are keyed by simulation ID; entities appear and
// disappear as bodies do.
type BodyRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem
	camera       *CameraSystem

	bodies    map[entity.ID]*bodyEntity
	pathDots  []*bodyEntity
	seenIDs   map[entity.ID]bool
	pathColor []color.RGBA
}

var playerColors = []color.RGBA{
	{R: 120, G: 220, B: 255, A: 255},
	{R: 255, G: 160, B: 80, A: 255},
}

var sunColor = color.RGBA{R: 255, G: 210, B: 60, A: 255}

// NewBodyRenderer creates a renderer bound to the scene's world.
func NewBodyRenderer(world *ecs.World, renderSystem *common.RenderSystem, camera *CameraSystem) *BodyRenderer {
	return &BodyRenderer{
		world:        world,
		renderSystem: renderSystem,
		camera:       camera,
		bodies:       make(map[entity.ID]*bodyEntity),
		seenIDs:      make(map[entity.ID]bool),
		pathColor: []color.RGBA{
			{R: 60, G: 110, B: 128, A: 180},
			{R: 128, G: 80, B: 40, A: 180},
		},
	}
}

// Sync updates the drawable set to match the snapshot.
func (r *BodyRenderer) Sync(snap engine.Snapshot) {
	for id := range r.seenIDs {
		delete(r.seenIDs, id)
	}

	for _, body := range snap.Bodies {
		r.seenIDs[body.ID] = true
		be, ok := r.bodies[body.ID]
		if !ok {
			be = r.createBodyEntity(body)
			r.bodies[body.ID] = be
		}
		r.updateBodyEntity(be, body)
	}

	// Remove entities whose bodies are gone.
	for id, be := range r.bodies {
		if !r.seenIDs[id] {
			r.renderSystem.Remove(be.basic)
			delete(r.bodies, id)
		}
	}

	r.syncPaths(snap.Paths)
}

// createBodyEntity allocates the ecs entity and drawable for a body.
func (r *BodyRenderer) createBodyEntity(body engine.BodyState) *bodyEntity {
	be := &bodyEntity{basic: ecs.NewBasic()}

	switch body.Kind {
	case entity.Sun:
		be.render = common.RenderComponent{
			Drawable: common.Circle{},
			Color:    sunColor,
		}
	case entity.Ship:
		be.render = common.RenderComponent{
			Drawable: common.Triangle{},
			Color:    playerColor(body.Player),
		}
	case entity.Projectile:
		be.render = common.RenderComponent{
			Drawable: common.Circle{},
			Color:    playerColor(body.Owner),
		}
	}

	r.renderSystem.Add(&be.basic, &be.render, &be.space)
	return be
}

// updateBodyEntity moves a body's drawable to its current screen
// placement.
func (r *BodyRenderer) updateBodyEntity(be *bodyEntity, body engine.BodyState) {
	size := float32(body.Radius*2) * r.camera.Zoom()
	pos := r.camera.WorldToScreen(body.Position)

	be.space.Position = engo.Point{
		X: float32(pos.X) - size/2,
		Y: float32(pos.Y) - size/2,
	}
	be.space.Width = size
	be.space.Height = size
	// Screen Y grows downward, so the CCW world heading negates.
	be.space.Rotation = float32(-body.Heading * 180 / math.Pi)
}

// syncPaths redraws the predicted-orbit dot pools. Path dots are pooled
// and repositioned rather than recreated every frame.
func (r *BodyRenderer) syncPaths(paths []engine.PathState) {
	const dotStride = 6 // draw every Nth sample
	needed := 0
	for _, p := range paths {
		needed += (len(p.Points) + dotStride - 1) / dotStride
	}

	for len(r.pathDots) < needed {
		be := &bodyEntity{basic: ecs.NewBasic()}
		be.render = common.RenderComponent{Drawable: common.Circle{}}
		r.renderSystem.Add(&be.basic, &be.render, &be.space)
		r.pathDots = append(r.pathDots, be)
	}

	i := 0
	for _, path := range paths {
		c := r.pathColor[0]
		if int(path.Player) < len(r.pathColor) {
			c = r.pathColor[path.Player]
		}
		for j := 0; j < len(path.Points); j += dotStride {
			be := r.pathDots[i]
			i++
			pos := r.camera.WorldToScreen(path.Points[j])
			be.render.Color = c
			be.space.Position = engo.Point{X: float32(pos.X) - 1, Y: float32(pos.Y) - 1}
			be.space.Width = 2
			be.space.Height = 2
		}
	}

	// Park unused dots off screen.
	for ; i < len(r.pathDots); i++ {
		r.pathDots[i].space.Position = engo.Point{X: -10, Y: -10}
		r.pathDots[i].space.Width = 0
		r.pathDots[i].space.Height = 0
	}
}

// Clear removes every drawable, used when returning to the menu.
func (r *BodyRenderer) Clear() {
	for id, be := range r.bodies {
		r.renderSystem.Remove(be.basic)
		delete(r.bodies, id)
	}
	for _, be := range r.pathDots {
		r.renderSystem.Remove(be.basic)
	}
	r.pathDots = r.pathDots[:0]
}

// playerColor returns a stable color per player.
func playerColor(p entity.PlayerID) color.RGBA {
	if int(p) >= 0 && int(p) < len(playerColors) {
		return playerColors[p]
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// shipPositions extracts the active ship positions for camera fitting.
func shipPositions(snap engine.Snapshot) []physics.Vector2D {
	var out []physics.Vector2D
	for _, body := range snap.Bodies {
		if body.Kind == entity.Ship {
			out = append(out, body.Position)
		}
	}
	return out
}
