// pkg/render/engo/scene.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbits/pkg/engine"
)

// OrbitScene is the single Engo scene: it owns the session and wires
// input, simulation stepping, sprite sync, camera and HUD together.
type OrbitScene struct {
	world   *ecs.World
	session *engine.Session

	renderer *BodyRenderer
	camera   *CameraSystem
	hud      *HUDSystem

	font *common.Font
}

// NewOrbitScene creates the scene around an existing session.
func NewOrbitScene(session *engine.Session) *OrbitScene {
	return &OrbitScene{
		session: session,
		world:   &ecs.World{},
	}
}

// Type returns the scene type (required by Engo)
func (scene *OrbitScene) Type() string {
	return "OrbitScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *OrbitScene) Preload() {
	if err := engo.Files.Load("fonts/Roboto-Regular.ttf"); err != nil {
		// HUD text degrades gracefully without the font.
		return
	}
	scene.font = &common.Font{
		URL:  "fonts/Roboto-Regular.ttf",
		FG:   color.White,
		Size: 20,
	}
	if err := scene.font.CreatePreloaded(); err != nil {
		scene.font = nil
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *OrbitScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}

	renderSystem := &common.RenderSystem{}
	scene.world.AddSystem(renderSystem)

	SetupInputBindings()

	scene.camera = NewCameraSystem()
	scene.renderer = NewBodyRenderer(scene.world, renderSystem, scene.camera)
	scene.hud = NewHUDSystem(scene.font)
	scene.world.AddSystem(scene.hud)

	scene.world.AddSystem(&orbitSystem{
		session:      scene.session,
		renderer:     scene.renderer,
		camera:       scene.camera,
		hud:          scene.hud,
		renderSystem: renderSystem,
	})
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *OrbitScene) Exit() {
	if scene.renderer != nil {
		scene.renderer.Clear()
	}
}

// orbitSystem advances the session once per frame and mirrors the
// resulting snapshot into the render world.
type orbitSystem struct {
	session      *engine.Session
	renderer     *BodyRenderer
	camera       *CameraSystem
	hud          *HUDSystem
	renderSystem *common.RenderSystem
}

// Remove satisfies the ecs.System interface
func (os *orbitSystem) Remove(basic ecs.BasicEntity) {}

// Update satisfies the ecs.System interface
func (os *orbitSystem) Update(dt float32) {
	switch os.session.State() {
	case engine.StateMenu:
		os.updateMenu()
	case engine.StatePlaying:
		os.updatePlaying(float64(dt))
	case engine.StateRoundOver:
		os.updateRoundOver()
	}

	snap := os.session.Snapshot()
	os.renderer.Sync(snap)
	os.camera.Fit(shipPositions(snap))
	os.hud.ShowState(os.renderSystem, os.session.State(), snap, os.session.MatchOver())
}

// updateMenu handles mode selection on the title screen.
func (os *orbitSystem) updateMenu() {
	if engo.Input.Button(btnStartSingle).JustPressed() {
		os.session.Start(engine.ModeSinglePlayer)
	} else if engo.Input.Button(btnStartVersus).JustPressed() {
		os.session.Start(engine.ModeVersus)
	} else if engo.Input.Button(btnQuit).JustPressed() {
		engo.Exit()
	}
}

// updatePlaying polls both keymaps and steps the simulation.
func (os *orbitSystem) updatePlaying(dt float64) {
	os.session.SetInput(0, PollInput(0))
	if os.session.Mode() == engine.ModeVersus {
		os.session.SetInput(1, PollInput(1))
	}
	os.session.Advance(dt)

	if engo.Input.Button(btnQuit).JustPressed() {
		os.session.Quit()
		os.renderer.Clear()
	}
}

// updateRoundOver waits for the continue or quit keys.
func (os *orbitSystem) updateRoundOver() {
	if engo.Input.Button(btnContinue).JustPressed() {
		os.session.Continue()
		if os.session.State() == engine.StateMenu {
			os.renderer.Clear()
		}
	} else if engo.Input.Button(btnQuit).JustPressed() {
		os.session.Quit()
		os.renderer.Clear()
	}
}
