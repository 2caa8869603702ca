// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-orbits/pkg/physics"
)

// CameraSystem keeps the sun centered and zooms so every ship stays in
// frame: the view widens when a ship strays outward and tightens again
// once everyone is close, with hysteresis so the zoom does not flutter.
type CameraSystem struct {
	zoom    float32
	minZoom float32
	maxZoom float32
	margin  float64 // fraction of the half-screen kept clear at the edge
}

// NewCameraSystem creates a camera with sane zoom limits.
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		zoom:    1.0,
		minZoom: 0.05,
		maxZoom: 2.0,
		margin:  0.1,
	}
}

// Zoom returns the current world-to-screen scale factor.
func (cs *CameraSystem) Zoom() float32 {
	return cs.zoom
}

// Fit adjusts the zoom so all given positions fit on screen around the
// origin. Zoom only snaps when a position leaves the frame or the
// content shrinks to less than half the frame.
func (cs *CameraSystem) Fit(positions []physics.Vector2D) {
	if len(positions) == 0 {
		return
	}

	halfW := float64(engo.GameWidth()) / 2
	halfH := float64(engo.GameHeight()) / 2

	// Smallest zoom that keeps the farthest position inside the margin.
	required := float64(cs.maxZoom)
	for _, pos := range positions {
		if x := abs(pos.X); x > 0 {
			required = min(required, halfW*(1-cs.margin)/x)
		}
		if y := abs(pos.Y); y > 0 {
			required = min(required, halfH*(1-cs.margin)/y)
		}
	}

	current := float64(cs.zoom)
	if required < current || required > current*2 {
		cs.setZoom(float32(required))
	}
}

// WorldToScreen maps a world position to screen coordinates with the
// sun at the screen center. World Y points up, screen Y points down.
func (cs *CameraSystem) WorldToScreen(world physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{
		X: world.X*float64(cs.zoom) + float64(engo.GameWidth())/2,
		Y: -world.Y*float64(cs.zoom) + float64(engo.GameHeight())/2,
	}
}

func (cs *CameraSystem) setZoom(zoom float32) {
	if zoom < cs.minZoom {
		zoom = cs.minZoom
	}
	if zoom > cs.maxZoom {
		zoom = cs.maxZoom
	}
	cs.zoom = zoom
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
