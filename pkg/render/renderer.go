// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-orbits/pkg/engine"
	"github.com/opd-ai/go-orbits/pkg/logging"
)

// Renderer consumes one committed simulation snapshot per tick. The core
// never depends on how the frame is drawn; implementations must treat
// the snapshot as read-only.
type Renderer interface {
	Clear()
	RenderBody(body engine.BodyState)
	RenderPath(path engine.PathState)
	Present(round engine.RoundState)
}

// Frame draws a full snapshot through a renderer in a fixed order:
// paths under bodies, then the committed round state.
func Frame(r Renderer, snap engine.Snapshot) {
	r.Clear()
	for _, path := range snap.Paths {
		r.RenderPath(path)
	}
	for _, body := range snap.Bodies {
		r.RenderBody(body)
	}
	r.Present(snap.Round)
}

// NullRenderer is a Renderer that only logs at debug level, for headless
// runs and tests.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// RenderBody implements Renderer.
func (d *NullRenderer) RenderBody(body engine.BodyState) {
	d.logger.Debug(context.Background(), "RenderBody called",
		"body_id", body.ID,
		"kind", body.Kind.String(),
	)
}

// RenderPath implements Renderer.
func (d *NullRenderer) RenderPath(path engine.PathState) {
	d.logger.Debug(context.Background(), "RenderPath called",
		"player", int(path.Player),
		"samples", len(path.Points),
	)
}

// Present implements Renderer.
func (d *NullRenderer) Present(round engine.RoundState) {
	d.logger.Debug(context.Background(), "Present called",
		"phase", int(round.Phase),
	)
}
