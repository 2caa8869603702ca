// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/opd-ai/go-orbits/pkg/engine"
	"github.com/opd-ai/go-orbits/pkg/entity"
	"github.com/opd-ai/go-orbits/pkg/physics"
)

// TerminalRenderer provides a simple ASCII rendering of the simulation,
// used by the headless driver.
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos physics.Vector2D
	out       io.Writer
}

// NewTerminalRenderer creates a terminal renderer with the specified
// character dimensions; scale is world units per character cell.
func NewTerminalRenderer(out io.Writer, width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
		out:    out,
	}
}

// SetCenter sets the world position mapped to the middle of the view.
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// worldToScreen converts world coordinates to buffer coordinates. The Y
// axis flips so world-up appears up on screen; terminal cells are about
// twice as tall as wide, so X is compressed half as much.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int((pos.X-r.centerPos.X)/(r.scale/2) + float64(r.width)/2)
	screenY := int(-(pos.Y-r.centerPos.Y)/r.scale + float64(r.height)/2)
	return screenX, screenY
}

// plot writes a rune if the cell is inside the buffer.
func (r *TerminalRenderer) plot(pos physics.Vector2D, ch rune) {
	x, y := r.worldToScreen(pos)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = ch
	}
}

// Clear implements Renderer.
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// RenderBody implements Renderer.
func (r *TerminalRenderer) RenderBody(body engine.BodyState) {
	switch body.Kind {
	case entity.Sun:
		r.plot(body.Position, 'O')
	case entity.Ship:
		r.plot(body.Position, rune('1'+int(body.Player)))
	case entity.Projectile:
		r.plot(body.Position, '*')
	}
}

// RenderPath implements Renderer. Every few samples are plotted so the
// overlay reads as a dotted orbit.
func (r *TerminalRenderer) RenderPath(path engine.PathState) {
	for i := 0; i < len(path.Points); i += 8 {
		r.plot(path.Points[i], '.')
	}
}

// Present implements Renderer.
func (r *TerminalRenderer) Present(round engine.RoundState) {
	border := "+" + strings.Repeat("-", r.width) + "+"

	fmt.Fprintln(r.out, border)
	for y := range r.buffer {
		fmt.Fprintln(r.out, "|"+string(r.buffer[y])+"|")
	}
	fmt.Fprintln(r.out, border)

	for player := entity.PlayerID(0); int(player) < len(round.Scores); player++ {
		fmt.Fprintf(r.out, "P%d: %d  ", int(player)+1, round.Scores[player])
	}
	if round.Phase == engine.PhaseRoundOver {
		if round.Winner == engine.NoPlayer {
			fmt.Fprint(r.out, "round over")
		} else {
			fmt.Fprintf(r.out, "round over, winner P%d", int(round.Winner)+1)
		}
	}
	fmt.Fprintln(r.out)
}
