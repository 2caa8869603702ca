// pkg/render/terminal_test.go
package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/opd-ai/go-orbits/pkg/engine"
	"github.com/opd-ai/go-orbits/pkg/entity"
	"github.com/opd-ai/go-orbits/pkg/physics"
)

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Tick: 42,
		Bodies: []engine.BodyState{
			{ID: 1, Kind: entity.Sun, Position: physics.Vector2D{}, Radius: 48},
			{ID: 2, Kind: entity.Ship, Position: physics.Vector2D{X: 20, Y: 0}, Player: 0, Radius: 8},
			{ID: 3, Kind: entity.Ship, Position: physics.Vector2D{X: -20, Y: 0}, Player: 1, Radius: 8},
			{ID: 4, Kind: entity.Projectile, Position: physics.Vector2D{X: 0, Y: 10}, Owner: 0, Radius: 2},
		},
		Paths: []engine.PathState{
			{Player: 0, Points: []physics.Vector2D{{X: 20, Y: 5}, {X: 20, Y: 6}}},
		},
		Round: engine.RoundState{
			Scores: map[entity.PlayerID]int{0: 1, 1: 2},
			Phase:  engine.PhasePlaying,
			Winner: engine.NoPlayer,
		},
	}
}

func TestTerminalRenderer_Frame(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, 80, 24, 2.0)

	Frame(r, testSnapshot())
	out := buf.String()

	for _, want := range []string{"O", "1", "2", "*", "."} {
		if !strings.Contains(out, want) {
			t.Errorf("frame output missing %q", want)
		}
	}
	if !strings.Contains(out, "P1: 1") || !strings.Contains(out, "P2: 2") {
		t.Errorf("frame output missing score line:\n%s", out)
	}
	if strings.Contains(out, "round over") {
		t.Error("round-over banner shown while playing")
	}

	// Bordered viewport: top and bottom rails plus one row per cell line.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 24+3 {
		t.Errorf("frame has %d lines, expected %d", len(lines), 24+3)
	}
}

func TestTerminalRenderer_RoundOverBanner(t *testing.T) {
	tests := []struct {
		name     string
		winner   entity.PlayerID
		expected string
	}{
		{name: "with_winner", winner: 0, expected: "round over, winner P1"},
		{name: "no_winner", winner: engine.NoPlayer, expected: "round over"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewTerminalRenderer(&buf, 40, 10, 2.0)

			snap := testSnapshot()
			snap.Round.Phase = engine.PhaseRoundOver
			snap.Round.Winner = tt.winner
			Frame(r, snap)

			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("output missing %q", tt.expected)
			}
		})
	}
}

func TestTerminalRenderer_OffscreenBodiesIgnored(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, 20, 10, 1.0)

	snap := engine.Snapshot{
		Bodies: []engine.BodyState{
			{ID: 1, Kind: entity.Projectile, Position: physics.Vector2D{X: 5000, Y: 5000}},
		},
		Round: engine.RoundState{Winner: engine.NoPlayer},
	}

	// Must not panic or write outside the buffer.
	Frame(r, snap)
	if strings.Contains(buf.String(), "*") {
		t.Error("offscreen projectile was plotted")
	}
}

func TestTerminalRenderer_SetCenter(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, 20, 10, 1.0)
	r.SetCenter(physics.Vector2D{X: 5000, Y: 5000})

	snap := engine.Snapshot{
		Bodies: []engine.BodyState{
			{ID: 1, Kind: entity.Sun, Position: physics.Vector2D{X: 5000, Y: 5000}},
		},
		Round: engine.RoundState{Winner: engine.NoPlayer},
	}
	Frame(r, snap)

	if !strings.Contains(buf.String(), "O") {
		t.Error("recentered sun not plotted")
	}
}

func TestNullRenderer_Frame(t *testing.T) {
	// Exercises the no-op path end to end; nothing to assert beyond not
	// panicking.
	Frame(NewNullRenderer(), testSnapshot())
}
