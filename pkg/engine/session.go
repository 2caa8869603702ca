// pkg/engine/session.go
package engine

import (
	"context"

	"github.com/opd-ai/go-orbits/pkg/config"
	"github.com/opd-ai/go-orbits/pkg/control"
	"github.com/opd-ai/go-orbits/pkg/entity"
	"github.com/opd-ai/go-orbits/pkg/event"
	"github.com/opd-ai/go-orbits/pkg/logging"
)

// State is the top-level game state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateRoundOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateRoundOver:
		return "round_over"
	default:
		return "menu"
	}
}

// Session is the seam between the physics core and the presentation
// layer: a Menu -> Playing -> RoundOver machine driven by simulation
// outcomes and by UI commands (start, continue, quit). It owns the
// active Simulation and decides when to create the next one.
type Session struct {
	cfg    *config.Config
	bus    *event.Bus
	logger *logging.Logger
	clock  *Clock

	state     State
	mode      Mode
	sim       *Simulation
	round     int
	scores    map[entity.PlayerID]int
	matchOver bool
}

// NewSession creates a session in the menu state.
func NewSession(cfg *config.Config, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &Session{
		cfg:    cfg,
		bus:    event.NewBus(),
		logger: logger,
		state:  StateMenu,
		scores: make(map[entity.PlayerID]int),
	}
}

// Bus exposes the session's event bus for presentation-layer listeners.
func (s *Session) Bus() *event.Bus {
	return s.bus
}

// State returns the current top-level state.
func (s *Session) State() State {
	return s.state
}

// Scores returns the match scores accumulated across rounds.
func (s *Session) Scores() map[entity.PlayerID]int {
	out := make(map[entity.PlayerID]int, len(s.scores))
	for p, v := range s.scores {
		out[p] = v
	}
	return out
}

// Mode returns the mode of the current or last match.
func (s *Session) Mode() Mode {
	return s.mode
}

// MatchOver reports whether a player has reached the score target.
func (s *Session) MatchOver() bool {
	return s.matchOver
}

// Start leaves the menu and begins a new match in the given mode.
// Ignored outside the menu state.
func (s *Session) Start(mode Mode) {
	if s.state != StateMenu {
		return
	}

	s.mode = mode
	s.round = 0
	s.matchOver = false
	s.scores = make(map[entity.PlayerID]int)
	s.bus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: s})
	s.beginRound()

	s.logger.Info(context.Background(), "match started", "mode", mode.String())
}

// Continue advances past a finished round: to the next round while the
// match is live, or back to the menu once it is decided. Ignored unless
// a round has ended.
func (s *Session) Continue() {
	if s.state != StateRoundOver {
		return
	}
	if s.matchOver {
		s.state = StateMenu
		s.sim = nil
		return
	}
	s.beginRound()
}

// Quit abandons the match and returns to the menu. Takes effect between
// ticks only; Advance never interrupts a running step.
func (s *Session) Quit() {
	if s.state == StateMenu {
		return
	}
	s.state = StateMenu
	s.sim = nil
	s.bus.Publish(&event.BaseEvent{EventType: event.GameEnded, Source: s})
}

// beginRound creates a fresh simulation carrying the match scores.
func (s *Session) beginRound() {
	s.round++
	s.sim = NewSimulation(s.cfg, s.mode, s.bus, s.scores)
	s.sim.SetRound(s.round)
	s.clock = NewClock(s.cfg.TimeStep())
	s.state = StatePlaying

	scores := make(map[int]int, len(s.scores))
	for p, v := range s.scores {
		scores[int(p)] = v
	}
	s.bus.Publish(event.NewRoundEvent(event.RoundStarted, s, s.round, int(NoPlayer), scores))
}

// SetInput forwards a player's input snapshot to the active simulation.
func (s *Session) SetInput(player entity.PlayerID, in control.InputState) {
	if s.state == StatePlaying {
		s.sim.SetInput(player, in)
	}
}

// Advance consumes elapsed wall-clock seconds, running as many fixed
// ticks as are due. When the simulation reports the round over, the
// session moves to RoundOver and checks the match score target.
func (s *Session) Advance(elapsed float64) {
	if s.state != StatePlaying {
		return
	}

	for i := s.clock.Steps(elapsed); i > 0; i-- {
		s.sim.Step()
		if s.sim.Round().Phase == PhaseRoundOver {
			s.finishRound()
			return
		}
	}
}

// finishRound commits the round outcome to the match.
func (s *Session) finishRound() {
	round := s.sim.Round()
	s.scores = make(map[entity.PlayerID]int, len(round.Scores))
	for p, v := range round.Scores {
		s.scores[p] = v
	}
	s.state = StateRoundOver

	target := s.cfg.Rules.ScoreTarget
	if target > 0 {
		for player, score := range s.scores {
			if score >= target {
				s.matchOver = true
				s.logger.Info(context.Background(), "match decided",
					"winner", int(player),
					"score", score,
				)
				s.bus.Publish(&event.BaseEvent{EventType: event.GameEnded, Source: s})
				break
			}
		}
	}
}

// Snapshot returns the committed view of the active simulation, or an
// empty snapshot outside a round.
func (s *Session) Snapshot() Snapshot {
	if s.sim == nil {
		return Snapshot{Round: RoundState{Winner: NoPlayer}}
	}
	return s.sim.Snapshot()
}

// RoundWinner reports the last finished round's winner, NoPlayer if none.
func (s *Session) RoundWinner() entity.PlayerID {
	if s.sim == nil {
		return NoPlayer
	}
	return s.sim.Round().Winner
}
