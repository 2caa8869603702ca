// pkg/engine/sim.go
package engine

import (
	"math"

	"github.com/opd-ai/go-orbits/pkg/config"
	"github.com/opd-ai/go-orbits/pkg/control"
	"github.com/opd-ai/go-orbits/pkg/entity"
	"github.com/opd-ai/go-orbits/pkg/event"
	"github.com/opd-ai/go-orbits/pkg/physics"
)

// Mode selects how many ships the round is played with.
type Mode int

const (
	ModeSinglePlayer Mode = iota
	ModeVersus
)

func (m Mode) String() string {
	if m == ModeVersus {
		return "versus"
	}
	return "single_player"
}

// NoPlayer marks the absence of a winner.
const NoPlayer entity.PlayerID = -1

// Phase is the per-round phase of the simulation.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseRoundOver
)

// RoundState holds the scores and phase for the active round. It is
// mutated only by the simulation's collision outcomes.
type RoundState struct {
	Scores map[entity.PlayerID]int
	Phase  Phase
	Winner entity.PlayerID // NoPlayer when the round ended without one
}

// playerSlot binds a player to their ship, controller, and latest input.
// Slots are held in a slice so per-tick iteration order is fixed.
type playerSlot struct {
	player     entity.PlayerID
	ship       *entity.Body
	controller *control.ShipController
	input      control.InputState
	thrust     physics.Vector2D
}

// Simulation owns the complete body set and round state for one round
// and advances them by fixed timesteps. It is single-threaded: nothing
// else mutates bodies, and readers only see per-tick snapshots.
type Simulation struct {
	cfg   *config.Config
	mode  Mode
	field physics.GravityField
	bus   *event.Bus
	ids   *entity.IDGenerator

	sun     *entity.Body
	bodies  []*entity.Body // insertion order: sun, ships, then projectiles
	slots   []*playerSlot
	pending []*control.FireCommand
	index   physics.BroadPhase // rebuilt every tick from the active bodies

	round    RoundState
	roundNum int
	tick     uint64
	dt       float64
}

// NewSimulation creates a round with ships spawned on circular orbits at
// the configured spawn radius. Previous scores carry across rounds; pass
// nil to start from zero.
func NewSimulation(cfg *config.Config, mode Mode, bus *event.Bus, scores map[entity.PlayerID]int) *Simulation {
	if bus == nil {
		bus = event.NewBus()
	}

	s := &Simulation{
		cfg:   cfg,
		mode:  mode,
		field: physics.NewGravityField(cfg.Physics.Gravity, cfg.Physics.MinSeparation),
		bus:   bus,
		ids:   entity.NewIDGenerator(),
		dt:    cfg.TimeStep(),
		round: RoundState{
			Scores: make(map[entity.PlayerID]int),
			Phase:  PhasePlaying,
			Winner: NoPlayer,
		},
	}

	for player, score := range scores {
		s.round.Scores[player] = score
	}

	// Bounds reach well past the cull radius so bodies drifting out
	// still index until expireAndCull removes them.
	bounds := physics.Rect{
		Width:  4 * cfg.World.WorldRadius,
		Height: 4 * cfg.World.WorldRadius,
	}
	s.index = physics.NewQuadTree(bounds, 8)

	s.sun = entity.NewSun(
		s.ids.Next(),
		physics.Vector2D{},
		cfg.World.SunMass,
		cfg.World.SunRadius,
	)
	s.bodies = append(s.bodies, s.sun)

	for _, player := range s.playersForMode() {
		s.spawnShip(player)
	}

	return s
}

// playersForMode returns the participating players in fixed order.
func (s *Simulation) playersForMode() []entity.PlayerID {
	if s.mode == ModeVersus {
		return []entity.PlayerID{0, 1}
	}
	return []entity.PlayerID{0}
}

// spawnShip places a player's ship on a circular orbit. Player 0 starts
// on the +X side, player 1 opposite, both orbiting counter-clockwise.
func (s *Simulation) spawnShip(player entity.PlayerID) {
	r := s.cfg.World.SpawnRadius
	side := 1.0
	if player == 1 {
		side = -1.0
	}

	pos := physics.Vector2D{X: side * r}
	speed := math.Sqrt(s.field.G * s.sun.Mass / r)
	vel := physics.Vector2D{Y: side * speed}

	ship := entity.NewShip(
		s.ids.Next(),
		player,
		pos,
		vel,
		vel.Angle(),
		s.cfg.Ship.Mass,
		s.cfg.Ship.Radius,
	)
	s.bodies = append(s.bodies, ship)

	tuning := control.Tuning{
		ThrustAccel:  s.cfg.Ship.ThrustAccel,
		RotationRate: s.cfg.Ship.RotationRate,
		FireCooldown: s.cfg.Ship.FireCooldown,
		FuelCapacity: s.cfg.Ship.FuelCapacity,
		FuelBurnRate: s.cfg.Ship.FuelBurnRate,
	}
	s.slots = append(s.slots, &playerSlot{
		player:     player,
		ship:       ship,
		controller: control.NewShipController(player, tuning),
	})

	if _, ok := s.round.Scores[player]; !ok {
		s.round.Scores[player] = 0
	}
}

// SetInput records a player's input snapshot for the next tick. Unknown
// players are ignored.
func (s *Simulation) SetInput(player entity.PlayerID, in control.InputState) {
	for _, slot := range s.slots {
		if slot.player == player {
			slot.input = in
			return
		}
	}
}

// Round returns a copy of the current round state.
func (s *Simulation) Round() RoundState {
	scores := make(map[entity.PlayerID]int, len(s.round.Scores))
	for p, v := range s.round.Scores {
		scores[p] = v
	}
	return RoundState{Scores: scores, Phase: s.round.Phase, Winner: s.round.Winner}
}

// CurrentTick returns the number of completed simulation steps.
func (s *Simulation) CurrentTick() uint64 {
	return s.tick
}

// SetRound tells the simulation which match round it is playing, for
// event reporting only.
func (s *Simulation) SetRound(n int) {
	s.roundNum = n
}

// Mode returns the round's play mode.
func (s *Simulation) Mode() Mode {
	return s.mode
}

// SetBroadPhase swaps the spatial index used to prune collision pairs.
// Nil is ignored; detection behaves identically for any correct index.
func (s *Simulation) SetBroadPhase(bp physics.BroadPhase) {
	if bp != nil {
		s.index = bp
	}
}

// Step advances the simulation by exactly one fixed timestep, running
// the ordered tick stages. It is a no-op once the round is over; the
// body set is never left partially updated.
func (s *Simulation) Step() {
	if s.round.Phase != PhasePlaying {
		return
	}

	s.applyControllers()
	s.spawnPendingProjectiles()
	s.integrate()
	events := s.detectCollisions()
	s.resolveCollisions(events)
	s.expireAndCull()
	s.tick++
}

// applyControllers runs each player's controller in fixed order,
// collecting thrust terms and queueing fire commands.
func (s *Simulation) applyControllers() {
	for _, slot := range s.slots {
		if !slot.ship.Active {
			slot.thrust = physics.Vector2D{}
			continue
		}
		thrust, cmd := slot.controller.Update(slot.ship, slot.input, s.dt)
		slot.thrust = thrust
		if cmd != nil {
			s.pending = append(s.pending, cmd)
		}
	}
}

// spawnPendingProjectiles instantiates queued fire commands. The
// projectile inherits the ship's velocity plus the launch speed along
// the firing direction, so aim benefits from orbital mechanics.
func (s *Simulation) spawnPendingProjectiles() {
	for _, cmd := range s.pending {
		ship := s.shipOf(cmd.Owner)
		if ship == nil || !ship.Active {
			continue
		}

		origin := cmd.Origin.Add(cmd.Direction.Scale(s.cfg.Projectile.Radius))
		velocity := ship.Velocity.Add(cmd.Direction.Scale(s.cfg.Projectile.Speed))

		proj := entity.NewProjectile(
			s.ids.Next(),
			cmd.Owner,
			origin,
			velocity,
			cmd.Heading,
			s.cfg.Projectile.Mass,
			s.cfg.Projectile.Radius,
		)
		s.bodies = append(s.bodies, proj)

		s.bus.Publish(event.NewProjectileEvent(s, uint64(proj.ID), int(cmd.Owner)))
	}
	s.pending = s.pending[:0]
}

// integrate computes accelerations for every non-sun body and then
// advances them all with one symplectic Euler step. Accelerations are
// computed against the pre-step positions so ordering cannot skew
// mutual attraction.
func (s *Simulation) integrate() {
	accels := make([]physics.Vector2D, len(s.bodies))
	for i, body := range s.bodies {
		if body.Kind == entity.Sun || !body.Active {
			continue
		}
		accels[i] = s.field.Acceleration(body.Position, s.attractorsFor(body))
	}

	for _, slot := range s.slots {
		for i, body := range s.bodies {
			if body == slot.ship {
				accels[i] = accels[i].Add(slot.thrust)
			}
		}
	}

	for i, body := range s.bodies {
		if body.Kind == entity.Sun || !body.Active {
			continue
		}
		physics.Step(&body.Position, &body.Velocity, accels[i], s.dt)
		body.Age += s.dt
	}
}

// attractorsFor returns the gravity sources acting on a body. By default
// only the sun attracts; with MutualGravity every other active body does.
func (s *Simulation) attractorsFor(target *entity.Body) []physics.Attractor {
	if !s.cfg.Physics.MutualGravity {
		return []physics.Attractor{s.sun.Attractor()}
	}

	attractors := make([]physics.Attractor, 0, len(s.bodies)-1)
	for _, body := range s.bodies {
		if body == target || !body.Active {
			continue
		}
		attractors = append(attractors, body.Attractor())
	}
	return attractors
}

// collision pairs a projectile or ship with what it struck.
type collision struct {
	a       *entity.Body // projectile, or ship for sun contact
	b       *entity.Body // ship or sun
	contact physics.Vector2D
}

// detectCollisions rebuilds the broad-phase index from the active
// bodies, then runs exact circle tests over each body's candidates.
// Candidates are filtered back through body insertion order so a fixed
// input sequence always yields the same event order regardless of the
// index. Checked pairs: projectile vs non-owner ship, projectile vs
// sun, ship vs sun. A projectile never collides with its own ship.
func (s *Simulation) detectCollisions() []collision {
	s.index.Clear()
	maxRadius := 0.0
	for _, b := range s.bodies {
		if !b.Active {
			continue
		}
		s.index.Insert(b.Position, b)
		if b.Radius > maxRadius {
			maxRadius = b.Radius
		}
	}

	var hits []collision
	for _, a := range s.bodies {
		if !a.Active || a.Kind == entity.Sun {
			continue
		}

		// Any body whose circle can overlap a's has its center within
		// a.Radius+maxRadius of a's, so this query loses no pairs.
		reach := a.Radius + maxRadius
		candidates := s.index.Query(physics.Rect{
			Center: a.Position,
			Width:  2 * reach,
			Height: 2 * reach,
		})

		for _, b := range s.bodies {
			if !b.Active || b == a || !isCandidate(candidates, b) {
				continue
			}
			switch {
			case a.Kind == entity.Projectile && b.Kind == entity.Ship && b.Player != a.Owner:
			case a.Kind == entity.Projectile && b.Kind == entity.Sun:
			case a.Kind == entity.Ship && b.Kind == entity.Sun:
			default:
				continue
			}
			// Collides keeps the strict overlap rule: circles exactly
			// touching do not collide. CheckCollision then localizes
			// the hit for the event.
			if !a.Collider().Collides(b.Collider()) {
				continue
			}
			result := physics.CheckCollision(a.Collider(), b.Collider())
			hits = append(hits, collision{a: a, b: b, contact: result.ContactPoint})
		}
	}
	return hits
}

// isCandidate reports whether the broad phase returned the body.
func isCandidate(candidates []any, b *entity.Body) bool {
	for _, c := range candidates {
		if c == b {
			return true
		}
	}
	return false
}

// resolveCollisions applies scoring and phase changes for this tick's
// events, in detection order.
func (s *Simulation) resolveCollisions(hits []collision) {
	for _, hit := range hits {
		if !hit.a.Active || !hit.b.Active {
			continue
		}

		s.bus.Publish(event.NewCollisionEvent(s, uint64(hit.a.ID), uint64(hit.b.ID), hit.contact, s.tick))

		switch {
		case hit.a.Kind == entity.Projectile && hit.b.Kind == entity.Ship:
			hit.a.Active = false
			s.scoreHit(hit.a.Owner, hit.b.Player)
		case hit.a.Kind == entity.Projectile && hit.b.Kind == entity.Sun:
			hit.a.Active = false
		case hit.a.Kind == entity.Ship && hit.b.Kind == entity.Sun:
			s.forfeit(hit.a.Player)
		}
	}
}

// scoreHit credits the shooter and ends the round.
func (s *Simulation) scoreHit(shooter, victim entity.PlayerID) {
	if s.round.Phase != PhasePlaying {
		return
	}

	s.round.Scores[shooter]++
	s.bus.Publish(event.NewScoreEvent(s, int(shooter), s.round.Scores[shooter]))
	s.endRound(shooter)

	if ship := s.shipOf(victim); ship != nil {
		ship.Active = false
	}
}

// forfeit ends the round against the given player; in versus mode the
// opponent wins, otherwise nobody does.
func (s *Simulation) forfeit(player entity.PlayerID) {
	if s.round.Phase != PhasePlaying {
		return
	}

	winner := NoPlayer
	if s.mode == ModeVersus {
		for _, slot := range s.slots {
			if slot.player != player {
				winner = slot.player
			}
		}
	}
	if winner != NoPlayer {
		s.round.Scores[winner]++
		s.bus.Publish(event.NewScoreEvent(s, int(winner), s.round.Scores[winner]))
	}

	if ship := s.shipOf(player); ship != nil {
		ship.Active = false
	}
	s.endRound(winner)
}

// endRound moves the round to its terminal phase and announces it. The
// remaining projectiles are swept so the round ends on a clean field.
func (s *Simulation) endRound(winner entity.PlayerID) {
	s.round.Phase = PhaseRoundOver
	s.round.Winner = winner

	for _, body := range s.bodies {
		if body.Kind == entity.Projectile {
			body.Active = false
		}
	}

	scores := make(map[int]int, len(s.round.Scores))
	for p, v := range s.round.Scores {
		scores[int(p)] = v
	}
	s.bus.Publish(event.NewRoundEvent(event.RoundEnded, s, s.roundNum, int(winner), scores))
}

// expireAndCull removes projectiles past their lifetime and any body
// outside the world radius. A ship drifting out of bounds forfeits the
// round, matching a sun hit.
func (s *Simulation) expireAndCull() {
	limit := s.cfg.World.WorldRadius
	for _, body := range s.bodies {
		if !body.Active || body.Kind == entity.Sun {
			continue
		}

		switch body.Kind {
		case entity.Projectile:
			if body.Age >= s.cfg.Projectile.Lifetime || body.Position.Length() > limit {
				body.Active = false
			}
		case entity.Ship:
			if body.Position.Length() > limit {
				s.forfeit(body.Player)
			}
		}
	}

	// Compact inactive projectiles out of the body list; ships are reset
	// between rounds, never removed mid-round.
	kept := s.bodies[:0]
	for _, body := range s.bodies {
		if body.Kind == entity.Projectile && !body.Active {
			continue
		}
		kept = append(kept, body)
	}
	s.bodies = kept
}

// shipOf returns the player's ship, or nil.
func (s *Simulation) shipOf(player entity.PlayerID) *entity.Body {
	for _, slot := range s.slots {
		if slot.player == player {
			return slot.ship
		}
	}
	return nil
}

// Fuel reports the player's remaining burn budget for display.
func (s *Simulation) Fuel(player entity.PlayerID) float64 {
	for _, slot := range s.slots {
		if slot.player == player {
			return slot.controller.Fuel()
		}
	}
	return 0
}
