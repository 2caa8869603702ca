// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-orbits/pkg/physics"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted     Type = "game_started"
	GameEnded       Type = "game_ended"
	RoundStarted    Type = "round_started"
	RoundEnded      Type = "round_ended"
	ProjectileFired Type = "projectile_fired"
	EntityCollision Type = "entity_collision"
	ScoreChanged    Type = "score_changed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// CollisionEvent records a projectile striking a ship or the sun. Events
// are emitted in body insertion order and consumed within the same tick.
type CollisionEvent struct {
	BaseEvent
	EntityA uint64
	EntityB uint64
	Contact physics.Vector2D // point on A's circle along the hit normal
	Tick    uint64
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, entityA, entityB uint64, contact physics.Vector2D, tick uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: EntityCollision,
			Source:    source,
		},
		EntityA: entityA,
		EntityB: entityB,
		Contact: contact,
		Tick:    tick,
	}
}

// ProjectileEvent contains information about a fired projectile
type ProjectileEvent struct {
	BaseEvent
	ProjectileID uint64
	Owner        int
}

// NewProjectileEvent creates a new projectile event
func NewProjectileEvent(source interface{}, projectileID uint64, owner int) *ProjectileEvent {
	return &ProjectileEvent{
		BaseEvent: BaseEvent{
			EventType: ProjectileFired,
			Source:    source,
		},
		ProjectileID: projectileID,
		Owner:        owner,
	}
}

// RoundEvent contains round lifecycle information. Winner is -1 when the
// round ended with no winner.
type RoundEvent struct {
	BaseEvent
	Round  int
	Winner int
	Scores map[int]int
}

// NewRoundEvent creates a new round event
func NewRoundEvent(eventType Type, source interface{}, round, winner int, scores map[int]int) *RoundEvent {
	return &RoundEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Round:  round,
		Winner: winner,
		Scores: scores,
	}
}

// ScoreEvent reports a score change for a player
type ScoreEvent struct {
	BaseEvent
	Player int
	Score  int
}

// NewScoreEvent creates a new score event
func NewScoreEvent(source interface{}, player, score int) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent: BaseEvent{
			EventType: ScoreChanged,
			Source:    source,
		},
		Player: player,
		Score:  score,
	}
}
