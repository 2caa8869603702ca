// pkg/entity/id.go
package entity

// IDGenerator hands out sequential body IDs. Sequential allocation keeps
// insertion order stable, which collision reporting relies on for
// deterministic replays.
type IDGenerator struct {
	next ID
}

// NewIDGenerator starts numbering at 1; 0 is reserved as "no body".
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: 1}
}

// Next returns a fresh ID.
func (g *IDGenerator) Next() ID {
	id := g.next
	g.next++
	return id
}
