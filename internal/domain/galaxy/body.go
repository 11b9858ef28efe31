package galaxy

import (
	"fmt"

	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

// BodyType distinguishes the two kinds of visitable locations
type BodyType string

const (
	Planet  BodyType = "planet"
	Station BodyType = "station"
)

// coordinateSpan is the width of the cube bodies are scattered in, centered
// on the origin
const coordinateSpan = 100.0

// Body is a visitable location in the galaxy. Bodies are immutable; the
// market attached to each one is owned by the game session.
type Body struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     BodyType        `json:"type"`
	Position shared.Position `json:"position"`
}

// DistanceTo calculates the Euclidean distance to another body
func (b Body) DistanceTo(other Body) float64 {
	return b.Position.DistanceTo(other.Position)
}

// Generate scatters n bodies in a cube around the origin, alternating
// planets and stations
func Generate(rng shared.Rand, n int) []Body {
	types := []BodyType{Planet, Station}
	bodies := make([]Body, 0, n)
	for i := 0; i < n; i++ {
		t := types[i%2]
		bodies = append(bodies, Body{
			ID:   fmt.Sprintf("body-%d", i),
			Name: fmt.Sprintf("%s %d", t, i+1),
			Type: t,
			Position: shared.NewPosition(
				(rng.Float64()-0.5)*coordinateSpan,
				(rng.Float64()-0.5)*coordinateSpan,
				(rng.Float64()-0.5)*coordinateSpan,
			),
		})
	}
	return bodies
}

// FindByID returns the body with the given id, if present
func FindByID(bodies []Body, id string) (Body, bool) {
	for _, b := range bodies {
		if b.ID == id {
			return b, true
		}
	}
	return Body{}, false
}
