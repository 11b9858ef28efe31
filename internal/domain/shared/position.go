package shared

import (
	"fmt"
	"math"
)

// Position represents an immutable location in 3-D space
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewPosition creates a position from its coordinates
func NewPosition(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z}
}

// DistanceTo calculates Euclidean distance to another position
func (p Position) DistanceTo(other Position) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	dz := other.Z - p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (p Position) String() string {
	return fmt.Sprintf("Position(%.1f, %.1f, %.1f)", p.X, p.Y, p.Z)
}
