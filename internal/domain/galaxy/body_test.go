package galaxy_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactictrader/galactic-trader-go/internal/domain/galaxy"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

func TestGenerate_AlternatesPlanetsAndStations(t *testing.T) {
	bodies := galaxy.Generate(shared.NewSeededRand(3), 6)

	require.Len(t, bodies, 6)
	for i, b := range bodies {
		assert.Equal(t, fmt.Sprintf("body-%d", i), b.ID)
		if i%2 == 0 {
			assert.Equal(t, galaxy.Planet, b.Type)
		} else {
			assert.Equal(t, galaxy.Station, b.Type)
		}
	}
}

func TestGenerate_PositionsStayInSpan(t *testing.T) {
	bodies := galaxy.Generate(shared.NewSeededRand(7), 50)

	for _, b := range bodies {
		for _, coord := range []float64{b.Position.X, b.Position.Y, b.Position.Z} {
			assert.GreaterOrEqual(t, coord, -50.0)
			assert.LessOrEqual(t, coord, 50.0)
		}
	}
}

func TestDistanceTo(t *testing.T) {
	a := galaxy.Body{Position: shared.NewPosition(0, 0, 0)}
	b := galaxy.Body{Position: shared.NewPosition(3, 4, 0)}

	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, 5.0, b.DistanceTo(a))
}

func TestFindByID(t *testing.T) {
	bodies := galaxy.Generate(shared.NewSeededRand(1), 4)

	found, ok := galaxy.FindByID(bodies, "body-2")
	require.True(t, ok)
	assert.Equal(t, "body-2", found.ID)

	_, ok = galaxy.FindByID(bodies, "body-99")
	assert.False(t, ok)
}
