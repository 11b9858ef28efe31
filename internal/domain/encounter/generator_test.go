package encounter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

func TestProbability(t *testing.T) {
	g := encounter.NewGenerator(shared.NewSeededRand(1), encounter.DefaultConfig())

	tests := []struct {
		name     string
		distance float64
		cargo    int
		illegal  bool
		expected float64
	}{
		{"base rate only", 0, 0, false, 0.05},
		{"distance adds", 100, 0, false, 0.10},
		{"cargo value adds", 0, 1000, false, 0.06},
		{"illegal doubles", 100, 1000, true, 0.22},
		{"clamped at 1", 10000, 1000000, true, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := g.Probability(tt.distance, tt.cargo, tt.illegal)
			assert.InDelta(t, tt.expected, p, 1e-9)
		})
	}
}

func TestGenerate_GateBlocksWhenDrawExceedsProbability(t *testing.T) {
	// Probability at these inputs is 0.10; a draw of 0.5 misses
	rng := &shared.SequenceRand{Floats: []float64{0.5}}
	g := encounter.NewGenerator(rng, encounter.DefaultConfig())

	event := g.Generate(100, 0, false, nil, false)

	assert.Nil(t, event)
}

func TestGenerate_ForcedTypeSkipsGate(t *testing.T) {
	// A draw this high would never pass the gate; forced ignores it
	rng := &shared.SequenceRand{Floats: []float64{0.99}, FallbackFloat: 0.99}
	g := encounter.NewGenerator(rng, encounter.DefaultConfig())
	forced := encounter.Pirates

	event := g.Generate(100, 1000, false, &forced, true)

	require.NotNil(t, event)
	assert.Equal(t, encounter.Pirates, event.Type)
	assert.NotEmpty(t, event.Enemy.Name)
	assert.Greater(t, event.Enemy.Power, 0.0)
	assert.True(t, event.HasCargo)
	assert.Contains(t, event.Description, "demand your cargo")
}

func TestGenerate_NoPoliceWithoutCargo(t *testing.T) {
	g := encounter.NewGenerator(shared.NewSeededRand(42), encounter.DefaultConfig())

	for i := 0; i < 500; i++ {
		event := g.Generate(200, 0, false, nil, false)
		if event == nil {
			continue
		}
		assert.NotEqual(t, encounter.Police, event.Type)
	}
}

func TestGenerate_IllegalCargoDrawsPolice(t *testing.T) {
	// Gate draw 0.0 passes, police draw 0.1 < 0.4 selects police, enemy
	// draw takes the fallback
	rng := &shared.SequenceRand{Floats: []float64{0.0, 0.1}}
	g := encounter.NewGenerator(rng, encounter.DefaultConfig())

	event := g.Generate(50, 800, true, nil, true)

	require.NotNil(t, event)
	assert.Equal(t, encounter.Police, event.Type)
	assert.Equal(t, 0, event.Enemy.Credits)
	assert.Contains(t, event.Description, "inspection")
}

func TestGenerate_WeightedTypeDraw(t *testing.T) {
	tests := []struct {
		name     string
		typeDraw float64
		expected encounter.EventType
	}{
		{"low draw is pirates", 0.1, encounter.Pirates},
		{"middle draw is police", 0.5, encounter.Police},
		{"high draw is traders", 0.9, encounter.Traders},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Gate passes at 0.0; legal cargo skips the police-chance draw
			rng := &shared.SequenceRand{Floats: []float64{0.0, tt.typeDraw}}
			g := encounter.NewGenerator(rng, encounter.DefaultConfig())

			event := g.Generate(50, 500, false, nil, true)

			require.NotNil(t, event)
			assert.Equal(t, tt.expected, event.Type)
			assert.Equal(t, tt.expected, event.Enemy.Type)
		})
	}
}
