package mission

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/galactictrader/galactic-trader-go/internal/domain/galaxy"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

const (
	// riskDistanceDivisor scales distance into the risk draw
	riskDistanceDivisor = 50.0

	// rewardDistanceDivisor scales distance into the reward multiplier
	rewardDistanceDivisor = 100.0

	// riskRewardBonus is the per-risk-level reward bump (50% each level past 1)
	riskRewardBonus = 0.5

	// reputationPerRisk converts risk level into the reputation reward
	reputationPerRisk = 5

	// missionValidity is how long a generated mission stays acceptable
	missionValidity = 24 * time.Hour

	maxRiskLevel = 3
)

// Generator procedurally builds missions against the galaxy topology.
// Generation is total: any non-empty location list yields a valid mission.
type Generator struct {
	rng   shared.Rand
	clock shared.Clock
}

// NewGenerator creates a generator. Nil rng/clock default to the real
// implementations for production use.
func NewGenerator(rng shared.Rand, clock shared.Clock) *Generator {
	if rng == nil {
		rng = shared.NewRealRand()
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Generator{rng: rng, clock: clock}
}

// Generate builds one mission offered at the current location, targeting a
// random other location. Reward scales with distance and risk; risk scales
// with distance and the mission type's risk multiplier.
func (g *Generator) Generate(current galaxy.Body, all []galaxy.Body, playerReputation int) (Mission, error) {
	if len(all) == 0 {
		return Mission{}, ErrNoLocations
	}

	missionType := missionTypes[g.rng.Intn(len(missionTypes))]
	tmpl := templates[missionType]

	target := g.pickTarget(current, all)
	distance := current.DistanceTo(target)

	baseReward := tmpl.baseReward * (1 + distance/rewardDistanceDivisor)

	riskLevel := int(math.Ceil((distance/riskDistanceDivisor + g.rng.Float64()) * tmpl.riskMultiplier))
	if riskLevel < 1 {
		riskLevel = 1
	}
	if riskLevel > maxRiskLevel {
		riskLevel = maxRiskLevel
	}

	finalReward := int(math.Round(baseReward * (1 + float64(riskLevel-1)*riskRewardBonus)))

	requiredReputation := 0
	if riskLevel > 2 {
		requiredReputation = (riskLevel - 2) * 10
	}

	objectives := g.generateObjectives(missionType, target.ID)

	return Mission{
		ID:          uuid.New().String(),
		Title:       g.generateTitle(missionType, target.Name),
		Type:        missionType,
		Description: g.generateDescription(missionType, target.Name, objectives),
		Giver:       g.generateGiver(),
		Location:    current.ID,
		Objectives:  objectives,
		Reward: Reward{
			Credits:    finalReward,
			Reputation: riskLevel * reputationPerRisk,
		},
		Status:             StatusAvailable,
		TimeLimit:          int(math.Round(distance * tmpl.timeMultiplier)),
		RiskLevel:          riskLevel,
		RequiredReputation: requiredReputation,
		CompletionProgress: 0,
		ExpiryTime:         g.clock.Now().Add(missionValidity),
	}, nil
}

// GenerateForLocation builds a batch of mission offers for one location
func (g *Generator) GenerateForLocation(current galaxy.Body, all []galaxy.Body, playerReputation, count int) ([]Mission, error) {
	missions := make([]Mission, 0, count)
	for i := 0; i < count; i++ {
		m, err := g.Generate(current, all, playerReputation)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}
	return missions, nil
}

// pickTarget draws a location uniformly from all bodies excluding the
// current one, falling back to the first body when no other exists
func (g *Generator) pickTarget(current galaxy.Body, all []galaxy.Body) galaxy.Body {
	others := make([]galaxy.Body, 0, len(all))
	for _, b := range all {
		if b.ID != current.ID {
			others = append(others, b)
		}
	}
	if len(others) == 0 {
		return all[0]
	}
	return others[g.rng.Intn(len(others))]
}

func (g *Generator) generateObjectives(t Type, targetLocationID string) []Objective {
	switch t {
	case Delivery, Smuggling:
		resource := market.Contraband
		if t == Delivery {
			legal := market.LegalResourceTypes()
			resource = legal[g.rng.Intn(len(legal))]
		}
		return []Objective{{
			Type:           ObjectiveDeliver,
			Resource:       resource,
			Amount:         g.rng.Intn(20) + 5,
			TargetLocation: targetLocationID,
			Description:    fmt.Sprintf("Deliver %s to the specified location", resource),
		}}
	case Bounty:
		return []Objective{{
			Type:           ObjectiveEliminate,
			TargetLocation: targetLocationID,
			Description:    "Eliminate the target",
		}}
	case Trade:
		legal := market.LegalResourceTypes()
		resource := legal[g.rng.Intn(len(legal))]
		return []Objective{
			{
				Type:        ObjectiveCollect,
				Resource:    resource,
				Amount:      g.rng.Intn(15) + 5,
				Description: fmt.Sprintf("Purchase %s", resource),
			},
			{
				Type:           ObjectiveDeliver,
				Resource:       resource,
				Amount:         g.rng.Intn(15) + 5,
				TargetLocation: targetLocationID,
				Description:    fmt.Sprintf("Deliver %s to the specified location", resource),
			},
		}
	}
	return nil
}

func (g *Generator) generateTitle(t Type, targetName string) string {
	options := titleTemplates[t]
	return fmt.Sprintf(options[g.rng.Intn(len(options))], targetName)
}

func (g *Generator) generateDescription(t Type, targetName string, objectives []Objective) string {
	parts := make([]string, 0, len(objectives))
	for _, obj := range objectives {
		parts = append(parts, obj.Description)
	}
	return fmt.Sprintf("%s %s in %s.", templates[t].description, strings.Join(parts, " and "), targetName)
}

func (g *Generator) generateGiver() string {
	first := giverFirstNames[g.rng.Intn(len(giverFirstNames))]
	last := giverLastNames[g.rng.Intn(len(giverLastNames))]
	return first + " " + last
}
