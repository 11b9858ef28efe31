package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	encounterCommands "github.com/galactictrader/galactic-trader-go/internal/application/encounters/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

type encounterContext struct {
	session      *game.Session
	rng          *shared.SequenceRand
	healthBefore int
	result       *encounterCommands.ResolveEncounterResponse
}

func (ec *encounterContext) reset() {
	ec.session = nil
	ec.rng = nil
	ec.healthBefore = 0
	ec.result = nil
}

func (ec *encounterContext) newSession() {
	ec.session = game.NewSession(shared.NewSeededRand(1), nil, game.DefaultSettings())
	ec.rng = &shared.SequenceRand{FallbackFloat: 0.5}
	ec.healthBefore = ec.session.Player.Health
}

func (ec *encounterContext) aPendingPoliceEncounterWithANearEmptyHold() error {
	ec.newSession()
	ec.session.Player.Inventory.Add(market.Metals, 1)
	return ec.session.SetEvent(&encounter.Event{
		Type:     encounter.Police,
		Enemy:    encounter.Enemy{Name: "Police Patrol", Type: encounter.Police, Power: 60, Shields: 50, Speed: 90},
		HasCargo: true,
	})
}

func (ec *encounterContext) aPendingEncounterAgainstAWeakEnemy(eventType string) error {
	ec.newSession()
	t := encounter.EventType(eventType)
	return ec.session.SetEvent(&encounter.Event{
		Type:  t,
		Enemy: encounter.Enemy{Name: "Merchant Vessel", Type: t, Power: 30, Shields: 40, Speed: 50, Credits: 800},
	})
}

func (ec *encounterContext) noPendingEncounter() error {
	ec.newSession()
	return nil
}

func (ec *encounterContext) theCommanderHasCredits(credits int) error {
	ec.session.Player.Credits = credits
	return nil
}

func (ec *encounterContext) resolve(action encounter.Action) error {
	handler := encounterCommands.NewResolveEncounterHandler(encounter.NewResolver(ec.rng), nil)
	response, err := handler.Handle(context.Background(), &encounterCommands.ResolveEncounterCommand{
		Session:  ec.session,
		Action:   action,
		Distance: 50,
	})
	if err != nil {
		return err
	}
	ec.result = response.(*encounterCommands.ResolveEncounterResponse)
	return nil
}

func (ec *encounterContext) theCommanderComplies() error {
	return ec.resolve(encounter.Comply)
}

func (ec *encounterContext) theCommanderFightsAndWins() error {
	// Success draw 0.0 always wins; damage draw 0.0 leaves the hull intact
	ec.rng.Floats = []float64{0.0, 0.0}
	return ec.resolve(encounter.Fight)
}

func (ec *encounterContext) theCommanderRespondsWith(action string) error {
	return ec.resolve(encounter.Action(action))
}

func (ec *encounterContext) theResolutionSucceeds() error {
	if ec.result == nil {
		return fmt.Errorf("no resolution executed")
	}
	if ec.result.Rejected {
		return fmt.Errorf("resolution was rejected: %s", ec.result.Reason)
	}
	if !ec.result.Outcome.Success {
		return fmt.Errorf("outcome was a failure: %s", ec.result.Outcome.Message)
	}
	return nil
}

func (ec *encounterContext) theResolutionIsRejectedWithReason(reason string) error {
	if ec.result == nil {
		return fmt.Errorf("no resolution executed")
	}
	if !ec.result.Rejected {
		return fmt.Errorf("expected rejection, resolution was accepted")
	}
	if ec.result.Reason != reason {
		return fmt.Errorf("expected reason %q, got %q", reason, ec.result.Reason)
	}
	return nil
}

func (ec *encounterContext) theCommanderHasCreditsAfter(credits int) error {
	if ec.session.Player.Credits != credits {
		return fmt.Errorf("expected %d credits, got %d", credits, ec.session.Player.Credits)
	}
	return nil
}

func (ec *encounterContext) theCommanderTakesNoDamage() error {
	if ec.session.Player.Health != ec.healthBefore {
		return fmt.Errorf("expected health %d, got %d", ec.healthBefore, ec.session.Player.Health)
	}
	return nil
}

func (ec *encounterContext) noEncounterIsPending() error {
	if ec.session.HasPendingEvent() {
		return fmt.Errorf("an encounter is still pending")
	}
	return nil
}

func (ec *encounterContext) theEncounterIsStillPending() error {
	if !ec.session.HasPendingEvent() {
		return fmt.Errorf("expected the encounter to remain pending")
	}
	return nil
}

// InitializeEncounterScenario registers the encounter resolution step
// definitions
func InitializeEncounterScenario(sc *godog.ScenarioContext) {
	ec := &encounterContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		ec.reset()
		return ctx, nil
	})

	sc.Step(`^a pending "police" encounter with a near-empty hold$`, ec.aPendingPoliceEncounterWithANearEmptyHold)
	sc.Step(`^a pending "([^"]*)" encounter against a weak enemy$`, ec.aPendingEncounterAgainstAWeakEnemy)
	sc.Step(`^no pending encounter$`, ec.noPendingEncounter)
	sc.Step(`^the commander starts with (\d+) credits$`, ec.theCommanderHasCredits)
	sc.Step(`^the commander has (\d+) credits$`, ec.theCommanderHasCreditsAfter)
	sc.Step(`^the commander complies$`, ec.theCommanderComplies)
	sc.Step(`^the commander fights and wins$`, ec.theCommanderFightsAndWins)
	sc.Step(`^the commander responds with "([^"]*)"$`, ec.theCommanderRespondsWith)
	sc.Step(`^the resolution succeeds$`, ec.theResolutionSucceeds)
	sc.Step(`^the resolution is rejected with reason "([^"]*)"$`, ec.theResolutionIsRejectedWithReason)
	sc.Step(`^the commander takes no damage$`, ec.theCommanderTakesNoDamage)
	sc.Step(`^no encounter is pending$`, ec.noEncounterIsPending)
	sc.Step(`^the encounter is still pending$`, ec.theEncounterIsStillPending)
}
