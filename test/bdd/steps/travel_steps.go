package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/galactictrader/galactic-trader-go/internal/application/travel"
	travelCommands "github.com/galactictrader/galactic-trader-go/internal/application/travel/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/galaxy"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

type travelContext struct {
	session *game.Session
	result  *travelCommands.InitiateTripResponse
}

func (tc *travelContext) reset() {
	tc.session = nil
	tc.result = nil
}

func (tc *travelContext) aGalaxyWithTwoBodiesApart(distance int) error {
	tc.session = game.NewSession(shared.NewSeededRand(1), nil, game.DefaultSettings())
	tc.session.Galaxy = []galaxy.Body{
		{ID: "body-0", Name: "planet 1", Type: galaxy.Planet, Position: shared.NewPosition(0, 0, 0)},
		{ID: "body-1", Name: "station 2", Type: galaxy.Station, Position: shared.NewPosition(float64(distance), 0, 0)},
	}
	return nil
}

func (tc *travelContext) thePilotIsDockedAtWithFuel(bodyID string, fuel float64) error {
	body, ok := galaxy.FindByID(tc.session.Galaxy, bodyID)
	if !ok {
		return fmt.Errorf("unknown body %q", bodyID)
	}
	tc.session.CurrentBodyID = body.ID
	tc.session.Player.Position = body.Position
	tc.session.Player.Fuel = shared.Fuel{Current: fuel, Capacity: math.Max(fuel, tc.session.Player.Fuel.Capacity)}
	return nil
}

func (tc *travelContext) aPirateAmbushIsAlreadyPending() error {
	return tc.session.SetEvent(&encounter.Event{
		Type:  encounter.Pirates,
		Enemy: encounter.Enemy{Name: "Space Pirate Scout", Type: encounter.Pirates, Power: 50, Shields: 30, Speed: 80, Credits: 500},
	})
}

func (tc *travelContext) travel(destination string, triggerDraw float64) error {
	rng := &shared.SequenceRand{FallbackFloat: triggerDraw}
	generator := encounter.NewGenerator(shared.NewSeededRand(2), encounter.DefaultConfig())
	handler := travelCommands.NewInitiateTripHandler(rng, generator, travel.DefaultEncounterPolicy(), nil)

	response, err := handler.Handle(context.Background(), &travelCommands.InitiateTripCommand{
		Session:       tc.session,
		DestinationID: destination,
	})
	if err != nil {
		return err
	}
	tc.result = response.(*travelCommands.InitiateTripResponse)
	return nil
}

func (tc *travelContext) thePilotTravelsToWithNoAmbush(destination string) error {
	return tc.travel(destination, 0.99)
}

func (tc *travelContext) thePilotTravelsToIntoAnAmbush(destination string) error {
	return tc.travel(destination, 0.0)
}

func (tc *travelContext) theTripIsAccepted() error {
	if tc.result == nil {
		return fmt.Errorf("no trip executed")
	}
	if tc.result.Rejected {
		return fmt.Errorf("trip was rejected: %s", tc.result.Reason)
	}
	return nil
}

func (tc *travelContext) theTripIsRejectedWithReason(reason string) error {
	if tc.result == nil {
		return fmt.Errorf("no trip executed")
	}
	if !tc.result.Rejected {
		return fmt.Errorf("expected rejection, trip was accepted")
	}
	if tc.result.Reason != reason {
		return fmt.Errorf("expected reason %q, got %q", reason, tc.result.Reason)
	}
	return nil
}

func (tc *travelContext) thePilotIsDockedAt(bodyID string) error {
	if tc.session.CurrentBodyID != bodyID {
		return fmt.Errorf("expected to be docked at %q, got %q", bodyID, tc.session.CurrentBodyID)
	}
	return nil
}

func (tc *travelContext) thePilotHasFuelRemaining(fuel float64) error {
	if math.Abs(tc.session.Player.Fuel.Current-fuel) > 1e-9 {
		return fmt.Errorf("expected %.1f fuel, got %.1f", fuel, tc.session.Player.Fuel.Current)
	}
	return nil
}

func (tc *travelContext) anEncounterIsPending(eventType string) error {
	if !tc.session.HasPendingEvent() {
		return fmt.Errorf("no encounter pending")
	}
	if string(tc.session.CurrentEvent.Type) != eventType {
		return fmt.Errorf("expected %q encounter, got %q", eventType, tc.session.CurrentEvent.Type)
	}
	return nil
}

// InitializeTravelScenario registers the travel step definitions
func InitializeTravelScenario(sc *godog.ScenarioContext) {
	tc := &travelContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	sc.Step(`^a galaxy with two bodies (\d+) units apart$`, tc.aGalaxyWithTwoBodiesApart)
	sc.Step(`^the pilot is docked at "([^"]*)" with (\d+) fuel$`, tc.thePilotIsDockedAtWithFuel)
	sc.Step(`^a pirate ambush is already pending$`, tc.aPirateAmbushIsAlreadyPending)
	sc.Step(`^the pilot travels to "([^"]*)" with no ambush$`, tc.thePilotTravelsToWithNoAmbush)
	sc.Step(`^the pilot travels to "([^"]*)" into an ambush$`, tc.thePilotTravelsToIntoAnAmbush)
	sc.Step(`^the trip is accepted$`, tc.theTripIsAccepted)
	sc.Step(`^the trip is rejected with reason "([^"]*)"$`, tc.theTripIsRejectedWithReason)
	sc.Step(`^the pilot is docked at "([^"]*)"$`, tc.thePilotIsDockedAt)
	sc.Step(`^the pilot has (\d+) fuel remaining$`, tc.thePilotHasFuelRemaining)
	sc.Step(`^a "([^"]*)" encounter is pending$`, tc.anEncounterIsPending)
}
