package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	missionCommands "github.com/galactictrader/galactic-trader-go/internal/application/missions/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

type missionStepContext struct {
	session       *game.Session
	clock         *shared.MockClock
	offer         mission.Mission
	creditsBefore int
	acceptResult  *missionCommands.AcceptMissionResponse
}

func (mc *missionStepContext) reset() {
	mc.session = nil
	mc.clock = nil
	mc.offer = mission.Mission{}
	mc.creditsBefore = 0
	mc.acceptResult = nil
}

func (mc *missionStepContext) newSession() {
	mc.clock = shared.NewMockClock(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
	mc.session = game.NewSession(shared.NewSeededRand(1), mc.clock, game.DefaultSettings())
	mc.creditsBefore = mc.session.Player.Credits
}

func (mc *missionStepContext) anActiveDelivery(amount int, resource, target string, credits, reputation int) error {
	mc.newSession()
	return mc.session.MissionLog.Accept(mission.Mission{
		ID:     "delivery-1",
		Title:  "Supply run",
		Type:   mission.Delivery,
		Status: mission.StatusAvailable,
		Objectives: []mission.Objective{{
			Type:           mission.ObjectiveDeliver,
			Resource:       market.ResourceType(resource),
			Amount:         amount,
			TargetLocation: target,
		}},
		Reward:     mission.Reward{Credits: credits, Reputation: reputation},
		ExpiryTime: mc.clock.Now().Add(24 * time.Hour),
	})
}

func (mc *missionStepContext) theCourierHoldsUnits(amount int, resource string) error {
	mc.session.Player.Inventory.Add(market.ResourceType(resource), amount)
	return nil
}

func (mc *missionStepContext) theCourierDocksAndProgressIsUpdated(bodyID string) error {
	mc.session.CurrentBodyID = bodyID
	handler := missionCommands.NewUpdateMissionProgressHandler(nil)
	_, err := handler.Handle(context.Background(), &missionCommands.UpdateMissionProgressCommand{Session: mc.session})
	return err
}

func (mc *missionStepContext) aMissionOfferRequiringReputation(required int) error {
	mc.newSession()
	mc.offer = mission.Mission{
		ID:                 "offer-1",
		Type:               mission.Bounty,
		Status:             mission.StatusAvailable,
		RequiredReputation: required,
		ExpiryTime:         mc.clock.Now().Add(24 * time.Hour),
	}
	return nil
}

func (mc *missionStepContext) aMissionOfferThatExpiredAnHourAgo() error {
	mc.newSession()
	mc.offer = mission.Mission{
		ID:         "offer-1",
		Type:       mission.Delivery,
		Status:     mission.StatusAvailable,
		ExpiryTime: mc.clock.Now().Add(-time.Hour),
	}
	return nil
}

func (mc *missionStepContext) theCourierAcceptsTheOffer(reputation int) error {
	mc.session.Player.Reputation = reputation
	handler := missionCommands.NewAcceptMissionHandler(mc.clock, nil)
	response, err := handler.Handle(context.Background(), &missionCommands.AcceptMissionCommand{
		Session: mc.session,
		Mission: mc.offer,
	})
	if err != nil {
		return err
	}
	mc.acceptResult = response.(*missionCommands.AcceptMissionResponse)
	return nil
}

func (mc *missionStepContext) anActiveMissionDueInHours(hours int) error {
	mc.newSession()
	return mc.session.MissionLog.Accept(mission.Mission{
		ID:         "due-1",
		Type:       mission.Trade,
		Status:     mission.StatusAvailable,
		ExpiryTime: mc.clock.Now().Add(time.Duration(hours) * time.Hour),
	})
}

func (mc *missionStepContext) hoursPassAndTheExpirySweepRuns(hours int) error {
	mc.clock.Advance(time.Duration(hours) * time.Hour)
	handler := missionCommands.NewExpireMissionsHandler(mc.clock, nil)
	_, err := handler.Handle(context.Background(), &missionCommands.ExpireMissionsCommand{Session: mc.session})
	return err
}

func (mc *missionStepContext) theMissionIsCompleted() error {
	if len(mc.session.MissionLog.Completed) != 1 {
		return fmt.Errorf("expected 1 completed mission, got %d", len(mc.session.MissionLog.Completed))
	}
	if len(mc.session.MissionLog.Active) != 0 {
		return fmt.Errorf("expected no active missions, got %d", len(mc.session.MissionLog.Active))
	}
	return nil
}

func (mc *missionStepContext) theMissionIsStillActive() error {
	if len(mc.session.MissionLog.Active) != 1 {
		return fmt.Errorf("expected 1 active mission, got %d", len(mc.session.MissionLog.Active))
	}
	return nil
}

func (mc *missionStepContext) theMissionIsFailed() error {
	if len(mc.session.MissionLog.Failed) != 1 {
		return fmt.Errorf("expected 1 failed mission, got %d", len(mc.session.MissionLog.Failed))
	}
	if len(mc.session.MissionLog.Active) != 0 {
		return fmt.Errorf("expected no active missions, got %d", len(mc.session.MissionLog.Active))
	}
	return nil
}

func (mc *missionStepContext) theCourierGainsCredits(credits int) error {
	gained := mc.session.Player.Credits - mc.creditsBefore
	if gained != credits {
		return fmt.Errorf("expected a gain of %d credits, got %d", credits, gained)
	}
	return nil
}

func (mc *missionStepContext) theCourierHasReputation(reputation int) error {
	if mc.session.Player.Reputation != reputation {
		return fmt.Errorf("expected %d reputation, got %d", reputation, mc.session.Player.Reputation)
	}
	return nil
}

func (mc *missionStepContext) theAcceptanceIsRejectedWithReason(reason string) error {
	if mc.acceptResult == nil {
		return fmt.Errorf("no acceptance executed")
	}
	if !mc.acceptResult.Rejected {
		return fmt.Errorf("expected rejection, offer was accepted")
	}
	if mc.acceptResult.Reason != reason {
		return fmt.Errorf("expected reason %q, got %q", reason, mc.acceptResult.Reason)
	}
	return nil
}

// InitializeMissionScenario registers the mission lifecycle step definitions
func InitializeMissionScenario(sc *godog.ScenarioContext) {
	mc := &missionStepContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		mc.reset()
		return ctx, nil
	})

	sc.Step(`^an active delivery of (\d+) units of "([^"]*)" to "([^"]*)" rewarding (\d+) credits and (\d+) reputation$`, mc.anActiveDelivery)
	sc.Step(`^the courier holds (\d+) units of "([^"]*)"$`, mc.theCourierHoldsUnits)
	sc.Step(`^the courier docks at "([^"]*)" and progress is updated$`, mc.theCourierDocksAndProgressIsUpdated)
	sc.Step(`^a mission offer requiring (\d+) reputation$`, mc.aMissionOfferRequiringReputation)
	sc.Step(`^a mission offer that expired an hour ago$`, mc.aMissionOfferThatExpiredAnHourAgo)
	sc.Step(`^the courier with (\d+) reputation accepts the offer$`, mc.theCourierAcceptsTheOffer)
	sc.Step(`^an active mission due in (\d+) hour$`, mc.anActiveMissionDueInHours)
	sc.Step(`^(\d+) hours pass and the expiry sweep runs$`, mc.hoursPassAndTheExpirySweepRuns)
	sc.Step(`^the mission is completed$`, mc.theMissionIsCompleted)
	sc.Step(`^the mission is still active$`, mc.theMissionIsStillActive)
	sc.Step(`^the mission is failed$`, mc.theMissionIsFailed)
	sc.Step(`^the courier gains (\d+) credits$`, mc.theCourierGainsCredits)
	sc.Step(`^the courier has (\d+) reputation$`, mc.theCourierHasReputation)
	sc.Step(`^the acceptance is rejected with reason "([^"]*)"$`, mc.theAcceptanceIsRejectedWithReason)
}
