package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	shipCommands "github.com/galactictrader/galactic-trader-go/internal/application/ship/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
	"github.com/galactictrader/galactic-trader-go/internal/domain/ship"
)

type upgradeContext struct {
	session *game.Session
	result  *shipCommands.UpgradeComponentResponse
}

func (uc *upgradeContext) reset() {
	uc.session = nil
	uc.result = nil
}

func (uc *upgradeContext) aShipownerWithCredits(credits int) error {
	uc.session = game.NewSession(shared.NewSeededRand(1), nil, game.DefaultSettings())
	uc.session.Player.Credits = credits
	return nil
}

func (uc *upgradeContext) aShipownerWithCreditsAndAMaxedOutComponent(credits int, component string) error {
	if err := uc.aShipownerWithCredits(credits); err != nil {
		return err
	}
	t := ship.ComponentType(component)
	for {
		hdr, err := uc.session.Components.Header(t)
		if err != nil {
			return err
		}
		if hdr.AtMaxLevel() {
			return nil
		}
		if err := uc.session.Components.Upgrade(t); err != nil {
			return err
		}
	}
}

func (uc *upgradeContext) theShipownerUpgrades(component string) error {
	handler := shipCommands.NewUpgradeComponentHandler(nil)
	response, err := handler.Handle(context.Background(), &shipCommands.UpgradeComponentCommand{
		Session: uc.session,
		Type:    ship.ComponentType(component),
	})
	if err != nil {
		return err
	}
	uc.result = response.(*shipCommands.UpgradeComponentResponse)
	return nil
}

func (uc *upgradeContext) theUpgradeIsAcceptedAtACost(cost int) error {
	if uc.result == nil {
		return fmt.Errorf("no upgrade executed")
	}
	if uc.result.Rejected {
		return fmt.Errorf("upgrade was rejected: %s", uc.result.Reason)
	}
	if uc.result.Cost != cost {
		return fmt.Errorf("expected cost %d, got %d", cost, uc.result.Cost)
	}
	return nil
}

func (uc *upgradeContext) theUpgradeIsRejectedWithReason(reason string) error {
	if uc.result == nil {
		return fmt.Errorf("no upgrade executed")
	}
	if !uc.result.Rejected {
		return fmt.Errorf("expected rejection, upgrade was accepted")
	}
	if uc.result.Reason != reason {
		return fmt.Errorf("expected reason %q, got %q", reason, uc.result.Reason)
	}
	return nil
}

func (uc *upgradeContext) theComponentIsAtLevel(component string, level int) error {
	hdr, err := uc.session.Components.Header(ship.ComponentType(component))
	if err != nil {
		return err
	}
	if hdr.Level != level {
		return fmt.Errorf("expected %s at level %d, got %d", component, level, hdr.Level)
	}
	return nil
}

func (uc *upgradeContext) theCargoCapacityIsUnits(capacity int) error {
	if uc.session.Player.CargoCapacity != capacity {
		return fmt.Errorf("expected cargo capacity %d, got %d", capacity, uc.session.Player.CargoCapacity)
	}
	return nil
}

func (uc *upgradeContext) theShipSpeedIs(speed float64) error {
	if math.Abs(uc.session.Player.Speed-speed) > 1e-9 {
		return fmt.Errorf("expected speed %.1f, got %.1f", speed, uc.session.Player.Speed)
	}
	return nil
}

// InitializeUpgradeScenario registers the ship upgrade step definitions
func InitializeUpgradeScenario(sc *godog.ScenarioContext) {
	uc := &upgradeContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		uc.reset()
		return ctx, nil
	})

	sc.Step(`^a shipowner with (\d+) credits and level-1 components$`, uc.aShipownerWithCredits)
	sc.Step(`^a shipowner with (\d+) credits and a maxed-out "([^"]*)"$`, uc.aShipownerWithCreditsAndAMaxedOutComponent)
	sc.Step(`^the shipowner upgrades the "([^"]*)" component$`, uc.theShipownerUpgrades)
	sc.Step(`^the upgrade is accepted at a cost of (\d+) credits$`, uc.theUpgradeIsAcceptedAtACost)
	sc.Step(`^the upgrade is rejected with reason "([^"]*)"$`, uc.theUpgradeIsRejectedWithReason)
	sc.Step(`^the "([^"]*)" component is at level (\d+)$`, uc.theComponentIsAtLevel)
	sc.Step(`^the cargo capacity is (\d+) units$`, uc.theCargoCapacityIsUnits)
	sc.Step(`^the ship speed is (\d+)$`, uc.theShipSpeedIs)
}
