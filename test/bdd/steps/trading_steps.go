package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	tradingCommands "github.com/galactictrader/galactic-trader-go/internal/application/trading/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

type tradingContext struct {
	session   *game.Session
	resources []market.Resource
	result    *tradingCommands.ExecuteTradeResponse
}

func (tc *tradingContext) reset() {
	tc.session = nil
	tc.resources = nil
	tc.result = nil
}

func (tc *tradingContext) newSession() {
	tc.session = game.NewSession(shared.NewSeededRand(1), nil, game.DefaultSettings())
}

func (tc *tradingContext) aTraderWithCreditsAndAnEmptyHold(credits int) error {
	tc.newSession()
	tc.session.Player.Credits = credits
	return nil
}

func (tc *tradingContext) aTraderWithCreditsHolding(credits, quantity int, resource string) error {
	tc.newSession()
	tc.session.Player.Credits = credits
	tc.session.Player.Inventory.Add(market.ResourceType(resource), quantity)
	return nil
}

func (tc *tradingContext) theLocalMarketLists(resource string, basePrice, supply, demand int) error {
	if tc.session == nil {
		return fmt.Errorf("no session prepared")
	}
	tc.resources = append(tc.resources, market.Resource{
		Type:      market.ResourceType(resource),
		BasePrice: basePrice,
		Supply:    supply,
		Demand:    demand,
	})
	tc.session.Markets[tc.session.CurrentBodyID] = market.NewMarketFromResources(tc.resources)
	return nil
}

func (tc *tradingContext) executeTrade(quantity int, resource string, buying bool) error {
	handler := tradingCommands.NewExecuteTradeHandler(nil)
	response, err := handler.Handle(context.Background(), &tradingCommands.ExecuteTradeCommand{
		Session:  tc.session,
		Resource: market.ResourceType(resource),
		Quantity: quantity,
		Buying:   buying,
	})
	if err != nil {
		return err
	}
	tc.result = response.(*tradingCommands.ExecuteTradeResponse)
	return nil
}

func (tc *tradingContext) theTraderBuys(quantity int, resource string) error {
	return tc.executeTrade(quantity, resource, true)
}

func (tc *tradingContext) theTraderSells(quantity int, resource string) error {
	return tc.executeTrade(quantity, resource, false)
}

func (tc *tradingContext) theTradeIsAccepted() error {
	if tc.result == nil {
		return fmt.Errorf("no trade executed")
	}
	if tc.result.Rejected {
		return fmt.Errorf("trade was rejected: %s", tc.result.Reason)
	}
	return nil
}

func (tc *tradingContext) theTradeIsRejectedWithReason(reason string) error {
	if tc.result == nil {
		return fmt.Errorf("no trade executed")
	}
	if !tc.result.Rejected {
		return fmt.Errorf("expected rejection, trade was accepted")
	}
	if string(tc.result.Reason) != reason {
		return fmt.Errorf("expected reason %q, got %q", reason, tc.result.Reason)
	}
	return nil
}

func (tc *tradingContext) theTraderHasCredits(credits int) error {
	if tc.session.Player.Credits != credits {
		return fmt.Errorf("expected %d credits, got %d", credits, tc.session.Player.Credits)
	}
	return nil
}

func (tc *tradingContext) theTraderHoldsUnits(quantity int, resource string) error {
	held := tc.session.Player.Inventory.Quantity(market.ResourceType(resource))
	if held != quantity {
		return fmt.Errorf("expected %d units of %s, got %d", quantity, resource, held)
	}
	return nil
}

func (tc *tradingContext) theListedUnitPriceIsAbove(resource string, floor int) error {
	mkt, ok := tc.session.MarketAt(tc.session.CurrentBodyID)
	if !ok {
		return fmt.Errorf("no market at current body")
	}
	price := mkt.UnitPrice(market.ResourceType(resource))
	if price <= floor {
		return fmt.Errorf("expected unit price above %d, got %d", floor, price)
	}
	return nil
}

// InitializeTradingScenario registers the market trading step definitions
func InitializeTradingScenario(sc *godog.ScenarioContext) {
	tc := &tradingContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	sc.Step(`^a trader with (\d+) credits and an empty hold$`, tc.aTraderWithCreditsAndAnEmptyHold)
	sc.Step(`^a trader with (\d+) credits holding (\d+) units of "([^"]*)"$`, tc.aTraderWithCreditsHolding)
	sc.Step(`^the local market lists "([^"]*)" at base price (\d+) with supply (\d+) and demand (\d+)$`, tc.theLocalMarketLists)
	sc.Step(`^the trader buys (\d+) units of "([^"]*)"$`, tc.theTraderBuys)
	sc.Step(`^the trader sells (\d+) units of "([^"]*)"$`, tc.theTraderSells)
	sc.Step(`^the trade is accepted$`, tc.theTradeIsAccepted)
	sc.Step(`^the trade is rejected with reason "([^"]*)"$`, tc.theTradeIsRejectedWithReason)
	sc.Step(`^the trader has (\d+) credits$`, tc.theTraderHasCredits)
	sc.Step(`^the trader holds (\d+) units of "([^"]*)"$`, tc.theTraderHoldsUnits)
	sc.Step(`^the listed unit price of "([^"]*)" is above (\d+)$`, tc.theListedUnitPriceIsAbove)
}
