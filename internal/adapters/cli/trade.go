package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	tradingCommands "github.com/galactictrader/galactic-trader-go/internal/application/trading/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
)

// NewTradeCommand creates the trade command with buy/sell subcommands
func NewTradeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Buy or sell resources at the current market",
		Long: `Execute a trade at the docked body's market. Trades execute at the
catalog base price and shift the market's supply and demand.

Examples:
  galactic-trader trade buy --game <id> --resource metals --quantity 5
  galactic-trader trade sell --game <id> --resource metals --quantity 5`,
	}

	cmd.AddCommand(newTradeSubcommand("buy", true))
	cmd.AddCommand(newTradeSubcommand("sell", false))

	return cmd
}

func newTradeSubcommand(use string, buying bool) *cobra.Command {
	var resource string
	var quantity int

	short := "Sell resources from the cargo hold"
	if buying {
		short = "Buy resources into the cargo hold"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			resourceType, err := market.ParseResourceType(resource)
			if err != nil {
				return err
			}
			if quantity <= 0 {
				return fmt.Errorf("%w: %d", market.ErrInvalidQuantity, quantity)
			}

			env, err := newEnvironment()
			if err != nil {
				return err
			}
			defer env.close()

			ctx := env.commandContext()
			session, err := env.loadSession(ctx)
			if err != nil {
				return err
			}

			response, err := env.mediator.Send(ctx, &tradingCommands.ExecuteTradeCommand{
				Session:  session,
				Resource: resourceType,
				Quantity: quantity,
				Buying:   buying,
			})
			if err != nil {
				return err
			}

			result := response.(*tradingCommands.ExecuteTradeResponse)
			if result.Rejected {
				fmt.Printf("Trade rejected: %s\n", result.Reason)
				return nil
			}

			if err := env.saveSession(ctx, session); err != nil {
				return err
			}

			verb := "Sold"
			if buying {
				verb = "Bought"
			}
			fmt.Printf("%s %d %s for %d credits (%d remaining)\n",
				verb, quantity, resource, result.Total, result.Credits)
			return nil
		},
	}

	cmd.Flags().StringVar(&resource, "resource", "", "Resource type (metals, water, food, technology, luxuryGoods, contraband)")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Units to trade")
	_ = cmd.MarkFlagRequired("resource")

	return cmd
}
