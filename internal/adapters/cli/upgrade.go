package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	shipCommands "github.com/galactictrader/galactic-trader-go/internal/application/ship/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/ship"
)

// NewUpgradeCommand creates the component upgrade command
func NewUpgradeCommand() *cobra.Command {
	var component string

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade a ship component",
		Long: `Advance one component a level, paying the current upgrade cost.
Levels cap at 5; stats and cost grow with each level.

Examples:
  galactic-trader upgrade --game <id> --component weapons
  galactic-trader upgrade --game <id> --component cargo`,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			response, err := env.mediator.Send(ctx, &shipCommands.UpgradeComponentCommand{
				Session: session,
				Type:    ship.ComponentType(component),
			})
			if err != nil {
				return err
			}

			result := response.(*shipCommands.UpgradeComponentResponse)
			if result.Rejected {
				fmt.Printf("Upgrade rejected: %s\n", result.Reason)
				return nil
			}

			if err := env.saveSession(ctx, session); err != nil {
				return err
			}

			fmt.Printf("Upgraded %s to level %d for %d credits (%d remaining)\n",
				component, result.Level, result.Cost, result.Credits)
			return nil
		},
	}

	cmd.Flags().StringVar(&component, "component", "", "Component type (engine, cargo, weapons, shields, fuelTank)")
	_ = cmd.MarkFlagRequired("component")

	return cmd
}
