package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	encounterCommands "github.com/galactictrader/galactic-trader-go/internal/application/encounters/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
)

// NewEncounterCommand creates the encounter command with subcommands
func NewEncounterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encounter",
		Short: "View or resolve the pending encounter",
	}

	cmd.AddCommand(newEncounterShowCommand())
	cmd.AddCommand(newEncounterResolveCommand())

	return cmd
}

func newEncounterShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the pending encounter",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment()
			if err != nil {
				return err
			}
			defer env.close()

			session, err := env.loadSession(env.commandContext())
			if err != nil {
				return err
			}
			if !session.HasPendingEvent() {
				fmt.Println("No pending encounter.")
				return nil
			}

			e := session.CurrentEvent
			fmt.Printf("%s\n\n", e.Description)
			fmt.Printf("  %s (%s)\n", e.Enemy.Name, e.Type)
			fmt.Printf("  Power:   %.0f\n", e.Enemy.Power)
			fmt.Printf("  Shields: %.0f\n", e.Enemy.Shields)
			fmt.Printf("  Speed:   %.0f\n", e.Enemy.Speed)
			return nil
		},
	}
}

func newEncounterResolveCommand() *cobra.Command {
	var action string
	var distance float64

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the pending encounter",
		Long: `Choose how to handle the pending encounter. Fighting pits combat
stats against the enemy, fleeing rolls against escape chance, and
complying pays off the other side.

Examples:
  galactic-trader encounter resolve --game <id> --action fight
  galactic-trader encounter resolve --game <id> --action comply`,
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

			response, err := env.mediator.Send(ctx, &encounterCommands.ResolveEncounterCommand{
				Session:  session,
				Action:   encounter.Action(action),
				Distance: distance,
			})
			if err != nil {
				return err
			}

			result := response.(*encounterCommands.ResolveEncounterResponse)
			if result.Rejected {
				fmt.Printf("Resolution rejected: %s\n", result.Reason)
				return nil
			}

			if err := env.saveSession(ctx, session); err != nil {
				return err
			}

			fmt.Println(result.Outcome.Message)
			if result.Outcome.Damage > 0 {
				fmt.Printf("  Damage taken: %d (health %d)\n", result.Outcome.Damage, session.Player.Health)
			}
			if result.Outcome.FuelCost > 0 {
				fmt.Printf("  Fuel lost:    %d (fuel %.1f)\n", result.Outcome.FuelCost, session.Player.Fuel)
			}
			if result.Outcome.CreditsCost != 0 {
				fmt.Printf("  Credits:      %+d (now %d)\n", -result.Outcome.CreditsCost, session.Player.Credits)
			}
			if result.Outcome.CargoLost != nil {
				fmt.Printf("  Cargo lost:   %d%% of %s\n", result.Outcome.CargoLost.Percent, result.Outcome.CargoLost.Type)
			}
			if result.Destroyed {
				fmt.Println("  Your ship was destroyed.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "Resolution action: fight, flee or comply")
	cmd.Flags().Float64Var(&distance, "distance", 0, "Trip distance the encounter interrupted")
	_ = cmd.MarkFlagRequired("action")

	return cmd
}
