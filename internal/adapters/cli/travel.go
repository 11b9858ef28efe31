package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	travelCommands "github.com/galactictrader/galactic-trader-go/internal/application/travel/commands"
)

// NewTravelCommand creates the travel command
func NewTravelCommand() *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:   "travel",
		Short: "Travel to another body",
		Long: `Fly to a destination body, burning fuel by distance. Trips can
trigger a random encounter that must be resolved before the next
operation.

Examples:
  galactic-trader travel --game <id> --to body-3`,
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

			response, err := env.mediator.Send(ctx, &travelCommands.InitiateTripCommand{
				Session:       session,
				DestinationID: destination,
			})
			if err != nil {
				return err
			}

			result := response.(*travelCommands.InitiateTripResponse)
			if result.Rejected {
				fmt.Printf("Trip rejected: %s\n", result.Reason)
				return nil
			}

			if err := env.saveSession(ctx, session); err != nil {
				return err
			}

			body, _ := session.CurrentBody()
			fmt.Printf("Arrived at %s (distance %.1f, fuel used %.1f, fuel left %.1f)\n",
				body.Name, result.Plan.Distance, result.Plan.FuelCost, session.Player.Fuel)
			if result.Event != nil {
				fmt.Printf("\nEncounter! %s\n", result.Event.Description)
				fmt.Println("Resolve it with: galactic-trader encounter resolve --action fight|flee|comply")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "to", "", "Destination body id")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
