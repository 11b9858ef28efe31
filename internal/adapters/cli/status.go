package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/galactictrader/galactic-trader-go/internal/domain/ship"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show player, ship and mission status",
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

			body, _ := session.CurrentBody()
			fmt.Printf("Game %s\n", session.ID)
			fmt.Printf("  Location:   %s (%s)\n", body.Name, body.ID)
			fmt.Printf("  Credits:    %d\n", session.Player.Credits)
			fmt.Printf("  Health:     %d\n", session.Player.Health)
			fmt.Printf("  Fuel:       %.1f/%.1f\n", session.Player.Fuel.Current, session.Player.Fuel.Capacity)
			fmt.Printf("  Cargo:      %d/%d units (value %d)\n",
				session.Player.CargoUsed(), session.Player.CargoCapacity, session.CargoValue())
			fmt.Printf("  Reputation: %d\n", session.Player.Reputation)
			if session.Player.Destroyed() {
				fmt.Println("  DESTROYED")
			}
			if session.HasPendingEvent() {
				fmt.Printf("  Pending encounter: %s - %s\n",
					session.CurrentEvent.Type, session.CurrentEvent.Description)
			}

			fmt.Println("\nComponents:")
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "  TYPE\tLEVEL\tUPGRADE COST")
			for _, t := range []ship.ComponentType{ship.Engine, ship.Cargo, ship.Weapons, ship.Shields, ship.FuelTank} {
				hdr, err := session.Components.Header(t)
				if err != nil {
					continue
				}
				cost := fmt.Sprintf("%d", hdr.UpgradeCost)
				if hdr.AtMaxLevel() {
					cost = "max"
				}
				fmt.Fprintf(w, "  %s\t%d\t%s\n", hdr.Type, hdr.Level, cost)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if len(session.Player.Inventory) > 0 {
				fmt.Println("\nCargo hold:")
				for t, qty := range session.Player.Inventory {
					fmt.Printf("  %-12s %d\n", t, qty)
				}
			}

			log := session.MissionLog
			fmt.Printf("\nMissions: %d active, %d completed, %d failed\n",
				len(log.Active), len(log.Completed), len(log.Failed))
			return nil
		},
	}
}
