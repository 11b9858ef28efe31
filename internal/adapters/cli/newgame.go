package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

// NewNewGameCommand creates the new-game command
func NewNewGameCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		Long: `Generate a fresh galaxy with randomized markets and a level-1 ship,
then save it.

Examples:
  galactic-trader new
  galactic-trader new --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment()
			if err != nil {
				return err
			}
			defer env.close()

			var rng shared.Rand
			if cmd.Flags().Changed("seed") {
				rng = shared.NewSeededRand(seed)
			}

			session := game.NewSession(rng, nil, settingsFromConfig(&env.cfg.Game))

			ctx := env.commandContext()
			if err := env.saveSession(ctx, session); err != nil {
				return err
			}

			body, _ := session.CurrentBody()
			fmt.Printf("New game %s\n", session.ID)
			fmt.Printf("  Bodies:   %d\n", len(session.Galaxy))
			fmt.Printf("  Docked:   %s (%s)\n", body.Name, body.ID)
			fmt.Printf("  Credits:  %d\n", session.Player.Credits)
			fmt.Printf("  Fuel:     %.0f/%.0f\n", session.Player.Fuel.Current, session.Player.Fuel.Capacity)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Deterministic world seed")

	return cmd
}
