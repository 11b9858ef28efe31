package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	missionCommands "github.com/galactictrader/galactic-trader-go/internal/application/missions/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/mission"
)

// NewMissionsCommand creates the missions command with subcommands
func NewMissionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "Generate, accept and track missions",
		Long: `Mission board operations at the docked body.

Examples:
  galactic-trader missions generate --game <id>
  galactic-trader missions accept --game <id> --id <mission-id>
  galactic-trader missions list --game <id>
  galactic-trader missions update --game <id>`,
	}

	cmd.AddCommand(newMissionsGenerateCommand())
	cmd.AddCommand(newMissionsAcceptCommand())
	cmd.AddCommand(newMissionsListCommand())
	cmd.AddCommand(newMissionsUpdateCommand())

	return cmd
}

func newMissionsGenerateCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate mission offers at the current body",
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

			request := &missionCommands.GenerateMissionsCommand{Session: session}
			if cmd.Flags().Changed("count") {
				request.Count = count
			} else {
				request.Count = env.cfg.Game.MissionCount
			}

			response, err := env.mediator.Send(ctx, request)
			if err != nil {
				return err
			}

			result := response.(*missionCommands.GenerateMissionsResponse)
			printMissions(result.Missions)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Number of missions to generate")

	return cmd
}

func newMissionsAcceptCommand() *cobra.Command {
	var missionJSON string

	cmd := &cobra.Command{
		Use:   "accept",
		Short: "Accept a generated mission",
		Long: `Accept a mission offer. Offers are not persisted, so the full offer
JSON printed by 'missions generate --json' is passed back here.

Examples:
  galactic-trader missions accept --game <id> --offer '<mission json>'`,
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

			offer, err := parseMissionOffer(missionJSON)
			if err != nil {
				return err
			}

			response, err := env.mediator.Send(ctx, &missionCommands.AcceptMissionCommand{
				Session: session,
				Mission: offer,
			})
			if err != nil {
				return err
			}

			result := response.(*missionCommands.AcceptMissionResponse)
			if result.Rejected {
				fmt.Printf("Mission rejected: %s\n", result.Reason)
				return nil
			}

			if err := env.saveSession(ctx, session); err != nil {
				return err
			}

			fmt.Printf("Accepted '%s' (%d credits on completion)\n", offer.Title, offer.Reward.Credits)
			return nil
		},
	}

	cmd.Flags().StringVar(&missionJSON, "offer", "", "Mission offer JSON from 'missions generate'")
	_ = cmd.MarkFlagRequired("offer")

	return cmd
}

func newMissionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked missions",
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

			log := session.MissionLog
			if len(log.Active) == 0 && len(log.Completed) == 0 && len(log.Failed) == 0 {
				fmt.Println("No tracked missions.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tTYPE\tSTATUS\tPROGRESS\tREWARD\tEXPIRES")
			for _, list := range [][]mission.Mission{log.Active, log.Completed, log.Failed} {
				for _, m := range list {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\t%d\t%s\n",
						m.ID, m.Title, m.Type, m.Status, m.CompletionProgress,
						m.Reward.Credits, m.ExpiryTime.Format(time.RFC3339))
				}
			}
			return w.Flush()
		},
	}
}

func newMissionsUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Recompute mission progress and expire overdue missions",
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

			expireResp, err := env.mediator.Send(ctx, &missionCommands.ExpireMissionsCommand{Session: session})
			if err != nil {
				return err
			}
			progressResp, err := env.mediator.Send(ctx, &missionCommands.UpdateMissionProgressCommand{Session: session})
			if err != nil {
				return err
			}

			if err := env.saveSession(ctx, session); err != nil {
				return err
			}

			for _, m := range expireResp.(*missionCommands.ExpireMissionsResponse).Expired {
				fmt.Printf("Expired: %s\n", m.Title)
			}
			for _, m := range progressResp.(*missionCommands.UpdateMissionProgressResponse).Completed {
				fmt.Printf("Completed: %s (+%d credits, +%d reputation)\n",
					m.Title, m.Reward.Credits, m.Reward.Reputation)
			}
			fmt.Printf("Active missions: %d\n", len(session.MissionLog.Active))
			return nil
		},
	}
}

func printMissions(missions []mission.Mission) {
	for _, m := range missions {
		fmt.Printf("%s  [%s, risk %d]\n", m.Title, m.Type, m.RiskLevel)
		fmt.Printf("  %s\n", m.Description)
		fmt.Printf("  Reward: %d credits, %d reputation", m.Reward.Credits, m.Reward.Reputation)
		if m.RequiredReputation > 0 {
			fmt.Printf(" (requires reputation %d)", m.RequiredReputation)
		}
		fmt.Println()
		fmt.Printf("  Offer:  %s\n\n", mustMissionJSON(m))
	}
}
