package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/galactictrader/galactic-trader-go/internal/adapters/metrics"
	encounterCommands "github.com/galactictrader/galactic-trader-go/internal/application/encounters/commands"
	missionCommands "github.com/galactictrader/galactic-trader-go/internal/application/missions/commands"
	tradingCommands "github.com/galactictrader/galactic-trader-go/internal/application/trading/commands"
	travelCommands "github.com/galactictrader/galactic-trader-go/internal/application/travel/commands"
	"github.com/galactictrader/galactic-trader-go/internal/domain/encounter"
	"github.com/galactictrader/galactic-trader-go/internal/domain/game"
	"github.com/galactictrader/galactic-trader-go/internal/domain/market"
	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

// NewSimulateCommand creates the autopilot command
func NewSimulateCommand() *cobra.Command {
	var steps int
	var stepsPerSecond float64
	var seed int64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run an automated trading loop",
		Long: `Run the game on autopilot: travel between bodies, trade at each
stop, resolve encounters, and sweep missions. Useful for soak-testing
the economy and for feeding the metrics endpoint.

Examples:
  galactic-trader simulate --game <id> --steps 50
  galactic-trader simulate --game <id> --steps 200 --rate 10 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment()
			if err != nil {
				return err
			}
			defer env.close()

			if env.cfg.Metrics.Enabled && metrics.Registry != nil {
				addr := fmt.Sprintf("%s:%d", env.cfg.Metrics.Host, env.cfg.Metrics.Port)
				mux := http.NewServeMux()
				mux.Handle(env.cfg.Metrics.Path, promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
				go func() {
					_ = http.ListenAndServe(addr, mux)
				}()
				fmt.Printf("Metrics on http://%s%s\n", addr, env.cfg.Metrics.Path)
			}

			ctx := env.commandContext()
			session, err := env.loadSession(ctx)
			if err != nil {
				return err
			}

			var rng shared.Rand
			if cmd.Flags().Changed("seed") {
				rng = shared.NewSeededRand(seed)
			} else {
				rng = shared.NewRealRand()
			}

			limiter := rate.NewLimiter(rate.Limit(stepsPerSecond), 1)
			sim := &simulator{env: env, session: session, rng: rng}

			for i := 0; i < steps; i++ {
				if err := limiter.Wait(ctx); err != nil {
					return err
				}
				if session.Player.Destroyed() {
					fmt.Println("Ship destroyed, stopping.")
					break
				}
				if err := sim.step(ctx); err != nil {
					return err
				}
			}

			if err := env.saveSession(ctx, session); err != nil {
				return err
			}

			fmt.Printf("Done: credits %d, health %d, fuel %.1f, reputation %d\n",
				session.Player.Credits, session.Player.Health,
				session.Player.Fuel.Current, session.Player.Reputation)
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 20, "Simulation steps to run")
	cmd.Flags().Float64Var(&stepsPerSecond, "rate", 5, "Steps per second")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Deterministic decision seed")

	return cmd
}

// simulator drives one session through randomized trade/travel cycles
type simulator struct {
	env     *environment
	session *game.Session
	rng     shared.Rand
}

func (s *simulator) step(ctx context.Context) error {
	if s.session.HasPendingEvent() {
		return s.resolveEncounter(ctx)
	}

	switch s.rng.Intn(4) {
	case 0:
		return s.trade(ctx, true)
	case 1:
		return s.trade(ctx, false)
	case 2:
		return s.sweepMissions(ctx)
	default:
		return s.travel(ctx)
	}
}

func (s *simulator) trade(ctx context.Context, buying bool) error {
	legal := market.LegalResourceTypes()
	resource := legal[s.rng.Intn(len(legal))]
	_, err := s.env.mediator.Send(ctx, &tradingCommands.ExecuteTradeCommand{
		Session:  s.session,
		Resource: resource,
		Quantity: s.rng.Intn(5) + 1,
		Buying:   buying,
	})
	return err
}

func (s *simulator) travel(ctx context.Context) error {
	if len(s.session.Galaxy) < 2 {
		return nil
	}
	destination := s.session.Galaxy[s.rng.Intn(len(s.session.Galaxy))]
	if destination.ID == s.session.CurrentBodyID {
		return nil
	}
	_, err := s.env.mediator.Send(ctx, &travelCommands.InitiateTripCommand{
		Session:       s.session,
		DestinationID: destination.ID,
	})
	return err
}

func (s *simulator) resolveEncounter(ctx context.Context) error {
	// Comply with police, fight or flee everything else
	action := encounter.Comply
	if s.session.CurrentEvent.Type != encounter.Police {
		if s.rng.Float64() < 0.5 {
			action = encounter.Fight
		} else {
			action = encounter.Flee
		}
	}
	_, err := s.env.mediator.Send(ctx, &encounterCommands.ResolveEncounterCommand{
		Session: s.session,
		Action:  action,
	})
	return err
}

func (s *simulator) sweepMissions(ctx context.Context) error {
	if _, err := s.env.mediator.Send(ctx, &missionCommands.ExpireMissionsCommand{Session: s.session}); err != nil {
		return err
	}
	_, err := s.env.mediator.Send(ctx, &missionCommands.UpdateMissionProgressCommand{Session: s.session})
	return err
}
