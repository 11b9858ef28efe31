package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewMarketCommand creates the market listing command
func NewMarketCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "market",
		Short: "Show the market at the current body",
		Long: `Show resource prices at the docked body. Unit price follows demand
against supply, so buying drives the price up and selling drives it down.

Examples:
  galactic-trader market --game <id>`,
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

			m, ok := session.MarketAt(session.CurrentBodyID)
			if !ok {
				return fmt.Errorf("no market at %s", session.CurrentBodyID)
			}

			body, _ := session.CurrentBody()
			fmt.Printf("Market at %s\n\n", body.Name)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RESOURCE\tBASE\tSUPPLY\tDEMAND\tUNIT PRICE\tILLEGAL")
			for _, r := range m.Resources() {
				illegal := ""
				if r.IsIllegal {
					illegal = "yes"
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
					r.Type, r.BasePrice, r.Supply, r.Demand, m.UnitPrice(r.Type), illegal)
			}
			return w.Flush()
		},
	}
}
