package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// NewGamesCommand creates the saved-games listing command
func NewGamesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List saved games",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment()
			if err != nil {
				return err
			}
			defer env.close()

			sessions, err := env.repo.List(env.commandContext())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No saved games.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCREDITS\tHEALTH\tBODIES\tLAST SAVED")
			for _, s := range sessions {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
					s.ID,
					s.Player.Credits,
					s.Player.Health,
					len(s.Galaxy),
					s.LastSaved.Format(time.RFC3339),
				)
			}
			return w.Flush()
		},
	}
}
