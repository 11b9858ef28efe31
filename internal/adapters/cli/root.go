package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	gameID     string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "galactic-trader",
		Short: "Galactic Trader - space trading from the command line",
		Long: `Galactic Trader runs the trading game economy from the command line.
Game state is stored in a local database; every command loads a saved
session, applies one operation, and saves it back.

Examples:
  galactic-trader new
  galactic-trader status --game <id>
  galactic-trader market --game <id>
  galactic-trader trade buy --game <id> --resource metals --quantity 5
  galactic-trader travel --game <id> --to body-3
  galactic-trader encounter resolve --game <id> --action comply
  galactic-trader missions generate --game <id>
  galactic-trader upgrade --game <id> --component weapons
  galactic-trader simulate --game <id> --steps 50`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search standard locations)")
	rootCmd.PersistentFlags().StringVar(&gameID, "game", "",
		"Saved game id (defaults to the most recent save)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewNewGameCommand())
	rootCmd.AddCommand(NewGamesCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewMarketCommand())
	rootCmd.AddCommand(NewTradeCommand())
	rootCmd.AddCommand(NewTravelCommand())
	rootCmd.AddCommand(NewEncounterCommand())
	rootCmd.AddCommand(NewMissionsCommand())
	rootCmd.AddCommand(NewUpgradeCommand())
	rootCmd.AddCommand(NewSimulateCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
