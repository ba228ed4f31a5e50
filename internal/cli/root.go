package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagEnv   string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "gemasgo",
	Short: "GemasGo rewards points ledger",
	Long: `GemasGo keeps the authoritative points and lives balances for every account.
Ad views, game sessions, store purchases and video promotions are settled
one at a time per account and recorded in an append-only history.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagEnv != "" {
			return os.Setenv("GG_ENV", flagEnv)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagEnv, "env", "e", "", "Environment to load configs/<env>.yaml for (overrides GG_ENV)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Disable logging")
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
