package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createAdminCmd)
	createAdminCmd.Flags().StringP("password", "p", "", "Password for the new admin (required)")
	_ = createAdminCmd.MarkFlagRequired("password")
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin USERNAME",
	Short: "Create an admin account",
	Long:  `Create an admin account. An existing account with the same username is left unchanged.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCreateAdmin,
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	username := args[0]
	password, _ := cmd.Flags().GetString("password")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	account, created, err := a.accounts.EnsureAdmin(cmd.Context(), username, password)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	if !created {
		fmt.Fprintf(cmd.OutOrStdout(), "Account %q already exists, nothing to do\n", username)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created admin %q with id %s\n", account.Username, account.ID)
	return nil
}
