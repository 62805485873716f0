package main

import (
	"fmt"

	"github.com/forest6511/aesvault/pkg/vault"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var r vault.Record

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry to the vault",
		Long: `Add a service/user/password entry. Fields may not contain tabs or
newlines. Adding a service that already exists keeps both entries; show
returns the first one.`,
		Example: `  aesvault add --service github --user alice --pass 's3cr3t'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bad input fails before the master password is asked for.
			if err := r.Validate(); err != nil {
				return err
			}

			password, err := a.unlock()
			if err != nil {
				return err
			}
			defer password.Destroy()

			if err := a.vault.Add(secretBytes(password), r); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added entry for service: %s\n", r.Service)
			return nil
		},
	}

	cmd.Flags().StringVar(&r.Service, "service", "", "Service name")
	cmd.Flags().StringVar(&r.Username, "user", "", "User name")
	cmd.Flags().StringVar(&r.Password, "pass", "", "Password to store")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}
