package main

import (
	"fmt"

	"github.com/forest6511/aesvault/pkg/vault"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new, empty vault",
		Long: `Create a new vault holding no entries. The master password is asked
for twice. An existing vault file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Refuse before prompting; Init checks again at commit time.
			if a.vault.Exists() {
				return vault.ErrVaultAlreadyExists
			}

			password, err := a.readNewSecret("Set master password: ", "Confirm master password: ")
			if err != nil {
				return err
			}
			defer password.Destroy()

			if err := a.vault.Init(password.Bytes()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized vault: %s\n", a.vault.Path())
			reportStrength(cmd.ErrOrStderr(), password.Bytes())
			return nil
		},
	}
}
