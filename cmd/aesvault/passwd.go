package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPasswdCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the master password",
		Long: `Re-encrypt every entry under a new master password.

The current password must open the vault. The new password is asked for
twice. The file is replaced atomically: either the change fully succeeds
or the vault is left as it was.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.unlock()
			if err != nil {
				return err
			}
			defer current.Destroy()

			next, err := a.readNewSecret("New master password: ", "Confirm new master password: ")
			if err != nil {
				return err
			}
			defer next.Destroy()

			if err := a.vault.ChangePassword(secretBytes(current), next.Bytes()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Master password changed: %s\n", a.vault.Path())
			reportStrength(cmd.ErrOrStderr(), next.Bytes())
			return nil
		},
	}
}
