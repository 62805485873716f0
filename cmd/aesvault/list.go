package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List service names, one per line, in stored order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.unlock()
			if err != nil {
				return err
			}
			defer password.Destroy()

			services, err := a.vault.List(secretBytes(password))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range services {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}
}
