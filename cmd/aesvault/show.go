package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the first entry for a service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.unlock()
			if err != nil {
				return err
			}
			defer password.Destroy()

			r, err := a.vault.Show(secretBytes(password), service)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "service: %s\nuser: %s\npass: %s\n",
				r.Service, r.Username, r.Password)
			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "Service name")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}
