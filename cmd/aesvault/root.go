package main

import (
	"log/slog"

	"github.com/awnumar/memguard"
	"github.com/forest6511/aesvault/internal/config"
	"github.com/forest6511/aesvault/internal/logging"
	"github.com/forest6511/aesvault/pkg/vault"

	"github.com/spf13/cobra"
)

// app carries the state shared by every verb of one invocation.
type app struct {
	cfg     config.Config
	vault   *vault.Vault
	logger  *slog.Logger
	secrets secretReader // nil means the controlling terminal
}

func newRootCmd(a *app) *cobra.Command {
	var (
		configPath string
		vaultPath  string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "aesvault",
		Short: "aesvault keeps passwords in a single encrypted file",
		Long: `A single-file password vault encrypted with AES-256-GCM under a key
derived from a master password (PBKDF2-HMAC-SHA256).

The master password is always read from a hidden prompt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// PersistentPreRunE resolves the configuration and builds the Vault
		// before any subcommand runs.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("vault") {
				cfg.VaultPath = vaultPath
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logging.New(cmd.ErrOrStderr(), cfg.Verbose)
			a.vault = vault.New(cfg.VaultPath,
				vault.WithIterations(cfg.Iterations),
				vault.WithLogger(a.logger),
			)
			if a.secrets == nil {
				a.secrets = terminalReader(cmd.ErrOrStderr())
			}
			a.logger.Debug("configuration resolved",
				"vault", cfg.VaultPath, "iterations", cfg.Iterations)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $AESVAULT_CONFIG or <user config dir>/aesvault/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", config.DefaultVaultPath, "Vault file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs to stderr")

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newPasswdCmd(a))

	return rootCmd
}

// unlock requires an existing vault and prompts once for its master
// password. The caller must Destroy the result.
func (a *app) unlock() (*memguard.LockedBuffer, error) {
	if !a.vault.Exists() {
		return nil, vault.ErrVaultNotFound
	}
	return a.readSecret("Master password: ")
}
