// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gpuente/seed-unphrase-sub000/internal/configs"
	"github.com/gpuente/seed-unphrase-sub000/internal/ui"
)

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// resetConfigState resets the config command's flag values for testing.
func resetConfigState() {
	configForce = false
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the seed-unphrase configuration",
	Long: `Provides commands for the settings file. Settings cover the word list
path, audit logging and output preferences; cipher keys and salts are
never stored.

Examples:
  seed-unphrase config init
  seed-unphrase config show`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			p, err := configs.Path()
			if err != nil {
				return err
			}
			path = p
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists, pass --force to overwrite", ui.Value.Sprint(path))
		}

		if err := configs.Save(path, &configs.Settings{InstallID: configs.NewInstallID()}); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Sprint("✓")+" Config written to "+ui.Value.Sprint(path))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Long: `Prints the merged settings as TOML, after applying command-line
overrides, environment variables, the config file and the defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			p, err := configs.Path()
			if err != nil {
				return err
			}
			path = p
		}

		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(settings)
	},
}
