// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

// seed-unphrase hides mnemonic recovery phrases behind a cipher key.
// A phrase becomes a quotient:remainder pair that reveals nothing
// without the key; the reverse operation restores the exact phrase.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gpuente/seed-unphrase-sub000/internal/configs"
	logger "github.com/gpuente/seed-unphrase-sub000/internal/logging"
	"github.com/gpuente/seed-unphrase-sub000/internal/ui"
)

var (
	flagVerbose bool
	flagDebug   bool
	flagConfig  string
	flagNoColor bool

	// Logger is shared by all commands and rebuilt in PersistentPreRunE
	// once the flags are known.
	Logger = logger.Nop()

	// settings holds the merged configuration for the current run
	settings = &configs.Settings{}
)

var rootCmd = &cobra.Command{
	Use:   "seed-unphrase",
	Short: "Conceal a recovery phrase as two numbers",
	Long: `seed-unphrase turns a mnemonic recovery phrase into a quotient and a
remainder under a cipher key you choose. Whoever finds the pair learns
nothing without the key; with the key the phrase comes back exactly.

An optional salt shifts every word before packing, so the same phrase
and key produce unrelated values under different salts. A wrong key or
salt does not announce itself: it simply reveals a different, equally
plausible phrase.

Examples:
  # Conceal a phrase with a numeric key
  seed-unphrase conceal "abandon ability able" --key 137643

  # Reveal it again
  seed-unphrase reveal 7265171:78049 --key 137643

  # Pipe the phrase through stdin and add a salt
  cat phrase.txt | seed-unphrase conceal --key-file key.txt --salt garden

Keys and salts never reach the config file or the audit log.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagConfig == "" {
			flagConfig = os.Getenv("SEED_UNPHRASE_CONFIG")
		}

		overrides := &configs.Settings{Verbose: flagVerbose, NoColor: flagNoColor}
		merged, err := configs.Load(flagConfig, overrides)
		if err != nil {
			return err
		}
		settings = merged

		if settings.NoColor {
			color.NoColor = true
		}

		Logger = logger.New(settings.Verbose, flagDebug)
		Logger.Debugf("Settings loaded: wordlist=%q audit=%t", settings.WordlistPath, settings.Audit)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "enable debug output")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to the config file")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(concealCmd)
	rootCmd.AddCommand(revealCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(wordlistCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗ ")+err.Error())
		os.Exit(1)
	}
}
