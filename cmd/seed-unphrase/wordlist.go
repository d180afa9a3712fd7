// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gpuente/seed-unphrase-sub000/internal/ui"
	"github.com/gpuente/seed-unphrase-sub000/wordlist"
)

var wordlistPath string

func init() {
	wordlistCmd.PersistentFlags().StringVarP(&wordlistPath, "wordlist", "w", "", "path to a custom word list")

	wordlistCmd.AddCommand(wordlistInfoCmd)
	wordlistCmd.AddCommand(wordlistWordCmd)
	wordlistCmd.AddCommand(wordlistIndexCmd)
}

// resetWordlistState resets the wordlist command's flag values for testing.
func resetWordlistState() {
	wordlistPath = ""
}

// resolveList loads the word list selected by the flag, the settings,
// or the embedded default.
func resolveList() (*wordlist.List, error) {
	path := wordlistPath
	if path == "" {
		path = settings.WordlistPath
	}
	if path == "" {
		return wordlist.Default()
	}
	return wordlist.Load(path)
}

var wordlistCmd = &cobra.Command{
	Use:   "wordlist",
	Short: "Inspect the word list",
	Long: `Provides lookups against the active word list: the embedded English
list, the list named in the config file, or the one passed with
--wordlist.

Examples:
  seed-unphrase wordlist info
  seed-unphrase wordlist word 2047
  seed-unphrase wordlist index zoo`,
}

var wordlistInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the word list source and size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := resolveList()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\n", list.Source())
		fmt.Fprintf(cmd.OutOrStdout(), "Words:  %d\n", list.Len())
		return nil
	},
}

var wordlistWordCmd = &cobra.Command{
	Use:   "word <index>",
	Short: "Look up the word at an index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%s is not an index", ui.Value.Sprint(args[0]))
		}

		list, err := resolveList()
		if err != nil {
			return err
		}

		word, ok := list.WordAt(idx)
		if !ok {
			return fmt.Errorf("index %d is outside the list (%d words)", idx, list.Len())
		}

		fmt.Fprintln(cmd.OutOrStdout(), word)
		return nil
	},
}

var wordlistIndexCmd = &cobra.Command{
	Use:   "index <word>",
	Short: "Look up the index of a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := resolveList()
		if err != nil {
			return err
		}

		idx, found := list.IndexOf(args[0])
		if !found {
			return fmt.Errorf("%s is not in the word list", ui.Value.Sprint(args[0]))
		}

		fmt.Fprintln(cmd.OutOrStdout(), idx)
		return nil
	},
}
