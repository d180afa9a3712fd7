// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gpuente/seed-unphrase-sub000/internal/audit"
	"github.com/gpuente/seed-unphrase-sub000/internal/ui"
)

var (
	validateWordlist string
	validateJSON     bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateWordlist, "wordlist", "w", "", "path to a custom word list")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "print the result as JSON")
}

// resetValidateState resets the validate command's flag values for testing.
func resetValidateState() {
	validateWordlist = ""
	validateJSON = false
}

type validateOutput struct {
	Words        int      `json:"words"`
	ValidWords   []string `json:"valid_words"`
	InvalidWords []string `json:"invalid_words"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [phrase]",
	Short: "Check which words of a phrase are in the word list",
	Long: `Validate splits a phrase and reports the words missing from the word
list. The command succeeds even when words are missing, since conceal
would substitute them rather than fail; use it to catch typos before
concealing.

Examples:
  seed-unphrase validate "abandon ability able"
  seed-unphrase validate - < phrase.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting validate command")

		phrase, err := readArgOrStdin(cmd, args)
		if err != nil {
			return err
		}

		spin, cleanup := startSpinner("Validating phrase...", validateJSON)
		defer cleanup()

		codec, source, err := buildCodec(validateWordlist)
		if err != nil {
			return err
		}

		res, err := codec.Validate(phrase)
		entry := audit.Entry{
			Operation: "validate",
			Wordlist:  source,
			Outcome:   outcomeLabel(err),
		}
		if res != nil {
			entry.WordCount = res.WordCount()
			entry.InvalidCount = len(res.InvalidWords)
		}
		recordAudit(entry)
		if err != nil {
			return err
		}

		if validateJSON {
			cleanup()
			out := validateOutput{
				Words:        res.WordCount(),
				ValidWords:   res.ValidWords,
				InvalidWords: res.InvalidWords,
			}
			if out.ValidWords == nil {
				out.ValidWords = []string{}
			}
			if out.InvalidWords == nil {
				out.InvalidWords = []string{}
			}
			return printJSON(cmd, out)
		}

		if len(res.InvalidWords) == 0 {
			spin.FinalMSG = ui.Success.Sprintf("✓ All %d words found in the word list", res.WordCount())
		} else {
			spin.FinalMSG = ui.Warning.Sprintf("⚠ %d of %d words missing from the list: %s",
				len(res.InvalidWords), res.WordCount(), strings.Join(res.InvalidWords, ", ")) +
				"\n" + ui.Info.Sprint("→") + " Missing words conceal as the list's first word"
		}
		cleanup()
		return nil
	},
}
