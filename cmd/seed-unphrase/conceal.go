// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	unphrase "github.com/gpuente/seed-unphrase-sub000"
	"github.com/gpuente/seed-unphrase-sub000/internal/audit"
	"github.com/gpuente/seed-unphrase-sub000/internal/ui"
)

var (
	concealKey      string
	concealKeyFile  string
	concealSalt     string
	concealWordlist string
	concealJSON     bool
)

func init() {
	concealCmd.Flags().StringVarP(&concealKey, "key", "k", "", "cipher key as a decimal number")
	concealCmd.Flags().StringVar(&concealKeyFile, "key-file", "", "file holding the cipher key on its first line")
	concealCmd.Flags().StringVarP(&concealSalt, "salt", "s", "", "salt shifting word indices before packing")
	concealCmd.Flags().StringVarP(&concealWordlist, "wordlist", "w", "", "path to a custom word list")
	concealCmd.Flags().BoolVar(&concealJSON, "json", false, "print the result as JSON")
}

// resetConcealState resets the conceal command's flag values for testing.
func resetConcealState() {
	concealKey = ""
	concealKeyFile = ""
	concealSalt = ""
	concealWordlist = ""
	concealJSON = false
}

type concealOutput struct {
	Value        string   `json:"value"`
	Quotient     string   `json:"quotient"`
	Remainder    string   `json:"remainder"`
	Words        int      `json:"words"`
	InvalidWords []string `json:"invalid_words,omitempty"`
}

var concealCmd = &cobra.Command{
	Use:   "conceal [phrase]",
	Short: "Conceal a phrase as a quotient:remainder pair",
	Long: `Conceal turns a phrase into a quotient:remainder pair under the given
cipher key. Pass the phrase as a single argument, or as "-" (or nothing)
to read it from stdin.

Words missing from the word list do not fail the command; they conceal
as the list's first word and are reported so you can fix typos.

Examples:
  seed-unphrase conceal "abandon ability able" --key 137643
  seed-unphrase conceal --key-file key.txt --salt garden < phrase.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting conceal command")

		phrase, err := readArgOrStdin(cmd, args)
		if err != nil {
			return err
		}

		key, err := resolveKey(concealKey, concealKeyFile)
		if err != nil {
			return err
		}

		spin, cleanup := startSpinner("Concealing phrase...", concealJSON)
		defer cleanup()

		codec, source, err := buildCodec(concealWordlist)
		if err != nil {
			return err
		}

		res, err := codec.Conceal(unphrase.ConcealInput{
			Phrase:    phrase,
			CipherKey: key,
			Salt:      concealSalt,
		})
		entry := audit.Entry{
			Operation: "conceal",
			Salted:    concealSalt != "",
			Wordlist:  source,
			Outcome:   outcomeLabel(err),
		}
		if res != nil {
			entry.WordCount = res.WordCount
			entry.InvalidCount = len(res.InvalidWords)
		}
		recordAudit(entry)
		if err != nil {
			return err
		}
		Logger.Infof("Concealed %d words", res.WordCount)

		if concealJSON {
			cleanup()
			return printJSON(cmd, concealOutput{
				Value:        res.Value(),
				Quotient:     res.Quotient.String(),
				Remainder:    res.Remainder.String(),
				Words:        res.WordCount,
				InvalidWords: res.InvalidWords,
			})
		}

		msg := ui.Success.Sprint("✓") + " Phrase concealed " + ui.Muted.Sprintf("%d words", res.WordCount)
		if n := len(res.InvalidWords); n > 0 {
			msg += "\n" + ui.Warning.Sprintf("⚠ %d of %d words missing from the list: %s",
				n, res.WordCount, strings.Join(res.InvalidWords, ", "))
			msg += "\n" + ui.Info.Sprint("→") + " Missing words conceal as the list's first word"
		}
		spin.FinalMSG = msg
		cleanup()

		fmt.Fprintln(cmd.OutOrStdout(), res.Value())
		return nil
	},
}
