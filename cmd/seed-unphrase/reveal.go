// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	unphrase "github.com/gpuente/seed-unphrase-sub000"
	"github.com/gpuente/seed-unphrase-sub000/internal/audit"
	"github.com/gpuente/seed-unphrase-sub000/internal/ui"
)

var (
	revealKey      string
	revealKeyFile  string
	revealSalt     string
	revealWordlist string
	revealJSON     bool
)

func init() {
	revealCmd.Flags().StringVarP(&revealKey, "key", "k", "", "cipher key as a decimal number")
	revealCmd.Flags().StringVar(&revealKeyFile, "key-file", "", "file holding the cipher key on its first line")
	revealCmd.Flags().StringVarP(&revealSalt, "salt", "s", "", "salt used when the phrase was concealed")
	revealCmd.Flags().StringVarP(&revealWordlist, "wordlist", "w", "", "path to a custom word list")
	revealCmd.Flags().BoolVar(&revealJSON, "json", false, "print the result as JSON")
}

// resetRevealState resets the reveal command's flag values for testing.
func resetRevealState() {
	revealKey = ""
	revealKeyFile = ""
	revealSalt = ""
	revealWordlist = ""
	revealJSON = false
}

type revealOutput struct {
	Phrase string `json:"phrase"`
	Words  int    `json:"words"`
}

var revealCmd = &cobra.Command{
	Use:   "reveal [value]",
	Short: "Recover the phrase behind a quotient:remainder pair",
	Long: `Reveal recovers a phrase from a concealed quotient:remainder value and
the cipher key it was concealed under. Pass the value as a single
argument, or as "-" (or nothing) to read it from stdin.

The key is never checked against the value. A wrong key or salt that
still lands on valid word indices reveals a different, equally
plausible phrase; treat an unexpected result as a hint to re-check
both.

Examples:
  seed-unphrase reveal 7265171:78049 --key 137643
  seed-unphrase reveal --key-file key.txt --salt garden < value.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting reveal command")

		value, err := readArgOrStdin(cmd, args)
		if err != nil {
			return err
		}

		key, err := resolveKey(revealKey, revealKeyFile)
		if err != nil {
			return err
		}

		spin, cleanup := startSpinner("Revealing phrase...", revealJSON)
		defer cleanup()

		codec, source, err := buildCodec(revealWordlist)
		if err != nil {
			return err
		}

		res, err := codec.Reveal(unphrase.RevealInput{
			Value:     value,
			CipherKey: key,
			Salt:      revealSalt,
		})
		entry := audit.Entry{
			Operation: "reveal",
			Salted:    revealSalt != "",
			Wordlist:  source,
			Outcome:   outcomeLabel(err),
		}
		if res != nil {
			entry.WordCount = len(res.Words)
		}
		recordAudit(entry)
		if err != nil {
			return err
		}
		Logger.Infof("Revealed %d words", len(res.Words))

		if revealJSON {
			cleanup()
			return printJSON(cmd, revealOutput{
				Phrase: res.Phrase(),
				Words:  len(res.Words),
			})
		}

		spin.FinalMSG = ui.Success.Sprint("✓") + " Value revealed " + ui.Muted.Sprintf("%d words", len(res.Words))
		cleanup()

		fmt.Fprintln(cmd.OutOrStdout(), res.Phrase())
		return nil
	},
}
