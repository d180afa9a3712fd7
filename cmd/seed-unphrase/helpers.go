// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	unphrase "github.com/gpuente/seed-unphrase-sub000"
	"github.com/gpuente/seed-unphrase-sub000/internal/audit"
	"github.com/gpuente/seed-unphrase-sub000/internal/ui"
	"github.com/gpuente/seed-unphrase-sub000/wordlist"
)

// startSpinner creates and starts a spinner with the given message unless
// quiet mode asks for none. Returns the spinner and a cleanup function to
// defer; calling cleanup twice is safe.
//
// spinner.FinalMSG values do not need trailing newlines; cleanup calls
// ui.EnsureNewline before printing.
func startSpinner(message string, quiet bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	active := !quiet && !flagVerbose && !flagDebug
	if active {
		s.Start()
		// Discard stray stdlib log output while the spinner owns the line.
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		if active {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if active {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// readArgOrStdin returns the first positional argument, or reads stdin
// when the argument is absent or "-".
func readArgOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// resolveKey picks the cipher key from the --key flag or the first line
// of the --key-file file.
func resolveKey(key, keyFile string) (string, error) {
	if key != "" {
		return key, nil
	}
	if keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("reading key file: %w", err)
		}
		line, _, _ := strings.Cut(string(data), "\n")
		return strings.TrimSpace(line), nil
	}
	return "", errors.New("a cipher key is required: pass --key or --key-file")
}

// buildCodec returns a codec for the word list selected by the flag
// override, the settings, or the embedded default, in that order. The
// second return is a source label for logs and audit records.
func buildCodec(override string) (*unphrase.Codec, string, error) {
	path := override
	if path == "" {
		path = settings.WordlistPath
	}
	if path == "" {
		return unphrase.New(nil), "embedded:english", nil
	}

	list, err := wordlist.Load(path)
	if err != nil {
		return nil, "", err
	}
	Logger.Debugf("Loaded word list from %s: %d words", path, list.Len())
	return unphrase.New(list), list.Source(), nil
}

// recordAudit appends an entry to the audit log when auditing is on
func recordAudit(entry audit.Entry) {
	if !settings.Audit {
		return
	}
	entry.Install = settings.InstallID
	audit.Log(settings.AuditPath, entry)
}

// outcomeLabel renders an operation result for the audit log
func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return err.Error()
}

// printJSON writes v to the command output as indented JSON
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
