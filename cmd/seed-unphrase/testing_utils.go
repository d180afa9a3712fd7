// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

// Testing utilities shared by the command tests: global state resets and
// stdout/stderr capture for output that bypasses cobra's writers.
package main

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gpuente/seed-unphrase-sub000/internal/configs"
	logger "github.com/gpuente/seed-unphrase-sub000/internal/logging"
)

// resetCommandState resets all command flags and globals to their
// defaults so tests do not pollute each other.
func resetCommandState() {
	flagVerbose = false
	flagDebug = false
	flagConfig = ""
	flagNoColor = false

	resetConcealState()
	resetRevealState()
	resetValidateState()
	resetWordlistState()
	resetConfigState()

	resetCobraFlagState(rootCmd)

	Logger = logger.Nop()
	settings = &configs.Settings{}
}

// resetCobraFlagState clears parsed flag values and Changed bits on a
// command and all its descendants.
func resetCobraFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stdoutReader)
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stderrReader)
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}
