// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

// Package ui applies semantic formatting to CLI output. Every formatter
// degrades to a plain-text decoration when colors are disabled, either
// through the NO_COLOR convention or because stdout is not a terminal.
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders text for one semantic role.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the
// resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	text := fmt.Sprintf(format, a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor reports whether color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	// fatih/color detects dumb terminals and piped output.
	return color.NoColor
}

// Semantic formatters for the seed-unphrase commands.
var (
	// Success marks completed operations.
	// Green with color, unchanged without.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error marks failures.
	// Red with color, unchanged without.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning marks words or inputs that need attention.
	// Yellow with color, unchanged without.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info marks hints and directional indicators.
	// Cyan with color, unchanged without.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Code formats runnable commands.
	// Yellow with color, `backticks` without.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Value formats concealed values and recovered phrases.
	// Cyan with color, 'single quotes' without.
	Value = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary detail such as word counts.
	// Gray with color, (parentheses) without.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
