// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

// Package logger provides leveled console logging for the seed-unphrase
// CLI. Verbosity follows two flags: --verbose enables info messages and
// --debug enables everything. Without flags only warnings and errors
// are emitted. Phrases, cipher keys and salts must never be logged.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger so the full zerolog API stays available
// alongside the printf-style helpers the commands use.
type Logger struct {
	zerolog.Logger
}

// New builds a console logger writing to stderr at the level implied by
// the verbosity flags.
func New(verbose, debug bool) *Logger {
	return NewWithOutput(os.Stderr, verbose, debug)
}

// NewWithOutput builds a console logger writing to the given writer.
// Debug mode annotates every line with its call site.
func NewWithOutput(out io.Writer, verbose, debug bool) *Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	ctx := zerolog.New(console).Level(level).With().Timestamp()
	if debug {
		ctx = ctx.Caller()
	}
	return &Logger{ctx.Logger()}
}

// Nop returns a logger that discards all output
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Infof logs at info level, shown with --verbose or --debug
func (l *Logger) Infof(msg string, args ...any) {
	l.Info().Msgf(msg, args...)
}

// Debugf logs at debug level, shown only with --debug
func (l *Logger) Debugf(msg string, args ...any) {
	l.Debug().Msgf(msg, args...)
}

// Warnf logs at warn level, always shown
func (l *Logger) Warnf(msg string, args ...any) {
	l.Warn().Msgf(msg, args...)
}

// Errorf logs at error level, always shown
func (l *Logger) Errorf(msg string, args ...any) {
	l.Error().Msgf(msg, args...)
}

// ErrorfAndReturn logs an error and returns it, so command handlers can
// log and propagate in one step.
func (l *Logger) ErrorfAndReturn(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	l.Error().Msg(err.Error())
	return err
}
