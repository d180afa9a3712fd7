// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

// Package configs loads and persists the seed-unphrase settings file.
// Settings merge from four layers in order of precedence: command-line
// overrides, environment variables, the TOML config file, and built-in
// defaults. Cipher keys and salts are never part of the settings.
package configs

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// appDirName is the directory under the user config root
const appDirName = "seed-unphrase"

// Settings holds everything the CLI reads from configuration.
type Settings struct {
	// WordlistPath points at a custom word list file, one word per
	// line. Empty selects the embedded English list.
	WordlistPath string `toml:"wordlist_path" env:"SEED_UNPHRASE_WORDLIST"`

	// Audit enables the append-only operation log.
	Audit bool `toml:"audit" env:"SEED_UNPHRASE_AUDIT"`

	// AuditPath overrides where the operation log is written.
	AuditPath string `toml:"audit_path" env:"SEED_UNPHRASE_AUDIT_PATH"`

	// Verbose turns on info logging without passing --verbose.
	Verbose bool `toml:"verbose" env:"SEED_UNPHRASE_VERBOSE"`

	// NoColor disables colored output regardless of terminal support.
	NoColor bool `toml:"no_color" env:"SEED_UNPHRASE_NO_COLOR"`

	// InstallID identifies this installation in audit records. Written
	// by config init; carries no user data.
	InstallID string `toml:"install_id" env:"SEED_UNPHRASE_INSTALL_ID"`
}

// NewInstallID generates a fresh installation id
func NewInstallID() string {
	return uuid.New().String()
}

// Dir returns the directory holding the config file and the default
// audit log.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appDirName), nil
}

// Path returns the default config file location
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// defaults returns the built-in settings layer
func defaults() *Settings {
	s := &Settings{}
	if dir, err := Dir(); err == nil {
		s.AuditPath = filepath.Join(dir, "audit.jsonl")
	}
	return s
}
