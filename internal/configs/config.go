// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package configs

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// settingsBuilder accumulates settings layers in precedence order. The
// first layer appended wins for any field it sets.
type settingsBuilder struct {
	layers []*Settings
	err    error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{layers: make([]*Settings, 0, 4)}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(settings, layer); err != nil {
			return nil, fmt.Errorf("merging settings layers: %w", err)
		}
	}
	return settings, nil
}

func (b *settingsBuilder) withOverrides(overrides *Settings) *settingsBuilder {
	if overrides != nil {
		b.layers = append(b.layers, overrides)
	}
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envSettings := &Settings{}
	if err := env.Parse(envSettings); err != nil {
		b.err = fmt.Errorf("parsing environment: %w", err)
		return b
	}
	b.layers = append(b.layers, envSettings)
	return b
}

func (b *settingsBuilder) withFile(path string) *settingsBuilder {
	if b.err != nil {
		return b
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return b
	}

	fileSettings := &Settings{}
	if err := LoadTOML(path, fileSettings); err != nil {
		b.err = fmt.Errorf("loading %s: %w", path, err)
		return b
	}
	b.layers = append(b.layers, fileSettings)
	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.layers = append(b.layers, defaults())
	return b
}

// Load assembles the settings from overrides, environment variables,
// the config file at path and the built-in defaults, in that order of
// precedence. An empty path selects the default location; a missing
// file is not an error.
func Load(path string, overrides *Settings) (*Settings, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}
		path = p
	}

	return newSettingsBuilder().
		withOverrides(overrides).
		withEnv().
		withFile(path).
		withDefaults().
		build()
}

// Save writes the settings to the config file at path. An empty path
// selects the default location.
func Save(path string, settings *Settings) error {
	if path == "" {
		p, err := Path()
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
		path = p
	}

	if err := SaveTOML(path, settings); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
