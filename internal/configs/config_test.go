// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestLoadMissingFile verifies that a missing config file falls back to
// the defaults layer instead of failing.
func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.toml")

	settings, err := Load(path, nil)
	require.NoError(t, err)
	assert.Empty(t, settings.WordlistPath)
	assert.False(t, settings.Audit)
	assert.NotEmpty(t, settings.AuditPath)
}

// TestLoadFileLayer verifies that values from the config file survive
// into the merged settings.
func TestLoadFileLayer(t *testing.T) {
	path := writeTempSettings(t, "wordlist_path = \"custom.txt\"\naudit = true\n")

	settings, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "custom.txt", settings.WordlistPath)
	assert.True(t, settings.Audit)
}

// TestLoadPrecedence verifies the overrides > env > file > defaults
// ordering field by field.
func TestLoadPrecedence(t *testing.T) {
	path := writeTempSettings(t, "wordlist_path = \"from-file.txt\"\nverbose = true\n")
	t.Setenv("SEED_UNPHRASE_WORDLIST", "from-env.txt")

	// Env beats the file.
	settings, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env.txt", settings.WordlistPath)
	assert.True(t, settings.Verbose, "untouched file fields must survive")

	// Overrides beat the env.
	settings, err = Load(path, &Settings{WordlistPath: "from-flag.txt"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag.txt", settings.WordlistPath)
}

// TestLoadEnvBool verifies that boolean env values parse.
func TestLoadEnvBool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	t.Setenv("SEED_UNPHRASE_AUDIT", "true")

	settings, err := Load(path, nil)
	require.NoError(t, err)
	assert.True(t, settings.Audit)
}

// TestLoadBadFile verifies that a malformed config file is reported.
func TestLoadBadFile(t *testing.T) {
	path := writeTempSettings(t, "wordlist_path = [broken\n")

	_, err := Load(path, nil)
	assert.Error(t, err)
}

// TestSaveAndReload verifies the settings survive a save and load
// roundtrip through the TOML file.
func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	saved := &Settings{
		WordlistPath: "words.txt",
		Audit:        true,
		AuditPath:    "/tmp/audit.jsonl",
		NoColor:      true,
		InstallID:    NewInstallID(),
	}
	require.NoError(t, Save(path, saved))

	loaded, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, saved.WordlistPath, loaded.WordlistPath)
	assert.Equal(t, saved.Audit, loaded.Audit)
	assert.Equal(t, saved.AuditPath, loaded.AuditPath)
	assert.Equal(t, saved.NoColor, loaded.NoColor)
	assert.Equal(t, saved.InstallID, loaded.InstallID)
}

// TestNewInstallID verifies that generated ids are unique and non-empty.
func TestNewInstallID(t *testing.T) {
	first := NewInstallID()
	second := NewInstallID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

// TestSaveAndLoadTOML verifies the generic TOML helpers with an ad hoc
// struct.
func TestSaveAndLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.toml")

	type payload struct {
		Name  string
		Count int
	}

	original := payload{Name: "english", Count: 2048}
	require.NoError(t, SaveTOML(path, original))

	loaded := payload{}
	require.NoError(t, LoadTOML(path, &loaded))
	assert.Equal(t, original, loaded)
}

// TestDefaultAuditPath verifies the defaults layer places the audit log
// next to the config file.
func TestDefaultAuditPath(t *testing.T) {
	s := defaults()
	if s.AuditPath != "" {
		assert.Contains(t, s.AuditPath, appDirName)
		assert.Equal(t, "audit.jsonl", filepath.Base(s.AuditPath))
	}
}
