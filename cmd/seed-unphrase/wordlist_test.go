// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWordlistInfoCommand(t *testing.T) {
	out, err := runCommand(t, "", "wordlist", "info")
	if err != nil {
		t.Fatalf("Failed to run wordlist info: %v", err)
	}
	if !strings.Contains(out, "embedded:english") {
		t.Errorf("Expected the embedded source label, got %q", out)
	}
	if !strings.Contains(out, "2048") {
		t.Errorf("Expected the word count, got %q", out)
	}
}

func TestWordlistWordCommand(t *testing.T) {
	out, err := runCommand(t, "", "wordlist", "word", "2047")
	if err != nil {
		t.Fatalf("Failed to run wordlist word: %v", err)
	}
	if strings.TrimSpace(out) != "zoo" {
		t.Errorf("Expected zoo, got %q", out)
	}
}

func TestWordlistWordCommandOutOfRange(t *testing.T) {
	_, err := runCommand(t, "", "wordlist", "word", "2048")
	if err == nil {
		t.Fatal("Expected an error for an out of range index")
	}
	if !strings.Contains(err.Error(), "outside") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestWordlistWordCommandNotANumber(t *testing.T) {
	_, err := runCommand(t, "", "wordlist", "word", "zoo")
	if err == nil {
		t.Fatal("Expected an error for a non numeric index")
	}
}

func TestWordlistIndexCommand(t *testing.T) {
	out, err := runCommand(t, "", "wordlist", "index", "zoo")
	if err != nil {
		t.Fatalf("Failed to run wordlist index: %v", err)
	}
	if strings.TrimSpace(out) != "2047" {
		t.Errorf("Expected 2047, got %q", out)
	}
}

func TestWordlistIndexCommandUnknownWord(t *testing.T) {
	_, err := runCommand(t, "", "wordlist", "index", "zzz")
	if err == nil {
		t.Fatal("Expected an error for a word not in the list")
	}
}

func TestWordlistCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("alpha\nbravo\ncharlie\n"), 0600); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}

	out, err := runCommand(t, "", "wordlist", "info", "--wordlist", path)
	if err != nil {
		t.Fatalf("Failed to run wordlist info: %v", err)
	}
	if !strings.Contains(out, "3") || !strings.Contains(out, path) {
		t.Errorf("Expected the custom list size and path, got %q", out)
	}

	out, err = runCommand(t, "", "wordlist", "word", "1", "--wordlist", path)
	if err != nil {
		t.Fatalf("Failed to run wordlist word: %v", err)
	}
	if strings.TrimSpace(out) != "bravo" {
		t.Errorf("Expected bravo, got %q", out)
	}
}

func TestWordlistFromSettings(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(listPath, []byte("alpha\nbravo\n"), 0600); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}
	configPath := filepath.Join(dir, "config.toml")
	content := "wordlist_path = \"" + listPath + "\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, err := runCommand(t, "", "wordlist", "info", "--config", configPath)
	if err != nil {
		t.Fatalf("Failed to run wordlist info: %v", err)
	}
	if !strings.Contains(out, "2") {
		t.Errorf("Expected the configured list size, got %q", out)
	}
}
