// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

// Package audit appends operation records to a JSON Lines log. Records
// carry counts and outcomes only; phrases, cipher keys, salts and
// concealed values never reach the log.
package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry represents a single audit log record.
type Entry struct {
	ID        string `json:"id"` // Unique record id.
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"` // conceal, reveal or validate.

	// Optional fields depending on operation.
	Install      string `json:"install,omitempty"`       // Installation id from the config.
	WordCount    int    `json:"words,omitempty"`         // Words processed.
	InvalidCount int    `json:"invalid_words,omitempty"` // Words substituted by index 0.
	Salted       bool   `json:"salted,omitempty"`        // Whether a salt was supplied.
	Wordlist     string `json:"wordlist,omitempty"`      // Word list source label.
	Outcome      string `json:"outcome,omitempty"`       // ok or the failure message.
}

// Log appends an entry to the audit log at path. Logging failures are
// swallowed; an operation must not fail because its audit record could
// not be written.
func Log(path string, entry Entry) {
	if path == "" {
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}

	// #nosec G306 -- the log holds no secrets.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the audit log at path. A missing
// log yields an empty slice.
func ReadEntries(path string) ([]Entry, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries. Malformed
// lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
