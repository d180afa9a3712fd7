// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelGating(t *testing.T) {
	cases := []struct {
		name      string
		verbose   bool
		debug     bool
		wantInfo  bool
		wantDebug bool
	}{
		{"Quiet", false, false, false, false},
		{"Verbose", true, false, true, false},
		{"Debug", false, true, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(&buf, tc.verbose, tc.debug)

			log.Infof("info line")
			log.Debugf("debug line")
			log.Warnf("warn line")

			out := buf.String()
			if got := strings.Contains(out, "info line"); got != tc.wantInfo {
				t.Errorf("Info visibility: expected %t, got %t", tc.wantInfo, got)
			}
			if got := strings.Contains(out, "debug line"); got != tc.wantDebug {
				t.Errorf("Debug visibility: expected %t, got %t", tc.wantDebug, got)
			}
			if !strings.Contains(out, "warn line") {
				t.Error("Warnings should always be visible")
			}
		})
	}
}

func TestDebugAnnotatesCaller(t *testing.T) {
	var quiet, debug bytes.Buffer

	NewWithOutput(&quiet, false, false).Warnf("plain line")
	NewWithOutput(&debug, false, true).Warnf("annotated line")

	if strings.Contains(quiet.String(), ".go:") {
		t.Errorf("Caller annotation should be off by default, got %q", quiet.String())
	}
	if !strings.Contains(debug.String(), ".go:") {
		t.Errorf("Debug mode should annotate the call site, got %q", debug.String())
	}
}

func TestErrorfAndReturn(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, false, false)

	err := log.ErrorfAndReturn("failed after %d tries", 3)
	if err == nil {
		t.Fatal("Expected an error")
	}
	if err.Error() != "failed after 3 tries" {
		t.Errorf("Unexpected error message: %q", err.Error())
	}
	if !strings.Contains(buf.String(), "failed after 3 tries") {
		t.Error("The error should also be logged")
	}
}

func TestNopDiscardsEverything(t *testing.T) {
	log := Nop()

	// Must not panic or write anywhere.
	log.Infof("info")
	log.Debugf("debug")
	log.Warnf("warn")
	log.Errorf("error")

	if err := log.ErrorfAndReturn("still an error"); err == nil {
		t.Error("ErrorfAndReturn should return the error even when discarded")
	}
}
