// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if l.Len() != Size {
		t.Fatalf("Default list holds %d words, want %d", l.Len(), Size)
	}

	head := []string{"abandon", "ability", "able", "about", "above"}
	for i, want := range head {
		got, ok := l.WordAt(i)
		if !ok || got != want {
			t.Errorf("WordAt(%d) = %q, want %q", i, got, want)
		}
	}

	last, ok := l.WordAt(Size - 1)
	if !ok || last != "zoo" {
		t.Errorf("WordAt(%d) = %q, want %q", Size-1, last, "zoo")
	}
}

func TestDefaultIndexOf(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	cases := []struct {
		word  string
		index int
		found bool
	}{
		{"abandon", 0, true},
		{"ABANDON", 0, true},
		{"  zoo  ", Size - 1, true},
		{"ability", 1, true},
		{"notaword", 0, false},
		{"", 0, false},
		{"abando", 0, false},
	}

	for _, tc := range cases {
		idx, found := l.IndexOf(tc.word)
		if found != tc.found || idx != tc.index {
			t.Errorf("IndexOf(%q) = (%d, %v), want (%d, %v)", tc.word, idx, found, tc.index, tc.found)
		}
	}
}

func TestDefaultRoundtripAllIndices(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	for i := 0; i < l.Len(); i++ {
		word, ok := l.WordAt(i)
		if !ok {
			t.Fatalf("WordAt(%d) missing", i)
		}
		idx, found := l.IndexOf(word)
		if !found || idx != i {
			t.Fatalf("IndexOf(WordAt(%d)) = (%d, %v)", i, idx, found)
		}
	}
}

func TestDefaultCached(t *testing.T) {
	first, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	second, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if first != second {
		t.Error("Default did not reuse the cached list")
	}

	Invalidate()

	third, err := Default()
	if err != nil {
		t.Fatalf("Default after Invalidate failed: %v", err)
	}
	if third.Len() != Size {
		t.Errorf("reparsed list holds %d words, want %d", third.Len(), Size)
	}
}

func TestFromReader(t *testing.T) {
	src := "zebra\nyak\n\nwolf\n"
	l, err := FromReader(strings.NewReader(src), "test")
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}

	// Unsorted source keeps its order and still resolves lookups
	for i, want := range []string{"zebra", "yak", "wolf"} {
		got, ok := l.WordAt(i)
		if !ok || got != want {
			t.Errorf("WordAt(%d) = %q, want %q", i, got, want)
		}
		idx, found := l.IndexOf(want)
		if !found || idx != i {
			t.Errorf("IndexOf(%q) = (%d, %v), want (%d, true)", want, idx, found, i)
		}
	}
}

func TestFromReaderNormalizesCase(t *testing.T) {
	l, err := FromReader(strings.NewReader("Alpha\nBRAVO\ncharlie\n"), "test")
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	idx, found := l.IndexOf("bravo")
	if !found || idx != 1 {
		t.Errorf("IndexOf(bravo) = (%d, %v), want (1, true)", idx, found)
	}
	word, _ := l.WordAt(0)
	if word != "alpha" {
		t.Errorf("WordAt(0) = %q, want %q", word, "alpha")
	}
}

func TestFromReaderAccents(t *testing.T) {
	l, err := FromReader(strings.NewReader("café\nthé\n"), "test")
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	idx, found := l.IndexOf("CAFÉ")
	if !found || idx != 0 {
		t.Errorf("IndexOf(CAFÉ) = (%d, %v), want (0, true)", idx, found)
	}
}

func TestFromReaderErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrNoWords},
		{"only blanks", "\n\n  \n", ErrNoWords},
		{"duplicate", "apple\nbanana\napple\n", ErrDuplicateWord},
		{"duplicate by case", "Apple\napple\n", ErrDuplicateWord},
		{"two words on a line", "apple banana\n", ErrMalformedLine},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromReader(strings.NewReader(tc.src), "test"); !errors.Is(err, tc.want) {
				t.Errorf("FromReader error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("uno\ndos\ntres\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if l.Len() != 3 {
		t.Errorf("Len = %d, want 3", l.Len())
	}
	if l.Source() != path {
		t.Errorf("Source = %q, want %q", l.Source(), path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestWordsCopy(t *testing.T) {
	l, err := FromReader(strings.NewReader("one\ntwo\n"), "test")
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	words := l.Words()
	words[0] = "mutated"

	if got, _ := l.WordAt(0); got != "one" {
		t.Errorf("Words exposed internal state: WordAt(0) = %q", got)
	}
}
