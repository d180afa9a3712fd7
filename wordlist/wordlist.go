// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

// Package wordlist loads and caches the vocabularies that phrases are
// checked against. The canonical English list ships embedded in the
// binary; alternate lists can be loaded from disk or any reader.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Size is the number of words in the canonical vocabulary
const Size = 2048

var (
	// ErrNoWords indicates a source without a single usable word
	ErrNoWords = errors.New("word list has no words")

	// ErrDuplicateWord indicates a word that appears twice in a source
	ErrDuplicateWord = errors.New("duplicate word in list")

	// ErrMalformedLine indicates a line holding more than one word
	ErrMalformedLine = errors.New("malformed word list line")
)

//go:embed english.txt
var englishRaw string

// List is an immutable word list. The order of the source assigns each
// word its index.
type List struct {
	words  []string
	sorted bool
	source string
}

var (
	defaultMu   sync.Mutex
	defaultList *List
)

// Default returns the embedded English list. The parsed list is cached
// until Invalidate is called.
func Default() (*List, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultList != nil {
		return defaultList, nil
	}

	l, err := FromReader(strings.NewReader(englishRaw), "embedded:english")
	if err != nil {
		return nil, err
	}
	if l.Len() != Size {
		return nil, fmt.Errorf("embedded list holds %d words, want %d", l.Len(), Size)
	}

	defaultList = l
	return l, nil
}

// Invalidate drops the cached default list. The next call to Default
// parses the embedded asset again. This is a test and administrative
// operation; do not call it concurrently with in-flight conceals or
// reveals.
func Invalidate() {
	defaultMu.Lock()
	defaultList = nil
	defaultMu.Unlock()
}

// Load reads a word list from a file
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	return FromReader(f, path)
}

// FromReader parses one word per line, skipping blank lines. The source
// string names the origin in error messages.
func FromReader(r io.Reader, source string) (*List, error) {
	scanner := bufio.NewScanner(r)
	words := make([]string, 0, Size)
	seen := make(map[string]struct{}, Size)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		if strings.ContainsAny(raw, " \t") {
			return nil, fmt.Errorf("%w: %s line %d", ErrMalformedLine, source, line)
		}
		word := normalize(raw)
		if _, dup := seen[word]; dup {
			return nil, fmt.Errorf("%w: %q at %s line %d", ErrDuplicateWord, word, source, line)
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoWords, source)
	}

	return &List{
		words:  words,
		sorted: sort.StringsAreSorted(words),
		source: source,
	}, nil
}

// normalize canonicalizes a word for storage and lookup
func normalize(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	for _, r := range word {
		if r > 127 {
			return norm.NFKD.String(word)
		}
	}
	return word
}

// Len returns the number of words in the list
func (l *List) Len() int {
	return len(l.words)
}

// Source identifies where the list was loaded from
func (l *List) Source() string {
	return l.source
}

// WordAt returns the word at index i
func (l *List) WordAt(i int) (string, bool) {
	if i < 0 || i >= len(l.words) {
		return "", false
	}
	return l.words[i], true
}

// IndexOf finds the index of a word. Matching ignores case and
// surrounding whitespace. Sorted lists use binary search, everything
// else falls back to a linear scan.
func (l *List) IndexOf(word string) (int, bool) {
	key := normalize(word)
	if key == "" {
		return 0, false
	}

	if l.sorted {
		idx := sort.SearchStrings(l.words, key)
		if idx < len(l.words) && l.words[idx] == key {
			return idx, true
		}
		return 0, false
	}

	for i, w := range l.words {
		if w == key {
			return i, true
		}
	}
	return 0, false
}

// Words returns a copy of the list in index order
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}
