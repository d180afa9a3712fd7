// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package unphrase

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ValidationResult describes how a phrase maps onto a word list.
// Unknown words substitute index 0 so that concealment still succeeds;
// they are reported in InvalidWords in the order encountered.
type ValidationResult struct {
	// Indices holds one word index per input word
	Indices []int

	// ValidWords holds the words found in the list, as typed
	ValidWords []string

	// InvalidWords holds the words missing from the list, as typed
	InvalidWords []string
}

// WordCount returns the number of words in the validated phrase
func (r *ValidationResult) WordCount() int {
	return len(r.Indices)
}

// Validate splits a phrase into words and resolves each against the
// codec's word list. Phrases must hold between 1 and MaxWords words.
func (c *Codec) Validate(phrase string) (*ValidationResult, error) {
	list, err := c.wordlist()
	if err != nil {
		return nil, err
	}

	words := splitPhrase(phrase)
	if len(words) == 0 {
		return nil, StatusErrEmptyPhrase
	}
	if len(words) > MaxWords {
		return nil, StatusErrPhraseTooLong
	}

	res := &ValidationResult{Indices: make([]int, 0, len(words))}
	for _, word := range words {
		idx, found := list.IndexOf(word)
		if !found {
			res.Indices = append(res.Indices, 0)
			res.InvalidWords = append(res.InvalidWords, word)
			continue
		}
		res.Indices = append(res.Indices, idx)
		res.ValidWords = append(res.ValidWords, word)
	}
	return res, nil
}

// splitPhrase splits a phrase on any run of whitespace
func splitPhrase(phrase string) []string {
	return strings.Fields(nfkdLazy(phrase))
}

// nfkdLazy only normalizes strings that contain non-ASCII characters
func nfkdLazy(str string) string {
	for _, r := range str {
		if r > 127 {
			return norm.NFKD.String(str)
		}
	}
	return str
}
