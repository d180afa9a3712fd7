// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package unphrase

import (
	"strings"

	"github.com/gpuente/seed-unphrase-sub000/internal/numeric"
	"github.com/gpuente/seed-unphrase-sub000/internal/permute"
)

// RevealInput carries the arguments for Reveal.
type RevealInput struct {
	// Value is a concealed value in quotient:remainder form
	Value string

	// CipherKey must match the key used to conceal
	CipherKey string

	// Salt must match the salt used to conceal
	Salt string
}

// RevealResult is the outcome of recovering a phrase.
type RevealResult struct {
	Words []string
}

// Phrase joins the recovered words with single spaces
func (r *RevealResult) Phrase() string {
	return strings.Join(r.Words, " ")
}

// Reveal recovers a phrase from a concealed value. A wrong key or salt
// that still yields in-range word indices produces a plausible phrase
// rather than an error; only structurally invalid values fail.
func (c *Codec) Reveal(in RevealInput) (*RevealResult, error) {
	quotient, remainder, err := ParseValue(in.Value)
	if err != nil {
		return nil, err
	}

	key, err := parseCipherKey(in.CipherKey)
	if err != nil {
		return nil, err
	}

	list, err := c.wordlist()
	if err != nil {
		return nil, err
	}

	packed := numeric.Reconstruct(quotient, key, remainder)

	chunks, err := numeric.Unpack(packed)
	if err != nil {
		return nil, mapNumericErr(err)
	}
	if len(chunks) > MaxWords {
		return nil, StatusErrPhraseTooLong
	}

	// Chunks are bounded before the salt shift so that an out of range
	// value fails the same way with or without a salt.
	for _, chunk := range chunks {
		if chunk >= permute.Modulus {
			return nil, StatusErrWordIndex
		}
	}

	indices := permute.Reverse(chunks, in.Salt)

	words := make([]string, len(indices))
	for i, idx := range indices {
		word, ok := list.WordAt(idx)
		if !ok {
			return nil, StatusErrWordIndex
		}
		words[i] = word
	}

	return &RevealResult{Words: words}, nil
}
