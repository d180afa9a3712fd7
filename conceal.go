// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package unphrase

import (
	"math/big"
	"strings"

	"github.com/gpuente/seed-unphrase-sub000/internal/numeric"
	"github.com/gpuente/seed-unphrase-sub000/internal/permute"
)

// ConcealInput carries the arguments for Conceal.
type ConcealInput struct {
	// Phrase is the mnemonic phrase to hide
	Phrase string

	// CipherKey is the decimal number the packed phrase is divided by
	CipherKey string

	// Salt optionally shifts word indices before packing. An empty or
	// all-whitespace salt leaves indices untouched.
	Salt string
}

// ConcealResult is the outcome of hiding a phrase.
type ConcealResult struct {
	Quotient  *big.Int
	Remainder *big.Int

	// WordCount is the number of words that were concealed
	WordCount int

	// InvalidWords lists input words that were missing from the word
	// list and concealed as index 0 instead
	InvalidWords []string
}

// Value renders the result in the canonical quotient:remainder form
func (r *ConcealResult) Value() string {
	return FormatValue(r.Quotient, r.Remainder)
}

// Conceal hides a phrase behind a cipher key. Words missing from the
// word list do not fail the operation; they conceal as index 0 and are
// reported in the result.
func (c *Codec) Conceal(in ConcealInput) (*ConcealResult, error) {
	key, err := parseCipherKey(in.CipherKey)
	if err != nil {
		return nil, err
	}

	v, err := c.Validate(in.Phrase)
	if err != nil {
		return nil, err
	}

	// An index past the permutation domain would wrap at Modulus and
	// conceal as a different word. Only lists longer than the domain
	// can produce one.
	for _, idx := range v.Indices {
		if idx >= permute.Modulus {
			return nil, StatusErrWordIndex
		}
	}

	indices := permute.Apply(v.Indices, in.Salt)

	packed, err := numeric.Pack(indices)
	if err != nil {
		return nil, mapNumericErr(err)
	}

	quotient, remainder, err := numeric.Divide(packed, key)
	if err != nil {
		return nil, mapNumericErr(err)
	}

	return &ConcealResult{
		Quotient:     quotient,
		Remainder:    remainder,
		WordCount:    v.WordCount(),
		InvalidWords: v.InvalidWords,
	}, nil
}

// parseCipherKey validates the cipher key and returns its numeric
// value. The key must be a positive decimal number; zero fails here
// rather than surfacing as a division error.
func parseCipherKey(key string) (*big.Int, error) {
	k, ok := parseDecimal(strings.TrimSpace(key))
	if !ok || k.Sign() == 0 {
		return nil, StatusErrCipherKey
	}
	return k, nil
}
