// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

// Package unphrase conceals mnemonic recovery phrases as a pair of
// integers. A phrase maps to word indices, the indices pack into one
// large number, and dividing that number by a user-chosen cipher key
// yields a quotient and remainder. Without the key the pair reveals
// nothing useful; with it the phrase comes back exactly. An optional
// salt shifts each word index by a position-dependent offset before
// packing, so the same phrase and key produce unrelated values under
// different salts.
package unphrase

import (
	"github.com/gpuente/seed-unphrase-sub000/wordlist"
)

// MaxWords is the largest number of words a phrase may hold
const MaxWords = 24

// Codec conceals and reveals phrases against a fixed word list.
type Codec struct {
	list *wordlist.List
}

// New returns a codec bound to the given word list. A nil list binds
// the codec to the embedded English list, resolved on each use so that
// wordlist.Invalidate takes effect.
func New(list *wordlist.List) *Codec {
	return &Codec{list: list}
}

// wordlist resolves the codec's word list
func (c *Codec) wordlist() (*wordlist.List, error) {
	if c.list != nil {
		return c.list, nil
	}
	l, err := wordlist.Default()
	if err != nil {
		return nil, StatusErrWordlist
	}
	return l, nil
}

// Conceal hides a phrase using the embedded English list
func Conceal(in ConcealInput) (*ConcealResult, error) {
	return New(nil).Conceal(in)
}

// Reveal recovers a phrase using the embedded English list
func Reveal(in RevealInput) (*RevealResult, error) {
	return New(nil).Reveal(in)
}

// Validate checks a phrase against the embedded English list
func Validate(phrase string) (*ValidationResult, error) {
	return New(nil).Validate(phrase)
}
