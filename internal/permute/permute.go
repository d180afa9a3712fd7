// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

// Package permute derives deterministic per-position index offsets from a
// salt. The same salt always produces the same offsets, so a shifted
// phrase can be recovered by reversing the shift.
//
// Offsets come from a truncated BLAKE2b digest. Values concealed under a
// different offset derivation do not interoperate with this one.
package permute

import (
	"encoding/binary"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Modulus is the size of the index space the offsets close over
const Modulus = 2048

// Active reports whether the salt changes the mapping. An empty or
// all-whitespace salt leaves indices untouched.
func Active(salt string) bool {
	return strings.TrimSpace(salt) != ""
}

// offset derives the shift for position i. The salt itself is hashed as
// given, without trimming.
func offset(salt string, i int) int {
	sum := blake2b.Sum256([]byte(salt + ":" + strconv.Itoa(i)))
	return int(binary.LittleEndian.Uint64(sum[:8]) % Modulus)
}

// Offsets returns one offset per position for the given count. An
// inactive salt yields all zeros.
func Offsets(salt string, count int) []int {
	offsets := make([]int, count)
	if !Active(salt) {
		return offsets
	}
	for i := range offsets {
		offsets[i] = offset(salt, i)
	}
	return offsets
}

// Apply shifts each index forward by its position offset, wrapping at
// Modulus. The input slice is left unmodified.
func Apply(indices []int, salt string) []int {
	offsets := Offsets(salt, len(indices))
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = (idx + offsets[i]) % Modulus
	}
	return out
}

// Reverse undoes Apply for the same salt.
func Reverse(indices []int, salt string) []int {
	offsets := Offsets(salt, len(indices))
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = ((idx-offsets[i])%Modulus + Modulus) % Modulus
	}
	return out
}
