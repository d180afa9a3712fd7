// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

// Package numeric implements the decimal chunk encoding that turns a
// sequence of word indices into a single integer, and the exact division
// that splits such an integer by a cipher key.
package numeric

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

const (
	// ChunkWidth is the number of decimal digits that encode one word index
	ChunkWidth = 4

	// MaxIndex is the largest word index a single chunk can hold
	MaxIndex = 9999
)

var (
	// ErrIndexRange indicates a word index outside the chunk range
	ErrIndexRange = errors.New("word index outside the chunk range")

	// ErrMalformedNumber indicates a packed number without the expected shape
	ErrMalformedNumber = errors.New("malformed packed number")

	// ErrDivisionByZero indicates a zero divisor
	ErrDivisionByZero = errors.New("division by zero")
)

// chunkBase is the numeric base of one chunk (10^ChunkWidth)
var chunkBase = big.NewInt(10000)

// Pack encodes word indices into a single integer. The decimal form of the
// result is a guard digit 1 followed by one ChunkWidth-digit group per
// index, so the indices [0, 1, 2] pack to 1000000010002. The guard digit
// keeps leading zero-valued indices from collapsing.
func Pack(indices []int) (*big.Int, error) {
	n := big.NewInt(1)
	for _, idx := range indices {
		if idx < 0 || idx > MaxIndex {
			return nil, fmt.Errorf("%w: %d", ErrIndexRange, idx)
		}
		n.Mul(n, chunkBase)
		n.Add(n, big.NewInt(int64(idx)))
	}
	return n, nil
}

// Unpack reverses Pack. The decimal form must carry the guard digit and
// split into whole ChunkWidth-digit groups; anything else fails with
// ErrMalformedNumber.
func Unpack(n *big.Int) ([]int, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: not a positive integer", ErrMalformedNumber)
	}

	digits := n.String()
	if digits[0] != '1' {
		return nil, fmt.Errorf("%w: missing guard digit", ErrMalformedNumber)
	}
	digits = digits[1:]
	if len(digits)%ChunkWidth != 0 {
		return nil, fmt.Errorf("%w: %d digits do not split into %d-digit groups",
			ErrMalformedNumber, len(digits), ChunkWidth)
	}

	indices := make([]int, 0, len(digits)/ChunkWidth)
	for i := 0; i < len(digits); i += ChunkWidth {
		idx, err := strconv.Atoi(digits[i : i+ChunkWidth])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedNumber, err)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// Divide computes the Euclidean division of dividend by divisor and
// returns the quotient and remainder.
func Divide(dividend, divisor *big.Int) (*big.Int, *big.Int, error) {
	if divisor == nil || divisor.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}

	quo := new(big.Int)
	rem := new(big.Int)
	quo.QuoRem(dividend, divisor, rem)
	return quo, rem, nil
}

// Reconstruct reverses Divide: quotient*divisor + remainder.
func Reconstruct(quotient, divisor, remainder *big.Int) *big.Int {
	n := new(big.Int).Mul(quotient, divisor)
	return n.Add(n, remainder)
}
