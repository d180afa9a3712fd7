// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package unphrase

import (
	"math/big"
	"strings"
)

// valueSeparator joins the quotient and remainder in the wire form
const valueSeparator = ":"

// FormatValue renders a quotient and remainder as a single string in
// the canonical quotient:remainder form.
func FormatValue(quotient, remainder *big.Int) string {
	return quotient.String() + valueSeparator + remainder.String()
}

// ParseValue splits a concealed value into its quotient and remainder.
// Both parts must be unsigned decimal numbers separated by exactly one
// colon. Surrounding whitespace is ignored; leading zeros are accepted.
func ParseValue(value string) (*big.Int, *big.Int, error) {
	qs, rs, found := strings.Cut(strings.TrimSpace(value), valueSeparator)
	if !found {
		return nil, nil, StatusErrValueFormat
	}

	quotient, ok := parseDecimal(qs)
	if !ok {
		return nil, nil, StatusErrValueFormat
	}
	remainder, ok := parseDecimal(rs)
	if !ok {
		return nil, nil, StatusErrValueFormat
	}
	return quotient, remainder, nil
}

// parseDecimal parses a non-empty string of plain decimal digits. Signs,
// spaces and radix prefixes all fail.
func parseDecimal(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, false
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return n, true
}
