// Copyright (c) 2026 gpuente
// See LICENSE for licensing information

package unphrase

import (
	"errors"

	"github.com/gpuente/seed-unphrase-sub000/internal/numeric"
)

// Status represents the result of a codec operation
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota

	// StatusErrEmptyPhrase indicates a phrase without words
	StatusErrEmptyPhrase

	// StatusErrPhraseTooLong indicates a phrase with too many words
	StatusErrPhraseTooLong

	// StatusErrCipherKey indicates a cipher key that is not a positive decimal number
	StatusErrCipherKey

	// StatusErrDivisionByZero indicates a cipher key with value zero
	StatusErrDivisionByZero

	// StatusErrValueFormat indicates a concealed value that does not parse
	StatusErrValueFormat

	// StatusErrNumberFormat indicates a packed number without the expected shape
	StatusErrNumberFormat

	// StatusErrWordIndex indicates a word index outside the usable range
	StatusErrWordIndex

	// StatusErrWordlist indicates an unusable word list
	StatusErrWordlist
)

// Error returns the error message for the status
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusErrEmptyPhrase:
		return "the phrase has no words"
	case StatusErrPhraseTooLong:
		return "too many words in the phrase"
	case StatusErrCipherKey:
		return "the cipher key is not a positive decimal number"
	case StatusErrDivisionByZero:
		return "division by zero"
	case StatusErrValueFormat:
		return "invalid concealed value"
	case StatusErrNumberFormat:
		return "malformed packed number"
	case StatusErrWordIndex:
		return "word index outside the word list range"
	case StatusErrWordlist:
		return "word list unavailable"
	default:
		return "unknown error"
	}
}

// mapNumericErr translates failures from the numeric package into statuses
func mapNumericErr(err error) error {
	switch {
	case errors.Is(err, numeric.ErrDivisionByZero):
		return StatusErrDivisionByZero
	case errors.Is(err, numeric.ErrIndexRange):
		return StatusErrWordIndex
	case errors.Is(err, numeric.ErrMalformedNumber):
		return StatusErrNumberFormat
	}
	return err
}
