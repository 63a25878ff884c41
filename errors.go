// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycalc

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is matched, via errors.Is, by all FormatError values.
	ErrFormat = errors.New("invalid date format")
	// ErrInvalidMonth is returned for months outside of 1-12.
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidDay is returned by Validate for days outside of the month.
	ErrInvalidDay = errors.New("invalid day")
	// ErrInvalidOffset is returned for negative day offsets.
	ErrInvalidOffset = errors.New("invalid day offset")
	// ErrUnsupportedOperation is returned when a non-integer value is
	// added to a Date.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// FormatError represents a date that is not of the form DD.MM.YYYY.
// Use errors.Is with ErrFormat to test for it.
type FormatError struct {
	Input  string
	Reason string
}

// Error implements error.
func (fe *FormatError) Error() string {
	return fmt.Sprintf("%v %q: %v, expected %v", ErrFormat, fe.Input, fe.Reason, expectedFormat)
}

// Is implements errors.Is.
func (fe *FormatError) Is(target error) bool {
	if target == ErrFormat {
		return true
	}
	_, ok := target.(*FormatError)
	return ok
}
