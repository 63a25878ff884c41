// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycalc

const (
	daysInCommonYear = 365
	daysInLeapYear   = 366
)

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return daysInLeapYear
	}
	return daysInCommonYear
}
