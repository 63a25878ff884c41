// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycalc

import (
	"fmt"
	"time"
)

// Month as an int, January is 1.
type Month time.Month

const (
	January  = Month(time.January)
	February = Month(time.February)
	December = Month(time.December)
)

var (
	daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	dayOfYear   [12]int // days in a common year preceding each month
)

func init() {
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] = dayOfYear[i] + daysInMonth[i]
	}
}

// Valid returns true if m is in the range 1-12.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

func (m Month) String() string {
	return time.Month(m).String()
}

func invalidMonth(m Month) error {
	return fmt.Errorf("%w: %d", ErrInvalidMonth, int(m))
}

// DaysInMonth returns the number of days in the given month, February
// has 29 days when leap is true. An error wrapping ErrInvalidMonth is
// returned for months outside of 1-12.
func DaysInMonth(month Month, leap bool) (int, error) {
	if !month.Valid() {
		return 0, invalidMonth(month)
	}
	if month == February && leap {
		return 29, nil
	}
	return daysInMonth[month-1], nil
}

// RolloverMonth returns month and year unchanged unless month is greater
// than 12, in which case it returns January of the following year. The
// correction is applied once only, so 15 becomes January of year+1 and
// not March, callers are expected to advance one month at a time.
func RolloverMonth(month Month, year int) (Month, int) {
	if month > December {
		return January, year + 1
	}
	return month, year
}
