// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package daycalc provides a calendar date, in the proleptic Gregorian
// calendar, that can be parsed from and formatted to DD.MM.YYYY and advanced
// by a number of days with the month and year rolling over as required.
//
//	d, err := daycalc.Parse("01.12.2020")
//	...
//	err = d.AdvanceDays(300)
//	fmt.Println(d) // 27.09.2021
package daycalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const expectedFormat = "DD.MM.YYYY"

// Date represents a day, month and year. Parse does not, by default,
// check that Month and Day are in range, Validate can be used to do so.
type Date struct {
	Day   int
	Month Month
	Year  int
}

// ParseOption represents an option to Parse and MustParse.
type ParseOption func(o *parseOptions)

type parseOptions struct {
	strict bool
}

// StrictValidation requests that Parse reject dates whose month or day
// is out of range.
func StrictValidation() ParseOption {
	return func(o *parseOptions) {
		o.strict = true
	}
}

// Parse parses a date of the form DD.MM.YYYY. The text must consist of three
// non-empty groups of ASCII digits separated by '.', leading zeros are
// allowed. Errors in the format are reported as a *FormatError. Range checks
// are only performed if the StrictValidation option is supplied.
func Parse(text string, opts ...ParseOption) (Date, error) {
	var o parseOptions
	for _, fn := range opts {
		fn(&o)
	}
	parts := strings.Split(text, ".")
	if len(parts) != 3 {
		return Date{}, &FormatError{Input: text, Reason: fmt.Sprintf("found %d dot separated groups", len(parts))}
	}
	var vals [3]int
	for i, p := range parts {
		if len(p) == 0 {
			return Date{}, &FormatError{Input: text, Reason: fmt.Sprintf("group %d is empty", i+1)}
		}
		for j := 0; j < len(p); j++ {
			if p[j] < '0' || p[j] > '9' {
				return Date{}, &FormatError{Input: text, Reason: fmt.Sprintf("group %d contains non-digit %q", i+1, p[j])}
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, &FormatError{Input: text, Reason: fmt.Sprintf("group %d is out of range", i+1)}
		}
		vals[i] = n
	}
	d := Date{Day: vals[0], Month: Month(vals[1]), Year: vals[2]}
	if o.strict {
		if err := d.Validate(); err != nil {
			return Date{}, err
		}
	}
	return d, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string, opts ...ParseOption) Date {
	d, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the date formatted as DD.MM.YYYY, the day and month are
// zero padded to two digits, the year is not padded.
func (d Date) String() string {
	return fmt.Sprintf("%02d.%02d.%d", d.Day, int(d.Month), d.Year)
}

// Format is the same as d.String().
func Format(d Date) string {
	return d.String()
}

// IsLeapYear returns true if the date falls in a leap year.
func (d Date) IsLeapYear() bool {
	return IsLeap(d.Year)
}

// Validate returns an error if the month or day of d are out of range.
func (d Date) Validate() error {
	n, err := DaysInMonth(d.Month, d.IsLeapYear())
	if err != nil {
		return err
	}
	if d.Day < 1 || d.Day > n {
		return fmt.Errorf("%w: %d, %v %d has %d days", ErrInvalidDay, d.Day, d.Month, d.Year, n)
	}
	return nil
}

// DayOfYear returns the ordinal day of d within its year, ie. 1-365 for
// common years and 1-366 for leap years. Days beyond the end of the month
// are not clamped, but a day so large that the ordinal cannot be
// represented as an int is an ErrInvalidDay.
func (d Date) DayOfYear() (int, error) {
	if !d.Month.Valid() {
		return 0, invalidMonth(d.Month)
	}
	if d.Day > math.MaxInt-daysInLeapYear {
		return 0, fmt.Errorf("%w: %d is too large", ErrInvalidDay, d.Day)
	}
	day := dayOfYear[d.Month-1] + d.Day
	if d.Month > February && d.IsLeapYear() {
		day++
	}
	return day, nil
}

// SetMonth sets the month of d, a month greater than 12 is corrected
// using RolloverMonth and hence also increments the year.
func (d *Date) SetMonth(month Month) {
	d.Month, d.Year = RolloverMonth(month, d.Year)
}

// NextMonth advances d to the following month, leaving the day unchanged.
func (d *Date) NextMonth() {
	d.SetMonth(d.Month + 1)
}

// FromTime returns the Date for t in t's location.
func FromTime(t time.Time) Date {
	y, m, day := t.Date()
	return Date{Day: day, Month: Month(m), Year: y}
}

// Time returns midnight UTC on d. Out of range values are normalized
// as per time.Date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}
