// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycalc

import (
	"fmt"
	"math"
	"reflect"
)

// AdvanceOption represents an option to AdvanceDays, Add and Advance.
type AdvanceOption func(o *advanceOptions)

type advanceOptions struct {
	legacy bool
}

// LegacyYearPhase requests that AdvanceDays start counting from the day of
// the month rather than the day of the year. Whole years are then
// subtracted as if the date were the first day of its year, so that for
// dates after February the result may be a day early or late once the
// offset spans more than a year. It exists for compatibility with results
// computed by older versions of this arithmetic.
func LegacyYearPhase() AdvanceOption {
	return func(o *advanceOptions) {
		o.legacy = true
	}
}

// AdvanceDays advances d by offset days. Whole years are consumed first,
// followed by whole months with the month rolling over into the next year
// as needed, and the remainder becomes the day. Years are consumed one at
// a time so the cost grows linearly with the number of years spanned.
// An error is returned, and d left unchanged, if offset is negative, if
// d's month is out of range or if the result cannot be represented, that
// is, the day count or the year would overflow an int.
func (d *Date) AdvanceDays(offset int, opts ...AdvanceOption) error {
	if offset < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}
	var o advanceOptions
	for _, fn := range opts {
		fn(&o)
	}
	nd := *d
	start := nd.Day
	if !o.legacy {
		if nd.Day > math.MaxInt-daysInLeapYear {
			return d.overflow(offset)
		}
		doy, err := nd.DayOfYear()
		if err != nil {
			return err
		}
		start = doy
		nd.Month = January
	}
	if start > 0 && offset > math.MaxInt-start {
		return d.overflow(offset)
	}
	pool := start + offset
	for pool > DaysInYear(nd.Year) {
		if nd.Year == math.MaxInt {
			return d.overflow(offset)
		}
		pool -= DaysInYear(nd.Year)
		nd.Year++
	}
	for {
		n, err := DaysInMonth(nd.Month, nd.IsLeapYear())
		if err != nil {
			return err
		}
		if pool <= n {
			break
		}
		if nd.Month == December && nd.Year == math.MaxInt {
			return d.overflow(offset)
		}
		pool -= n
		nd.NextMonth()
	}
	nd.Day = pool
	*d = nd
	return nil
}

func (d *Date) overflow(offset int) error {
	return fmt.Errorf("%w: %v + %d days overflows", ErrInvalidOffset, d, offset)
}

// Add advances d by the integer value v and returns the resulting date
// formatted as per String. v may be of any signed or unsigned integer
// type, any other type results in an error wrapping ErrUnsupportedOperation.
func (d *Date) Add(v any, opts ...AdvanceOption) (string, error) {
	offset, err := intValue(v)
	if err != nil {
		return "", err
	}
	if err := d.AdvanceDays(offset, opts...); err != nil {
		return "", err
	}
	return d.String(), nil
}

func intValue(v any) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: cannot add nil to a date", ErrUnsupportedOperation)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n > math.MaxInt || n < math.MinInt {
			return 0, fmt.Errorf("%w: %d", ErrInvalidOffset, n)
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d", ErrInvalidOffset, n)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("%w: cannot add %T to a date", ErrUnsupportedOperation, v)
}

// Advance parses text, advances it by days and returns the result
// formatted as DD.MM.YYYY. parseOpts are passed to Parse and opts to
// AdvanceDays.
func Advance(text string, days int, parseOpts []ParseOption, opts ...AdvanceOption) (string, error) {
	d, err := Parse(text, parseOpts...)
	if err != nil {
		return "", err
	}
	if err := d.AdvanceDays(days, opts...); err != nil {
		return "", err
	}
	return d.String(), nil
}
