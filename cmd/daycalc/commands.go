// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/daycalc"
	"cloudeng.io/daycalc/batch"
	"cloudeng.io/logging/ctxlog"
)

func advance(ctx context.Context, values any, args []string) error {
	fv := values.(*advanceFlags)
	ctx, done, err := withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	days, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid number of days %q: %w", args[1], err)
	}
	var parseOpts []daycalc.ParseOption
	if fv.Strict {
		parseOpts = append(parseOpts, daycalc.StrictValidation())
	}
	var opts []daycalc.AdvanceOption
	if fv.Legacy {
		opts = append(opts, daycalc.LegacyYearPhase())
	}
	result, err := daycalc.Advance(args[0], days, parseOpts, opts...)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("advanced", "date", args[0], "days", days, "result", result, "legacy", fv.Legacy)
	fmt.Fprintln(stdout, result)
	return nil
}

func leap(_ context.Context, _ any, args []string) error {
	for _, arg := range args {
		year, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", arg, err)
		}
		kind := "common"
		if daycalc.IsLeap(year) {
			kind = "leap"
		}
		fmt.Fprintf(stdout, "%v: %v\n", year, kind)
	}
	return nil
}

func daysInMonth(_ context.Context, _ any, args []string) error {
	month, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", args[0], err)
	}
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[1], err)
	}
	n, err := daycalc.DaysInMonth(daycalc.Month(month), daycalc.IsLeap(year))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, n)
	return nil
}

func runBatch(ctx context.Context, values any, args []string) error {
	fv := values.(*batchFlags)
	ctx, done, err := withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	cfg, err := batch.LoadConfig(ctx, args[0])
	if err != nil {
		return err
	}
	if fv.Concurrency != 0 {
		cfg.Concurrency = fv.Concurrency
	}
	if fv.Legacy {
		cfg.LegacyYearPhase = true
	}
	results, err := batch.Run(ctx, cfg)
	for _, r := range results {
		fmt.Fprintln(stdout, r)
	}
	return err
}
