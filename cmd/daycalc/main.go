// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command daycalc parses, validates and advances dates of the form
// DD.MM.YYYY.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

// GlobalFlags are accepted by all commands.
type GlobalFlags struct {
	cmdutil.LoggingFlags
}

type advanceFlags struct {
	Legacy bool `subcmd:"legacy,false,'replicate the legacy arithmetic that subtracts whole years without regard to the day of the year'"`
	Strict bool `subcmd:"strict,false,reject dates whose month or day is out of range"`
}

type leapFlags struct{}

type daysInMonthFlags struct{}

type batchFlags struct {
	Concurrency int  `subcmd:"concurrency,0,'number of jobs to run concurrently, overrides the value in the config file if non-zero'"`
	Legacy      bool `subcmd:"legacy,false,'replicate the legacy year phase arithmetic, overrides the config file if set'"`
}

var (
	cmdSet      *subcmd.CommandSet
	globalFlags GlobalFlags
	stdout      io.Writer = os.Stdout
)

func init() {
	advanceCmd := subcmd.NewCommand("advance",
		subcmd.MustRegisterFlagStruct(&advanceFlags{}, nil, nil),
		advance, subcmd.ExactlyNumArguments(2))
	advanceCmd.Document("advance a date by the specified number of days", "<DD.MM.YYYY> <days>")

	leapCmd := subcmd.NewCommand("leap",
		subcmd.MustRegisterFlagStruct(&leapFlags{}, nil, nil),
		leap, subcmd.AtLeastNArguments(1))
	leapCmd.Document("report whether each year is a leap year", "<year>...")

	daysInMonthCmd := subcmd.NewCommand("days-in-month",
		subcmd.MustRegisterFlagStruct(&daysInMonthFlags{}, nil, nil),
		daysInMonth, subcmd.ExactlyNumArguments(2))
	daysInMonthCmd.Document("print the number of days in a month", "<month> <year>")

	batchCmd := subcmd.NewCommand("batch",
		subcmd.MustRegisterFlagStruct(&batchFlags{}, nil, nil),
		runBatch, subcmd.ExactlyNumArguments(1))
	batchCmd.Document("advance all of the dates specified in a YAML config file", "<config.yaml>")

	cmdSet = subcmd.NewCommandSet(advanceCmd, leapCmd, daysInMonthCmd, batchCmd)
	cmdSet.Document(`daycalc works with dates in DD.MM.YYYY format in the proleptic Gregorian calendar.`)

	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&globalFlags, nil, nil)
	cmdSet.WithGlobalFlags(globals)
}

// withLogger returns a context containing the logger configured by
// the global flags and a function that must be called to close it.
func withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := globalFlags.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
