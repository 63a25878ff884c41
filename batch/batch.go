// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package batch provides support for advancing a list of dates, specified
// in a YAML configuration file, concurrently. The configuration is of the
// form:
//
//	concurrency: 4
//	legacy_year_phase: false
//	strict: false
//	jobs:
//	  - date: 01.12.2020
//	    days: 300
//	  - date: 28.02.2024
//	    days: 1
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/daycalc"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

// Job represents a single date to be advanced by Days.
type Job struct {
	Date daycalc.Date `yaml:"date" cmd:"date in DD.MM.YYYY format"`
	Days int          `yaml:"days" cmd:"number of days to advance the date by"`
}

func (j Job) String() string {
	return fmt.Sprintf("%v + %v", j.Date, j.Days)
}

// Config represents a batch of jobs and the options used to run them.
type Config struct {
	Concurrency     int   `yaml:"concurrency" cmd:"number of jobs to run concurrently, defaults to GOMAXPROCS"`
	LegacyYearPhase bool  `yaml:"legacy_year_phase" cmd:"use the legacy year phase arithmetic"`
	Strict          bool  `yaml:"strict" cmd:"reject dates whose month or day is out of range"`
	Jobs            []Job `yaml:"jobs" cmd:"the dates to be advanced"`
}

// ParseConfig parses a YAML batch specification, unknown fields are
// reported as errors.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML batch specification in filename.
func LoadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) options() []daycalc.AdvanceOption {
	if c.LegacyYearPhase {
		return []daycalc.AdvanceOption{daycalc.LegacyYearPhase()}
	}
	return nil
}

// Result represents the outcome of running a single job. Date is only
// valid if Err is nil.
type Result struct {
	Job  Job
	Date daycalc.Date
	Err  error
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%v: %v", r.Job, r.Err)
	}
	return fmt.Sprintf("%v = %v", r.Job, r.Date)
}

// Run advances every job in cfg and returns a Result for each job in the
// same order as cfg.Jobs. Jobs are run concurrently, a failed job does not
// prevent the remaining jobs from being run and all of the errors
// encountered are returned as an errors.M. Run stops starting new jobs
// once ctx is canceled.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	logger := ctxlog.Logger(ctx)
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	start := time.Now()
	results := make([]Result, len(cfg.Jobs))
	opts := cfg.options()
	errs := &errors.M{}
	g := errgroup.WithConcurrency(&errgroup.T{}, concurrency)
	for i, job := range cfg.Jobs {
		results[i].Job = job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			d, err := runJob(job, cfg.Strict, opts)
			if err != nil {
				results[i].Err = err
				errs.Append(fmt.Errorf("job %d: %v: %w", i, job, err))
				logger.Debug("job failed", "job", i, "date", job.Date.String(), "days", job.Days, "error", err)
				return nil
			}
			results[i].Date = d
			logger.Debug("job done", "job", i, "date", job.Date.String(), "days", job.Days, "result", d.String())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs.Append(errors.Squash(err, context.Canceled, context.DeadlineExceeded))
	}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	logger.Info("batch complete", "jobs", len(results), "failed", failed, "concurrency", concurrency, "duration", time.Since(start))
	return results, errs.Err()
}

func runJob(job Job, strict bool, opts []daycalc.AdvanceOption) (daycalc.Date, error) {
	d := job.Date
	if strict {
		if err := d.Validate(); err != nil {
			return daycalc.Date{}, err
		}
	}
	if err := d.AdvanceDays(job.Days, opts...); err != nil {
		return daycalc.Date{}, err
	}
	return d, nil
}
