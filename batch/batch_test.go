// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package batch_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloudeng.io/daycalc"
	"cloudeng.io/daycalc/batch"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/synctestutil"
)

const spec = `
concurrency: 2
legacy_year_phase: false
strict: true
jobs:
  - date: 01.12.2020
    days: 300
  - date: 28.02.2024
    days: 1
  - date: 01.13.2020
    days: 1
  - date: 29.02.2023
    days: 1
  - date: 01.12.2020
    days: -1
  - date: 01.12.2020
    days: 400
`

func TestParseConfig(t *testing.T) {
	cfg, err := batch.ParseConfig([]byte(spec))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Concurrency, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !cfg.Strict || cfg.LegacyYearPhase {
		t.Errorf("wrong options: %+v", cfg)
	}
	if got, want := len(cfg.Jobs), 6; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := cfg.Jobs[0], (batch.Job{Date: daycalc.MustParse("01.12.2020"), Days: 300}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	_, err = batch.ParseConfig([]byte("concurrency: 1\nunknown: 2\n"))
	if err == nil || !strings.Contains(err.Error(), "field unknown not found") {
		t.Errorf("missing or wrong error: %v", err)
	}
	_, err = batch.ParseConfig([]byte("jobs:\n  - date: 1-2-3\n"))
	if err == nil || !strings.Contains(err.Error(), "invalid date format") {
		t.Errorf("missing or wrong error: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "batch.yaml")
	if err := os.WriteFile(filename, []byte(spec), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := batch.LoadConfig(ctx, filename)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(cfg.Jobs), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := batch.LoadConfig(ctx, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error")
	}
}

func TestRun(t *testing.T) {
	defer synctestutil.AssertNoGoroutinesRacy(t, time.Second)()
	var out bytes.Buffer
	ctx := ctxlog.NewJSONLogger(context.Background(), &out, &slog.HandlerOptions{Level: slog.LevelDebug})

	cfg, err := batch.ParseConfig([]byte(spec))
	if err != nil {
		t.Fatal(err)
	}
	results, err := batch.Run(ctx, cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, target := range []error{daycalc.ErrInvalidMonth, daycalc.ErrInvalidDay, daycalc.ErrInvalidOffset} {
		if !errors.Is(err, target) {
			t.Errorf("missing %v in %v", target, err)
		}
	}
	if got, want := len(results), len(cfg.Jobs); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, tc := range []struct {
		result string
		err    error
	}{
		{"27.09.2021", nil},
		{"29.02.2024", nil},
		{"", daycalc.ErrInvalidMonth},
		{"", daycalc.ErrInvalidDay},
		{"", daycalc.ErrInvalidOffset},
		{"05.01.2022", nil},
	} {
		r := results[i]
		if got, want := r.Job, cfg.Jobs[i]; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if tc.err != nil {
			if !errors.Is(r.Err, tc.err) {
				t.Errorf("%v: missing or wrong error: %v", i, r.Err)
			}
			continue
		}
		if r.Err != nil {
			t.Errorf("%v: %v", i, r.Err)
			continue
		}
		if got, want := r.Date.String(), tc.result; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if got, want := results[0].String(), "01.12.2020 + 300 = 27.09.2021"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	logs := out.String()
	for _, msg := range []string{`"msg":"job done"`, `"msg":"job failed"`, `"msg":"batch complete"`, `"failed":3`} {
		if !strings.Contains(logs, msg) {
			t.Errorf("%v not found in %v", msg, logs)
		}
	}
}

func TestRunLegacy(t *testing.T) {
	cfg := batch.Config{
		LegacyYearPhase: true,
		Jobs: []batch.Job{
			{Date: daycalc.MustParse("01.12.2020"), Days: 400},
			{Date: daycalc.MustParse("40.01.2020"), Days: 0},
		},
	}
	results, err := batch.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := results[0].Date.String(), "04.01.2022"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Strict is not set so out of range days are normalized.
	if got, want := results[1].Date.String(), "09.02.2020"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRunCanceled(t *testing.T) {
	defer synctestutil.AssertNoGoroutinesRacy(t, time.Second)()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := batch.Config{Concurrency: 1}
	for i := 0; i < 10; i++ {
		cfg.Jobs = append(cfg.Jobs, batch.Job{Date: daycalc.MustParse("01.01.2024"), Days: i})
	}
	results, err := batch.Run(ctx, cfg)
	if err == nil || !errors.Is(err, context.Canceled) {
		t.Fatalf("missing or wrong error: %v", err)
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%v: missing or wrong error: %v", i, r.Err)
		}
	}
}

func TestRunEmpty(t *testing.T) {
	results, err := batch.Run(context.Background(), batch.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(results), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
