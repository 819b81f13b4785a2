// Package health runs environment diagnostics for `mqlforge doctor`:
// can we reach Gemini, is there a key, can we copy and save what we
// generate. Checks never mutate anything outside the output directory.
package health

import (
	"context"
	"time"

	"github.com/mqlforge/mqlforge/internal/config"
)

// Status represents the result of a single check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// String returns the lowercase text representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// CheckResult holds the result of a single check.
type CheckResult struct {
	Name     string
	Category string // "system", "config", "library"
	Status   Status
	Message  string
	Duration time.Duration
}

// Report aggregates all check results.
type Report struct {
	Results  []CheckResult
	Passed   int
	Warned   int
	Failed   int
	Total    int
	Duration time.Duration
	Healthy  bool
}

// Check is a named, categorized diagnostic function.
type Check struct {
	Name     string
	Category string
	Fn       func(ctx context.Context) CheckResult
}

// Checker runs all registered checks against the resolved configuration.
type Checker struct {
	checks     []Check
	cfg        config.Config
	configFile string
}

// NewChecker creates a checker for the given configuration. configFile is
// the path of the config file in use, or empty when running on environment
// variables alone.
func NewChecker(cfg config.Config, configFile string) *Checker {
	c := &Checker{
		cfg:        cfg,
		configFile: configFile,
	}
	c.registerChecks()
	return c
}

// add registers a single check.
func (c *Checker) add(name, category string, fn func(ctx context.Context) CheckResult) {
	c.checks = append(c.checks, Check{
		Name:     name,
		Category: category,
		Fn:       fn,
	})
}

// RunAll runs every registered check and returns a report.
func (c *Checker) RunAll(ctx context.Context) *Report {
	start := time.Now()
	results := make([]CheckResult, 0, len(c.checks))

	for _, ch := range c.checks {
		if ctx.Err() != nil {
			results = append(results, CheckResult{
				Name:     ch.Name,
				Category: ch.Category,
				Status:   StatusFail,
				Message:  "context cancelled",
			})
			continue
		}
		t := time.Now()
		r := ch.Fn(ctx)
		r.Duration = time.Since(t)
		r.Name = ch.Name
		r.Category = ch.Category
		results = append(results, r)
	}

	return buildReport(results, time.Since(start))
}

// buildReport aggregates a slice of results into a Report.
func buildReport(results []CheckResult, dur time.Duration) *Report {
	r := &Report{
		Results:  results,
		Total:    len(results),
		Duration: dur,
	}
	for _, res := range results {
		switch res.Status {
		case StatusPass:
			r.Passed++
		case StatusWarn:
			r.Warned++
		case StatusFail:
			r.Failed++
		}
	}
	r.Healthy = r.Failed == 0
	return r
}
