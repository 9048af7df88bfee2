// Package bench iterates a workload set and drives the external load
// client once per sweep point, one raw result file per run.
package bench

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"schedbench/internal/resultfile"
	"schedbench/internal/sweep"
)

// Config holds the fixed run settings for one sweep. Concurrency is a
// run setting, not a swept dimension; every point of the sweep runs
// with the same client concurrency.
type Config struct {
	ClientPath string
	ServerAddr string
	Algorithm  string
	OutputDir  string

	Concurrency int

	// Timeout bounds a single client invocation. Zero disables it.
	Timeout time.Duration

	// KeepGoing records a failed invocation and continues with the
	// remaining sweep instead of aborting. Fail-fast is the default.
	KeepGoing bool
}

func (c Config) validate() error {
	if c.ClientPath == "" {
		return fmt.Errorf("client path must not be empty")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}

// ExternalProcessError reports a client invocation that exited
// non-zero or could not be started.
type ExternalProcessError struct {
	Point  sweep.Point
	Output string
	Err    error
}

func (e *ExternalProcessError) Error() string {
	msg := fmt.Sprintf("client run for point %+v failed: %v", e.Point, e.Err)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *ExternalProcessError) Unwrap() error { return e.Err }

// Progress is called after each completed invocation with its 1-based
// index, the sweep size and the invocation error, if any.
type Progress func(index, total int, point sweep.Point, err error)

// Report summarizes one sweep run.
type Report struct {
	Total     int
	Completed int
	Failures  []*ExternalProcessError
	Elapsed   time.Duration
}

// Runner invokes the external client synchronously, point by point.
// Points never run in parallel: overlapping sweep points would hand
// the server-under-test an uncontrolled mixed workload.
type Runner struct {
	cfg Config

	// invoke runs one client invocation; replaced in tests.
	invoke func(ctx context.Context, path string, args []string) (output string, err error)
}

func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg, invoke: execClient}
}

// Run executes the whole sweep. With KeepGoing off the first failed
// invocation aborts the remaining points; with it on, failures are
// collected into the report and surfaced at the end.
func (r *Runner) Run(ctx context.Context, set *sweep.Set, progress Progress) (*Report, error) {
	if err := r.cfg.validate(); err != nil {
		return nil, err
	}

	// Idempotent: a pre-existing output directory is fine.
	if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create output directory %q: %w", r.cfg.OutputDir, err)
	}

	report := &Report{Total: len(set.Workload)}
	start := time.Now()

	for i, point := range set.Workload {
		if err := ctx.Err(); err != nil {
			report.Elapsed = time.Since(start)
			return report, err
		}

		runErr := r.runPoint(ctx, point)
		if runErr == nil {
			report.Completed++
		}
		if progress != nil {
			progress(i+1, report.Total, point, runErr)
		}
		if runErr != nil {
			procErr := &ExternalProcessError{Point: point, Err: runErr}
			if pe, ok := runErr.(*ExternalProcessError); ok {
				procErr = pe
			}
			report.Failures = append(report.Failures, procErr)
			if !r.cfg.KeepGoing {
				report.Elapsed = time.Since(start)
				return report, procErr
			}
		}
	}

	report.Elapsed = time.Since(start)
	return report, nil
}

// Start runs the sweep in a goroutine and reports completion through
// onDone. The returned wait function cancels a still-running sweep and
// blocks until the goroutine has finished before handing back its
// result, so callers never read the report concurrently with the
// runner. It is safe to call wait after the sweep has completed.
func (r *Runner) Start(ctx context.Context, set *sweep.Set, progress Progress, onDone func(error)) (wait func() (*Report, error)) {
	ctx, cancel := context.WithCancel(ctx)

	var (
		report *Report
		err    error
		done   = make(chan struct{})
	)
	go func() {
		defer close(done)
		report, err = r.Run(ctx, set, progress)
		if onDone != nil {
			onDone(err)
		}
	}()

	return func() (*Report, error) {
		cancel()
		<-done
		return report, err
	}
}

func (r *Runner) runPoint(ctx context.Context, point sweep.Point) error {
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	output, err := r.invoke(ctx, r.cfg.ClientPath, r.clientArgs(point))
	if err != nil {
		return &ExternalProcessError{Point: point, Output: output, Err: err}
	}
	return nil
}

// clientArgs builds the client command line for one sweep point.
func (r *Runner) clientArgs(point sweep.Point) []string {
	return []string{
		fmt.Sprintf("--server-addr=%s", r.cfg.ServerAddr),
		fmt.Sprintf("--n-request=%d", point.TotRequests),
		fmt.Sprintf("--slow-request-interval=%s", point.SlowInterval),
		fmt.Sprintf("--fast-request-interval=%s", point.FastInterval),
		fmt.Sprintf("--slow-request-percent=%d", point.SlowPercent),
		fmt.Sprintf("--concurrency=%d", r.cfg.Concurrency),
		fmt.Sprintf("--write=%s", r.OutputPath(point)),
	}
}

// OutputPath is where the client writes the raw records for a point.
func (r *Runner) OutputPath(point sweep.Point) string {
	name := resultfile.Params{
		Algorithm:   r.cfg.Algorithm,
		FastToken:   point.FastInterval,
		SlowToken:   point.SlowInterval,
		TotRequests: point.TotRequests,
		SlowPercent: point.SlowPercent,
		Concurrency: r.cfg.Concurrency,
	}.Filename()
	return filepath.Join(r.cfg.OutputDir, name)
}

// execClient is the real invoker: a blocking subprocess run with
// combined output captured for error reporting.
func execClient(ctx context.Context, path string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return strings.TrimSpace(string(out)), err
	}
	return "", nil
}
