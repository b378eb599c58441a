// Package unit is a minimal sequential test harness built on top of the
// faultline boundary. Test groups are registered by name with optional setup
// and teardown hooks; Execute runs every group in registration order, runs
// each test beneath its own boundary invocation, and stops at the first
// failure, reporting the classification and, for known failures, the frozen
// scope trace.
package unit

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/samsarahq/go/oops"
	"go.uber.org/multierr"

	"github.com/faultline/faultline"
	"github.com/faultline/faultline/trace"
)

// TestFunc is a single test. It signals failure by raising through the
// faultline guards, or with Fail; returning normally means the test passed.
type TestFunc func(ctx context.Context)

// failClass is raised by Fail. Its origin mirrors the harness type a test
// runs under.
var failClass = faultline.Declare("unit.Run", "Fail")

// Fail aborts the current test, recording the given source line.
func Fail(ctx context.Context, line int) {
	failClass.Raise(ctx, line)
}

type namedTest struct {
	name string
	fn   TestFunc
}

// Run is one named group of tests sharing setup and teardown hooks.
type Run struct {
	name     string
	setup    func() error
	teardown func() error
	tests    []namedTest
}

// Add appends a named test to the group. Tests run in the order added.
func (r *Run) Add(name string, fn TestFunc) *Run {
	r.tests = append(r.tests, namedTest{name: name, fn: fn})
	return r
}

// Runner holds an ordered list of test groups and executes them
// sequentially.
type Runner struct {
	runs  []*Run
	names map[string]*Run

	config *Config
	logger *Logger

	passed int
}

type RunnerOption func(*Runner)

// WithLogger replaces the runner's default stdout/stderr logger.
func WithLogger(l *Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithConfig replaces the runner's default configuration.
func WithConfig(c *Config) RunnerOption {
	return func(r *Runner) {
		r.config = c
	}
}

// NewRunner initializes a new runner.
func NewRunner(opts ...RunnerOption) *Runner {
	runner := &Runner{
		names:  make(map[string]*Run),
		config: &Config{},
		logger: NewLogger(),
	}

	for _, opt := range opts {
		opt(runner)
	}

	if runner.config.NoColor {
		color.NoColor = true
	}

	return runner
}

// Add registers a test group, failing if the name has already been taken.
// The setup hook runs before the group's first test and the teardown hook
// after the group finishes, whether or not a test failed. Either hook may be
// nil.
func (r *Runner) Add(name string, setup, teardown func() error) *Run {
	if _, ok := r.names[name]; ok {
		panic(fmt.Sprintf("Duplicate test group registered: %s", name))
	}
	run := &Run{name: name, setup: setup, teardown: teardown}
	r.runs = append(r.runs, run)
	r.names[name] = run
	return run
}

// Passed returns the number of tests that have passed so far.
func (r *Runner) Passed() int { return r.passed }

// Execute runs every registered group in order, stopping at the first test
// failure. The failing group's teardown still runs; later groups do not. It
// returns nil when every test passed.
func (r *Runner) Execute(ctx context.Context) error {
	ctx = trace.WithRecorder(ctx, trace.NewRecorder())

	for _, run := range r.runs {
		testFailed, err := r.executeRun(ctx, run)
		if err != nil {
			r.reportFailSummary(testFailed)
			return err
		}
	}

	r.reportPassSummary()
	return nil
}

// executeRun runs one group. testFailed distinguishes a test failure from a
// setup or teardown failure.
func (r *Runner) executeRun(ctx context.Context, run *Run) (testFailed bool, err error) {
	if run.setup != nil {
		if err := run.setup(); err != nil {
			return false, oops.Wrapf(err, "setup for group %s", run.name)
		}
	}

	var failed error
	for _, test := range run.tests {
		var outcome faultline.Outcome
		var frames []string

		faultline.Run(ctx, test.fn, func(ctx context.Context, o faultline.Outcome) {
			outcome = o
			if rec := trace.FromContext(ctx); rec != nil {
				frames = rec.Snapshot()
			}
		})

		if outcome == nil {
			r.passed++
			r.reportPass(run.name, test.name)
			continue
		}

		r.reportFailure(run.name, test.name, outcome, frames)
		failed = oops.Errorf("test %s/%s failed", run.name, test.name)
		testFailed = true
		break
	}

	if run.teardown != nil {
		if err := run.teardown(); err != nil {
			failed = multierr.Append(failed, oops.Wrapf(err, "teardown for group %s", run.name))
		}
	}

	return testFailed, failed
}
