//go:build !faultline_notrace

package unit_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultline/faultline"
	"github.com/faultline/faultline/trace"
	"github.com/faultline/faultline/unit"
)

var errBroken = faultline.Declare("unit_test.Widget", "Broken")

func newTestRunner() (*unit.Runner, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	runner := unit.NewRunner(
		unit.WithConfig(&unit.Config{Verbose: true, NoColor: true}),
		unit.WithLogger(&unit.Logger{Stdout: stdout, Stderr: stderr}),
	)
	return runner, stdout, stderr
}

func TestExecuteAllPass(t *testing.T) {
	runner, stdout, _ := newTestRunner()

	calls := 0
	pass := func(ctx context.Context) { calls++ }

	runner.Add("widgets", nil, nil).Add("first", pass).Add("second", pass)
	runner.Add("gadgets", nil, nil).Add("third", pass)

	require.NoError(t, runner.Execute(context.Background()))
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, runner.Passed())
	assert.Contains(t, stdout.String(), "3 test(s) passed")
	assert.Contains(t, stdout.String(), "pass widgets/first")
}

func TestExecuteStopsAtFirstFailure(t *testing.T) {
	runner, _, stderr := newTestRunner()

	var order []string
	record := func(name string) unit.TestFunc {
		return func(ctx context.Context) { order = append(order, name) }
	}

	tornDown := false
	group := runner.Add("widgets", nil, func() error {
		tornDown = true
		return nil
	})
	group.Add("first", record("first"))
	group.Add("broken", func(ctx context.Context) {
		defer trace.Enter(ctx, "widget.Spin", 9).Release()
		errBroken.Raise(ctx, 66)
	})
	group.Add("never", record("never"))
	runner.Add("gadgets", nil, nil).Add("skipped", record("skipped"))

	err := runner.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widgets/broken")

	assert.Equal(t, []string{"first"}, order)
	assert.Equal(t, 1, runner.Passed())
	assert.True(t, tornDown, "teardown of the failing group must still run")

	output := stderr.String()
	assert.Contains(t, output, "FAIL widgets/broken")
	assert.Contains(t, output, "Broken raised by unit_test.Widget (line 66)")
	assert.Contains(t, output, "at widget.Spin(9)")
	assert.Contains(t, output, "1 test(s) passed before failure")
}

func TestExecuteReportsForeignFailure(t *testing.T) {
	runner, _, stderr := newTestRunner()

	runner.Add("io", nil, nil).Add("explode", func(ctx context.Context) {
		panic(errors.New("connection reset"))
	})

	require.Error(t, runner.Execute(context.Background()))
	assert.Contains(t, stderr.String(), "foreign error: connection reset")
}

func TestFail(t *testing.T) {
	runner, _, stderr := newTestRunner()

	runner.Add("basics", nil, nil).Add("fails", func(ctx context.Context) {
		unit.Fail(ctx, 12)
	})

	require.Error(t, runner.Execute(context.Background()))
	assert.Contains(t, stderr.String(), "Fail raised by unit.Run (line 12)")
}

func TestSetupFailureSkipsTests(t *testing.T) {
	runner, _, stderr := newTestRunner()

	ran := false
	group := runner.Add("widgets", func() error {
		return errors.New("no database")
	}, nil)
	group.Add("first", func(ctx context.Context) { ran = true })

	err := runner.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setup for group widgets")
	assert.False(t, ran)
	assert.Contains(t, stderr.String(), "0 test(s) passed; a group hook failed")
}

func TestTeardownFailureSurfaces(t *testing.T) {
	runner, _, stderr := newTestRunner()

	runner.Add("widgets", nil, func() error {
		return errors.New("leaked handle")
	}).Add("first", func(ctx context.Context) {})

	err := runner.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teardown for group widgets")
	assert.Equal(t, 1, runner.Passed())

	// Every test passed; the summary must blame the hook, not a test.
	assert.Contains(t, stderr.String(), "1 test(s) passed; a group hook failed")
	assert.NotContains(t, stderr.String(), "before failure")
}

func TestDuplicateGroupPanics(t *testing.T) {
	runner, _, _ := newTestRunner()
	runner.Add("widgets", nil, nil)
	assert.Panics(t, func() { runner.Add("widgets", nil, nil) })
}
