package unit

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/faultline/faultline"
)

var (
	passLabel = color.New(color.FgGreen).SprintFunc()
	failLabel = color.New(color.FgRed).SprintFunc()
)

func (r *Runner) reportPass(group, test string) {
	if !r.config.Verbose {
		return
	}
	fmt.Fprintf(r.logger.Stdout, "%s %s/%s\n", passLabel("pass"), group, test)
}

func (r *Runner) reportFailure(group, test string, outcome faultline.Outcome, frames []string) {
	out := r.logger.Stderr
	fmt.Fprintf(out, "%s %s/%s\n", failLabel("FAIL"), group, test)

	switch outcome := outcome.(type) {
	case *faultline.KnownOutcome:
		f := outcome.Failure
		fmt.Fprintf(out, "  %s raised by %s (line %d)\n", f.Kind(), f.Origin(), f.Line())
		for i := len(frames) - 1; i >= 0; i-- {
			fmt.Fprintf(out, "    at %s\n", frames[i])
		}
	case *faultline.ForeignOutcome:
		fmt.Fprintf(out, "  foreign error: %s\n", outcome.Description)
	case *faultline.UnknownOutcome:
		fmt.Fprintf(out, "  unknown failure: %v\n", outcome.Value)
	}
}

func (r *Runner) reportPassSummary() {
	fmt.Fprintf(r.logger.Stdout, "%s %d test(s) passed\n", passLabel("ok"), r.passed)
}

func (r *Runner) reportFailSummary(testFailed bool) {
	if testFailed {
		fmt.Fprintf(r.logger.Stderr, "%d test(s) passed before failure\n", r.passed)
		return
	}
	fmt.Fprintf(r.logger.Stderr, "%d test(s) passed; a group hook failed\n", r.passed)
}
