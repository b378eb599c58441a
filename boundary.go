package faultline

import (
	"context"

	"github.com/faultline/faultline/trace"
)

// Run is the root dispatch boundary: the single point on a goroutine beneath
// which all instrumented scopes must be nested. It resets the context's trace
// recorder (installing a fresh one if the context has none), invokes entry,
// and returns. If entry returns normally the handler is never called. If a
// panic escapes entry, Run classifies it and calls handler exactly once with
// the resulting Outcome, then returns normally.
//
// Run never re-invokes entry; retry is entirely the caller's business (call
// Run again — the reset at the top discards any frozen state a previous
// failed invocation left behind, so a reused goroutine starts clean).
//
// Only the known path guarantees a populated trace snapshot inside handler:
// foreign and unknown failures unwind without freezing the recorder, so their
// frames are released normally on the way out. A panic raised by handler
// itself is not recovered and propagates out of Run.
func Run(ctx context.Context, entry func(context.Context), handler func(context.Context, Outcome)) {
	if rec := trace.FromContext(ctx); rec != nil {
		rec.Reset()
	} else {
		ctx = trace.NewContext(ctx)
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		handler(ctx, classify(r))
	}()

	entry(ctx)
}

func classify(v interface{}) Outcome {
	switch v := v.(type) {
	case *Failure:
		return &KnownOutcome{Failure: v}
	case error:
		return &ForeignOutcome{Description: v.Error(), Err: v}
	default:
		return &UnknownOutcome{Value: v}
	}
}
