package trace

import (
	"context"
	"fmt"
	"strings"
)

type recorderKey struct{}

// NewContext returns ctx carrying a fresh Recorder.
func NewContext(ctx context.Context) context.Context {
	return WithRecorder(ctx, NewRecorder())
}

// WithRecorder returns ctx carrying rec.
func WithRecorder(ctx context.Context, rec *Recorder) context.Context {
	return context.WithValue(ctx, recorderKey{}, rec)
}

// FromContext returns the Recorder carried by ctx, or nil if there is none.
func FromContext(ctx context.Context) *Recorder {
	rec, _ := ctx.Value(recorderKey{}).(*Recorder)
	return rec
}

// Enter pushes a frame for the named scope onto the context's recorder. The
// label is composed eagerly from name and the argument values, so the frame
// records the arguments as they were at entry:
//
//	defer trace.Enter(ctx, "matrix.At", row, col).Release()
//
// produces the label "matrix.At(3, 7)". Enter on a context without a recorder
// returns a nil frame whose Release is a no-op.
func Enter(ctx context.Context, name string, args ...interface{}) *Frame {
	if !captureEnabled {
		return nil
	}
	rec := FromContext(ctx)
	if rec == nil {
		return nil
	}
	return rec.Push(formatLabel(name, args))
}

func formatLabel(name string, args []interface{}) string {
	if len(args) == 0 {
		return name + "()"
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", arg)
	}
	b.WriteByte(')')
	return b.String()
}
