package faultline

import (
	"context"
	"fmt"

	"github.com/faultline/faultline/trace"
)

// Class identifies one declared failure variant. Its origin (the qualified
// name of the declaring scope) and kind (the variant's own name) are fixed at
// declaration; only the source line varies per raised instance.
type Class struct {
	origin string
	kind   string
}

// Declare defines a failure variant. Declare once, at package level, next to
// the code that raises it:
//
//	var errOutOfRange = faultline.Declare("matrix.Dense", "OutOfRange")
func Declare(origin, kind string) *Class {
	return &Class{origin: origin, kind: kind}
}

// Failure is one raised instance of a Class. It is immutable once
// constructed.
type Failure struct {
	class *Class
	line  int
}

// New builds a Failure at the given source line and freezes the context's
// trace recorder, preserving the call chain as it stands at this moment.
// Freezing is unconditional; it happens whether or not the failure is
// subsequently raised.
func (c *Class) New(ctx context.Context, line int) *Failure {
	if rec := trace.FromContext(ctx); rec != nil {
		rec.Freeze()
	}
	return &Failure{class: c, line: line}
}

// Raise panics with a new Failure of this class. The panic is expected to
// propagate to the nearest enclosing Run on this goroutine.
func (c *Class) Raise(ctx context.Context, line int) {
	panic(c.New(ctx, line))
}

// Origin returns the qualified name of the scope that declared the failure.
func (f *Failure) Origin() string { return f.class.origin }

// Kind returns the variant name of the failure.
func (f *Failure) Kind() string { return f.class.kind }

// Line returns the source line supplied at the raise site.
func (f *Failure) Line() int { return f.line }

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s (line %d)", f.class.origin, f.class.kind, f.line)
}
