// Package faultline provides guarded assertions, typed failure records, and a
// per-goroutine dispatch boundary that classifies any failure escaping it.
//
// Library code declares failure variants with Declare, guards conditions with
// Assert, Check and Expect, and instruments scopes with the trace package.
// Application code wraps each unit of work in Run, which resets the scope
// trace, invokes the entry function, and, if a panic escapes, sorts it into
// one of three outcomes before handing it to a caller-supplied handler:
//
//   - KnownOutcome: the panic value is a *Failure raised by this package.
//     Constructing a Failure freezes the goroutine's trace recorder, so the
//     handler can inspect the exact call chain active at the raise site.
//   - ForeignOutcome: the panic value implements error (including runtime
//     errors such as nil dereferences).
//   - UnknownOutcome: any other panic payload.
//
// The boundary only classifies and delivers; it never prints, persists, or
// retries. Two build tags compile the machinery out: faultline_nodiag removes
// the guards per the rules documented on each, and faultline_notrace removes
// frame recording.
package faultline
