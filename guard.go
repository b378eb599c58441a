package faultline

import "context"

// Assert raises c if cond evaluates to false. The condition is a closure so
// that builds with the faultline_nodiag tag skip its evaluation entirely: any
// side effect inside cond does not happen when diagnostics are compiled out.
func Assert(ctx context.Context, cond func() bool, c *Class, line int) {
	if !diagnosticsEnabled {
		return
	}
	if !cond() {
		c.Raise(ctx, line)
	}
}

// Check raises c if cond is false. Unlike Assert, the condition expression is
// evaluated at the call site, so it still executes when diagnostics are
// compiled out; only the test and the raise are gated. Use Check when the
// guarded expression has side effects that must happen in every build.
func Check(ctx context.Context, cond bool, c *Class, line int) {
	if !diagnosticsEnabled {
		return
	}
	if !cond {
		c.Raise(ctx, line)
	}
}

// Expect calls fn and raises c if cmp(want, got) is false. The call to fn
// always happens, in every build; only the comparison and the raise are
// compiled out under faultline_nodiag.
func Expect[T any](ctx context.Context, want T, cmp func(want, got T) bool, fn func() T, c *Class, line int) {
	got := fn()
	if !diagnosticsEnabled {
		return
	}
	if !cmp(want, got) {
		c.Raise(ctx, line)
	}
}

// Try runs fn and replaces any panic escaping it with a raise of c. It is
// meant for calls into code outside this framework whose failures should
// surface as a declared variant rather than as a foreign error. Under
// faultline_nodiag fn runs unguarded.
func Try(ctx context.Context, c *Class, line int, fn func()) {
	if !diagnosticsEnabled {
		fn()
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.Raise(ctx, line)
		}
	}()
	fn()
}
