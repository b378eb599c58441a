// Package trace records, per goroutine, the ordered sequence of scope labels
// that were active when a failure was raised. A Recorder grows a frame for
// every instrumented scope entered and shrinks on exit, until it is frozen:
// from then on exits no longer pop, so the stack preserved is exactly the call
// chain that existed at the moment of failure.
package trace

// Recorder tracks the active scope labels for a single goroutine. It is not
// safe for concurrent use; each goroutine owns its own Recorder, typically
// carried in a context.Context.
type Recorder struct {
	stack  []string
	frozen bool
}

// NewRecorder returns an empty, unfrozen Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Frame is the handle returned by Push. Releasing it removes the frame from
// the owning Recorder unless the Recorder has been frozen in the meantime.
type Frame struct {
	rec      *Recorder
	released bool
}

// Push appends label to the recorder's stack and returns the handle that the
// entering scope must release on exit. Pushes are never gated by the frozen
// flag; only pops are.
func (r *Recorder) Push(label string) *Frame {
	if !captureEnabled || r == nil {
		return nil
	}
	r.stack = append(r.stack, label)
	return &Frame{rec: r}
}

// Release removes the frame from its recorder. It is a no-op if the recorder
// was frozen after the frame was pushed, if the frame was already released,
// or on a nil frame (from a recorder-less context).
func (f *Frame) Release() {
	if f == nil || f.released {
		return
	}
	f.released = true
	if f.rec.frozen {
		return
	}
	if n := len(f.rec.stack); n > 0 {
		f.rec.stack = f.rec.stack[:n-1]
	}
}

// Freeze stops the recorder from popping frames on release. Idempotent.
func (r *Recorder) Freeze() {
	if r == nil {
		return
	}
	r.frozen = true
}

// Frozen reports whether the recorder has been frozen since the last reset.
func (r *Recorder) Frozen() bool {
	return r != nil && r.frozen
}

// Reset clears the stack and unfreezes the recorder, regardless of prior
// state.
func (r *Recorder) Reset() {
	if r == nil {
		return
	}
	r.stack = r.stack[:0]
	r.frozen = false
}

// Snapshot returns the labels currently on the stack, oldest first. It is a
// copy of the live stack at call time.
func (r *Recorder) Snapshot() []string {
	if !captureEnabled || r == nil || len(r.stack) == 0 {
		return nil
	}
	out := make([]string, len(r.stack))
	copy(out, r.stack)
	return out
}

// Depth returns the number of frames currently on the stack.
func (r *Recorder) Depth() int {
	if r == nil {
		return 0
	}
	return len(r.stack)
}
