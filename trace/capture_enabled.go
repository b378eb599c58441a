//go:build !faultline_notrace

package trace

// captureEnabled gates frame recording at build time. Building with the
// faultline_notrace tag compiles Push, Release and Snapshot down to no-ops.
const captureEnabled = true
