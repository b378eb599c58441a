//go:build faultline_notrace

package trace

const captureEnabled = false
