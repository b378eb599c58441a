package unit

import (
	"io"
	"os"
)

// Logger is the pair of streams the runner reports to.
type Logger struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewLogger returns a logger bound to the process streams.
func NewLogger() *Logger {
	return &Logger{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
