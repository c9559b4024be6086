// Package log provides the small leveled logger shared by the
// emulator components.
package log

import (
	"fmt"
	"io"
	"os"
)

// Logger is implemented by anything the emulator can log to.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	w     io.Writer
	debug bool
}

// New returns a Logger writing to stdout.
func New() Logger {
	return &logger{w: os.Stdout}
}

// NewDebug returns a Logger writing to stdout with debug output
// enabled.
func NewDebug() Logger {
	return &logger{w: os.Stdout, debug: true}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	fmt.Fprintf(l.w, "[DEBUG]\t"+format+"\n", args...)
}
