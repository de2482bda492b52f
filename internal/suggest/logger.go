// SPDX-License-Identifier: MPL-2.0

package suggest

// Logger receives diagnostic messages from the pipeline. *log.Logger from
// github.com/charmbracelet/log satisfies it. Logging never influences results.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(any, ...any) {}
func (nopLogger) Info(any, ...any)  {}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger { return nopLogger{} }
