package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI color codes for terminal output
const (
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// Log levels with symbols; widths tuned so columns align.
const (
	LogInfo    = "ℹ  info   "
	LogWarning = "⚠  warning"
	LogError   = "✖  error  "
	LogSuccess = "✔  success"
)

// Logger components
const (
	ComponentHTTPServer = "HTTP SERVER"
	ComponentValidator  = "VALIDATOR"
	ComponentNegotiator = "NEGOTIATOR"
	ComponentStore      = "STORE"
)

// Logger writes Prism-style component logs.
type Logger struct {
	out       io.Writer
	indent    string
	requestID string
}

// NewLogger creates a Logger writing to out, or stdout when out is nil.
func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{out: out, indent: "    "}
}

// WithRequest returns a copy of the logger tagged with a request ID.
func (l *Logger) WithRequest(id string) *Logger {
	cp := *l
	cp.requestID = id
	return &cp
}

// RequestReceived prints the first line of a request block.
func (l *Logger) RequestReceived(method, path string) {
	fmt.Fprintf(l.out, "[%s] %s %s %s   %s (%s)\n",
		ComponentHTTPServer,
		strings.ToLower(method),
		path,
		LogInfo,
		"Request received",
		l.requestID,
	)
}

func (l *Logger) log(component, level, message string) {
	var colorCode string
	switch level {
	case LogWarning:
		colorCode = colorYellow
	case LogError:
		colorCode = colorRed
	default:
		colorCode = ""
	}

	if colorCode != "" {
		fmt.Fprintf(l.out, "%s[%s] %s%s%s   %s\n", l.indent, component, colorCode, level, colorReset, message)
	} else {
		fmt.Fprintf(l.out, "%s[%s] %s   %s\n", l.indent, component, level, message)
	}
}

// Info logs an info message.
func (l *Logger) Info(component, message string) {
	l.log(component, LogInfo, message)
}

// Warning logs a warning message.
func (l *Logger) Warning(component, message string) {
	l.log(component, LogWarning, message)
}

// Error logs an error message.
func (l *Logger) Error(component, message string) {
	l.log(component, LogError, message)
}

// Success logs a success message.
func (l *Logger) Success(component, message string) {
	l.log(component, LogSuccess, message)
}

// RespondWith logs the status code sent back to the client.
func (l *Logger) RespondWith(statusCode int) {
	l.Info(ComponentNegotiator, fmt.Sprintf("> Responding with \"%d\"", statusCode))
}

// Violation emits a final Violation line.
func (l *Logger) Violation(message string) {
	l.Error(ComponentValidator, "Violation: request "+message)
}
