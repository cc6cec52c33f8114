// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for lox source code.
package engine

import (
	"io"
	"log/slog"

	"github.com/michaelmacinnis/lox/internal/diagnostic"
	"github.com/michaelmacinnis/lox/internal/engine/builtin"
	"github.com/michaelmacinnis/lox/internal/engine/interpreter"
	"github.com/michaelmacinnis/lox/internal/engine/resolver"
	"github.com/michaelmacinnis/lox/internal/interface/cell"
	"github.com/michaelmacinnis/lox/internal/reader"
	"github.com/michaelmacinnis/lox/internal/type/fault"
)

// Status is the outcome of running lox source.
type Status int

// Run outcomes.
const (
	OK Status = iota
	StaticError
	RuntimeError
)

// String returns the name of the status s. Useful for debugging.
func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case StaticError:
		return "static error"
	case RuntimeError:
		return "runtime error"
	}

	return "unknown"
}

// T (engine) is a facade in front of the machinery for evaluating lox code.
// Global definitions persist from one call to Run to the next.
type T struct {
	interpreter *interpreter.T
	logger      *slog.Logger
	stderr      io.Writer
}

// New creates a new T. Output from print statements goes to stdout and
// errors go to stderr. A nil logger discards all log records.
func New(stdout, stderr io.Writer, logger *slog.Logger) *T {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	i := interpreter.New(stdout, logger)

	builtin.Install(i)

	return &T{
		interpreter: i,
		logger:      logger,
		stderr:      stderr,
	}
}

// Define installs the value v as the global name. Hosts use this to add
// native functions before running code.
func (e *T) Define(name string, v cell.T) {
	e.interpreter.Define(name, v)
}

// Run scans, parses, resolves, and then evaluates source.
// Evaluation does not begin if any static errors are found.
func (e *T) Run(source string) Status {
	d := diagnostic.New()

	stmts := reader.Read(source, d)
	if d.Len() == 0 {
		resolver.New(e.interpreter, d).Resolve(stmts)
	}

	if n := d.Len(); n != 0 {
		e.logger.Debug("static errors", slog.Int("error-count", n))

		_, _ = d.WriteTo(e.stderr)

		return StaticError
	}

	err := e.interpreter.Interpret(stmts)
	if err == nil {
		return OK
	}

	msg := err.Error()
	if f, ok := fault.As(err); ok {
		msg = f.Report()
	}

	e.logger.Debug("runtime error", slog.String("error", err.Error()))

	_, _ = io.WriteString(e.stderr, msg+"\n")

	return RuntimeError
}
