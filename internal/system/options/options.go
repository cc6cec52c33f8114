// Released under an MIT license. See LICENSE.

// Package options parses lox's command line.
package options

import (
	"errors"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// ErrUsage is returned when the command line does not match the usage.
var ErrUsage = errors.New("usage error")

//nolint:gochecknoglobals
var (
	// terminal reports whether stdin is a TTY.
	terminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	usage = `lox

Usage:
  lox [-t] [-c FILE] [SCRIPT]
  lox -h
  lox -v

Arguments:
  SCRIPT  Path to a lox script.

Options:
  -c, --config=FILE  Read settings from FILE instead of ~/.lox.yaml.
  -t, --trace        Log evaluator activity to stderr.
  -h, --help         Display this help.
  -v, --version      Print lox version.

If no SCRIPT is given and lox's stdin is a TTY, lox starts an interactive
prompt. Otherwise, lox reads and runs the script on stdin.
`
)

// T (options) holds the parsed command line.
type T struct {
	Config      string // Settings file. Empty means the default.
	Interactive bool
	Message     string // Help or version text. Nothing else should be done.
	Script      string // Empty means stdin.
	Trace       bool
}

// Parse parses the command line arguments in argv (without the program
// name). The error wraps ErrUsage and carries the usage text if argv
// does not match.
func Parse(argv []string, version string) (*T, error) {
	var output string

	p := &docopt.Parser{
		HelpHandler: func(_ error, text string) {
			output = text
		},
	}

	if argv == nil {
		argv = []string{}
	}

	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, usageError{output}
	}

	if output != "" {
		return &T{Message: output}, nil
	}

	t := &T{}

	t.Config, _ = opts.String("--config")
	t.Script, _ = opts.String("SCRIPT")
	t.Trace, _ = opts.Bool("--trace")

	t.Interactive = t.Script == "" && terminal()

	return t, nil
}

type usageError struct {
	usage string
}

func (e usageError) Error() string {
	return e.usage
}

func (e usageError) Unwrap() error {
	return ErrUsage
}
