// Released under an MIT license. See LICENSE.

/*
Lox is a small, dynamically-typed scripting language with lexical scope,
first-class functions, closures, and single-inheritance classes:

	class Greeter {
	    init(name) {
	        this.name = name;
	    }

	    greet() {
	        print "Hello, " + this.name + "!";
	    }
	}

	Greeter("world").greet();

Run with a path to run a script, or with no arguments for an interactive
prompt. When stdin is not a terminal the program is read from stdin.

Lox is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/michaelmacinnis/lox/internal/engine"
	"github.com/michaelmacinnis/lox/internal/system/config"
	"github.com/michaelmacinnis/lox/internal/system/options"
	"github.com/michaelmacinnis/lox/internal/ui"
)

const version = "lox 0.1.0"

// Exit statuses follow sysexits.h.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 64 // EX_USAGE
	exitData    = 65 // EX_DATAERR: static errors in the program.
	exitRuntime = 70 // EX_SOFTWARE: runtime error.
	exitIO      = 74 // EX_IOERR: the program could not be read.
	exitConfig  = 78 // EX_CONFIG
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := options.Parse(argv, version)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if opts.Message != "" {
		fmt.Fprintln(stdout, opts.Message)
		return exitOK
	}

	c, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	level := slog.LevelWarn
	if opts.Trace || c.Trace {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	e := engine.New(stdout, stderr, logger)

	if opts.Interactive {
		if err := ui.Run(e, c, stdout, logger); err != nil {
			logger.Error("prompt failed", slog.String("error", err.Error()))
			return exitFailure
		}

		return exitOK
	}

	source, err := read(opts.Script, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIO
	}

	switch e.Run(source) {
	case engine.OK:
	case engine.StaticError:
		return exitData
	case engine.RuntimeError:
		return exitRuntime
	}

	return exitOK
}

func read(path string, stdin io.Reader) (string, error) {
	if path == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}

	return string(b), nil
}
