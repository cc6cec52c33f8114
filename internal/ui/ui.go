// Released under an MIT license. See LICENSE.

// Package ui provides an interactive prompt for the lox language.
package ui

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/michaelmacinnis/lox/internal/engine"
	"github.com/michaelmacinnis/lox/internal/system/config"
	"github.com/michaelmacinnis/lox/internal/system/history"
	"github.com/peterh/liner"
)

// Runner is the interface for things that run lox source.
type Runner interface {
	Run(source string) engine.Status
}

// Run prompts for lines and sends each one to r until end of input.
// Errors in a line are reported by r and do not end the session.
func Run(r Runner, c *config.T, stdout io.Writer, logger *slog.Logger) error {
	cli := liner.NewLiner()

	defer func() {
		if err := history.Save(c.History, cli.WriteHistory); err != nil {
			logger.Warn("cannot save history", slog.String("error", err.Error()))
		}

		_ = cli.Close()
	}()

	cli.SetCtrlCAborts(true)

	if err := history.Load(c.History, cli.ReadHistory); err != nil {
		logger.Warn("cannot load history", slog.String("error", err.Error()))
	}

	for {
		line, err := cli.Prompt(c.Prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			_, _ = io.WriteString(stdout, "\n")

			return nil
		default:
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		status := r.Run(line)

		logger.Debug("line evaluated", slog.String("status", status.String()))
	}
}
