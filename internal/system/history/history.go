// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive prompt's history.
package history

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Load calls read with the contents of the history file at path.
// An empty path, or a file that does not exist yet, is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("history: %w", err)
	}

	return f.Close()
}

// Save calls write to replace the contents of the history file at path.
// An empty path disables history.
func Save(path string, write func(w io.Writer) (int, error)) error {
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("history: %w", err)
	}

	return f.Close()
}
