package options

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	terminal = func() bool { return true }

	tests := []struct {
		name     string
		argv     []string
		expected T
	}{
		{"Interactive", []string{}, T{Interactive: true}},
		{"Script", []string{"a.lox"}, T{Script: "a.lox"}},
		{"Trace", []string{"-t", "a.lox"}, T{Script: "a.lox", Trace: true}},
		{"Config", []string{"--config=x.yaml"}, T{Config: "x.yaml", Interactive: true}},
		{"ShortConfig", []string{"-c", "x.yaml", "a.lox"}, T{Config: "x.yaml", Script: "a.lox"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := Parse(tt.argv, "lox test")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if *actual != tt.expected {
				t.Fatalf("expected %+v; got %+v", tt.expected, *actual)
			}
		})
	}
}

func TestParseNotATerminal(t *testing.T) {
	terminal = func() bool { return false }

	actual, err := Parse([]string{}, "lox test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if actual.Interactive {
		t.Fatalf("expected a non-interactive session")
	}
}

func TestHelpAndVersion(t *testing.T) {
	help, err := Parse([]string{"-h"}, "lox test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(help.Message, "Usage:") {
		t.Fatalf("expected usage text; got %q", help.Message)
	}

	version, err := Parse([]string{"--version"}, "lox test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if version.Message != "lox test" {
		t.Fatalf("expected version text; got %q", version.Message)
	}
}

func TestUsageError(t *testing.T) {
	_, err := Parse([]string{"a.lox", "b.lox"}, "lox test")
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected a usage error; got %v", err)
	}
}
