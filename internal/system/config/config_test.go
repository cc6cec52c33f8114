package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader("prompt: \"lox> \"\ntrace: true\nhistory: \"\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Prompt != "lox> " {
		t.Errorf("expected prompt %q; got %q", "lox> ", c.Prompt)
	}

	if !c.Trace {
		t.Errorf("expected trace to be enabled")
	}

	if c.History != "" {
		t.Errorf("expected history to be disabled; got %q", c.History)
	}
}

func TestDecodeEmpty(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Prompt != "> " || c.Trace {
		t.Fatalf("expected defaults; got %+v", c)
	}
}

func TestDecodeUnknownKey(t *testing.T) {
	if _, err := Decode(strings.NewReader("colour: blue\n")); err == nil {
		t.Fatalf("expected an error for an unknown setting")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lox.yaml")

	err := os.WriteFile(path, []byte("prompt: \">> \"\n"), 0o600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Prompt != ">> " {
		t.Fatalf("expected prompt %q; got %q", ">> ", c.Prompt)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Prompt != "> " {
		t.Fatalf("expected the default prompt; got %q", c.Prompt)
	}
}
