package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "lumicon" {
		t.Errorf("expected root command Use to be 'lumicon', got %q", rootCmd.Use)
	}

	expectedSubcommands := []string{"generate", "config", "version"}
	commands := rootCmd.Commands()

	nameSet := make(map[string]bool)
	for _, cmd := range commands {
		nameSet[cmd.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		if !nameSet[expected] {
			t.Errorf("expected root command to have subcommand %q", expected)
		}
	}
}

func TestGenerateFlags(t *testing.T) {
	expectedFlags := []string{"output", "font", "glyph", "watch"}
	for _, name := range expectedFlags {
		flag := generateCmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("expected generate command to have flag %q", name)
		}
	}

	// Verify output has short flag -o
	flag := generateCmd.Flags().ShorthandLookup("o")
	if flag == nil {
		t.Error("expected generate command to have short flag -o for output")
	} else if flag.Name != "output" {
		t.Errorf("expected short flag -o to map to 'output', got %q", flag.Name)
	}
}

func TestVersionOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"version"})

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	output := buf.String()
	if len(output) == 0 {
		t.Error("expected version command to produce output")
	}

	// Reset for other tests
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetArgs(nil)
}

func TestGenerateEndToEnd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icons")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"generate", "-o", out})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("generate command failed: %v", err)
	}

	for _, name := range []string{"icon16.png", "icon48.png", "icon128.png"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
		if !strings.Contains(buf.String(), "Created "+name) {
			t.Errorf("expected status line for %s", name)
		}
	}
	if !strings.Contains(buf.String(), "All icons created successfully!") {
		t.Error("expected the final completion line")
	}

	// Reset for other tests
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetArgs(nil)
}

func TestConfigOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"output: icons", "glyph: L", "#667eea"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected config output to contain %q, got:\n%s", want, output)
		}
	}

	// Reset for other tests
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetArgs(nil)
}
