package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesSampleConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"init", "--out", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("init execute: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "spec2snippets configuration") {
		t.Fatalf("unexpected config contents: %s", s)
	}
	if !strings.Contains(s, "# lang: all") {
		t.Fatalf("sample should document the lang option: %s", s)
	}
}

func TestInit_SampleConfigRoundTrips(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"init", "--out", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("init execute: %v", err)
	}

	// Every documented key must be accepted by the generate config loader once
	// uncommented, so scaffolded configs never trip the unknown-field check.
	data, _ := os.ReadFile(path)
	var uncommented []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, ":") && !strings.Contains(line, ". ") {
			uncommented = append(uncommented, strings.TrimPrefix(line, "# "))
		}
	}
	if len(uncommented) == 0 {
		t.Fatalf("no commented option lines found:\n%s", data)
	}
	cfg := defaultGenerateConfig()
	cfgPath := filepath.Join(dir, "uncommented.yaml")
	if err := os.WriteFile(cfgPath, []byte(strings.Join(uncommented, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("write uncommented config: %v", err)
	}
	if err := applyGenerateConfigFromFile(&cfg, cfgPath); err != nil {
		t.Fatalf("scaffolded options rejected: %v", err)
	}
	if cfg.Input != "./openapi.yaml" || cfg.Lang != "all" || cfg.Out != "./snippets" {
		t.Fatalf("config: %+v", cfg)
	}
}

func TestInit_ExistingWithoutForce(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("prewrite: %v", err)
	}

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"init", "--out", path})

	err := root.Execute()
	if err == nil {
		t.Fatalf("expected error for existing file without --force")
	}
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error, got %T: %v", err, err)
	}
}

func TestInit_ForceOverwrites(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("prewrite: %v", err)
	}

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"init", "--out", path, "--force"})

	if err := root.Execute(); err != nil {
		t.Fatalf("init --force execute: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "spec2snippets configuration") {
		t.Fatalf("file was not overwritten: %s", data)
	}
}
