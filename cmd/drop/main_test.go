package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		in, expected string
	}{
		{"~/.drop/drop.log", filepath.Join("/home/tester", ".drop/drop.log")},
		{"/var/log/drop.log", "/var/log/drop.log"},
		{"drop.log", "drop.log"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := expandHome(tc.in); got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drop.yaml")
	if err := os.WriteFile(path, []byte("world:\n  fall_speed: 350\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagConfig = ""
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command failed: %v", err)
	}
	if !strings.Contains(out.String(), "fall_speed: 350") {
		t.Errorf("output does not reflect the overlay:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "spawn_interval: 1s") {
		t.Errorf("output should keep the defaults:\n%s", out.String())
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	if _, err := newLogger(&bytes.Buffer{}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
