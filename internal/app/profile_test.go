package app

import (
	"path/filepath"
	"testing"

	"github.com/five82/awshell/internal/config"
)

func TestResolve_PortPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		args     CLIArgs
		wantPort uint16
		wantFrom string
	}{
		{"production default", CLIArgs{}, DefaultPort, "default"},
		{"testing default", CLIArgs{Testing: true}, TestingPort, "testing"},
		{"explicit port", CLIArgs{Port: 5667, HasPort: true}, 5667, "flag"},
		{"explicit port beats testing", CLIArgs{Testing: true, Port: 5667, HasPort: true}, 5667, "flag"},
		{"explicit zero", CLIArgs{Port: 0, HasPort: true}, 0, "flag"},
		{"port ignored without HasPort", CLIArgs{Port: 1234}, DefaultPort, "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Resolve(tt.args, config.Config{DataDir: "/data", LogDir: "/logs"}, "v1")
			if p.Port != tt.wantPort || p.PortFrom != tt.wantFrom {
				t.Fatalf("Resolve port = %d (%s), want %d (%s)", p.Port, p.PortFrom, tt.wantPort, tt.wantFrom)
			}
		})
	}
}

func TestResolve_TestingIsolatesStore(t *testing.T) {
	cfg := config.Config{DataDir: "/data", LogDir: "/logs"}

	prod := Resolve(CLIArgs{}, cfg, "v1")
	test := Resolve(CLIArgs{Testing: true, Verbose: true}, cfg, "v1")

	if prod.StorePath == test.StorePath || prod.LogPath == test.LogPath {
		t.Fatalf("testing profile shares paths with production: %+v vs %+v", test, prod)
	}
	if test.StorePath != filepath.Join("/data", "aw-shell-testing") {
		t.Fatalf("StorePath = %q", test.StorePath)
	}
	if !test.Verbose || prod.Verbose {
		t.Fatalf("Verbose not carried through: prod=%v test=%v", prod.Verbose, test.Verbose)
	}
	if test.Version != "v1" {
		t.Fatalf("Version = %q, want v1", test.Version)
	}
}
