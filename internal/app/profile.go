package app

import (
	"github.com/five82/awshell/internal/config"
	"github.com/five82/awshell/internal/state"
)

const (
	// DefaultPort is the production server port.
	DefaultPort uint16 = 5600
	// TestingPort is used in testing mode so it never collides with production.
	TestingPort uint16 = 5666
)

// Resolve derives the runtime profile. An explicit port always wins over the
// mode-derived default.
func Resolve(args CLIArgs, cfg config.Config, version string) state.Profile {
	p := state.Profile{
		Testing:   args.Testing,
		Verbose:   args.Verbose,
		StorePath: cfg.StorePath(args.Testing),
		LogPath:   cfg.LogPath(args.Testing),
		Version:   version,
	}

	switch {
	case args.HasPort:
		p.Port, p.PortFrom = args.Port, "flag"
	case args.Testing:
		p.Port, p.PortFrom = TestingPort, "testing"
	default:
		p.Port, p.PortFrom = DefaultPort, "default"
	}
	return p
}
