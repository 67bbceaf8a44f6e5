// Package cli defines the awshell command-line surface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

// Version is stamped at build time with -ldflags "-X github.com/five82/awshell/internal/cli.Version=...".
var Version = "dev"

const description = "ActivityWatch desktop shell"

var (
	// ErrHelp is returned after usage text has been written for -h/--help.
	ErrHelp = errors.New("help requested")
	// ErrVersion is returned after the version string has been written for -V/--version.
	ErrVersion = errors.New("version requested")
)

// UsageError reports malformed or unrecognized command-line input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Args holds the parsed command line. Port is only meaningful when HasPort is set.
type Args struct {
	Testing bool
	Verbose bool
	Port    uint16
	HasPort bool
}

// Parse reads args (program name first) and returns the parsed options.
//
// Help and version requests write to stdout and return ErrHelp or ErrVersion.
// Malformed input writes a diagnostic and usage to stderr and returns a
// *UsageError. Callers map the result to an exit status with ExitCode.
func Parse(args []string, stdout, stderr io.Writer) (Args, error) {
	name := "awshell"
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		name = filepath.Base(args[0])
		args = args[1:]
	}

	var parsed Args
	fs := newFlagSet(name, &parsed)
	help := fs.BoolP("help", "h", false, "Print help")
	version := fs.BoolP("version", "V", false, "Print version")

	if err := rejectSwitchValues(fs, args); err != nil {
		return Args{}, usageFailure(fs, stderr, err)
	}
	if err := fs.Parse(args); err != nil {
		return Args{}, usageFailure(fs, stderr, err)
	}
	if fs.NArg() > 0 {
		return Args{}, usageFailure(fs, stderr, fmt.Errorf("unexpected argument %q", fs.Arg(0)))
	}

	if *help {
		printUsage(fs, stdout)
		return Args{}, ErrHelp
	}
	if *version {
		fmt.Fprintf(stdout, "%s %s\n", name, Version)
		return Args{}, ErrVersion
	}

	parsed.HasPort = fs.Changed("port")
	return parsed, nil
}

// ExitCode maps a Parse or startup error to a process exit status.
func ExitCode(err error) int {
	var usageErr *UsageError
	switch {
	case err == nil, errors.Is(err, ErrHelp), errors.Is(err, ErrVersion):
		return 0
	case errors.As(err, &usageErr):
		return 2
	default:
		return 1
	}
}

func newFlagSet(name string, into *Args) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.BoolVar(&into.Testing, "testing", false, "Run in testing mode (port 5666, separate database)")
	fs.BoolVarP(&into.Verbose, "verbose", "v", false, "Enable verbose/debug logging")
	fs.Uint16Var(&into.Port, "port", 0, "Override the port number")
	return fs
}

// rejectSwitchValues refuses "--testing=false" style input: boolean flags are
// switches and take no value. pflag alone would accept it.
func rejectSwitchValues(fs *pflag.FlagSet, args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return nil
		}
		if name, ok := strings.CutPrefix(arg, "--"); ok {
			if flag := fs.Lookup(name); flag != nil && flag.NoOptDefVal == "" {
				i++ // the next argument is this flag's value
				continue
			}
		}

		body, _, hasValue := strings.Cut(arg, "=")
		if !hasValue || !strings.HasPrefix(body, "-") {
			continue
		}
		var flag *pflag.Flag
		if name, ok := strings.CutPrefix(body, "--"); ok {
			flag = fs.Lookup(name)
		} else if name := strings.TrimPrefix(body, "-"); len(name) == 1 {
			flag = fs.ShorthandLookup(name)
		}
		if flag != nil && flag.Value.Type() == "bool" {
			return fmt.Errorf("flag %s does not take a value", body)
		}
	}
	return nil
}

func usageFailure(fs *pflag.FlagSet, stderr io.Writer, err error) error {
	fmt.Fprintf(stderr, "%s: %v\n\n", fs.Name(), err)
	printUsage(fs, stderr)
	return &UsageError{Err: err}
}

func printUsage(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "%s\n\nUsage: %s [OPTIONS]\n\nOptions:\n%s", description, fs.Name(), fs.FlagUsages())
}
