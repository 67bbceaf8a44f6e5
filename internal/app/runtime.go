package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/five82/awshell/internal/config"
	"github.com/five82/awshell/internal/logging"
	"github.com/five82/awshell/internal/logtail"
	"github.com/five82/awshell/internal/prefs"
	"github.com/five82/awshell/internal/state"
	"github.com/five82/awshell/internal/ui"
)

// CLIArgs is the startup configuration handed to the runtime. Port only
// applies when HasPort is set.
type CLIArgs struct {
	Testing bool
	Verbose bool
	Port    uint16
	HasPort bool
}

// Options configure the runtime. Zero values use defaults.
type Options struct {
	ConfigPath string // empty uses ~/.config/aw-shell/config.toml
	PrefsPath  string // empty uses ~/.config/aw-shell/prefs.toml
	Version    string
	LogLines   int // retained log lines; zero uses 500

	// Shell runs the interactive UI and blocks until it exits. Nil uses ui.Run.
	Shell func(ctx context.Context, opts ui.Options) error
}

// Runtime owns the shell from configuration onwards. Its startup args are
// written exactly once through Publish and read by Run.
type Runtime struct {
	opts Options
	args atomic.Pointer[CLIArgs]
}

// New returns an unconfigured runtime.
func New(opts Options) *Runtime {
	return &Runtime{opts: opts}
}

// Publish stores the startup args. Only the first call succeeds.
func (r *Runtime) Publish(args CLIArgs) error {
	if !r.args.CompareAndSwap(nil, &args) {
		return ErrAlreadyPublished
	}
	return nil
}

// Args returns the published startup args.
func (r *Runtime) Args() (CLIArgs, bool) {
	p := r.args.Load()
	if p == nil {
		return CLIArgs{}, false
	}
	return *p, true
}

// Run boots the shell and blocks until the UI exits or ctx is cancelled.
func (r *Runtime) Run(ctx context.Context) error {
	args, ok := r.Args()
	if !ok {
		return ErrNotPublished
	}

	cfg, err := config.Load(r.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	profile := Resolve(args, cfg, r.opts.Version)

	if err := os.MkdirAll(profile.StorePath, 0o755); err != nil {
		return fmt.Errorf("create data store: %w", err)
	}

	logFile, err := logging.OpenFile(profile.LogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := slog.New(logging.NewFileHandler(logFile, logging.Level(args.Verbose)))
	logger.Info("aw-shell runtime starting",
		"version", profile.Version,
		"mode", profile.Mode(),
		"port", profile.Port,
		"port_source", profile.PortFrom,
		"data_store", profile.StorePath)
	prefsPath := pathOrDefault(r.opts.PrefsPath, prefs.DefaultPath())
	logger.Debug("runtime config loaded",
		"config_path", pathOrDefault(r.opts.ConfigPath, config.DefaultPath()),
		"prefs_path", prefsPath,
		"refresh_every", cfg.RefreshEvery)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := state.NewStore(profile)
	StartPoller(ctx, store, logtail.NewFollower(profile.LogPath, r.opts.LogLines), cfg.RefreshEvery, logger)

	shell := r.opts.Shell
	if shell == nil {
		shell = ui.Run
	}
	userPrefs := prefs.Load(prefsPath)

	err = shell(ctx, ui.Options{
		Store:        store,
		RefreshEvery: cfg.RefreshEvery,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    prefsPath,
		Logger:       logger,
	})
	if err != nil {
		logger.Error("shell exited with error", "error", err)
		return fmt.Errorf("run shell: %w", err)
	}
	logger.Info("aw-shell runtime stopped")
	return nil
}

func pathOrDefault(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}
