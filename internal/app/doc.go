// Package app is the shell runtime: the part of awshell that owns the process
// once the command line has been parsed.
//
// # Startup handoff
//
// A Runtime is created unconfigured. The caller publishes its startup args
// exactly once with Publish and then calls Run:
//
//	rt := app.New(app.Options{Version: cli.Version})
//	if err := rt.Publish(app.CLIArgs{Testing: true}); err != nil {
//		return err
//	}
//	return rt.Run(ctx)
//
// The args live in a write-once slot on the Runtime rather than in a package
// global. A second Publish returns ErrAlreadyPublished and Run without a prior
// Publish returns ErrNotPublished.
//
// # Profile
//
// Resolve turns the args plus the TOML config into a state.Profile:
//
//   - Port: --port if given, else 5666 in testing mode, else 5600
//   - Data store: <data_dir>/aw-shell, or aw-shell-testing in testing mode
//   - Log file: <log_dir>/aw-shell.log, or aw-shell-testing.log
//   - Level: debug with --verbose, info otherwise
//
// # Run
//
//	Run()
//	 ├─> config.Load()         read ~/.config/aw-shell/config.toml
//	 ├─> Resolve()             build the profile
//	 ├─> os.MkdirAll()         create the data store
//	 ├─> logging.OpenFile()    runtime log, tailed by the UI
//	 ├─> StartPoller()         follow the log into state.Store
//	 └─> ui.Run()              Bubble Tea shell (blocks)
//
// Run returns nil when the user quits or ctx is cancelled. Every other failure
// is returned to the caller, which treats it as fatal.
package app
