// Package config loads the shell's optional TOML settings file.
//
// The default location is ~/.config/aw-shell/config.toml. A missing file is
// not an error; every field falls back to a default:
//
//	data_dir = "~/.local/share/activitywatch"
//	log_dir = "~/.cache/activitywatch/log"
//	refresh_seconds = 2
//
// Empty or whitespace-only values also fall back to defaults, and a leading
// tilde is expanded to the user's home directory.
//
// Testing mode never shares a data store or log file with production: see
// Config.StorePath and Config.LogPath.
package config
