// Package logtail follows the runtime's log file for the shell UI.
//
// Follower is used by the poller. Its first poll reads only the last N lines
// through a ring buffer sized to N, so a log that has grown over many runs is
// never loaded whole. After that it remembers its byte offset, reads only
// what was appended, and keeps an incomplete trailing line until its newline
// arrives. When the file shrinks or the path now names a different file
// (truncation or rotation), it seeds again from the new file. A missing file
// is treated as empty rather than as an error, since the runtime may not have
// written anything yet.
//
//	f := logtail.NewFollower(cfg.LogPath(false), 400)
//	lines, err := f.Poll()
package logtail
