// Package ui is the Bubble Tea front end of the shell.
//
// The screen has three parts: a header describing the resolved startup
// profile (mode, port and where it came from, data store, log file, level),
// a scrollable pane with the runtime's own log, and a help footer. The model
// re-reads state.Store on a tick no slower than once per second; it never
// touches the log file directly.
//
// Keys: q quits, ? expands help, T cycles the theme and saves it to prefs,
// f pauses or resumes following the log, g/G jump to top or bottom.
package ui
