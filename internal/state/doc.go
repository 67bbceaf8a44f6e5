// Package state shares the runtime's status between the log poller and the UI.
//
// The poller is the single writer; the UI refresh loop reads copies via
// Store.Snapshot. The resolved Profile is seeded once by NewStore and never
// changes afterwards.
package state
