package state

import (
	"errors"
	"testing"
	"time"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	s := NewStore(Profile{Port: 5600})

	before := time.Now()
	s.Update([]string{"one", "two"}, nil)

	snap := s.Snapshot()
	if snap.Profile.Port != 5600 {
		t.Fatalf("Profile.Port = %d, want 5600", snap.Profile.Port)
	}
	if len(snap.LogLines) != 2 || snap.LogLines[0] != "one" {
		t.Fatalf("LogLines = %#v, want 2 lines", snap.LogLines)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	snap.LogLines[0] = "changed"
	if again := s.Snapshot(); again.LogLines[0] != "one" {
		t.Fatalf("Snapshot should clone lines; got %q want %q", again.LogLines[0], "one")
	}
}

func TestStore_UpdateErrorKeepsPreviousLines(t *testing.T) {
	s := NewStore(Profile{})
	s.Update([]string{"kept"}, nil)

	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if len(snap.LogLines) != 1 || snap.LogLines[0] != "kept" {
		t.Fatalf("LogLines changed on error: %#v", snap.LogLines)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError = %v, want wrapping %v", snap.LastError, origErr)
	}
	if snap.ConsecutiveFailures != 1 || snap.IsStale() {
		t.Fatalf("ConsecutiveFailures = %d IsStale = %v, want 1/false", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(nil, origErr)
	if !s.Snapshot().IsStale() {
		t.Fatalf("IsStale = false after two failures, want true")
	}

	s.Update([]string{"fresh"}, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.LastError != nil {
		t.Fatalf("success did not reset failures: %+v", snap)
	}
}

func TestProfile_Mode(t *testing.T) {
	if got := (Profile{}).Mode(); got != "production" {
		t.Fatalf("Mode() = %q, want production", got)
	}
	if got := (Profile{Testing: true}).Mode(); got != "testing" {
		t.Fatalf("Mode() = %q, want testing", got)
	}
}
