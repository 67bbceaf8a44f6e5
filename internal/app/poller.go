package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/awshell/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// LogSource yields the current tail of the runtime log.
type LogSource interface {
	Poll() ([]string, error)
}

// StartPoller launches a background goroutine that refreshes the store from
// src, backing off while reads keep failing. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, src LogSource, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	go func() {
		for {
			refresh(store, src, logger)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

func refresh(store *state.Store, src LogSource, logger *slog.Logger) {
	lines, err := src.Poll()
	if err != nil {
		logger.Warn("log poll failed", "error", err)
	}
	store.Update(lines, err)
}

// calculateBackoff doubles base for each consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	if failures > 16 {
		return maxBackoff
	}
	d := base << failures
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}
