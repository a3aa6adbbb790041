// Package timeutil provides the delay helper and time formatting utilities.
package timeutil

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sgaunet/cikit/internal/logger"
)

// FormatDuration formats a duration into a human-readable string.
// It rounds to the nearest second and displays in "Xm Ys" or "Ys" format.
//
// Examples:
//   - 1m 23s for durations >= 1 minute
//   - 45s for durations < 1 minute
//   - 480m 0s for 8-hour duration (no hour formatting)
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := d / time.Minute
	seconds := (d % time.Minute) / time.Second

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// maxMillis is the largest millisecond count a time.Duration can hold.
const maxMillis = math.MaxInt64 / int64(time.Millisecond)

// Millis converts a millisecond count to a duration, clamping negatives to
// zero and values beyond the time.Duration range to its maximum.
func Millis(ms int) time.Duration {
	if ms <= 0 {
		return 0
	}
	if int64(ms) > maxMillis {
		return time.Duration(maxMillis) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// Delay returns a channel that is closed once at least ms milliseconds have
// elapsed. Zero or negative values close the channel as soon as the runtime
// schedules the timer goroutine. Each call owns its own timer.
func Delay(ms int) <-chan struct{} {
	done := make(chan struct{})
	d := Millis(ms)
	go func() {
		defer close(done)
		if d == 0 {
			return
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		<-timer.C
	}()
	return done
}

// Waiter runs delays and optionally reports them to a logger.
type Waiter struct {
	log logger.Logger
}

// WithLogger returns a Waiter that logs each wait at debug level.
func WithLogger(log logger.Logger) *Waiter {
	return &Waiter{log: logger.OrNoop(log)}
}

// Wait blocks for at least ms milliseconds or until ctx is done.
// It returns ctx.Err() when the context ends first, nil otherwise.
func (w *Waiter) Wait(ctx context.Context, ms int) error {
	d := Millis(ms)
	if w != nil && w.log != nil {
		w.log.Debug("Waiting " + FormatDuration(d))
	}

	if d == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DelayContext is Delay with cancellation and no logging.
func DelayContext(ctx context.Context, ms int) error {
	var w *Waiter
	return w.Wait(ctx, ms)
}
