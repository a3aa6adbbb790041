package timeutil_test

import (
	"context"
	"math"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/sgaunet/cikit/internal/logger"
	"github.com/sgaunet/cikit/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "zero duration", duration: 0, expected: "0s"},
		{name: "seconds only", duration: 45 * time.Second, expected: "45s"},
		{name: "boundary - 60 seconds", duration: 60 * time.Second, expected: "1m 0s"},
		{name: "minutes and seconds", duration: 1*time.Minute + 23*time.Second, expected: "1m 23s"},
		{name: "no hour formatting", duration: 8 * time.Hour, expected: "480m 0s"},
		{name: "rounding - 1.5 seconds", duration: 1500 * time.Millisecond, expected: "2s"},
		{name: "sub-second delay", duration: 50 * time.Millisecond, expected: "0s"},
		{name: "negative duration", duration: -5 * time.Second, expected: "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timeutil.FormatDuration(tt.duration))
		})
	}
}

func TestMillis(t *testing.T) {
	assert.Equal(t, time.Duration(0), timeutil.Millis(-10))
	assert.Equal(t, time.Duration(0), timeutil.Millis(0))
	assert.Equal(t, 50*time.Millisecond, timeutil.Millis(50))
}

func TestMillis_ClampsOverflow(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int cannot exceed the time.Duration range")
	}
	limit := time.Duration(math.MaxInt64/int64(time.Millisecond)) * time.Millisecond

	assert.Equal(t, limit, timeutil.Millis(math.MaxInt))
	assert.Positive(t, timeutil.Millis(math.MaxInt))
	assert.GreaterOrEqual(t, timeutil.Millis(math.MaxInt), timeutil.Millis(math.MaxInt/2))
}

func TestDelayContext_HugeDelayDoesNotCompleteEarly(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := timeutil.DelayContext(ctx, math.MaxInt)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func waitClosed(t *testing.T, ch <-chan struct{}, within time.Duration) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(within):
		t.Fatalf("delay did not complete within %v", within)
	}
}

func TestDelay_ZeroAndNegativeComplete(t *testing.T) {
	waitClosed(t, timeutil.Delay(0), time.Second)
	waitClosed(t, timeutil.Delay(-25), time.Second)
}

func TestDelay_WaitsAtLeastRequested(t *testing.T) {
	start := time.Now()
	waitClosed(t, timeutil.Delay(50), 2*time.Second)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestDelay_ConcurrentDelaysAreIndependent(t *testing.T) {
	long := timeutil.Delay(500)
	short := timeutil.Delay(10)

	select {
	case <-short:
	case <-long:
		t.Fatal("long delay completed before the short one")
	}
	waitClosed(t, long, 5*time.Second)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-timeutil.Delay(50)
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	waitClosed(t, done, 5*time.Second)
}

func TestDelayContext(t *testing.T) {
	t.Run("completes", func(t *testing.T) {
		require.NoError(t, timeutil.DelayContext(context.Background(), 10))
	})

	t.Run("zero completes", func(t *testing.T) {
		require.NoError(t, timeutil.DelayContext(context.Background(), 0))
	})

	t.Run("cancelled before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, timeutil.DelayContext(ctx, 10_000), context.Canceled)
	})

	t.Run("deadline first", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := timeutil.DelayContext(ctx, 10_000)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

type recordingLogger struct {
	debug []string
}

func (r *recordingLogger) Debug(msg string) { r.debug = append(r.debug, msg) }
func (r *recordingLogger) Info(string)      {}
func (r *recordingLogger) Warn(string)      {}
func (r *recordingLogger) Error(string)     {}

func TestWaiter_Logs(t *testing.T) {
	log := &recordingLogger{}
	w := timeutil.WithLogger(log)

	require.NoError(t, w.Wait(context.Background(), 1))
	require.NoError(t, w.Wait(context.Background(), 0))

	assert.Equal(t, []string{"Waiting 0s", "Waiting 0s"}, log.debug)
}

func TestWaiter_NilLogger(t *testing.T) {
	w := timeutil.WithLogger(nil)
	require.NoError(t, w.Wait(context.Background(), 0))

	quiet := timeutil.WithLogger(logger.NoLogger())
	require.NoError(t, quiet.Wait(context.Background(), 1))
}
