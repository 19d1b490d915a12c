package clock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nvoskov/userhub/internal/common/clock"
)

func TestMockClock_AdvanceAndSince(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mock := clock.NewMockClock(start)

	mock.Advance(3 * time.Second)

	if got := mock.Since(start); got != 3*time.Second {
		t.Errorf("expected 3s since start, got %v", got)
	}
}

func TestMockSleeper_RecordsDelays(t *testing.T) {
	sleeper := clock.NewMockSleeper()

	if err := sleeper.Sleep(context.Background(), 100*time.Millisecond); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(sleeper.Slept) != 1 || sleeper.Slept[0] != 100*time.Millisecond {
		t.Errorf("expected recorded delay of 100ms, got %v", sleeper.Slept)
	}
}

func TestMockSleeper_CanceledContext(t *testing.T) {
	sleeper := clock.NewMockSleeper()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleeper.Sleep(ctx, time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(sleeper.Slept) != 0 {
		t.Errorf("expected no recorded delay after cancellation, got %v", sleeper.Slept)
	}
}

func TestRealSleeper_CompletesAfterDelay(t *testing.T) {
	sleeper := clock.NewRealSleeper()

	if err := sleeper.Sleep(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
