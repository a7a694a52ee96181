package enrich

import (
	"context"
	"testing"
	"time"
)

func TestIntervalThrottleSpacing(t *testing.T) {
	const d = 50 * time.Millisecond
	th := NewIntervalThrottle(d)
	ctx := context.Background()

	start := time.Now()
	if err := th.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if err := th.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	// Allow for clock granularity in the limiter's token arithmetic.
	if elapsed := time.Since(start); elapsed < d-2*time.Millisecond {
		t.Errorf("two waits took %v, want at least %v", elapsed, d)
	}
}

func TestIntervalThrottleZero(t *testing.T) {
	th := NewIntervalThrottle(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := th.Wait(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("zero interval should not block, took %v", elapsed)
	}
	if NewIntervalThrottle(-time.Second).Interval() != 0 {
		t.Error("negative interval should clamp to zero")
	}
}

func TestIntervalThrottleCancel(t *testing.T) {
	th := NewIntervalThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	if err := th.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	cancel()
	if err := th.Wait(ctx); err == nil {
		t.Error("Wait should fail once ctx is cancelled")
	}
}
