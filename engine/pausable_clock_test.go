package engine

import (
	"testing"
	"time"
)

func TestPausableClockFreezesGameTime(t *testing.T) {
	start := time.Unix(1000, 0)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := clock.Now().Sub(start); got != 2*time.Second {
		t.Fatalf("game time advanced %v, want 2s", got)
	}

	clock.Pause()
	mock.Advance(5 * time.Second)

	if got := clock.Now().Sub(start); got != 2*time.Second {
		t.Fatalf("game time moved during pause: %v, want 2s", got)
	}
	if got := clock.RealTime().Sub(start); got != 7*time.Second {
		t.Fatalf("real time = %v, want 7s", got)
	}

	clock.Resume()
	mock.Advance(time.Second)

	if got := clock.Now().Sub(start); got != 3*time.Second {
		t.Fatalf("game time after resume = %v, want 3s", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Fatalf("total pause = %v, want 5s", got)
	}
}

func TestPausableClockDoublePauseResume(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewPausableClock(mock)

	clock.Pause()
	clock.Pause() // second pause is a no-op
	mock.Advance(time.Second)
	clock.Resume()
	clock.Resume() // second resume is a no-op

	if got := clock.TotalPauseDuration(); got != time.Second {
		t.Fatalf("total pause = %v, want 1s", got)
	}
	if clock.IsPaused() {
		t.Fatal("clock reports paused after resume")
	}
}
