package component

import (
	"errors"
	"testing"
	"time"
)

func mustAnimation(t *testing.T, first, last int, interval time.Duration) *Animation {
	t.Helper()
	anim, err := NewAnimation(first, last, interval)
	if err != nil {
		t.Fatalf("NewAnimation(%d, %d, %s): %v", first, last, interval, err)
	}
	return anim
}

func TestNewAnimation(t *testing.T) {
	cases := []struct {
		name     string
		first    int
		last     int
		interval time.Duration
		wantErr  bool
	}{
		{"valid", 1, 3, 300 * time.Millisecond, false},
		{"single_frame", 4, 4, time.Second, false},
		{"zero_interval", 1, 3, 0, true},
		{"negative_interval", 1, 3, -time.Millisecond, true},
		{"reversed_range", 3, 1, 300 * time.Millisecond, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			anim, err := NewAnimation(c.first, c.last, c.interval)
			if c.wantErr {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
				}
				if anim != nil {
					t.Fatalf("expected no animation on error, got %+v", anim)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if anim.Current != c.first || anim.Elapsed != 0 || !anim.Playing {
				t.Fatalf("unexpected initial state %+v", anim)
			}
		})
	}
}

func TestAnimationAdvance(t *testing.T) {
	t.Run("wraps_after_last", func(t *testing.T) {
		anim := mustAnimation(t, 1, 3, 300*time.Millisecond)
		want := []int{2, 3, 1, 2}
		for i, w := range want {
			if !anim.Advance(300 * time.Millisecond) {
				t.Fatalf("step %d: expected frame change", i)
			}
			if anim.Current != w {
				t.Fatalf("step %d: expected frame %d, got %d", i, w, anim.Current)
			}
		}
	})

	t.Run("short_delta_does_not_fire", func(t *testing.T) {
		anim := mustAnimation(t, 1, 3, 300*time.Millisecond)
		if anim.Advance(299 * time.Millisecond) {
			t.Fatalf("expected no frame change")
		}
		if anim.Current != 1 {
			t.Fatalf("expected frame 1, got %d", anim.Current)
		}
		if anim.Elapsed != 299*time.Millisecond {
			t.Fatalf("expected elapsed to accumulate, got %s", anim.Elapsed)
		}
	})

	t.Run("carries_remainder", func(t *testing.T) {
		anim := mustAnimation(t, 1, 3, 300*time.Millisecond)
		fired := 0
		for i := 0; i < 2; i++ {
			if anim.Advance(200 * time.Millisecond) {
				fired++
			}
		}
		if fired != 1 {
			t.Fatalf("expected exactly one firing, got %d", fired)
		}
		if anim.Elapsed != 100*time.Millisecond {
			t.Fatalf("expected 100ms left over, got %s", anim.Elapsed)
		}
		if anim.Current != 2 {
			t.Fatalf("expected frame 2, got %d", anim.Current)
		}
	})

	t.Run("single_frame_range", func(t *testing.T) {
		anim := mustAnimation(t, 5, 5, 100*time.Millisecond)
		for i := 0; i < 4; i++ {
			if !anim.Advance(100 * time.Millisecond) {
				t.Fatalf("step %d: expected firing", i)
			}
			if anim.Current != 5 {
				t.Fatalf("step %d: expected frame 5, got %d", i, anim.Current)
			}
		}
	})

	t.Run("stays_in_range", func(t *testing.T) {
		ranges := []FrameRange{{0, 0}, {0, 7}, {1, 500}, {10, 12}}
		deltas := []time.Duration{
			16 * time.Millisecond,
			300 * time.Millisecond,
			450 * time.Millisecond,
			time.Second,
			0,
		}
		for _, r := range ranges {
			anim := mustAnimation(t, r.First, r.Last, 300*time.Millisecond)
			for i := 0; i < 2000; i++ {
				anim.Advance(deltas[i%len(deltas)])
				if !anim.Range.Contains(anim.Current) {
					t.Fatalf("range %+v step %d: frame %d out of range", r, i, anim.Current)
				}
			}
		}
	})

	t.Run("one_frame_per_call", func(t *testing.T) {
		anim := mustAnimation(t, 0, 9, 100*time.Millisecond)
		if !anim.Advance(350 * time.Millisecond) {
			t.Fatalf("expected firing")
		}
		if anim.Current != 1 {
			t.Fatalf("expected a single step, got frame %d", anim.Current)
		}
		if anim.Elapsed != 250*time.Millisecond {
			t.Fatalf("expected 250ms carried, got %s", anim.Elapsed)
		}
		if !anim.Advance(0) || anim.Current != 2 {
			t.Fatalf("expected carried time to fire on next call, frame %d", anim.Current)
		}
	})
}

func TestAnimationReset(t *testing.T) {
	anim := mustAnimation(t, 2, 6, 50*time.Millisecond)
	anim.Advance(120 * time.Millisecond)
	anim.Reset()
	if anim.Current != 2 || anim.Elapsed != 0 {
		t.Fatalf("expected rewind to first frame, got %+v", anim)
	}
}
