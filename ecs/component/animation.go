package component

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfiguration is returned when an animation is constructed with a
// non-positive interval or an empty frame range.
var ErrInvalidConfiguration = errors.New("animation: invalid configuration")

// FrameRange is the inclusive, cyclic bound of an animation's frame index.
type FrameRange struct {
	First int
	Last  int
}

func (r FrameRange) Contains(index int) bool {
	return index >= r.First && index <= r.Last
}

func (r FrameRange) Len() int {
	return r.Last - r.First + 1
}

// Animation cycles Current through Range on a repeating timer.
//
// Current always satisfies Range.First <= Current <= Range.Last. Elapsed holds
// time accumulated towards the next frame and is always below Interval after
// a call to Advance unless a single delta spanned several intervals.
type Animation struct {
	Range    FrameRange
	Current  int
	Elapsed  time.Duration
	Interval time.Duration
	Playing  bool
}

var AnimationComponent = NewComponent[Animation]()

// NewAnimation returns a playing animation positioned on first.
func NewAnimation(first, last int, interval time.Duration) (*Animation, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: interval %s must be positive", ErrInvalidConfiguration, interval)
	}
	if first > last {
		return nil, fmt.Errorf("%w: first frame %d after last frame %d", ErrInvalidConfiguration, first, last)
	}
	return &Animation{
		Range:    FrameRange{First: first, Last: last},
		Current:  first,
		Interval: interval,
		Playing:  true,
	}, nil
}

// Advance adds delta to the timer and moves to the next frame when a full
// interval has accumulated. The interval is subtracted rather than the timer
// zeroed so the remainder carries into the next cycle. At most one frame is
// advanced per call. Reports whether the frame changed.
func (a *Animation) Advance(delta time.Duration) bool {
	if a == nil || a.Interval <= 0 {
		return false
	}
	if delta > 0 {
		a.Elapsed += delta
	}
	if a.Elapsed < a.Interval {
		return false
	}
	a.Elapsed -= a.Interval

	if a.Current >= a.Range.Last || a.Current < a.Range.First {
		a.Current = a.Range.First
	} else {
		a.Current++
	}
	return true
}

// Reset rewinds to the first frame and clears the timer.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.Current = a.Range.First
	a.Elapsed = 0
}
