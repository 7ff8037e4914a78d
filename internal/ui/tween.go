// internal/ui/tween.go
package ui

import (
	"time"

	"gender-selector/internal/utils"
)

// Tween eases a scalar from its value at the last retarget toward a target
// over a fixed duration. The host advances it once per frame.
type Tween struct {
	from, to float64
	value    float64
	elapsed  time.Duration
	duration time.Duration
	ease     utils.EaseFunc
}

// NewTween creates a settled tween resting at value.
func NewTween(value float64, duration time.Duration, ease utils.EaseFunc) *Tween {
	if ease == nil {
		ease = utils.EaseInOut
	}
	return &Tween{
		from:     value,
		to:       value,
		value:    value,
		elapsed:  duration,
		duration: duration,
		ease:     ease,
	}
}

// Retarget starts a new transition from the current value. Retargeting to
// the current target leaves a running transition untouched.
func (t *Tween) Retarget(to float64) {
	if to == t.to {
		return
	}
	t.from = t.value
	t.to = to
	t.elapsed = 0
}

// Advance moves the tween forward by dt and returns the new value.
func (t *Tween) Advance(dt time.Duration) float64 {
	if t.Done() {
		return t.value
	}
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed >= t.duration || t.duration <= 0 {
		t.elapsed = t.duration
		t.value = t.to
		return t.value
	}
	progress := t.ease(float64(t.elapsed) / float64(t.duration))
	t.value = utils.Lerp(t.from, t.to, progress)
	return t.value
}

func (t *Tween) Value() float64  { return t.value }
func (t *Tween) Target() float64 { return t.to }

// Done reports whether the value has reached its target.
func (t *Tween) Done() bool {
	return t.elapsed >= t.duration && t.value == t.to
}
