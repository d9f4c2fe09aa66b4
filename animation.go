package drawingboard

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenTo animates the handle toward the position that maps to value over
// duration seconds using the easing function. The scheduler advances the
// tween once per frame by the frame delta; grabbing the handle with the
// pointer cancels it. A nil fn defaults to ease.Linear.
//
// There is no global animation manager; each slider owns at most one tween
// and a new call replaces the previous one.
func (s *Slider) TweenTo(value float64, duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	to := Clamp(Lerp(value, s.min, s.max, s.start, s.end),
		min(s.start, s.end), max(s.start, s.end))
	if duration <= 0 {
		s.tween = nil
		s.SetPosition(to)
		return
	}
	s.tween = gween.New(float32(s.pos), float32(to), duration, fn)
}

// IsTweening reports whether a tween is in progress.
func (s *Slider) IsTweening() bool { return s.tween != nil }

// advanceTween steps the running tween by dt seconds and writes the handle
// position. Locked sliders are left to the pointer.
func (s *Slider) advanceTween(dt float32) {
	if s.tween == nil || s.locked {
		return
	}
	val, finished := s.tween.Update(dt)
	s.SetPosition(float64(val))
	if finished {
		s.tween = nil
	}
}
