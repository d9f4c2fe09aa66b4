package drawingboard

// debugLog reports one frame's phase timings and the clock state at debug
// level. Only called when debug mode is on.
func (s *Scheduler) debugLog(stats frameStats) {
	total := stats.draw + stats.dispatch + stats.widgets
	Logger().Debug("frame",
		"frame", s.clock.FrameCount(),
		"draw", stats.draw,
		"dispatch", stats.dispatch,
		"widgets", stats.widgets,
		"total", total,
		"fps", s.clock.FrameRate(),
		"sliders", len(s.sliders),
		"buttons", len(s.buttons),
	)
	if budget := s.clock.TargetFramePeriod(); total.Seconds() > budget {
		Logger().Debug("frame over budget",
			"frame", s.clock.FrameCount(),
			"total", total,
			"budgetSeconds", budget,
		)
	}
}

// debugCheckTransforms warns when a frame ends with PushMatrix frames still
// open. The stack is discarded at the start of the next frame either way.
func debugCheckTransforms(ts *TransformStack, frame int) {
	if d := ts.Depth(); d > 0 {
		Logger().Warn("unbalanced PushMatrix at end of frame", "frame", frame, "open", d)
	}
}
