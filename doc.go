// Package drawingboard is a creative-coding canvas for [Ebitengine]: an
// imperative drawing API (Stroke, Fill, Rectangle, Ellipse, Text, ...) on a
// window driven by a fixed-rate frame loop, with sliders and buttons for
// live parameter tweaking.
//
// # Quick start
//
// Create a [Board], set its callbacks and call [Board.Start]:
//
//	b, err := drawingboard.NewBoard(drawingboard.Config{
//		Title: "Sketch", Width: 600, Height: 400,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	slider, _ := drawingboard.NewHorizontalSlider("green", 20, 0, 255, 150, 450, b.Ycenter())
//	b.AddSlider(slider)
//
//	b.Init = func() { b.StrokeWidth(2) }
//	b.Draw = func() { b.Background(0, int(slider.Value()), 0) }
//	b.DrawSlider = func(s *drawingboard.Slider) {
//		start, end, h := s.TrackStart(), s.TrackEnd(), s.Handle()
//		b.Line(start.X, start.Y, end.X, end.Y)
//		b.Circle(h.X, h.Y, s.HandleSize())
//	}
//	if err := b.Start(); err != nil {
//		log.Fatal(err)
//	}
//
// # Frame loop
//
// Init runs once, on the first triggered frame, even if the board is
// paused. Every painted frame then runs in a fixed order: the pointer is
// sampled, Draw runs, then the KeyPressed/KeyReleased callbacks, widget updates, the mouse callbacks,
// then DrawSlider for each slider and DrawButton for each button. Widgets
// therefore always render on top of the scene. Keys typed during a frame
// are reported as pressed on that frame and as released on the next.
//
// The transform is reset to identity at the start of every frame.
// [Board.PushMatrix] and [Board.PopMatrix] nest; popping restores the
// transform exactly as it was at the matching push.
//
// # Headless use
//
// With Config.Headless the board renders in software through fogleman/gg.
// Frames are driven explicitly with [Board.Step] or [Board.RunHeadless],
// which makes sketches scriptable and testable. Input can be simulated with
// [Board.InjectPress], [Board.InjectDrag] and friends, or from a JSON
// script loaded with [LoadTestScript].
//
// # Logging
//
// The package logs through log/slog and is silent by default; see
// [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
package drawingboard
