package drawingboard

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one entry of a JSON input script. Which fields matter
// depends on Action.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Key    string  `json:"key,omitempty"`
	Delta  int     `json:"delta,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// scriptActions maps each action name to what it queues on the board.
// "wait" is handled by the runner itself.
var scriptActions = map[string]func(b *Board, st scriptStep){
	"screenshot": func(b *Board, st scriptStep) { b.Screenshot(st.Label) },
	"press":      func(b *Board, st scriptStep) { b.InjectPress(st.X, st.Y) },
	"move":       func(b *Board, st scriptStep) { b.InjectMove(st.X, st.Y) },
	"release":    func(b *Board, st scriptStep) { b.InjectRelease(st.X, st.Y) },
	"click":      func(b *Board, st scriptStep) { b.InjectClick(st.X, st.Y) },
	"drag": func(b *Board, st scriptStep) {
		b.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	},
	"key": func(b *Board, st scriptStep) {
		for _, ch := range st.Key {
			b.InjectKey(ch)
		}
	},
	"wheel": func(b *Board, st scriptStep) { b.InjectWheel(st.Delta) },
	"wait":  nil,
}

// TestRunner replays a script of synthetic input and screenshots, one step
// per painted frame. A step that queues input is not followed by the next
// until that input has been consumed. Attach it with SetTestRunner.
//
//	{"steps": [
//	  {"action": "press", "x": 150, "y": 200},
//	  {"action": "move", "x": 300, "y": 200},
//	  {"action": "release", "x": 300, "y": 200},
//	  {"action": "key", "key": "a"},
//	  {"action": "wait", "frames": 10},
//	  {"action": "screenshot", "label": "after drag"}
//	]}
type TestRunner struct {
	steps   []scriptStep
	next    int
	waiting int // frames left in the current wait step
	done    bool
}

// LoadTestScript parses and validates a JSON script.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range f.Steps {
		if _, ok := scriptActions[st.Action]; !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "key" && st.Key == "" {
			return nil, fmt.Errorf("parse test script: step %d: key action without key", i)
		}
	}
	return &TestRunner{steps: f.Steps}, nil
}

// SetTestRunner attaches a runner. It steps at the start of every painted
// frame, before queued input is consumed. nil detaches it.
func (b *Board) SetTestRunner(r *TestRunner) { b.testRunner = r }

// Done reports whether every step has played out.
func (r *TestRunner) Done() bool { return r.done }

func (r *TestRunner) step(b *Board) {
	if r.done || len(b.injectQueue) > 0 {
		return
	}
	switch {
	case r.waiting > 0:
		r.waiting--
	case r.next < len(r.steps):
		st := r.steps[r.next]
		r.next++
		if st.Action == "wait" {
			r.waiting = max(st.Frames-1, 0) // this frame is the first
		} else {
			scriptActions[st.Action](b, st)
		}
	}
	if r.next >= len(r.steps) && r.waiting == 0 && len(b.injectQueue) == 0 {
		r.done = true
	}
}
