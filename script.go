package swipe

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	Panel  string  `json:"panel,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Value  float64 `json:"value,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "cancel": true,
	"tap": true, "drag": true, "wait": true,
	"content": true, "reset": true, "scrollTo": true,
}

// ScriptRunner sequences injected touches and layout changes across frames
// for automated gesture tests. Attach to a Host via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script and returns a ScriptRunner
// ready to be attached to a Host via SetScriptRunner.
//
//	{"steps": [
//		{"action": "drag", "fromX": 50, "fromY": 400, "toX": 50, "toY": 100, "frames": 6},
//		{"action": "wait", "frames": 30},
//		{"action": "content", "panel": "shop", "value": 1800},
//		{"action": "tap", "x": 60, "y": 120}
//	]}
func LoadGestureScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the host. The runner's step
// method is called from Update before input processing each frame.
func (h *Host) SetScriptRunner(runner *ScriptRunner) {
	h.scriptRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Host.UpdateWithDelta.
func (r *ScriptRunner) step(h *Host) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		h.InjectPress(st.X, st.Y)
	case "move":
		h.InjectMove(st.X, st.Y)
	case "release":
		h.InjectRelease(st.X, st.Y)
	case "cancel":
		h.InjectCancel()
	case "tap":
		h.InjectTap(st.X, st.Y)
	case "drag":
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "content":
		if p := h.Panel(st.Panel); p != nil {
			p.Controller.SetContentExtent(st.Value)
		}
	case "reset":
		if p := h.Panel(st.Panel); p != nil {
			p.Controller.ResetScroll()
		}
	case "scrollTo":
		if p := h.Panel(st.Panel); p != nil {
			p.Controller.ScrollTo(st.Value)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}
