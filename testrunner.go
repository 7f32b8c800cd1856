package arbor

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string      `json:"action"`
	Label  string      `json:"label,omitempty"`
	X      float64     `json:"x,omitempty"`
	Y      float64     `json:"y,omitempty"`
	FromX  float64     `json:"fromX,omitempty"`
	FromY  float64     `json:"fromY,omitempty"`
	ToX    float64     `json:"toX,omitempty"`
	ToY    float64     `json:"toY,omitempty"`
	DX     float64     `json:"dx,omitempty"`
	DY     float64     `json:"dy,omitempty"`
	Frames int         `json:"frames,omitempty"`
	Text   string      `json:"text,omitempty"`
	Key    *ebiten.Key `json:"key,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true,
	"click":      true,
	"drag":       true,
	"wait":       true,
	"move":       true,
	"wheel":      true,
	"type":       true,
	"key":        true,
}

// TestRunner sequences injected input and screenshots across frames for
// automated testing. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner. Unknown actions and key names
// are rejected up front; keys use ebiten's names ("Enter", "ArrowLeft").
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "key" && st.Key == nil {
			return nil, fmt.Errorf("parse test script: step %d: key action without key", i)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before processInput each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Pending injections drain before the next step.
	if len(s.injectQueue) > 0 {
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
	guiLogger.Debug("test step", "index", r.cursor-1, "action", st.Action)

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		s.InjectWheel(st.X, st.Y, st.DX, st.DY)
	case "type":
		for _, ch := range st.Text {
			s.InjectChar(ch)
		}
	case "key":
		s.InjectKey(*st.Key)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
