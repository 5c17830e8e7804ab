package flipdeck

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	Key     string  `json:"key,omitempty"`
	Delta   float64 `json:"delta,omitempty"`
	Mode    string  `json:"mode,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Reduced bool    `json:"reduced,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, motion-preference changes and
// screenshots across frames for automated visual testing. Attach to a
// Presenter via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Presenter via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "screenshot", "swipe", "tap", "click", "motion", "wait":
		return nil
	case "key":
		if ParseKey(st.Key) == KeyUnknown {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		return nil
	case "wheel":
		_, err := ParseWheelMode(st.Mode)
		return err
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// SetTestRunner attaches a TestRunner to the presenter. The runner's step
// method is called from Presenter.Update before input is processed.
func (p *Presenter) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Presenter.Update.
func (r *TestRunner) step(p *Presenter) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(p.injectQueue) > 0 {
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
	case "screenshot":
		p.Screenshot(st.Label)
	case "key":
		p.InjectKey(ParseKey(st.Key))
	case "wheel":
		mode, _ := ParseWheelMode(st.Mode)
		p.InjectWheel(st.Delta, mode)
	case "swipe":
		p.InjectSwipe(st.FromX, st.FromY, st.ToX, st.ToY)
	case "tap":
		p.InjectTap(st.X, st.Y)
	case "click":
		p.InjectClick()
	case "motion":
		p.SetReducedMotion(st.Reduced)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}
