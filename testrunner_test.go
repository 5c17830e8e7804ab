package flipdeck

import (
	"testing"
	"time"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "key", "key": "ArrowDown"},
			{"action": "wheel", "delta": 3, "mode": "line"},
			{"action": "swipe", "fromX": 100, "fromY": 500, "toX": 100, "toY": 200},
			{"action": "wait", "frames": 3},
			{"action": "motion", "reduced": true},
			{"action": "screenshot", "label": "after"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 7 {
		t.Fatalf("expected 7 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "key" || runner.steps[1].Key != "ArrowDown" {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Delta != 3 || runner.steps[2].Mode != "line" {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].FromY != 500 || runner.steps[3].ToY != 200 {
		t.Error("step 3 mismatch")
	}
	if runner.steps[4].Frames != 3 || !runner.steps[5].Reduced {
		t.Error("steps 4-5 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "dance"}]}`},
		{"unknown key", `{"steps": [{"action": "key", "key": "Escape"}]}`},
		{"unknown wheel mode", `{"steps": [{"action": "wheel", "delta": 1, "mode": "inch"}]}`},
	}
	for _, tt := range tests {
		if _, err := LoadTestScript([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestRunnerStep_Key(t *testing.T) {
	p, _ := newTestPresenter(t, Options{})
	p.SetViewport(1280, 720)

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "key", "key": "PageDown"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	p.SetTestRunner(runner)

	// First step queues the key.
	runner.step(p)
	if len(p.injectQueue) != 1 {
		t.Fatalf("expected 1 queued event, got %d", len(p.injectQueue))
	}
	// Runner should not be done yet: the injection is still pending.
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	p.processInjectedInput()
	if !p.Navigator().Animating() {
		t.Error("injected key should start a transition")
	}

	runner.step(p)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	p, _ := newTestPresenter(t, Options{})

	data := []byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.step(p)
	if runner.Done() {
		t.Error("should not be done during wait")
	}

	// Frames 2-3: count down.
	runner.step(p)
	runner.step(p)
	if runner.Done() {
		t.Error("should not be done before the screenshot step")
	}

	// Frame 4: execute screenshot step, runner finishes.
	runner.step(p)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(p.screenshotQueue) != 1 || p.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", p.screenshotQueue)
	}
}

func TestRunnerStep_Motion(t *testing.T) {
	p, _ := newTestPresenter(t, Options{})
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "motion", "reduced": true}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(p)
	if !p.Navigator().ReducedMotion() {
		t.Error("motion step should enable reduced motion")
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	p, _ := newTestPresenter(t, Options{})
	p.SetViewport(1280, 720)

	data := []byte(`{"steps": [
		{"action": "swipe", "fromX": 50, "fromY": 400, "toX": 50, "toY": 100},
		{"action": "screenshot", "label": "after"}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Step 1: swipe queues 2 events.
	runner.step(p)
	if len(p.injectQueue) != 2 {
		t.Fatalf("expected 2 events, got %d", len(p.injectQueue))
	}

	// Step again: should NOT advance because the inject queue is not drained.
	runner.step(p)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	p.processInjectedInput()
	p.processInjectedInput()
	run(p, 3*time.Second)

	runner.step(p)
	if len(p.screenshotQueue) != 1 || p.screenshotQueue[0] != "after" {
		t.Errorf("expected screenshot 'after', got %v", p.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if p.Navigator().Current() != 1 {
		t.Errorf("current = %d, want 1", p.Navigator().Current())
	}
}
