package tween

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a replay script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Tween  string  `yaml:"tween,omitempty"`
	Dt     float64 `yaml:"dt,omitempty"`
	Times  int     `yaml:"times,omitempty"`
}

// scriptFile is the top-level structure of a replay script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Script replays control actions against a ManualScheduler. Scripts are
// YAML (JSON is accepted too):
//
//	steps:
//	  - action: advance
//	    dt: 0.25
//	    times: 4
//	  - action: pause
//	    tween: fade
//	  - action: cancel_all
//
// Actions are advance, tick, pause, resume, cancel, complete, cancel_all
// and complete_all. Tween names refer to the handles passed to Run.
type Script struct {
	steps []scriptStep
}

// LoadScript parses a replay script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "advance", "tick", "cancel_all", "complete_all":
		case "pause", "resume", "cancel", "complete":
			if st.Tween == "" {
				return nil, fmt.Errorf("parse script: step %d: %s needs a tween", i, st.Action)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int { return len(s.steps) }

// Run executes every step in order. It stops at the first step that names
// a tween missing from handles.
func (s *Script) Run(r *Registry, sched *ManualScheduler, handles map[string]Handle) error {
	for i, st := range s.steps {
		var h Handle
		if st.Tween != "" {
			var ok bool
			if h, ok = handles[st.Tween]; !ok {
				return fmt.Errorf("script step %d: unknown tween %q", i, st.Tween)
			}
		}

		switch st.Action {
		case "advance":
			for range max(st.Times, 1) {
				sched.Advance(st.Dt)
			}
		case "tick":
			for range max(st.Times, 1) {
				sched.Tick()
			}
		case "pause":
			r.Pause(h)
		case "resume":
			r.Resume(h)
		case "cancel":
			r.Cancel(h)
		case "complete":
			r.Complete(h)
		case "cancel_all":
			r.CancelAll()
		case "complete_all":
			r.CompleteAll()
		}
	}
	return nil
}
