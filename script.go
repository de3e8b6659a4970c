package scenedoc

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// scriptStep is a single step in a preview script.
type scriptStep struct {
	Action string  `json:"action"`
	Target string  `json:"target,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Ticks  int     `json:"ticks,omitempty"`
}

// script is the top-level JSON structure of a preview script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Script step actions.
const (
	StepClick         = "click"
	StepWait          = "wait"
	StepExpectHidden  = "expect-hidden"
	StepExpectVisible = "expect-visible"
)

// ErrExpectation is wrapped by the error a script returns when an
// expect-hidden or expect-visible step fails.
var ErrExpectation = errors.New("scenedoc: script expectation failed")

// ScriptRunner drives a Player through a sequence of clicks, waits and
// visibility expectations, one step per tick.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadScript parses a JSON preview script of the form
//
//	{"steps": [{"action": "click", "target": "button"}, {"action": "wait", "ticks": 20}]}
//
// A click step names a component by target or, without one, clicks at (x, y).
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenedoc: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("scenedoc: parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case StepClick, StepWait:
		case StepExpectHidden, StepExpectVisible:
			if st.Target == "" {
				return nil, fmt.Errorf("scenedoc: parse script: step %d: %s needs a target", i, st.Action)
			}
		default:
			return nil, fmt.Errorf("scenedoc: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether every step has run or an expectation failed.
func (r *ScriptRunner) Done() bool { return r.done }

// Err returns the first failed expectation, or nil.
func (r *ScriptRunner) Err() error { return r.err }

// Step runs the script for one tick: it performs the next step (unless
// waiting) and then ticks the player.
func (r *ScriptRunner) Step(p *Player) {
	if r.done {
		return
	}
	defer p.Tick()

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
	case StepClick:
		if st.Target != "" {
			p.Click(st.Target)
		} else {
			p.ClickAt(st.X, st.Y)
		}
	case StepWait:
		if st.Ticks > 0 {
			r.waitCount = st.Ticks - 1 // this tick counts as one
		}
	case StepExpectHidden, StepExpectVisible:
		hidden := p.Session().IsInvisible(st.Target)
		if hidden != (st.Action == StepExpectHidden) {
			r.err = fmt.Errorf("%w: step %d: %s %q at tick %d",
				ErrExpectation, r.cursor-1, st.Action, st.Target, p.Ticks())
			r.done = true
			return
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// Run steps until the script is done and returns its error.
func (r *ScriptRunner) Run(p *Player) error {
	for !r.done {
		r.Step(p)
	}
	return r.err
}
