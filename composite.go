package scenedoc

import (
	"errors"

	"github.com/goccy/go-json"
)

// Composite action registry tags.
const (
	ListActionKind  = "list"
	DelayActionKind = "delay"
	CheckActionKind = "check"
)

// Composite actions exclusively own their children. Children are decoded
// through the catalog's action registry, so any registered kind nests.

// --- list ---

// ListAction runs nested actions. A sequential list runs all children in
// order, stopping at the first Halt. A stepping list (Sequential false) runs
// only the child at the owning component's cursor; ListNextAction moves the
// cursor.
type ListAction struct {
	Children   []Action `json:"children"`
	Sequential bool     `json:"sequential"`
}

func (a *ListAction) Kind() string { return ListActionKind }

func (a *ListAction) Execute(env *Env) Outcome {
	if a.Sequential {
		return RunActions(env, a.Children)
	}
	if len(a.Children) == 0 || env.Session == nil {
		return Continue
	}
	i := env.Session.Cursor(env.OwnerID())
	if i >= len(a.Children) {
		i = len(a.Children) - 1
	}
	return a.Children[i].Execute(env)
}

func (a *ListAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string   `json:"id"`
		Children   []Action `json:"children"`
		Sequential bool     `json:"sequential"`
	}{ListActionKind, orEmpty(a.Children), a.Sequential})
}

func decodeListAction(obj Object, cat *Catalog) (Action, error) {
	r := obj.Fields(ListActionKind)
	a := &ListAction{
		Children:   decodeActions(r, cat, "children"),
		Sequential: r.OptBool("sequential", false),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

// --- delay ---

var errNegativeTicks = errors.New("negative tick count")

// DelayAction runs nested actions Ticks ticks after it executes. When
// Interruptible, executing it again while a run is pending replaces that run.
// Without a scheduler in the environment the actions run immediately.
type DelayAction struct {
	Ticks         int      `json:"ticks"`
	Actions       []Action `json:"action"`
	Interruptible bool     `json:"interruptible"`
}

func (a *DelayAction) Kind() string { return DelayActionKind }

func (a *DelayAction) Execute(env *Env) Outcome {
	if env.scheduler == nil || a.Ticks <= 0 {
		RunActions(env, a.Actions)
		return Continue
	}
	env.scheduler.schedule(env, a, a.Ticks, a.Actions, a.Interruptible)
	return Continue
}

func (a *DelayAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID            string   `json:"id"`
		Ticks         int      `json:"ticks"`
		Actions       []Action `json:"action"`
		Interruptible bool     `json:"interruptible"`
	}{DelayActionKind, a.Ticks, orEmpty(a.Actions), a.Interruptible})
}

func decodeDelayAction(obj Object, cat *Catalog) (Action, error) {
	r := obj.Fields(DelayActionKind)
	a := &DelayAction{
		Ticks:         r.Int("ticks"),
		Actions:       decodeActions(r, cat, "action"),
		Interruptible: r.OptBool("interruptible", false),
	}
	if a.Ticks < 0 {
		r.Fail("ticks", errNegativeTicks)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

// --- check ---

// CheckAction runs nested actions when its condition holds. When it does
// not, the enclosing sequence halts if StopOnFail is set.
type CheckAction struct {
	Condition  Condition `json:"condition"`
	Actions    []Action  `json:"action"`
	StopOnFail bool      `json:"stopOnFail"`
}

func (a *CheckAction) Kind() string { return CheckActionKind }

func (a *CheckAction) Execute(env *Env) Outcome {
	if a.Condition != nil && !a.Condition.Check(env) {
		if a.StopOnFail {
			return Halt
		}
		return Continue
	}
	return RunActions(env, a.Actions)
}

func (a *CheckAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string    `json:"id"`
		Condition  Condition `json:"condition"`
		Actions    []Action  `json:"action"`
		StopOnFail bool      `json:"stopOnFail"`
	}{CheckActionKind, a.Condition, orEmpty(a.Actions), a.StopOnFail})
}

func decodeCheckAction(obj Object, cat *Catalog) (Action, error) {
	r := obj.Fields(CheckActionKind)
	a := &CheckAction{}
	// null is a check without a condition; a missing field is malformed.
	if _, ok := obj["condition"]; !ok {
		r.Fail("condition", nil)
	} else if raw := r.Raw("condition", false); raw != nil {
		cond, err := cat.Conditions.Decode(raw)
		if r.Nested("condition", err) {
			a.Condition = cond
		}
	}
	a.Actions = decodeActions(r, cat, "action")
	a.StopOnFail = r.OptBool("stopOnFail", false)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return a, nil
}
