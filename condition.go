package scenedoc

import "github.com/goccy/go-json"

// Condition is a predicate evaluated by CheckAction. Conditions live in their
// own registry and encode with an "id" discriminator, like actions.
type Condition interface {
	Kinded
	Check(env *Env) bool
}

// Condition registry tags.
const (
	PermissionConditionKind = "permission"
	VisibleConditionKind    = "visible"
)

// PermissionCondition holds when the viewer has Permission, or lacks it when
// Negate is set.
type PermissionCondition struct {
	Permission string `json:"permission"`
	Negate     bool   `json:"negate"`
}

func (c *PermissionCondition) Kind() string { return PermissionConditionKind }

func (c *PermissionCondition) Check(env *Env) bool {
	return env.Permissions[c.Permission] != c.Negate
}

func (c *PermissionCondition) MarshalJSON() ([]byte, error) {
	type payload PermissionCondition
	return json.Marshal(struct {
		ID string `json:"id"`
		payload
	}{PermissionConditionKind, payload(*c)})
}

func decodePermissionCondition(obj Object, _ *Catalog) (Condition, error) {
	r := obj.Fields(PermissionConditionKind)
	c := &PermissionCondition{
		Permission: r.String("permission"),
		Negate:     r.OptBool("negate", false),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// VisibleCondition holds when Target's visibility equals Visible. An empty
// Target means the owning component.
type VisibleCondition struct {
	Target  string `json:"target"`
	Visible bool   `json:"visible"`
}

func (c *VisibleCondition) Kind() string { return VisibleConditionKind }

func (c *VisibleCondition) Check(env *Env) bool {
	if env.Session == nil {
		return c.Visible
	}
	return !env.Session.IsInvisible(env.resolve(c.Target)) == c.Visible
}

func (c *VisibleCondition) MarshalJSON() ([]byte, error) {
	type payload VisibleCondition
	return json.Marshal(struct {
		ID string `json:"id"`
		payload
	}{VisibleConditionKind, payload(*c)})
}

func decodeVisibleCondition(obj Object, _ *Catalog) (Condition, error) {
	r := obj.Fields(VisibleConditionKind)
	c := &VisibleCondition{
		Target:  r.OptString("target", ""),
		Visible: r.OptBool("visible", true),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return c, nil
}
