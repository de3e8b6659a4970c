package scenedoc

import "github.com/goccy/go-json"

// Action registry tags.
const (
	CommandActionKind    = "command"
	MessageActionKind    = "message"
	VisibilityActionKind = "visibility"
	GifControlActionKind = "gif"
	ViewActionKind       = "view"
	ListNextActionKind   = "listnext"
)

// --- command ---

// CommandAction runs a server command. %player% in Command is substituted by
// the server.
type CommandAction struct {
	Command   string `json:"command"`
	AsConsole bool   `json:"console"`
	Silent    bool   `json:"silent"`
}

func (a *CommandAction) Kind() string { return CommandActionKind }

func (a *CommandAction) Execute(env *Env) Outcome {
	env.emit(Effect{Type: EffectCommand, Command: a.Command, AsConsole: a.AsConsole, Silent: a.Silent})
	return Continue
}

func (a *CommandAction) MarshalJSON() ([]byte, error) {
	type payload CommandAction
	return json.Marshal(struct {
		ID string `json:"id"`
		payload
	}{CommandActionKind, payload(*a)})
}

func decodeCommandAction(obj Object, _ *Catalog) (Action, error) {
	r := obj.Fields(CommandActionKind)
	a := &CommandAction{
		Command:   r.String("command"),
		AsConsole: r.OptBool("console", false),
		Silent:    r.OptBool("silent", false),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

// --- message ---

// MessageAction sends a chat message to the viewer. Color codes ("&a") are
// kept verbatim.
type MessageAction struct {
	Message string `json:"message"`
}

func (a *MessageAction) Kind() string { return MessageActionKind }

func (a *MessageAction) Execute(env *Env) Outcome {
	env.emit(Effect{Type: EffectMessage, Message: a.Message})
	return Continue
}

func (a *MessageAction) MarshalJSON() ([]byte, error) {
	type payload MessageAction
	return json.Marshal(struct {
		ID string `json:"id"`
		payload
	}{MessageActionKind, payload(*a)})
}

func decodeMessageAction(obj Object, _ *Catalog) (Action, error) {
	r := obj.Fields(MessageActionKind)
	a := &MessageAction{Message: r.String("message")}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

// --- visibility ---

// VisibilityAction shows or hides a component. With Toggle set the target's
// visibility flips; otherwise it is set to Visible. An empty Target means the
// owning component.
type VisibilityAction struct {
	Target  string `json:"target"`
	Toggle  bool   `json:"toggle"`
	Visible bool   `json:"visible"`
}

func (a *VisibilityAction) Kind() string { return VisibilityActionKind }

func (a *VisibilityAction) Execute(env *Env) Outcome {
	if env.Session == nil {
		return Continue
	}
	target := env.resolve(a.Target)
	if a.Toggle {
		env.Session.ToggleVis(target)
	} else {
		env.Session.SetVisible(target, a.Visible)
	}
	return Continue
}

func (a *VisibilityAction) MarshalJSON() ([]byte, error) {
	type payload VisibilityAction
	return json.Marshal(struct {
		ID string `json:"id"`
		payload
	}{VisibilityActionKind, payload(*a)})
}

func decodeVisibilityAction(obj Object, _ *Catalog) (Action, error) {
	r := obj.Fields(VisibilityActionKind)
	a := &VisibilityAction{
		Target:  r.String("target"),
		Toggle:  r.OptBool("toggle", false),
		Visible: r.OptBool("visible", false),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

// --- gif ---

// GifControlAction plays, pauses or restarts an animated image component.
type GifControlAction struct {
	Target  string `json:"target"`
	Play    bool   `json:"play"`
	Restart bool   `json:"restart"`
}

func (a *GifControlAction) Kind() string { return GifControlActionKind }

func (a *GifControlAction) Execute(env *Env) Outcome {
	env.emit(Effect{Type: EffectGifControl, Target: env.resolve(a.Target), Play: a.Play, Restart: a.Restart})
	return Continue
}

func (a *GifControlAction) MarshalJSON() ([]byte, error) {
	type payload GifControlAction
	return json.Marshal(struct {
		ID string `json:"id"`
		payload
	}{GifControlActionKind, payload(*a)})
}

func decodeGifControlAction(obj Object, _ *Catalog) (Action, error) {
	r := obj.Fields(GifControlActionKind)
	a := &GifControlAction{
		Target:  r.OptString("target", ""),
		Play:    r.OptBool("play", false),
		Restart: r.OptBool("restart", false),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

// --- view ---

// ViewAction switches the viewer to another view. Target names the viewer
// ("" is whoever clicked).
type ViewAction struct {
	View   string `json:"view"`
	Target string `json:"target"`
}

func (a *ViewAction) Kind() string { return ViewActionKind }

func (a *ViewAction) Execute(env *Env) Outcome {
	env.emit(Effect{Type: EffectSwitchView, View: a.View, Target: a.Target})
	return Continue
}

func (a *ViewAction) MarshalJSON() ([]byte, error) {
	type payload ViewAction
	return json.Marshal(struct {
		ID string `json:"id"`
		payload
	}{ViewActionKind, payload(*a)})
}

func decodeViewAction(obj Object, _ *Catalog) (Action, error) {
	r := obj.Fields(ViewActionKind)
	a := &ViewAction{
		View:   r.String("view"),
		Target: r.OptString("target", ""),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

// --- listnext ---

// ListNextAction advances the cursor of the stepping list attached to a
// component. An empty Target means the owning component. Past the last child
// the cursor wraps to the first when Wrap is set and stays put otherwise.
type ListNextAction struct {
	Target string `json:"target"`
	Wrap   bool   `json:"wrap"`
}

func (a *ListNextAction) Kind() string { return ListNextActionKind }

func (a *ListNextAction) Execute(env *Env) Outcome {
	if env.Session == nil {
		return Continue
	}
	target := env.resolve(a.Target)
	list := steppingList(env.find(target))
	if list == nil || len(list.Children) == 0 {
		return Continue
	}
	next := env.Session.Cursor(target) + 1
	if next >= len(list.Children) {
		if !a.Wrap {
			return Continue
		}
		next = 0
	}
	env.Session.SetCursor(target, next)
	return Continue
}

func (a *ListNextAction) MarshalJSON() ([]byte, error) {
	type payload ListNextAction
	return json.Marshal(struct {
		ID string `json:"id"`
		payload
	}{ListNextActionKind, payload(*a)})
}

func decodeListNextAction(obj Object, _ *Catalog) (Action, error) {
	r := obj.Fields(ListNextActionKind)
	a := &ListNextAction{
		Target: r.OptString("target", ""),
		Wrap:   r.OptBool("wrap", false),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

// steppingList returns the first non-sequential list among c's click actions.
func steppingList(c Component) *ListAction {
	if c == nil {
		return nil
	}
	for _, a := range c.Common().ClickAction {
		if l, ok := a.(*ListAction); ok && !l.Sequential {
			return l
		}
	}
	return nil
}
