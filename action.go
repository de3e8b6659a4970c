package scenedoc

// Action is a behavior triggered by interacting with a component. Atomic
// actions carry a small payload; composite actions own nested actions and
// execute them through this interface only.
//
// Every action encodes itself as a JSON object whose "id" field is its Kind.
type Action interface {
	Kinded
	Execute(env *Env) Outcome
}

// Outcome tells the enclosing sequence whether to keep going.
type Outcome uint8

const (
	Continue Outcome = iota // run the next sibling
	Halt                    // stop the enclosing sequence
)

// Env is the execution environment handed to actions.
type Env struct {
	// Owner is the component whose click started the chain.
	Owner Component

	// Session holds visibility and list-cursor state.
	Session *Session

	// Sink receives outward effects; nil discards them.
	Sink EffectSink

	// Permissions are the simulated viewer's granted permission nodes.
	Permissions map[string]bool

	// Find resolves a component id within the document; nil finds nothing.
	Find func(id string) Component

	scheduler scheduler
}

// scheduler defers actions by a number of ticks. The Player implements it.
type scheduler interface {
	schedule(env *Env, key *DelayAction, ticks int, actions []Action, replace bool)
}

// OwnerID returns the owner's id, or "" without an owner.
func (e *Env) OwnerID() string {
	if e.Owner == nil {
		return ""
	}
	return e.Owner.Common().ID
}

func (e *Env) emit(effect Effect) {
	effect.Owner = e.OwnerID()
	if e.Sink != nil {
		e.Sink.EmitEffect(effect)
	}
}

// resolve maps an empty target to the owner's id.
func (e *Env) resolve(target string) string {
	if target == "" {
		return e.OwnerID()
	}
	return target
}

func (e *Env) find(id string) Component {
	if e.Find == nil {
		return nil
	}
	return e.Find(id)
}

// RunActions executes actions in order until one returns Halt.
func RunActions(env *Env, actions []Action) Outcome {
	for _, a := range actions {
		if a.Execute(env) == Halt {
			return Halt
		}
	}
	return Continue
}
