package scenedoc

// Player runs a document's click actions against a session. It is tick
// driven: delayed actions fire from Tick, never from a goroutine or timer.
//
// A Player is not safe for concurrent use.
type Player struct {
	doc     *Document
	session *Session
	sink    EffectSink

	// Permissions are the simulated viewer's permission nodes.
	Permissions map[string]bool

	pending []pendingRun
	tick    int
}

// pendingRun is a delayed action batch waiting for its due tick.
type pendingRun struct {
	due     int
	owner   string
	key     *DelayAction
	env     Env
	actions []Action
}

// NewPlayer creates a player for doc with a fresh session. sink may be nil.
func NewPlayer(doc *Document, sink EffectSink) *Player {
	return &Player{
		doc:         doc,
		session:     NewSession(),
		sink:        sink,
		Permissions: make(map[string]bool),
	}
}

// Session returns the player's session.
func (p *Player) Session() *Session { return p.session }

// Document returns the document being played.
func (p *Player) Document() *Document { return p.doc }

// Ticks returns the number of ticks elapsed since creation or Reset.
func (p *Player) Ticks() int { return p.tick }

// Pending returns the number of scheduled delayed runs.
func (p *Player) Pending() int { return len(p.pending) }

// Grant sets the simulated viewer's permission nodes.
func (p *Player) Grant(perms ...string) {
	for _, perm := range perms {
		p.Permissions[perm] = true
	}
}

// Click runs the click actions of the component with the given id. Unknown
// ids and components that are hidden, or sit inside a hidden group, are
// ignored. It reports whether actions ran.
func (p *Player) Click(id string) bool {
	c := p.doc.Find(id)
	if c == nil || !p.shown(c) {
		return false
	}
	env := p.env(c)
	RunActions(env, c.Common().ClickAction)
	return true
}

// ClickAt hit-tests the point and clicks the topmost visible component. It
// returns the clicked component, or nil.
func (p *Player) ClickAt(x, y float64) Component {
	c := p.doc.HitTest(x, y, p.session)
	if c == nil {
		return nil
	}
	RunActions(p.env(c), c.Common().ClickAction)
	return c
}

// shown reports whether c and all its ancestors are visible.
func (p *Player) shown(c Component) bool {
	if p.session.IsInvisible(c.Common().ID) {
		return false
	}
	for g := c.Common().Parent(); g != nil; g = g.Parent() {
		if p.session.IsInvisible(g.ID) {
			return false
		}
	}
	return true
}

func (p *Player) env(owner Component) *Env {
	return &Env{
		Owner:       owner,
		Session:     p.session,
		Sink:        p.sink,
		Permissions: p.Permissions,
		Find:        p.doc.Find,
		scheduler:   p,
	}
}

// Tick advances the clock by one and runs every delayed batch that is due,
// in scheduling order. Batches scheduled while running fire on later ticks.
func (p *Player) Tick() {
	p.tick++
	if len(p.pending) == 0 {
		return
	}
	var due []pendingRun
	kept := p.pending[:0]
	for _, run := range p.pending {
		if run.due <= p.tick {
			due = append(due, run)
		} else {
			kept = append(kept, run)
		}
	}
	for i := len(kept); i < len(p.pending); i++ {
		p.pending[i] = pendingRun{}
	}
	p.pending = kept
	for i := range due {
		RunActions(&due[i].env, due[i].actions)
	}
}

// Advance calls Tick n times.
func (p *Player) Advance(n int) {
	for i := 0; i < n; i++ {
		p.Tick()
	}
}

// Reset clears the session, drops pending runs and rewinds the clock.
func (p *Player) Reset() {
	p.session.Reset()
	p.pending = nil
	p.tick = 0
}

// schedule implements scheduler. A replacing schedule drops any pending run
// of the same delay for the same owner first.
func (p *Player) schedule(env *Env, key *DelayAction, ticks int, actions []Action, replace bool) {
	owner := env.OwnerID()
	if replace {
		kept := p.pending[:0]
		for _, run := range p.pending {
			if run.key == key && run.owner == owner {
				debugf("delay for %q replaced before firing", owner)
				continue
			}
			kept = append(kept, run)
		}
		p.pending = kept
	}
	p.pending = append(p.pending, pendingRun{
		due:     p.tick + ticks,
		owner:   owner,
		key:     key,
		env:     *env,
		actions: actions,
	})
}
