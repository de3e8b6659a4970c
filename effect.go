package scenedoc

// EffectType identifies an outward effect produced by executing an action.
type EffectType uint8

const (
	EffectCommand    EffectType = iota // run a server command
	EffectMessage                      // show a chat message
	EffectSwitchView                   // switch the viewer to another view
	EffectGifControl                   // play, pause or restart an animated image
)

// String returns the effect type name used in logs and scripts.
func (t EffectType) String() string {
	switch t {
	case EffectCommand:
		return "command"
	case EffectMessage:
		return "message"
	case EffectSwitchView:
		return "view"
	case EffectGifControl:
		return "gif"
	default:
		return "unknown"
	}
}

// Effect carries the data of one outward effect. Fields not relevant to the
// effect's Type are zero.
type Effect struct {
	Type  EffectType
	Owner string // id of the component whose click produced the effect

	// Command fields (EffectCommand)
	Command   string
	AsConsole bool
	Silent    bool

	// Message field (EffectMessage)
	Message string

	// View fields (EffectSwitchView)
	View   string
	Target string // also the gif target for EffectGifControl

	// Gif fields (EffectGifControl)
	Play    bool
	Restart bool
}

// EffectSink receives effects. The editor preview, a server exporter or an
// ECS bridge implement it.
type EffectSink interface {
	EmitEffect(effect Effect)
}

// EffectRecorder is an EffectSink that keeps every effect in order.
type EffectRecorder struct {
	Effects []Effect
}

// EmitEffect implements EffectSink.
func (r *EffectRecorder) EmitEffect(effect Effect) {
	r.Effects = append(r.Effects, effect)
}

// Reset discards the recorded effects.
func (r *EffectRecorder) Reset() {
	r.Effects = r.Effects[:0]
}
