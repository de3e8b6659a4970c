package scenedoc

// Known tags of the built-in kinds. A catalog from NewCatalog has exactly one
// entry for each.
var (
	ComponentKinds = []string{RectKind, ImageKind, TextKind, GroupKind}

	ActionKinds = []string{
		CommandActionKind,
		MessageActionKind,
		VisibilityActionKind,
		GifControlActionKind,
		ViewActionKind,
		ListNextActionKind,
		DelayActionKind,
		ListActionKind,
		CheckActionKind,
	}

	ConditionKinds = []string{PermissionConditionKind, VisibleConditionKind}
)

// Catalog owns the component, action and condition registries together with
// the resource sources handed to the instances it creates. Catalogs are
// independent: tests and concurrent documents each build their own.
type Catalog struct {
	Components *Registry[Component]
	Actions    *Registry[Action]
	Conditions *Registry[Condition]

	// Images and Fonts are bound into image and text components at creation.
	// Either may be nil, making every resource of that type unavailable.
	Images ImageSource
	Fonts  FontSource
}

// NewCatalog returns a catalog with every built-in kind registered. The
// registries are left unsealed so callers can add or replace kinds before
// calling Seal.
func NewCatalog() *Catalog {
	cat := &Catalog{}
	cat.Components = newRegistry[Component]("component", "type", cat)
	cat.Actions = newRegistry[Action]("action", "id", cat)
	cat.Conditions = newRegistry[Condition]("condition", "id", cat)

	registerComponents(cat)
	registerConditions(cat)
	registerActions(cat)
	return cat
}

// Seal seals all three registries.
func (c *Catalog) Seal() {
	c.Components.Seal()
	c.Actions.Seal()
	c.Conditions.Seal()
}

// NewAction returns a default action of kind attached to owner.
func (c *Catalog) NewAction(kind string, owner Component) (Action, error) {
	return c.Actions.New(kind, NewContext{Owner: owner})
}

// DecodeComponent decodes a single component object.
func (c *Catalog) DecodeComponent(data []byte) (Component, error) {
	return c.Components.Decode(data)
}

// DecodeComponents decodes a JSON array of component objects.
func (c *Catalog) DecodeComponents(data []byte) ([]Component, error) {
	return c.Components.DecodeList(data)
}

func registerComponents(cat *Catalog) {
	r := cat.Components
	r.Register(RectKind, newDefaultRect, decodeRect, Meta{Icon: "crop_square", Editor: "RectEditor"})
	r.Register(ImageKind, newDefaultImage(cat), decodeImage, Meta{Icon: "image", Editor: "ImageEditor"})
	r.Register(TextKind, newDefaultText(cat), decodeText, Meta{Icon: "text_fields", Editor: "TextEditor"})
	r.Register(GroupKind, newDefaultGroup, decodeGroup, Meta{Icon: "folder"})
}

func registerConditions(cat *Catalog) {
	r := cat.Conditions
	r.Register(PermissionConditionKind,
		func(NewContext) Condition { return &PermissionCondition{Permission: "group.vip"} },
		decodePermissionCondition,
		Meta{Icon: "lock", Editor: "PermissionEditor"})
	r.Register(VisibleConditionKind,
		func(ctx NewContext) Condition { return &VisibleCondition{Target: ctx.ownerID(), Visible: true} },
		decodeVisibleCondition,
		Meta{Icon: "visibility", Editor: "VisibleCheckEditor"})
}

func registerActions(cat *Catalog) {
	r := cat.Actions
	r.Register(CommandActionKind,
		func(NewContext) Action { return &CommandAction{Command: "heal %player%", AsConsole: true} },
		decodeCommandAction,
		Meta{Icon: "terminal", Editor: "CommandEditor"})
	r.Register(MessageActionKind,
		func(NewContext) Action { return &MessageAction{Message: "&a&lHey there!"} },
		decodeMessageAction,
		Meta{Icon: "chat", Editor: "MessageEditor"})
	r.Register(VisibilityActionKind,
		func(ctx NewContext) Action { return &VisibilityAction{Target: ctx.ownerID(), Toggle: true} },
		decodeVisibilityAction,
		Meta{Icon: "visibility", Editor: "VisibilityEditor"})
	r.Register(GifControlActionKind,
		func(NewContext) Action { return &GifControlAction{Play: true} },
		decodeGifControlAction,
		Meta{Icon: "gif", Editor: "GifControlEditor"})
	r.Register(ViewActionKind,
		func(NewContext) Action { return &ViewAction{} },
		decodeViewAction,
		Meta{Icon: "view_carousel", Editor: "ViewEditor"})
	r.Register(ListNextActionKind,
		func(NewContext) Action { return &ListNextAction{Wrap: true} },
		decodeListNextAction,
		Meta{Icon: "skip_next", Editor: "ListNextEditor"})
	r.Register(DelayActionKind,
		func(NewContext) Action { return &DelayAction{Ticks: 20, Interruptible: true} },
		decodeDelayAction,
		Meta{Icon: "hourglass_empty", Editor: "DelayEditor"})
	r.Register(ListActionKind,
		func(NewContext) Action { return &ListAction{Sequential: true} },
		decodeListAction,
		Meta{Icon: "list"})
	r.Register(CheckActionKind,
		func(ctx NewContext) Action {
			cond, err := cat.Conditions.New(PermissionConditionKind, ctx)
			if err != nil {
				panic(err)
			}
			return &CheckAction{Condition: cond, StopOnFail: true}
		},
		decodeCheckAction,
		Meta{Icon: "rule", Editor: "CheckEditor"})
}
