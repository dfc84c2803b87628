package common

// Binding is a sealed union of the ways a single JSX attribute or child can
// end up wired to a DOM node. Each lowering pass (domlower, ssrlower)
// switches on the concrete type rather than an inheritance hierarchy,
// matching the framework's preference for flat tagged data over class
// trees.
type Binding interface {
	bindingKind() string
}

// TargetRef names the element a binding applies to: either a stable
// "_el$N" declared earlier in the block, or a walk-path expression
// computed inline (e.g. "_el$.firstChild").
type TargetRef struct {
	ID string
}

// SetAttribute sets a plain HTML attribute via setAttribute(el, name,
// value). Dynamic is true when Value must be wrapped in an effect.
type SetAttribute struct {
	Target   TargetRef
	Name     string
	Value    string
	Dynamic  bool
	IsBool   bool // HTML boolean attribute: falsy removes it, not sets "false"
}

func (SetAttribute) bindingKind() string { return "attribute" }

// SetProperty assigns a DOM property directly (prop:foo="bar") instead of
// going through setAttribute.
type SetProperty struct {
	Target  TargetRef
	Name    string
	Value   string
	Dynamic bool
}

func (SetProperty) bindingKind() string { return "property" }

// SetStyleProperty sets one CSS property from a style:color="red"
// attribute. A style={{...}} object is not split into entries; it is
// lowered whole through CallHelperWithValue.
type SetStyleProperty struct {
	Target   TargetRef
	Property string
	Value    string
	Dynamic  bool
}

func (SetStyleProperty) bindingKind() string { return "style-property" }

// ToggleClass sets or removes one class via class:foo={cond}. A
// classList={{...}} object is lowered whole through CallHelperWithValue.
type ToggleClass struct {
	Target   TargetRef
	ClassName string
	Condition string
	Dynamic  bool
}

func (ToggleClass) bindingKind() string { return "toggle-class" }

// SetClassName overwrites the element's whole className, used for a
// dynamic class={expr} (as opposed to the static class text baked into the
// template).
type SetClassName struct {
	Target  TargetRef
	Value   string
	Dynamic bool
}

func (SetClassName) bindingKind() string { return "class-name" }

// AddEventListener wires on:event or onEvent handlers. Delegated is true
// when the event is routed through the framework's single delegated
// listener instead of a per-node addEventListener call.
type AddEventListener struct {
	Target    TargetRef
	Event     string
	Handler   string
	Delegated bool
	Capture   bool
}

func (AddEventListener) bindingKind() string { return "event" }

// UseDirective wires use:directive={arg}, calling the named directive
// function with the element and the argument expression.
type UseDirective struct {
	Target    TargetRef
	Directive string
	Arg       string
}

func (UseDirective) bindingKind() string { return "use-directive" }

// SetRef wires ref={ident} (assignment) or ref={fn} (callback) to the
// cloned element.
type SetRef struct {
	Target   TargetRef
	Value    string
	IsCallback bool
}

func (SetRef) bindingKind() string { return "ref" }

// SetInnerHTML assigns innerHTML directly, short-circuiting normal child
// lowering for that subtree.
type SetInnerHTML struct {
	Target  TargetRef
	Value   string
	Dynamic bool
}

func (SetInnerHTML) bindingKind() string { return "inner-html" }

// SpreadProps merges an object expression's keys onto the element via the
// runtime's spread helper, covering {...props} on a plain element.
type SpreadProps struct {
	Target  TargetRef
	Value   string
	Dynamic bool
}

func (SpreadProps) bindingKind() string { return "spread" }

// CallHelperWithValue calls a single-argument runtime helper with the
// element and a whole expression value, used for every style={expr} and
// classList={expr}, object literals included; their key/value pairs are
// not destructured at compile time.
type CallHelperWithValue struct {
	Target  TargetRef
	Helper  string
	Value   string
	Dynamic bool
}

func (CallHelperWithValue) bindingKind() string { return "call-helper" }

// InsertChild wires a dynamic child expression (text, component result, or
// array of nodes) into the DOM via the runtime's insert helper, placed
// either at the end of Target's children (Before == "") or immediately
// before the sibling node named by Before.
type InsertChild struct {
	Target  TargetRef
	Value   string
	Before  string
}

func (InsertChild) bindingKind() string { return "insert-child" }
