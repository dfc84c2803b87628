// Package common holds the shared model used by domlower, ssrlower and the
// emitter: compiler options, the per-compilation context, HTML metadata
// tables and the dynamic/static classifier.
package common

// GenerateMode selects which lowering pass the emitter drives per JSX root.
type GenerateMode int

const (
	// GenerateDom lowers JSX into cloneNode-based template instantiation
	// wired to reactive effects. The default.
	GenerateDom GenerateMode = iota
	// GenerateSSR lowers JSX into ssr`...` tagged templates (or a plain
	// string when nothing is dynamic) that build an HTML string on the
	// server.
	GenerateSSR
	// GenerateUniversal is an alias for GenerateDom; it exists so host
	// configs that set generate: "universal" don't need special-casing.
	GenerateUniversal
)

func (m GenerateMode) String() string {
	switch m {
	case GenerateDom:
		return "dom"
	case GenerateSSR:
		return "ssr"
	case GenerateUniversal:
		return "universal"
	default:
		return "unknown"
	}
}

// ParseGenerateMode maps the CLI/config string form onto a GenerateMode.
func ParseGenerateMode(s string) (GenerateMode, bool) {
	switch s {
	case "", "dom":
		return GenerateDom, true
	case "ssr":
		return GenerateSSR, true
	case "universal":
		return GenerateUniversal, true
	default:
		return GenerateDom, false
	}
}

// Options configures a single TransformJSX call. Every field has a default
// matching the framework's own defaults so a caller only needs to set what
// they want to override.
type Options struct {
	// ModuleName is the module the emitted import statement pulls runtime
	// helpers from.
	ModuleName string

	// Generate selects DOM, SSR or Universal lowering.
	Generate GenerateMode

	// Hydratable, when true, makes DOM lowering claim each root through
	// getNextElement(_tmpl$N) instead of _tmpl$N.cloneNode(true), and makes
	// SSR lowering add an ssrHydrationKey() to each element's opening tag
	// and <!--#-->/<!--/--> markers around dynamic children.
	Hydratable bool

	// DelegateEvents controls whether non-capturing, bubbling event
	// handlers are routed through the single delegated listener instead
	// of one addEventListener per node.
	DelegateEvents bool

	// DelegatedEvents lists additional event names to treat as
	// delegatable beyond the built-in set in htmlmeta.go.
	DelegatedEvents []string

	// WrapConditionals, when true, makes DOM lowering pass a ternary or
	// logical (&&, ||, ??) expression child of an element to insert() as
	// memo(() => (expr)) instead of a plain thunk.
	WrapConditionals bool

	// ContextToCustomElements, when true, makes DOM lowering set
	// el._$owner = getOwner() on every custom element (a tag containing
	// "-") so the current owner/context reaches across its boundary.
	ContextToCustomElements bool

	// BuiltIns lists the component names recognized as framework built-ins
	// (For, Show, ...; see IsBuiltIn). Both lowering passes still lower a
	// built-in as an ordinary createComponent call.
	BuiltIns []string

	// EffectWrapper names the runtime symbol used to wrap dynamic
	// bindings. Reserved for host customization; inert in v1 like
	// MemoWrapper below.
	EffectWrapper string

	// MemoWrapper names the runtime symbol for memo wrapping. Reserved;
	// inert in v1: no pass reads it, and every memo() the compiler emits
	// uses the literal name "memo".
	MemoWrapper string

	// Filename is used only for diagnostics.
	Filename string

	// SourceMap controls whether TransformJSX populates Result.Map.
	SourceMap bool

	// StaticMarker is the comment text (without the surrounding /* */)
	// for marking an expression as never needing to re-run. Reserved; inert
	// in v1: neither the parser nor the lowering passes look for it.
	StaticMarker string
}

// BuiltInDefaults is the framework's default built-in component set.
var BuiltInDefaults = []string{
	"For", "Show", "Switch", "Match", "Suspense", "SuspenseList",
	"Portal", "Index", "Dynamic", "ErrorBoundary",
}

// DefaultOptions returns the framework's documented defaults.
func DefaultOptions() Options {
	return Options{
		ModuleName:              "solid-js/web",
		Generate:                GenerateDom,
		Hydratable:              false,
		DelegateEvents:          true,
		DelegatedEvents:         nil,
		WrapConditionals:        true,
		ContextToCustomElements: true,
		BuiltIns:                append([]string(nil), BuiltInDefaults...),
		EffectWrapper:           "effect",
		MemoWrapper:             "memo",
		Filename:                "input.tsx",
		SourceMap:               false,
		StaticMarker:            "@once",
	}
}

// Merge overlays override onto o, returning a new Options: non-empty string
// and slice fields of override replace o's, while Generate and every bool
// field are always taken from override, even at their zero value.
func (o Options) Merge(override Options) Options {
	result := o
	if override.ModuleName != "" {
		result.ModuleName = override.ModuleName
	}
	if override.Filename != "" {
		result.Filename = override.Filename
	}
	if override.StaticMarker != "" {
		result.StaticMarker = override.StaticMarker
	}
	if override.EffectWrapper != "" {
		result.EffectWrapper = override.EffectWrapper
	}
	if override.MemoWrapper != "" {
		result.MemoWrapper = override.MemoWrapper
	}
	if len(override.BuiltIns) > 0 {
		result.BuiltIns = override.BuiltIns
	}
	if len(override.DelegatedEvents) > 0 {
		result.DelegatedEvents = override.DelegatedEvents
	}
	result.Generate = override.Generate
	result.Hydratable = override.Hydratable
	result.DelegateEvents = override.DelegateEvents
	result.WrapConditionals = override.WrapConditionals
	result.ContextToCustomElements = override.ContextToCustomElements
	result.SourceMap = override.SourceMap
	return result
}

// IsBuiltIn reports whether tag is registered as a framework built-in under
// these options.
func (o Options) IsBuiltIn(tag string) bool {
	for _, b := range o.BuiltIns {
		if b == tag {
			return true
		}
	}
	return false
}
