package common

// TemplateRecord is one entry in the per-compilation template table: the
// raw HTML string plus whether it must be created in the SVG namespace.
type TemplateRecord struct {
	HTML  string
	IsSVG bool
}

// Context carries every piece of mutable state a single TransformJSX call
// accumulates while walking the program: ID counters, the interned
// template table, and the helper/delegated-event registries the emitter
// turns into an import statement and a delegateEvents() call. A Context is
// never reused across calls and never stored outside the call that created
// it, so two concurrent TransformJSX calls never share mutable state.
type Context struct {
	Options Options

	elCounter int

	templates     []TemplateRecord
	templateIndex map[string]int // html+"\x00"+svg -> index, for interning

	helperOrder []string
	helperSet   map[string]bool

	delegateOrder []string
	delegateSet   map[string]bool
}

// NewContext builds a fresh per-compilation context.
func NewContext(opts Options) *Context {
	return &Context{
		Options:       opts,
		templateIndex: make(map[string]int),
		helperSet:     make(map[string]bool),
		delegateSet:   make(map[string]bool),
	}
}

// NextElementID returns the next "_el$N" identifier, first call returning
// "_el$" (bare, matching the framework's convention of leaving the first
// reference unnumbered) and subsequent calls "_el$2", "_el$3", ...
func (c *Context) NextElementID() string {
	c.elCounter++
	if c.elCounter == 1 {
		return "_el$"
	}
	return numberedID("_el$", c.elCounter)
}

// NextRefID mints a scratch identifier for an intermediate binding (e.g. a
// walked-to child that itself needs no stable element ID but is referenced
// more than once), using the same counter space as element IDs.
func (c *Context) NextRefID(prefix string) string {
	c.elCounter++
	return numberedID(prefix, c.elCounter)
}

func numberedID(prefix string, n int) string {
	if n <= 1 {
		return prefix
	}
	return prefix + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// InternTemplate registers html (deduping identical template strings) and
// returns its 1-indexed "_tmpl$N" variable name, matching the reference
// compiler's tmpl_idx+1 numbering: the first template is the bare "_tmpl$",
// later ones "_tmpl$2", "_tmpl$3", ... (the same names the emitter declares).
func (c *Context) InternTemplate(html string, isSVG bool) string {
	key := html + "\x00"
	if isSVG {
		key += "1"
	} else {
		key += "0"
	}
	if idx, ok := c.templateIndex[key]; ok {
		return templateVarName(idx)
	}
	idx := len(c.templates)
	c.templates = append(c.templates, TemplateRecord{HTML: html, IsSVG: isSVG})
	c.templateIndex[key] = idx
	c.RegisterHelper("template")
	return templateVarName(idx)
}

func templateVarName(idx int) string {
	return numberedID("_tmpl$", idx+1)
}

// Templates returns the interned template table in first-use order.
func (c *Context) Templates() []TemplateRecord {
	return c.templates
}

// RegisterHelper records that the emitted code references the named
// runtime ABI symbol, preserving first-use order for deterministic import
// generation.
func (c *Context) RegisterHelper(name string) {
	if c.helperSet[name] {
		return
	}
	c.helperSet[name] = true
	c.helperOrder = append(c.helperOrder, name)
}

// Helpers returns the set of runtime symbols used, in first-use order.
func (c *Context) Helpers() []string {
	return c.helperOrder
}

// RegisterDelegate records an event name as needing delegation.
func (c *Context) RegisterDelegate(event string) {
	if c.delegateSet[event] {
		return
	}
	c.delegateSet[event] = true
	c.delegateOrder = append(c.delegateOrder, event)
}

// Delegates returns the delegated event set in first-registration order,
// which is also the order delegateEvents([...]) lists them in.
func (c *Context) Delegates() []string {
	return c.delegateOrder
}

// Stats summarizes one compilation for CLI reporting (--stats): how many
// templates it interned, which runtime helpers it pulled in, and which
// events ended up delegated.
type Stats struct {
	Templates int
	Helpers   []string
	Delegates []string
}

// Stats snapshots the context's counters. Called once, after every JSX root
// in a file has been lowered.
func (c *Context) Stats() Stats {
	return Stats{
		Templates: len(c.templates),
		Helpers:   append([]string(nil), c.helperOrder...),
		Delegates: append([]string(nil), c.delegateOrder...),
	}
}
