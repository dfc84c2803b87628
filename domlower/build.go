package domlower

import (
	"strings"

	"github.com/vcrobe/jsxc/common"
)

// renderBinding renders b's JS statement text (without a trailing
// semicolon) and reports whether it should be wrapped in effect(() => ...)
// by the caller. Setup bindings (ref, events, use: directives, and
// InsertChild, which carries its own reactivity via an accessor thunk)
// always report false; value bindings report Dynamic.
func renderBinding(b common.Binding) (stmt string, dynamic bool) {
	switch v := b.(type) {
	case common.SetAttribute:
		ctxHelper := "setAttribute"
		return call(ctxHelper, v.Target.ID, common.QuoteJSString(v.Name), v.Value), v.Dynamic
	case common.SetProperty:
		return v.Target.ID + "." + v.Name + " = " + v.Value, v.Dynamic
	case common.SetStyleProperty:
		return call("style", v.Target.ID, "{"+common.QuoteJSString(v.Property)+": "+v.Value+"}"), v.Dynamic
	case common.CallHelperWithValue:
		return call(v.Helper, v.Target.ID, v.Value), v.Dynamic
	case common.ToggleClass:
		return call("classList", v.Target.ID, "{"+common.QuoteJSString(v.ClassName)+": "+v.Condition+"}"), v.Dynamic
	case common.SetClassName:
		return call("className", v.Target.ID, v.Value), v.Dynamic
	case common.SetInnerHTML:
		return v.Target.ID + ".innerHTML = " + v.Value, v.Dynamic
	case common.SpreadProps:
		return call("spread", v.Target.ID, v.Value), v.Dynamic
	case common.AddEventListener:
		if v.Delegated {
			return v.Target.ID + ".$$" + v.Event + " = " + v.Handler, false
		}
		if v.Capture {
			return call("addEventListener", v.Target.ID, common.QuoteJSString(v.Event), v.Handler, "true"), false
		}
		return call("addEventListener", v.Target.ID, common.QuoteJSString(v.Event), v.Handler), false
	case common.UseDirective:
		return call("use", v.Directive, v.Target.ID, common.Thunk(v.Arg)), false
	case common.SetRef:
		if v.IsCallback {
			return v.Value + "(" + v.Target.ID + ")", false
		}
		return v.Value + " = " + v.Target.ID, false
	case common.InsertChild:
		if v.Before != "" {
			return call("insert", v.Target.ID, v.Value, v.Before), false
		}
		return call("insert", v.Target.ID, v.Value), false
	default:
		return "", false
	}
}

func call(fn string, args ...string) string {
	return fn + "(" + strings.Join(args, ", ") + ")"
}

// declaration is one "const name = init;" statement inside a lowered
// element's IIFE body.
type declaration struct {
	Name string
	Init string
}

// templateBuilder accumulates everything a single element/fragment root
// lowers to: the HTML template text, declarations that walk from the
// cloned root to bound nodes, and the bindings themselves in source order.
type templateBuilder struct {
	ctx *common.Context

	html  strings.Builder
	isSVG bool

	rootVar  string
	decls    []declaration
	bindings []common.Binding

	// needsTemplate is set true by newTemplateBuilder and nothing reads or
	// clears it; buildIIFE always interns a template and clones it.
	needsTemplate bool
}

func newTemplateBuilder(ctx *common.Context, isSVG bool) *templateBuilder {
	return &templateBuilder{ctx: ctx, isSVG: isSVG, needsTemplate: true}
}

func (tb *templateBuilder) addDecl(name, init string) {
	tb.decls = append(tb.decls, declaration{Name: name, Init: init})
}

func (tb *templateBuilder) addBinding(b common.Binding) {
	tb.bindings = append(tb.bindings, b)
}

// buildIIFE assembles the final "(() => { ... })()" expression from the
// accumulated template/declarations/bindings, matching the reference
// compiler's statement order: clone, declarations, setup statements,
// effect-wrapped dynamic bindings, return.
func (tb *templateBuilder) buildIIFE() string {
	tmplVar := tb.ctx.InternTemplate(tb.html.String(), tb.isSVG)

	var body strings.Builder
	body.WriteString("const ")
	body.WriteString(tb.rootVar)
	body.WriteString(" = ")
	if tb.ctx.Options.Hydratable {
		tb.ctx.RegisterHelper("getNextElement")
		body.WriteString("getNextElement(")
		body.WriteString(tmplVar)
		body.WriteString("); ")
	} else {
		body.WriteString(tmplVar)
		body.WriteString(".cloneNode(true); ")
	}

	for _, d := range tb.decls {
		body.WriteString("const ")
		body.WriteString(d.Name)
		body.WriteString(" = ")
		body.WriteString(d.Init)
		body.WriteString("; ")
	}

	var setup, effects []string
	for _, b := range tb.bindings {
		stmt, dynamic := renderBinding(b)
		if stmt == "" {
			continue
		}
		if dynamic {
			effects = append(effects, stmt)
		} else {
			setup = append(setup, stmt)
		}
	}
	for _, s := range setup {
		body.WriteString(s)
		body.WriteString("; ")
	}
	if len(effects) > 0 {
		tb.ctx.RegisterHelper("effect")
	}
	for _, s := range effects {
		body.WriteString("effect(() => ")
		body.WriteString(s)
		body.WriteString("); ")
	}

	body.WriteString("return ")
	body.WriteString(tb.rootVar)
	body.WriteString(";")

	return "(() => { " + body.String() + " })()"
}
