// Package domlower lowers a parsed JSX tree into cloneNode-based template
// instantiation: an HTML template string, a set of declarations that walk
// from the cloned root to the nodes that need wiring, and a set of
// bindings (attribute/event/child) rendered as plain or effect-wrapped
// statements.
package domlower

import (
	"strings"

	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// loweredAttr is the result of classifying one JSX attribute: either it
// bakes directly into the template's HTML (Static, with HTMLName/HTMLValue
// set) or it produces a runtime binding wired to elemVar (Binding set).
type loweredAttr struct {
	Static    bool
	HTMLName  string
	HTMLValue string
	Binding   common.Binding
}

// lowerAttribute classifies one attribute per the framework's namespace
// table (on:, use:, prop:, attr:, style:, class:) plus the plain-attribute
// fallback, given the element's already-assigned variable name.
func lowerAttribute(attr ast.Attribute, elemVar string, ctx *common.Context) loweredAttr {
	target := common.TargetRef{ID: elemVar}

	if attr.IsSpread {
		dynamic := attr.Value != nil && common.IsDynamic(attr.Value.Shape)
		ctx.RegisterHelper("spread")
		return loweredAttr{Binding: common.SpreadProps{Target: target, Value: attr.ValueText, Dynamic: dynamic}}
	}

	name := attr.Name
	switch {
	case name == "ref":
		_, isCallback := isCallbackRef(attr.Value)
		return loweredAttr{Binding: common.SetRef{Target: target, Value: attr.ValueText, IsCallback: isCallback}}

	case name == "innerHTML":
		dynamic := attr.IsExpr && attr.Value != nil && common.IsDynamic(attr.Value.Shape)
		return loweredAttr{Binding: common.SetInnerHTML{Target: target, Value: valueExpr(attr), Dynamic: dynamic}}

	case strings.HasPrefix(name, "on:") || strings.HasPrefix(name, "oncapture:"):
		event := common.ToEventName(name)
		capture := strings.HasPrefix(name, "oncapture:")
		ctx.RegisterHelper("addEventListener")
		return loweredAttr{Binding: common.AddEventListener{
			Target: target, Event: event, Handler: attr.ValueText, Delegated: false, Capture: capture,
		}}

	case strings.HasPrefix(name, "on") && len(name) > 2 && isUpper(name[2]):
		event := common.ToEventName(name)
		delegated := ctx.Options.DelegateEvents && (common.IsDelegatableEvent(event) || containsString(ctx.Options.DelegatedEvents, event))
		if delegated {
			ctx.RegisterDelegate(event)
		} else {
			ctx.RegisterHelper("addEventListener")
		}
		return loweredAttr{Binding: common.AddEventListener{
			Target: target, Event: event, Handler: attr.ValueText, Delegated: delegated,
		}}

	case strings.HasPrefix(name, "use:"):
		directive := name[len("use:"):]
		ctx.RegisterHelper("use")
		return loweredAttr{Binding: common.UseDirective{Target: target, Directive: directive, Arg: valueExpr(attr)}}

	case strings.HasPrefix(name, "prop:"):
		propName := name[len("prop:"):]
		dynamic := attr.IsExpr && attr.Value != nil && common.IsDynamic(attr.Value.Shape)
		return loweredAttr{Binding: common.SetProperty{Target: target, Name: propName, Value: valueExpr(attr), Dynamic: dynamic}}

	case strings.HasPrefix(name, "attr:"):
		attrName := name[len("attr:"):]
		dynamic := attr.IsExpr && attr.Value != nil && common.IsDynamic(attr.Value.Shape)
		ctx.RegisterHelper("setAttribute")
		return loweredAttr{Binding: common.SetAttribute{
			Target: target, Name: attrName, Value: valueExpr(attr), Dynamic: dynamic, IsBool: common.IsBooleanAttribute(attrName),
		}}

	case strings.HasPrefix(name, "style:"):
		prop := name[len("style:"):]
		dynamic := attr.IsExpr && attr.Value != nil && common.IsDynamic(attr.Value.Shape)
		ctx.RegisterHelper("style")
		return loweredAttr{Binding: common.SetStyleProperty{Target: target, Property: prop, Value: valueExpr(attr), Dynamic: dynamic}}

	case strings.HasPrefix(name, "class:"):
		cls := name[len("class:"):]
		dynamic := attr.IsExpr && attr.Value != nil && common.IsDynamic(attr.Value.Shape)
		ctx.RegisterHelper("classList")
		return loweredAttr{Binding: common.ToggleClass{Target: target, ClassName: cls, Condition: valueExpr(attr), Dynamic: dynamic}}

	case name == "style" && attr.IsExpr:
		dynamic := attr.Value != nil && common.IsDynamic(attr.Value.Shape)
		ctx.RegisterHelper("style")
		return loweredAttr{Binding: common.CallHelperWithValue{Target: target, Helper: "style", Value: attr.ValueText, Dynamic: dynamic}}

	case name == "classList" && attr.IsExpr:
		dynamic := attr.Value != nil && common.IsDynamic(attr.Value.Shape)
		ctx.RegisterHelper("classList")
		return loweredAttr{Binding: common.CallHelperWithValue{Target: target, Helper: "classList", Value: attr.ValueText, Dynamic: dynamic}}

	case (name == "class" || name == "className") && attr.IsExpr:
		dynamic := attr.Value != nil && common.IsDynamic(attr.Value.Shape)
		ctx.RegisterHelper("className")
		return loweredAttr{Binding: common.SetClassName{Target: target, Value: attr.ValueText, Dynamic: dynamic}}

	case !attr.IsExpr:
		htmlName := common.ResolveAttributeAlias(name)
		return loweredAttr{Static: true, HTMLName: htmlName, HTMLValue: attr.ValueText}

	default:
		htmlName := common.ResolveAttributeAlias(name)
		dynamic := attr.Value != nil && common.IsDynamic(attr.Value.Shape)
		ctx.RegisterHelper("setAttribute")
		return loweredAttr{Binding: common.SetAttribute{
			Target: target, Name: htmlName, Value: attr.ValueText, Dynamic: dynamic, IsBool: common.IsBooleanAttribute(htmlName),
		}}
	}
}

func valueExpr(attr ast.Attribute) string {
	if attr.IsExpr {
		return attr.ValueText
	}
	return common.QuoteJSString(attr.ValueText)
}

func isCallbackRef(expr *ast.Expression) (string, bool) {
	if expr == nil {
		return "", false
	}
	return expr.Text, expr.Shape != nil && expr.Shape.Kind == common.ExprArrowOrFunction
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// hasAnyDynamicAttr reports whether n has at least one attribute that will
// produce a runtime binding (as opposed to baking statically into the
// template): every spread, every namespaced attribute (on:/use:/prop:/
// attr:/style:/class:), "ref", "innerHTML", and any plain attribute given
// as a {expr} rather than a string literal.
func hasAnyDynamicAttr(n *ast.Node) bool {
	for _, a := range n.Attrs {
		if a.IsSpread || a.IsExpr {
			// Any attribute expressed as {expr} produces a binding, even
			// when it happens to classify static (e.g. an arrow function
			// passed to a plain attribute) — it still isn't a plain HTML
			// literal the template builder can inline.
			return true
		}
		switch a.Name {
		case "ref", "innerHTML":
			return true
		}
		if strings.HasPrefix(a.Name, "on:") || strings.HasPrefix(a.Name, "oncapture:") ||
			strings.HasPrefix(a.Name, "use:") || strings.HasPrefix(a.Name, "prop:") ||
			strings.HasPrefix(a.Name, "attr:") || strings.HasPrefix(a.Name, "style:") ||
			strings.HasPrefix(a.Name, "class:") {
			return true
		}
		if strings.HasPrefix(a.Name, "on") && len(a.Name) > 2 && isUpper(a.Name[2]) {
			return true
		}
	}
	return false
}
