package domlower

import (
	"strings"

	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// LowerComponent lowers a component or built-in element (<Foo>, <For>,
// <Show>, ...) into a `Tag(props)` call. Built-ins are themselves ordinary
// components the caller's own source imports from the runtime module
// (For, Show, Switch, ...), so no separate call-site codegen is needed for
// them beyond the generic component path; Options.BuiltIns/IsBuiltIn is
// bookkeeping for future per-built-in optimization, not required for
// correctness here.
func LowerComponent(node *ast.Node, ctx *common.Context) string {
	ctx.RegisterHelper("createComponent")
	props := lowerComponentProps(node, ctx)
	return "createComponent(" + node.TagName + ", " + props + ")"
}

// lowerComponentChild is the entry point children.go uses for a component
// appearing as a child.
func (tb *templateBuilder) lowerComponentChild(node *ast.Node) string {
	return LowerComponent(node, tb.ctx)
}

// lowerComponentProps builds a component's props object. Static values
// (string literals, valueless booleans, and expressions classified static
// by common.IsDynamic) are plain "key: value" entries; dynamic expressions
// become "get key() { return value }" accessors so every read re-evaluates
// the source expression, matching the framework's lazy-prop convention.
// ref is special-cased into a small forwarding function accepting either a
// callback ref or a plain variable to assign. children, when present, joins
// the same inline-attribute run rather than becoming its own object, so a
// component with attrs and children but no spread still gets a single
// object literal instead of an unnecessary mergeProps wrapper.
func lowerComponentProps(node *ast.Node, ctx *common.Context) string {
	var parts []string
	var runObject []string

	flushRun := func() {
		if len(runObject) > 0 {
			parts = append(parts, "{"+strings.Join(runObject, ", ")+"}")
			runObject = nil
		}
	}

	hasChildren := len(node.Children) > 0

	for _, attr := range node.Attrs {
		if attr.IsSpread {
			flushRun()
			parts = append(parts, attr.ValueText)
			continue
		}
		if attr.Name == "children" && hasChildren {
			// JSX children win over an explicit children={...} prop.
			continue
		}
		if attr.Name == "ref" && attr.IsExpr {
			runObject = append(runObject, "ref: "+refForwardingFunc(attr.ValueText))
			continue
		}
		runObject = append(runObject, propEntry(attr.Name, attr))
	}

	if childrenExpr, dynamic, ok := lowerChildrenProp(node.Children, ctx); ok {
		if dynamic {
			runObject = append(runObject, "get children() { return "+childrenExpr+"; }")
		} else {
			runObject = append(runObject, "children: "+childrenExpr)
		}
	}
	flushRun()

	switch len(parts) {
	case 0:
		return "{}"
	case 1:
		if strings.HasPrefix(parts[0], "{") {
			return parts[0]
		}
		return "{..." + parts[0] + "}"
	default:
		ctx.RegisterHelper("mergeProps")
		return "mergeProps(" + strings.Join(parts, ", ") + ")"
	}
}

// propEntry renders one non-spread, non-ref attribute as an object literal
// entry: a plain "key: value" for static data, a "get key()" accessor for a
// dynamic expression.
func propEntry(name string, attr ast.Attribute) string {
	key := propKey(name)
	if !attr.IsExpr {
		return key + ": " + common.QuoteJSString(attr.ValueText)
	}
	if attr.Value != nil && common.IsDynamic(attr.Value.Shape) {
		return "get " + key + "() { return " + attr.ValueText + "; }"
	}
	return key + ": " + attr.ValueText
}

// refForwardingFunc renders the function Solid attaches to a component's
// ref prop so the callee can accept either a callback ref or a plain
// variable to assign once the underlying element mounts.
func refForwardingFunc(valueExpr string) string {
	return "function (r$) { var _ref$ = " + valueExpr + "; typeof _ref$ === \"function\" ? _ref$(r$) : " + valueExpr + " = r$; }"
}

// propKey quotes prop names that aren't valid bare JS identifiers (e.g.
// "aria-label"), matching how a plain JS object literal must spell them.
func propKey(name string) string {
	for i, r := range name {
		valid := r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9')
		if !valid {
			return common.QuoteJSString(name)
		}
	}
	return name
}

// lowerChildrenProp builds the value passed via a component's children
// prop: a single child expression as-is, or multiple children joined into
// an array. ok is false when the component has no meaningful children at
// all, in which case the caller omits the prop entirely (createComponent
// supplies its own default). dynamic reports whether the result should be
// wrapped in a "get children()" accessor rather than assigned directly.
func lowerChildrenProp(children []*ast.Node, ctx *common.Context) (expr string, dynamic bool, ok bool) {
	items := lowerChildValues(children, ctx)
	if len(items) == 0 {
		return "", false, false
	}
	dynamic = len(items) > 1
	for _, it := range items {
		if it.dynamic {
			dynamic = true
		}
	}
	return joinChildValues(items), dynamic, true
}

type childValue struct {
	expr     string
	isSpread bool
	dynamic  bool

	// reactiveExpr marks a bare dynamic expression child (e.g. {count()}),
	// as opposed to an element/component child whose own reactivity is
	// already wired internally. Only this kind needs a memo() wrapper when
	// it ends up as a fragment's sole child with nothing else to attach an
	// insert() binding to.
	reactiveExpr bool
}

func lowerChildValues(children []*ast.Node, ctx *common.Context) []childValue {
	var out []childValue
	for _, child := range children {
		switch child.NodeKindOf() {
		case ast.KindText:
			text := common.TrimWhitespace(child.Text)
			if text == "" {
				continue
			}
			out = append(out, childValue{expr: common.QuoteJSString(text)})
		case ast.KindExpressionContainer:
			dyn := common.IsDynamic(child.Expr.Shape)
			out = append(out, childValue{
				expr:         spliceStandalone(child.Expr, ctx),
				dynamic:      dyn,
				reactiveExpr: dyn,
			})
		case ast.KindSpreadChild:
			out = append(out, childValue{expr: spliceStandalone(child.Expr, ctx), isSpread: true, dynamic: true})
		case ast.KindFragment:
			out = append(out, lowerChildValues(child.Children, ctx)...)
		case ast.KindElement:
			if common.IsComponentTag(child.TagName) {
				out = append(out, childValue{expr: LowerComponent(child, ctx), dynamic: true})
			} else {
				out = append(out, childValue{expr: LowerRoot(child, ctx), dynamic: true})
			}
		}
	}
	return out
}

func joinChildValues(items []childValue) string {
	if len(items) == 1 && !items[0].isSpread {
		return items[0].expr
	}
	parts := make([]string, len(items))
	for i, it := range items {
		if it.isSpread {
			parts[i] = "..." + it.expr
		} else {
			parts[i] = it.expr
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// spliceStandalone lowers any JSX nested inside expr and splices the
// results back into its text, for use outside a templateBuilder (e.g.
// while building a component's children prop, which has no template of
// its own to attach declarations to).
func spliceStandalone(expr *ast.Expression, ctx *common.Context) string {
	if expr == nil {
		return "undefined"
	}
	text := expr.Text
	for i := len(expr.NestedJSX) - 1; i >= 0; i-- {
		n := expr.NestedJSX[i]
		if n.OffsetStart < 0 || n.OffsetEnd > len(text) || n.OffsetStart > n.OffsetEnd {
			continue
		}
		value := LowerRoot(n.Node, ctx)
		text = text[:n.OffsetStart] + value + text[n.OffsetEnd:]
	}
	return text
}
