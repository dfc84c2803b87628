package ssrlower

import (
	"strings"

	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// lowerComponent renders a component or built-in call the same way DOM
// lowering does: components decide for themselves how to render on the
// server, so the call site is generate-mode-agnostic createComponent(Tag,
// props).
func lowerComponent(node *ast.Node, ctx *common.Context) string {
	ctx.RegisterHelper("createComponent")
	props := buildProps(node, ctx)
	return "createComponent(" + node.TagName + ", " + props + ")"
}

// buildProps mirrors the reference SSR compiler's build_props: every
// expression-valued attribute becomes a "get key() { return expr }"
// accessor (props are still read lazily even though the render pass itself
// only runs once); string literals stay plain "key: value" entries. A
// valueless boolean attribute reaches here as the expression `true`, so it
// becomes a getter too.
func buildProps(node *ast.Node, ctx *common.Context) string {
	var staticProps, dynamicProps []string
	var spreads []string
	hasChildren := len(node.Children) > 0

	for _, attr := range node.Attrs {
		if attr.IsSpread {
			spreads = append(spreads, attr.ValueText)
			continue
		}
		if attr.Name == "children" && hasChildren {
			continue
		}
		if strings.HasPrefix(attr.Name, "on") || attr.Name == "ref" || strings.HasPrefix(attr.Name, "use:") {
			continue
		}
		key := propKeyLiteral(attr.Name)
		if !attr.IsExpr {
			staticProps = append(staticProps, key+": "+common.QuoteJSString(attr.ValueText))
			continue
		}
		dynamicProps = append(dynamicProps, "get "+key+"() { return "+attr.ValueText+"; }")
	}

	if hasChildren {
		if childrenExpr, ok := childrenExpr(node.Children, ctx); ok {
			dynamicProps = append(dynamicProps, "get children() { return "+childrenExpr+"; }")
		}
	}

	inline := append(append([]string{}, staticProps...), dynamicProps...)

	if len(spreads) > 0 {
		ctx.RegisterHelper("mergeProps")
		args := append([]string{}, spreads...)
		if len(inline) > 0 {
			args = append(args, "{"+strings.Join(inline, ", ")+"}")
		}
		return "mergeProps(" + strings.Join(args, ", ") + ")"
	}
	if len(inline) == 0 {
		return "{}"
	}
	return "{" + strings.Join(inline, ", ") + "}"
}

// propKeyLiteral quotes prop names that aren't bare JS identifiers.
func propKeyLiteral(name string) string {
	for i, r := range name {
		valid := r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9')
		if !valid {
			return common.QuoteJSString(name)
		}
	}
	return name
}

// childrenExpr renders a component's JSX children as the single expression
// (or array of expressions) passed through its children getter, recursing
// through the same element/component lowering as top-level content.
func childrenExpr(children []*ast.Node, ctx *common.Context) (string, bool) {
	var items []string
	for _, child := range children {
		switch child.NodeKindOf() {
		case ast.KindText:
			text := common.TrimWhitespace(child.Text)
			if text == "" {
				continue
			}
			items = append(items, common.QuoteJSString(common.EscapeHTML(text, false)))
		case ast.KindExpressionContainer:
			items = append(items, spliceNested(child.Expr, ctx))
		case ast.KindSpreadChild:
			items = append(items, spliceNested(child.Expr, ctx))
		case ast.KindFragment:
			sub, ok := childrenExpr(child.Children, ctx)
			if ok {
				items = append(items, sub)
			}
		case ast.KindElement:
			items = append(items, LowerRoot(child, ctx))
		}
	}
	switch len(items) {
	case 0:
		return "", false
	case 1:
		return items[0], true
	default:
		return "[" + strings.Join(items, ", ") + "]", true
	}
}
