package ssrlower

import (
	"strings"

	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// transformElementWithSpread lowers a native element that carries a
// {...props} attribute. Per-attribute string concatenation can't merge a
// runtime object into an opening tag, so the whole element is deferred to
// the ssrElement(tag, props, children, needsHydrationKey) runtime helper
// instead of being inlined into the surrounding chunk stream.
func transformElementWithSpread(node *ast.Node, ctx *common.Context) *ssrResult {
	ctx.RegisterHelper("ssrElement")
	ctx.RegisterHelper("escape")

	isSVG := common.IsSVGElement(node.TagName)
	var propParts []string
	for _, attr := range node.Attrs {
		if attr.IsSpread {
			propParts = append(propParts, "..."+attr.ValueText)
			continue
		}
		key := attr.Name
		if key == "ref" || strings.HasPrefix(key, "on") || strings.HasPrefix(key, "use:") || strings.HasPrefix(key, "prop:") {
			continue
		}
		name := key
		if !isSVG {
			name = common.ResolveAttributeAlias(key)
		}
		propKey := common.QuoteJSString(name)
		if !attr.IsExpr {
			propParts = append(propParts, propKey+": "+common.QuoteJSString(common.EscapeHTML(attr.ValueText, true)))
			continue
		}
		propParts = append(propParts, propKey+": "+attr.ValueText)
	}
	propsExpr := "{" + strings.Join(propParts, ", ") + "}"

	childrenExpr := "null"
	if len(node.Children) > 0 {
		if expr, ok := spreadElementChildren(node.Children, ctx); ok {
			childrenExpr = expr
		}
	}

	hydratable := "false"
	if ctx.Options.Hydratable {
		hydratable = "true"
	}

	call := "ssrElement(" + common.QuoteJSString(node.TagName) + ", " + propsExpr + ", " + childrenExpr + ", " + hydratable + ")"

	result := newSSRResult()
	result.pushDynamic(call, false, true, true)
	return result
}

// spreadElementChildren renders the children argument passed to
// ssrElement: text becomes an escaped string literal, expression children
// are escape()-wrapped, and nested elements/components recurse through the
// normal lowering path.
func spreadElementChildren(children []*ast.Node, ctx *common.Context) (string, bool) {
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
			items = append(items, "escape("+spliceNested(child.Expr, ctx)+")")
		case ast.KindSpreadChild:
			items = append(items, "escape("+spliceNested(child.Expr, ctx)+")")
		case ast.KindFragment:
			sub, ok := spreadElementChildren(child.Children, ctx)
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
