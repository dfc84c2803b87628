package ssrlower

import (
	"strings"

	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// transformElement lowers a native HTML/SVG element to an ssrResult. Unlike
// DOM lowering there is no cloneNode target: the element becomes straight
// HTML text with escape()-wrapped holes for dynamic content.
func transformElement(node *ast.Node, ctx *common.Context) *ssrResult {
	tag := node.TagName
	isVoid := common.IsVoidElement(tag)
	isScriptOrStyle := tag == "script" || tag == "style"

	if hasSpreadAttr(node) {
		return transformElementWithSpread(node, ctx)
	}

	result := newSSRResult()
	result.skipEscape = isScriptOrStyle

	result.pushStatic("<" + tag)

	if ctx.Options.Hydratable {
		ctx.RegisterHelper("ssrHydrationKey")
		result.pushDynamic("ssrHydrationKey()", true, true, false)
	}

	transformAttributes(node, result, ctx)
	result.pushStatic(">")

	if !isVoid {
		transformChildren(node, result, ctx, isScriptOrStyle)
		result.pushStatic("</" + tag + ">")
	}

	return result
}

func hasSpreadAttr(node *ast.Node) bool {
	for _, a := range node.Attrs {
		if a.IsSpread {
			return true
		}
	}
	return false
}

func transformAttributes(node *ast.Node, result *ssrResult, ctx *common.Context) {
	isSVG := common.IsSVGElement(node.TagName)
	for _, attr := range node.Attrs {
		if attr.IsSpread {
			continue
		}
		transformAttribute(attr, result, ctx, isSVG)
	}
}

// transformAttribute matches the reference compiler's attribute dispatch:
// client-only names (ref, on*, use:, prop:) are dropped entirely, style and
// classList route through dedicated helpers, boolean DOM properties route
// through ssrAttribute, and everything else is a plain escaped string.
func transformAttribute(attr ast.Attribute, result *ssrResult, ctx *common.Context, isSVG bool) {
	key := attr.Name
	if key == "ref" || strings.HasPrefix(key, "on") || strings.HasPrefix(key, "use:") || strings.HasPrefix(key, "prop:") {
		return
	}
	if key == "innerHTML" || key == "textContent" || key == "innerText" {
		return
	}

	name := key
	if !isSVG {
		name = common.ResolveAttributeAlias(key)
	}

	if !attr.IsExpr {
		result.pushStatic(" " + name + "=\"" + common.EscapeHTML(attr.ValueText, true) + "\"")
		return
	}

	expr := attr.ValueText
	switch {
	case key == "style":
		ctx.RegisterHelper("ssrStyle")
		result.pushStatic(" " + name + "=\"")
		result.pushDynamic("ssrStyle("+expr+")", true, true, false)
		result.pushStatic("\"")
	case key == "class" || key == "className":
		ctx.RegisterHelper("escape")
		result.pushStatic(" " + name + "=\"")
		result.pushDynamic(expr, true, false, false)
		result.pushStatic("\"")
	case key == "classList":
		ctx.RegisterHelper("ssrClassList")
		result.pushStatic(" class=\"")
		result.pushDynamic("ssrClassList("+expr+")", true, true, false)
		result.pushStatic("\"")
	case common.IsBooleanAttribute(key):
		ctx.RegisterHelper("ssrAttribute")
		result.pushDynamic("ssrAttribute("+common.QuoteJSString(name)+", "+expr+", true)", false, true, false)
	default:
		ctx.RegisterHelper("escape")
		result.pushStatic(" " + name + "=\"")
		result.pushDynamic(expr, true, false, false)
		result.pushStatic("\"")
	}
}

// transformChildren handles the innerHTML/textContent shortcuts and
// otherwise walks node's children, baking static text and recursing into
// nested elements/components.
func transformChildren(node *ast.Node, result *ssrResult, ctx *common.Context, skipEscape bool) {
	for _, attr := range node.Attrs {
		if attr.IsSpread || !attr.IsExpr {
			continue
		}
		switch attr.Name {
		case "innerHTML":
			result.pushDynamic(attr.ValueText, false, true, false)
			return
		case "textContent", "innerText":
			ctx.RegisterHelper("escape")
			result.pushDynamic(attr.ValueText, false, false, true)
			return
		}
	}
	processChildren(node.Children, result, ctx, skipEscape)
}
