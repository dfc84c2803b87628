package ssrlower

import (
	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// LowerRoot lowers one JSX node (an element, a fragment, or a component
// call) into its replacement JS expression text for server rendering. It
// is the entry point the emitter calls for each top-level JSX root in
// Options.Generate == Ssr mode, and that the nested-JSX splicing helpers in
// this package call for JSX embedded inside a larger expression.
func LowerRoot(node *ast.Node, ctx *common.Context) string {
	if node == nil {
		return "undefined"
	}
	if node.NodeKindOf() != ast.KindElement && node.NodeKindOf() != ast.KindFragment {
		return "undefined"
	}
	if node.NodeKindOf() == ast.KindFragment {
		return lowerFragment(node, ctx)
	}
	if common.IsComponentTag(node.TagName) {
		return lowerComponent(node, ctx)
	}
	return transformElement(node, ctx).toSSRCall(ctx.Options.Hydratable)
}

func lowerFragment(node *ast.Node, ctx *common.Context) string {
	r := newSSRResult()
	processChildren(node.Children, r, ctx, false)
	return r.toSSRCall(ctx.Options.Hydratable)
}

// lowerChildResult lowers a child node into an ssrResult suitable for
// merging into an enclosing element's chunk stream: native elements/
// fragments merge their own chunks directly, components become a single
// dynamic value (their return value is already-built HTML, so it is never
// re-escaped).
func lowerChildResult(node *ast.Node, ctx *common.Context) *ssrResult {
	if node.NodeKindOf() == ast.KindFragment {
		r := newSSRResult()
		processChildren(node.Children, r, ctx, false)
		return r
	}
	if common.IsComponentTag(node.TagName) {
		r := newSSRResult()
		r.pushDynamic(lowerComponent(node, ctx), false, true, true)
		return r
	}
	return transformElement(node, ctx)
}
