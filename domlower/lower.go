package domlower

import (
	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// LowerRoot lowers one JSX node (an element, a fragment, or a component
// call) into its replacement JS expression text. It is the single entry
// point both the emitter (for top-level JSX roots) and the child/spread
// splicing helpers in this package (for JSX nested inside a larger
// expression) call.
func LowerRoot(node *ast.Node, ctx *common.Context) string {
	if node == nil {
		return "undefined"
	}
	if node.NodeKindOf() != ast.KindElement && node.NodeKindOf() != ast.KindFragment {
		// Only elements/fragments reach here; a bare text/expression node
		// as a JSX "root" isn't reachable from the parser (it never
		// treats plain text as a root), but staying total is cheap.
		return "undefined"
	}
	if node.TagName == "" {
		return lowerFragment(node, ctx)
	}
	if common.IsComponentTag(node.TagName) {
		return LowerComponent(node, ctx)
	}
	return lowerElementRoot(node, ctx)
}

func lowerFragment(node *ast.Node, ctx *common.Context) string {
	items := lowerChildValues(node.Children, ctx)
	if len(items) == 0 {
		return "undefined"
	}
	// A fragment has no wrapper element to call insert() on, so a lone
	// dynamic expression child would otherwise be evaluated once and
	// frozen; memo() gives callers a reactive accessor instead.
	if len(items) == 1 && items[0].reactiveExpr {
		ctx.RegisterHelper("memo")
		return "memo(() => " + items[0].expr + ")"
	}
	return joinChildValues(items)
}

func lowerElementRoot(node *ast.Node, ctx *common.Context) string {
	isSVG := common.IsSVGElement(node.TagName)
	tb := newTemplateBuilder(ctx, isSVG)
	tb.rootVar = ctx.NextElementID()
	tb.visitElement(node, common.WalkPath{}, true)
	return tb.buildIIFE()
}
