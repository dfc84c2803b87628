package ssrlower

import (
	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// processChildren walks children in document order, baking static text and
// recursing into elements/components/fragments; skipEscape is inherited
// from an enclosing <script>/<style> element.
func processChildren(children []*ast.Node, result *ssrResult, ctx *common.Context, skipEscape bool) {
	for _, child := range children {
		switch child.NodeKindOf() {
		case ast.KindText:
			text := common.TrimWhitespace(child.Text)
			if text == "" {
				continue
			}
			if skipEscape {
				result.pushStatic(text)
			} else {
				result.pushStatic(common.EscapeHTML(text, false))
			}

		case ast.KindFragment:
			processChildren(child.Children, result, ctx, skipEscape)

		case ast.KindElement:
			result.merge(lowerChildResult(child, ctx))

		case ast.KindExpressionContainer:
			expr := spliceNested(child.Expr, ctx)
			if lit, ok := common.LiteralText(child.Expr.Shape); ok && len(child.Expr.NestedJSX) == 0 {
				if lit == "" {
					continue
				}
				if skipEscape {
					result.pushStatic(lit)
				} else {
					result.pushStatic(common.EscapeHTML(lit, false))
				}
				continue
			}
			if skipEscape {
				result.pushDynamic(expr, false, true, false)
			} else {
				ctx.RegisterHelper("escape")
				result.pushDynamic(expr, false, false, true)
			}

		case ast.KindSpreadChild:
			expr := spliceNested(child.Expr, ctx)
			ctx.RegisterHelper("escape")
			result.pushDynamic(expr, false, false, true)
		}
	}
}

// spliceNested lowers every JSX root nested inside expr and splices each
// compiled result's ssr`...` text back into expr.Text at its recorded byte
// offsets, last root first so earlier offsets stay valid.
func spliceNested(expr *ast.Expression, ctx *common.Context) string {
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
