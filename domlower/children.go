package domlower

import (
	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

type childItem struct {
	isSlot      bool
	text        string   // baked text for a text/static-literal slot
	elementNode *ast.Node // set when isSlot and this is a real element
	insertValue string   // set when !isSlot: the value passed to insert()
}

// visitChildren lowers node's direct children in document order: static
// text and native elements reserve a template slot (they exist as real
// cloned DOM nodes), while expression/spread children and component calls
// produce no template node at all and are instead wired with insert(),
// anchored before the next slot sibling when one follows.
func (tb *templateBuilder) visitChildren(children []*ast.Node, parentVar string, parentPath common.WalkPath) {
	items := tb.collectChildItems(children)

	forceVar := make([]bool, len(items))
	for i, it := range items {
		if it.isSlot {
			continue
		}
		for j := i + 1; j < len(items); j++ {
			if items[j].isSlot {
				forceVar[j] = true
				break
			}
		}
	}

	slotVar := make([]string, len(items))
	path := parentPath
	first := true
	for i, it := range items {
		if !it.isSlot {
			continue
		}
		if first {
			path = path.Append(common.StepFirstChild)
			first = false
		} else {
			path = path.Append(common.StepNextSibling)
		}
		if it.elementNode != nil {
			slotVar[i] = tb.visitElement(it.elementNode, path, forceVar[i])
			continue
		}
		tb.html.WriteString(common.EscapeHTML(it.text, false))
		if forceVar[i] {
			v := tb.ctx.NextRefID("_el$")
			tb.addDecl(v, path.Expr(tb.rootVar))
			slotVar[i] = v
		}
	}

	for i, it := range items {
		if it.isSlot {
			continue
		}
		marker := ""
		for j := i + 1; j < len(items); j++ {
			if items[j].isSlot {
				marker = slotVar[j]
				break
			}
		}
		tb.addBinding(common.InsertChild{Target: common.TargetRef{ID: parentVar}, Value: it.insertValue, Before: marker})
	}
}

func (tb *templateBuilder) collectChildItems(children []*ast.Node) []childItem {
	var items []childItem
	for _, child := range children {
		switch child.NodeKindOf() {
		case ast.KindText:
			text := common.TrimWhitespace(child.Text)
			if text == "" {
				continue
			}
			items = append(items, childItem{isSlot: true, text: text})

		case ast.KindExpressionContainer:
			spliced := tb.spliceNested(child.Expr)
			if lit, ok := common.LiteralText(child.Expr.Shape); ok && len(child.Expr.NestedJSX) == 0 {
				if lit == "" {
					continue
				}
				items = append(items, childItem{isSlot: true, text: lit})
				continue
			}
			tb.ctx.RegisterHelper("insert")
			value := wrapChildValue(spliced, child.Expr.Shape)
			if shape := child.Expr.Shape; tb.ctx.Options.WrapConditionals && shape != nil &&
				(shape.Kind == common.ExprConditional || shape.Kind == common.ExprLogical) {
				tb.ctx.RegisterHelper("memo")
				value = "memo(" + common.Thunk(spliced) + ")"
			}
			items = append(items, childItem{insertValue: value})

		case ast.KindSpreadChild:
			spliced := tb.spliceNested(child.Expr)
			tb.ctx.RegisterHelper("insert")
			items = append(items, childItem{insertValue: wrapChildValue(spliced, child.Expr.Shape)})

		case ast.KindFragment:
			items = append(items, tb.collectChildItems(child.Children)...)

		case ast.KindElement:
			if common.IsComponentTag(child.TagName) {
				tb.ctx.RegisterHelper("insert")
				items = append(items, childItem{insertValue: tb.lowerComponentChild(child)})
				continue
			}
			items = append(items, childItem{isSlot: true, elementNode: child})
		}
	}
	return items
}

// spliceNested lowers every JSX root nested inside expr (e.g. the <Item/>
// in `items.map(i => <Item/>)`) and splices each compiled result back into
// expr.Text at its recorded byte offsets, working from the last nested
// root to the first so earlier offsets stay valid.
func (tb *templateBuilder) spliceNested(expr *ast.Expression) string {
	if expr == nil {
		return ""
	}
	text := expr.Text
	for i := len(expr.NestedJSX) - 1; i >= 0; i-- {
		n := expr.NestedJSX[i]
		if n.OffsetStart < 0 || n.OffsetEnd > len(text) || n.OffsetStart > n.OffsetEnd {
			continue
		}
		value := LowerRoot(n.Node, tb.ctx)
		text = text[:n.OffsetStart] + value + text[n.OffsetEnd:]
	}
	return text
}

// wrapChildValue thunks expr for insert() when it is dynamic, so the
// runtime re-evaluates it reactively; static values are passed as-is and
// inserted once.
func wrapChildValue(expr string, shape *common.Expr) string {
	if common.IsDynamic(shape) {
		return common.Thunk(expr)
	}
	return expr
}
