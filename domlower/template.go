package domlower

import (
	"strings"

	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// visitElement writes node's opening tag (baking static attributes and
// registering dynamic ones as bindings), recurses into its children, and
// writes the closing tag. It returns the variable name node is reachable
// through, if one was declared — either because node has a dynamic
// attribute, node is a custom element that gets the getOwner() hook of
// Options.ContextToCustomElements, node's children need it as an insertion
// parent, or forceVar
// was requested by the caller (node is needed as a "Before" marker for a
// preceding dynamic sibling).
func (tb *templateBuilder) visitElement(node *ast.Node, path common.WalkPath, forceVar bool) string {
	isRoot := len(path) == 0
	ownerHook := tb.ctx.Options.ContextToCustomElements && strings.Contains(node.TagName, "-")
	needsVar := isRoot || forceVar || ownerHook || hasAnyDynamicAttr(node) || childrenNeedInsertionParent(node)

	var elemVar string
	switch {
	case isRoot:
		elemVar = tb.rootVar
	case needsVar:
		elemVar = tb.ctx.NextRefID("_el$")
		tb.addDecl(elemVar, path.Expr(tb.rootVar))
	}

	tb.html.WriteByte('<')
	tb.html.WriteString(node.TagName)
	for _, attr := range node.Attrs {
		la := lowerAttribute(attr, elemVar, tb.ctx)
		if la.Static {
			tb.html.WriteByte(' ')
			tb.html.WriteString(la.HTMLName)
			tb.html.WriteString(`="`)
			tb.html.WriteString(common.EscapeHTML(la.HTMLValue, true))
			tb.html.WriteByte('"')
			continue
		}
		tb.addBinding(la.Binding)
	}
	if ownerHook {
		tb.ctx.RegisterHelper("getOwner")
		tb.addBinding(common.SetProperty{Target: common.TargetRef{ID: elemVar}, Name: "_$owner", Value: "getOwner()"})
	}
	tb.html.WriteByte('>')

	if !common.IsVoidElement(node.TagName) {
		tb.visitChildren(node.Children, elemVar, path)
		tb.html.WriteString("</")
		tb.html.WriteString(node.TagName)
		tb.html.WriteByte('>')
	}

	return elemVar
}

// childrenNeedInsertionParent reports whether any direct child of node
// will be lowered via insert() rather than baked into the template, which
// forces node itself to have a declared variable to call insert(node, ...)
// on.
func childrenNeedInsertionParent(node *ast.Node) bool {
	for _, child := range node.Children {
		switch child.NodeKindOf() {
		case ast.KindExpressionContainer, ast.KindSpreadChild:
			if lit, ok := common.LiteralText(childShape(child)); ok && lit != "" && len(child.Expr.NestedJSX) == 0 {
				continue
			}
			return true
		case ast.KindElement:
			if common.IsComponentTag(child.TagName) {
				return true
			}
		case ast.KindFragment:
			if childrenNeedInsertionParent(child) {
				return true
			}
		}
	}
	return false
}

func childShape(n *ast.Node) *common.Expr {
	if n.Expr == nil {
		return nil
	}
	return n.Expr.Shape
}
