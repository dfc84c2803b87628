package domlower

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// S6 — a single child that is itself an arrow function (e.g. For's render
// callback) passes straight through as the children prop's value, since an
// arrow expression classifies static under IsDynamic and there is only one
// child to join. Inline attrs and children with no spread fold into one
// object literal, never mergeProps.
func TestLowerComponent_ChildFunctionPassesThroughAsSingleChild(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("For", common.Span{}, false)
	node.Attrs = []ast.Attribute{exprAttr("each", "items", &common.Expr{Kind: common.ExprIdentifier, Text: "items"})}
	childFn := &ast.Expression{Text: "(i) => i", Shape: &common.Expr{Kind: common.ExprArrowOrFunction, Text: "(i) => i"}}
	node.Children = []*ast.Node{ast.NewExpressionContainer(childFn, common.Span{})}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerComponent(node, ctx)

	assert.Equal(t, "createComponent(For, {get each() { return items; }, children: (i) => i})", out)
	assert.NotContains(t, ctx.Helpers(), "mergeProps")
}

// A static string attribute becomes a plain key: value entry, never a
// getter — getters are reserved for expressions IsDynamic actually flags.
func TestLowerComponent_StaticPropIsPlainEntry(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("Greeting", common.Span{}, true)
	node.Attrs = []ast.Attribute{staticAttr("name", "Alice")}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerComponent(node, ctx)

	assert.Equal(t, `createComponent(Greeting, {name: "Alice"})`, out)
}

// Dynamic expression props become a "get key()" accessor so every read
// re-runs the source expression.
func TestLowerComponent_DynamicPropBecomesGetter(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("Counter", common.Span{}, true)
	node.Attrs = []ast.Attribute{exprAttr("value", "count()", &common.Expr{Kind: common.ExprCall, Text: "count()"})}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerComponent(node, ctx)

	assert.Equal(t, "createComponent(Counter, {get value() { return count(); }})", out)
}

// An explicit children={...} prop is dropped when real JSX children exist
// — the JSX children always win.
func TestLowerComponent_JSXChildrenWinOverExplicitChildrenProp(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("Box", common.Span{}, false)
	node.Attrs = []ast.Attribute{exprAttr("children", "ignoredProp", &common.Expr{Kind: common.ExprIdentifier, Text: "ignoredProp"})}
	node.Children = []*ast.Node{ast.NewText("real child", common.Span{})}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerComponent(node, ctx)

	assert.NotContains(t, out, "ignoredProp")
	assert.Contains(t, out, `children: "real child"`)
}

// ref on a component lowers to the forwarding function, not a direct
// assignment, so it accepts either a callback ref or a plain variable.
func TestLowerComponent_RefGetsForwardingFunction(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("Widget", common.Span{}, true)
	node.Attrs = []ast.Attribute{exprAttr("ref", "myRef", &common.Expr{Kind: common.ExprIdentifier, Text: "myRef"})}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerComponent(node, ctx)

	assert.Contains(t, out, `ref: function (r$) { var _ref$ = myRef; typeof _ref$ === "function" ? _ref$(r$) : myRef = r$; }`)
}

// A spread prop alongside inline props merges through mergeProps, with JSX
// children folded in as a trailing children entry.
func TestLowerComponent_SpreadMergesWithInlineProps(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("Row", common.Span{}, false)
	node.Attrs = []ast.Attribute{
		{IsSpread: true, ValueText: "restProps"},
		staticAttr("id", "row-1"),
	}
	node.Children = []*ast.Node{ast.NewText("cell", common.Span{})}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerComponent(node, ctx)

	assert.Contains(t, out, "mergeProps(restProps,")
	assert.Contains(t, out, `id: "row-1"`)
	assert.Contains(t, out, `children: "cell"`)
	assert.Contains(t, ctx.Helpers(), "mergeProps")
}

// Multiple children become an array passed to the children prop.
func TestLowerComponent_MultipleChildrenBecomeArray(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("List", common.Span{}, false)
	node.Children = []*ast.Node{
		ast.NewElement("li", common.Span{}, true),
		ast.NewElement("li", common.Span{}, true),
	}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerComponent(node, ctx)

	assert.Contains(t, out, "get children() { return [")
}
