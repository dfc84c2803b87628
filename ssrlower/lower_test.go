package ssrlower

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

func staticAttr(name, value string) ast.Attribute {
	return ast.Attribute{Name: name, ValueText: value}
}

func exprAttr(name, text string, shape *common.Expr) ast.Attribute {
	return ast.Attribute{Name: name, IsExpr: true, ValueText: text, Value: &ast.Expression{Text: text, Shape: shape}}
}

// S5 — SSR static+dynamic: a non-hydratable render of <h1>Hello {name}</h1>
// produces one ssr`...` tagged template with a single escape()-wrapped hole.
func TestLowerRoot_SSRStaticAndDynamicText(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("h1", common.Span{}, false)
	expr := &ast.Expression{Text: "name", Shape: &common.Expr{Kind: common.ExprIdentifier, Text: "name"}}
	node.Children = []*ast.Node{
		ast.NewText("Hello ", common.Span{}),
		ast.NewExpressionContainer(expr, common.Span{}),
	}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerRoot(node, ctx)

	assert.Equal(t, "ssr`<h1>Hello ${escape(name)}</h1>`", out)
}

// A subtree with no dynamic values at all collapses to a plain quoted
// string rather than an unnecessary tagged template.
func TestLowerRoot_AllStaticCollapsesToPlainString(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("p", common.Span{}, false)
	node.Children = []*ast.Node{ast.NewText("hello", common.Span{})}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerRoot(node, ctx)

	assert.Equal(t, `"<p>hello</p>"`, out)
}

// Invariant 7/8 — in hydratable mode, a dynamic child gets wrapped in
// hydration-key comment markers so the client runtime can find it; client-
// only attributes (on*, ref) never reach SSR output at all.
func TestLowerRoot_HydratableWrapsDynamicChildInMarkers(t *testing.T) {
	t.Parallel()

	opts := common.DefaultOptions()
	opts.Hydratable = true
	ctx := common.NewContext(opts)

	node := ast.NewElement("span", common.Span{}, false)
	node.Attrs = []ast.Attribute{exprAttr("onClick", "h", &common.Expr{Kind: common.ExprIdentifier, Text: "h"})}
	expr := &ast.Expression{Text: "label()", Shape: &common.Expr{Kind: common.ExprCall, Text: "label()"}}
	node.Children = []*ast.Node{ast.NewExpressionContainer(expr, common.Span{})}

	out := LowerRoot(node, ctx)

	assert.Contains(t, out, "<!--#-->${escape(label())}<!--/-->")
	assert.NotContains(t, out, "onClick", "client-only attributes must never reach SSR output")
	assert.NotContains(t, out, "h)", "the click handler itself must never reach SSR output")
}

// Boolean DOM attributes route through ssrAttribute instead of becoming a
// quoted "true"/"false" string value.
func TestLowerRoot_BooleanAttributeUsesSSRAttributeHelper(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("input", common.Span{}, true)
	node.Attrs = []ast.Attribute{exprAttr("disabled", "isDisabled", &common.Expr{Kind: common.ExprIdentifier, Text: "isDisabled"})}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerRoot(node, ctx)

	assert.Contains(t, out, `ssrAttribute("disabled", isDisabled, true)`)
	assert.Contains(t, ctx.Helpers(), "ssrAttribute")
}

// class/className route through escape(expr, true) rather than the plain
// escape(expr) used for text content, since they land inside an attribute
// value.
func TestLowerRoot_DynamicClassUsesAttributeEscape(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("div", common.Span{}, true)
	node.Attrs = []ast.Attribute{exprAttr("class", "cls()", &common.Expr{Kind: common.ExprCall, Text: "cls()"})}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerRoot(node, ctx)

	assert.Contains(t, out, "escape(cls(), true)")
}

// innerHTML bypasses escaping entirely — the author opted into raw markup.
func TestLowerRoot_InnerHTMLSkipsEscaping(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("div", common.Span{}, true)
	node.Attrs = []ast.Attribute{exprAttr("innerHTML", "rawHTML", &common.Expr{Kind: common.ExprIdentifier, Text: "rawHTML"})}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerRoot(node, ctx)

	assert.Contains(t, out, "${rawHTML}")
	assert.NotContains(t, out, "escape(rawHTML")
}

// A component used as a child is inserted as a single already-built-HTML
// dynamic value, never re-escaped (re-escaping would turn real markup into
// literal text).
func TestLowerRoot_ComponentChildIsNotReescaped(t *testing.T) {
	t.Parallel()

	node := ast.NewElement("div", common.Span{}, false)
	node.Children = []*ast.Node{ast.NewElement("Widget", common.Span{}, true)}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerRoot(node, ctx)

	assert.Contains(t, out, "${createComponent(Widget, {})}")
	assert.NotContains(t, out, "escape(createComponent")
}

// A fragment's children flatten directly, matching the DOM-side regression
// coverage for the same fragment/element kind confusion.
func TestLowerRoot_FragmentChildrenAreNotDropped(t *testing.T) {
	t.Parallel()

	frag := ast.NewElement("", common.Span{}, false)
	frag.Children = []*ast.Node{
		ast.NewText("a", common.Span{}),
		ast.NewElement("b", common.Span{}, true),
	}

	ctx := common.NewContext(common.DefaultOptions())
	out := LowerRoot(frag, ctx)

	assert.Contains(t, out, "a")
	assert.Contains(t, out, "<b>")
}

func TestLowerRoot_NilNodeIsUndefined(t *testing.T) {
	t.Parallel()

	ctx := common.NewContext(common.DefaultOptions())
	assert.Equal(t, "undefined", LowerRoot(nil, ctx))
}
