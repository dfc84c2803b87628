package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimWhitespace(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"inline leading space preserved", " and more", " and more"},
		{"inline collapses internal runs", "a   b", "a b"},
		{"block-formatted trims both ends", "\n      hello\n      world\n    ", "hello world"},
		{"pure whitespace with newline collapses to empty", "\n   \n", ""},
		{"no whitespace passes through", "hello", "hello"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.want, TrimWhitespace(c.text))
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&lt;div&gt;", EscapeHTML("<div>", false))
	assert.Equal(t, "a &amp; b", EscapeHTML("a & b", false))
	assert.Equal(t, `&quot;hi&quot; &#39;x&#39;`, EscapeHTML(`"hi" 'x'`, true))
	assert.Equal(t, `"hi" 'x'`, EscapeHTML(`"hi" 'x'`, false))
}

func TestQuoteJSString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"hi"`, QuoteJSString("hi"))
	assert.Equal(t, `"line1\nline2"`, QuoteJSString("line1\nline2"))
	assert.Equal(t, `"a\"b"`, QuoteJSString(`a"b`))
	assert.Equal(t, `"a\\b"`, QuoteJSString(`a\b`))
}

func TestQuoteJSTemplateLiteral(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "`hi`", QuoteJSTemplateLiteral("hi"))
	assert.Equal(t, "`<div class=\"a\">hi</div>`", QuoteJSTemplateLiteral(`<div class="a">hi</div>`),
		"double quotes from attribute values must pass through unescaped")
	assert.Equal(t, "`a\\`b`", QuoteJSTemplateLiteral("a`b"))
	assert.Equal(t, "`a\\\\b`", QuoteJSTemplateLiteral(`a\b`))
	assert.Equal(t, "`a\\${b}`", QuoteJSTemplateLiteral("a${b}"), "${ must not open an interpolation")
}

func TestToEventName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "click", ToEventName("onClick"))
	assert.Equal(t, "custom", ToEventName("on:custom"))
	assert.Equal(t, "mousedown", ToEventName("onMouseDown"))
	assert.Equal(t, "once", ToEventName("once")) // no "on" prefix at all
}

func TestThunk(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "() => (count())", Thunk("count()"))
}

func TestLiteralText(t *testing.T) {
	t.Parallel()

	text, ok := LiteralText(&Expr{Kind: ExprLiteral, Text: `"hello"`})
	assert.True(t, ok)
	assert.Equal(t, "hello", text)

	text, ok = LiteralText(&Expr{Kind: ExprLiteral, Text: "null"})
	assert.True(t, ok)
	assert.Equal(t, "", text)

	text, ok = LiteralText(&Expr{Kind: ExprStaticTemplateLiteral, Text: "`hi there`"})
	assert.True(t, ok)
	assert.Equal(t, "hi there", text)

	_, ok = LiteralText(&Expr{Kind: ExprCall, Text: "f()"})
	assert.False(t, ok)

	_, ok = LiteralText(nil)
	assert.False(t, ok)
}
