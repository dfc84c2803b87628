package common

import "strings"

// TrimWhitespace collapses runs of whitespace in JSX text to a single
// space, following the reference compiler's rule: if the text spans a
// newline (i.e. it came from block-formatted JSX, where the author's
// indentation is never meaningful) the collapsed result is additionally
// trimmed on both ends; if it does not span a newline (inline text like
// the ". " between two expression children on the same line) a single
// leading space is preserved since it is part of the author's intended
// spacing.
func TrimWhitespace(text string) string {
	hasNewline := strings.ContainsRune(text, '\n')

	var b strings.Builder
	lastWasSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		lastWasSpace = false
		b.WriteRune(r)
	}
	collapsed := b.String()

	if hasNewline {
		return strings.TrimSpace(collapsed)
	}
	return collapsed
}

// EscapeHTML escapes text for insertion into a static HTML template or SSR
// chunk. quoteEscape additionally escapes quote characters, needed when the
// text lands inside an HTML attribute value.
func EscapeHTML(text string, quoteEscape bool) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	if quoteEscape {
		text = strings.ReplaceAll(text, "\"", "&quot;")
		text = strings.ReplaceAll(text, "'", "&#39;")
	}
	return text
}

// QuoteJSString renders text as a double-quoted JS string literal, escaping
// backslashes, double quotes, newlines and other control characters that
// would otherwise terminate or corrupt the literal.
func QuoteJSString(text string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range text {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteJSTemplateLiteral renders text as a backtick-delimited JS template
// literal, escaping only what a template literal actually needs escaped
// (backslashes, backticks, and "${" which would otherwise open an
// interpolation). Used for baked HTML template strings, which are full of
// double quotes from attribute values and read better unescaped.
func QuoteJSTemplateLiteral(text string) string {
	var b strings.Builder
	b.WriteByte('`')
	for i := 0; i < len(text); i++ {
		switch {
		case text[i] == '\\' || text[i] == '`':
			b.WriteByte('\\')
			b.WriteByte(text[i])
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			b.WriteString(`\$`)
		default:
			b.WriteByte(text[i])
		}
	}
	b.WriteByte('`')
	return b.String()
}

// ToEventName normalizes a JSX attribute spelling down to the bare DOM
// event name: "on:click" and "onClick" both become "click".
func ToEventName(name string) string {
	if strings.HasPrefix(name, "on:") {
		return name[len("on:"):]
	}
	if strings.HasPrefix(name, "on") && len(name) > 2 {
		rest := name[2:]
		if rest[0] >= 'A' && rest[0] <= 'Z' {
			return string(rest[0]-'A'+'a') + rest[1:]
		}
	}
	return name
}

// Thunk wraps expr in a zero-argument arrow function: "() => (expr)".
func Thunk(expr string) string {
	return "() => (" + expr + ")"
}

// LiteralText extracts the DOM/HTML-text form of a static literal
// expression (a plain string/number/boolean/null literal, or a template
// literal with no interpolations) so it can be baked directly into
// generated markup instead of routed through a runtime child-insertion
// helper. ok is false for anything else (calls, identifiers, objects...).
func LiteralText(shape *Expr) (string, bool) {
	if shape == nil {
		return "", false
	}
	switch shape.Kind {
	case ExprLiteral:
		t := shape.Text
		if len(t) >= 2 && (t[0] == '"' || t[0] == '\'') {
			return t[1 : len(t)-1], true
		}
		if t == "null" || t == "undefined" {
			return "", true
		}
		return t, true
	case ExprStaticTemplateLiteral:
		t := shape.Text
		if len(t) >= 2 {
			return t[1 : len(t)-1], true
		}
		return t, true
	default:
		return "", false
	}
}
