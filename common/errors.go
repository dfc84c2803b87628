package common

import "fmt"

// Span locates a range in the original source by byte offset and by
// 1-indexed line/column of its start, matching what the parser façade
// reports for every node.
type Span struct {
	Start, End int
	Line, Col  int
}

// ParseError is returned when the underlying tree-sitter parse fails or
// produces an ERROR/MISSING node inside a region we must understand to
// lower it.
type ParseError struct {
	Line, Col int
	Message   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.Message)
}

// UnsupportedNodeError is returned when the AST contains a construct the
// compiler recognizes but deliberately does not lower (e.g. a JSX
// namespaced name the target runtime has no ABI for).
type UnsupportedNodeError struct {
	Kind string
	Span Span
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported node %q at %d:%d", e.Kind, e.Span.Line, e.Span.Col)
}

// InvalidOptionsError is returned by TransformJSX when Options fails
// validation before any parsing happens.
type InvalidOptionsError struct {
	Field  string
	Reason string
}

func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("invalid option %q: %s", e.Field, e.Reason)
}
