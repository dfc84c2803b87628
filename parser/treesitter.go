// Package parser wraps a tree-sitter TSX grammar and converts its concrete
// syntax tree into the lightweight JSX-aware tree the rest of the compiler
// walks (see package ast). It is the only place that knows about
// tree-sitter node-type strings.
package parser

import (
	"context"
	"fmt"
	"sync"

	forest "github.com/alexaandru/go-sitter-forest"
	_ "github.com/alexaandru/go-sitter-forest/tsx" // registers the "tsx" grammar with forest
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// Parser parses JS/TSX source text into our AST. A Parser is safe for
// concurrent use: each Parse call borrows a tree-sitter parser from an
// internal pool rather than mutating shared state.
type Parser struct {
	lang *sitter.Language
	pool sync.Pool
}

// New constructs a Parser bound to the tsx grammar.
func New() (*Parser, error) {
	lang := forest.GetLanguage("tsx")
	if lang == nil {
		return nil, fmt.Errorf("parser: tsx grammar not registered")
	}
	p := &Parser{lang: lang}
	p.pool.New = func() any {
		sp := sitter.NewParser()
		sp.SetLanguage(lang)
		return sp
	}
	return p, nil
}

// Parse parses source and returns every top-level JSX root found in it.
// filename is used only for error messages.
func (p *Parser) Parse(source []byte, filename string) (*ast.Program, error) {
	raw := p.pool.Get()
	sp, ok := raw.(*sitter.Parser)
	if !ok {
		sp = sitter.NewParser()
		sp.SetLanguage(p.lang)
	}
	defer p.pool.Put(sp)

	tree, err := sp.ParseString(context.Background(), nil, source)
	if err != nil {
		return nil, &common.ParseError{Line: 1, Col: 1, Message: filename + ": " + err.Error()}
	}
	rootPtr := tree.RootNode()
	if rootPtr == nil || rootPtr.IsNull() {
		return nil, &common.ParseError{Line: 1, Col: 1, Message: filename + ": empty parse tree"}
	}
	root := *rootPtr
	if bad, found := firstErrorNode(root); found {
		pt := bad.StartPoint()
		return nil, &common.ParseError{
			Line:    int(pt.Row) + 1,
			Col:     int(pt.Column) + 1,
			Message: fmt.Sprintf("%s: syntax error near %q", filename, snippet(source, bad)),
		}
	}

	c := &converter{src: source}
	program := &ast.Program{Source: source}
	for _, n := range c.findJSXRoots(root) {
		node := c.convertJSXNode(n)
		program.Roots = append(program.Roots, &ast.JSXRoot{Span: c.span(n), Node: node})
	}
	return program, nil
}

func firstErrorNode(n sitter.Node) (sitter.Node, bool) {
	if n.Type() == "ERROR" {
		return n, true
	}
	cnt := n.ChildCount()
	for i := uint32(0); i < cnt; i++ {
		c := n.Child(i)
		if c == nil || c.IsNull() {
			continue
		}
		if bad, found := firstErrorNode(*c); found {
			return bad, true
		}
	}
	return sitter.Node{}, false
}

func snippet(src []byte, n sitter.Node) string {
	start, end := int(n.StartByte()), int(n.EndByte())
	if start < 0 || end > len(src) || start > end {
		return ""
	}
	s := string(src[start:end])
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return s
}
