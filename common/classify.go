package common

// ExprKind is a coarse shape tag the parser façade assigns to a JS
// expression span based on its tree-sitter node type. It carries just
// enough structure for IsDynamic to decide static vs. dynamic without a
// full JS AST.
type ExprKind int

const (
	// ExprLiteral covers string/number/boolean/null literals.
	ExprLiteral ExprKind = iota
	// ExprStaticTemplateLiteral is a template literal with no ${...}
	// interpolations.
	ExprStaticTemplateLiteral
	ExprCall
	ExprNew
	ExprMember
	ExprIdentifier
	ExprConditional
	ExprLogical
	ExprBinary
	ExprUnary
	ExprArrowOrFunction
	ExprObject
	ExprArray
	ExprElision
	ExprOther
)

// Expr is the minimal expression shape IsDynamic needs: its kind, and for
// the composite kinds (binary, unary, object, array) its operand/element
// sub-expressions.
type Expr struct {
	Kind     ExprKind
	Text     string
	Operands []*Expr // Binary: [left, right]; Unary: [argument]
	Elements []*Expr // Object: property values + spread arguments; Array: elements + spread arguments
}

// IsDynamic applies the reference compiler's static/dynamic classification:
// literals, empty template literals and function/arrow expressions are
// static (an arrow function is a stable reference, not a value that
// changes), everything reached via a call, member access or bare
// identifier is dynamic (no scope analysis is attempted, so any
// identifier is conservatively assumed reactive), and composite
// expressions are dynamic iff any operand/element is.
func IsDynamic(e *Expr) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case ExprLiteral, ExprStaticTemplateLiteral, ExprArrowOrFunction, ExprElision:
		return false
	case ExprCall, ExprNew, ExprMember, ExprIdentifier, ExprConditional, ExprLogical:
		return true
	case ExprBinary:
		for _, op := range e.Operands {
			if IsDynamic(op) {
				return true
			}
		}
		return false
	case ExprUnary:
		for _, op := range e.Operands {
			if IsDynamic(op) {
				return true
			}
		}
		return false
	case ExprObject, ExprArray:
		for _, el := range e.Elements {
			if IsDynamic(el) {
				return true
			}
		}
		return false
	default:
		// Conservative default: anything we didn't recognize is treated
		// as dynamic rather than risk freezing a reactive value.
		return true
	}
}
