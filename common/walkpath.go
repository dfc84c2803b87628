package common

import "strings"

// WalkStep is one hop of a deterministic DOM traversal from a cloned
// template root down to a node that needs a binding.
type WalkStep int

const (
	StepFirstChild WalkStep = iota
	StepNextSibling
)

// WalkPath is an ordered sequence of hops from a template root (or an
// already-declared intermediate node) to the node a binding targets. Paths
// are built once during template synthesis and never recomputed, so the
// same logical position always produces the same path — this is what makes
// cloneNode-based instantiation deterministic across renders.
type WalkPath []WalkStep

// Append returns a new WalkPath with step appended; WalkPath values are
// treated as immutable once built so they can be shared between a binding
// and the declaration that names its target.
func (p WalkPath) Append(step WalkStep) WalkPath {
	next := make(WalkPath, len(p)+1)
	copy(next, p)
	next[len(p)] = step
	return next
}

// Expr renders the path as a chain of .firstChild/.nextSibling property
// accesses off of root, e.g. root.firstChild.nextSibling.firstChild.
func (p WalkPath) Expr(root string) string {
	if len(p) == 0 {
		return root
	}
	var b strings.Builder
	b.WriteString(root)
	for _, step := range p {
		switch step {
		case StepFirstChild:
			b.WriteString(".firstChild")
		case StepNextSibling:
			b.WriteString(".nextSibling")
		}
	}
	return b.String()
}

// SharesPrefix reports how many leading steps p and other have in common.
// domlower's declarations do not use it; each one walks from the template
// root.
func (p WalkPath) SharesPrefix(other WalkPath) int {
	n := len(p)
	if len(other) < n {
		n = len(other)
	}
	i := 0
	for i < n && p[i] == other[i] {
		i++
	}
	return i
}
