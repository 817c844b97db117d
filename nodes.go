package calculator

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// name is the literal text of a number, or the name of a constant or
	// function.
	name string
	num  float64
	fn   *function

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // num
	nodeConst // value of constant name
	nodeCall  // fn applied to left

	nodeNeg   // evaluate left, then negate
	nodeAdd   // evaluate left, add right
	nodeSub   // evaluate left, sub right
	nodeMul   // evaluate left, mul right
	nodeDiv   // evaluate left, div by right
	nodePow   // evaluate left, exp by right
	nodeGroup // evaluate left
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes n fully parenthesized, so that the output parses to the same
// tree apart from groups. If alt is true, multiplication and division use
// their display glyphs.
func (n *node) fmt(b *strings.Builder, alt bool) {
	if n.kind == nodeGroup {
		// Every term is already parenthesized.
		n.left.fmt(b, alt)
		return
	}
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, alt)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, alt)
		}
		b.WriteByte('$')
	case nodeNum, nodeConst:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		if n.name == "√" {
			// The argument is already parenthesized.
			n.left.fmt(b, alt)
			return
		}
		b.WriteByte('(')
		n.left.fmt(b, alt)
		b.WriteByte(')')
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, alt)
	case nodeAdd:
		n.left.fmt(b, alt)
		b.WriteString(" + ")
		n.right.fmt(b, alt)
	case nodeSub:
		n.left.fmt(b, alt)
		b.WriteString(" - ")
		n.right.fmt(b, alt)
	case nodeMul:
		n.left.fmt(b, alt)
		if !alt {
			b.WriteString(" * ")
		} else {
			b.WriteString(" × ")
		}
		n.right.fmt(b, alt)
	case nodeDiv:
		n.left.fmt(b, alt)
		if !alt {
			b.WriteString(" / ")
		} else {
			b.WriteString(" ÷ ")
		}
		n.right.fmt(b, alt)
	case nodePow:
		n.left.fmt(b, alt)
		b.WriteString(" ^ ")
		n.right.fmt(b, alt)
	default:
		panic("calculator: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
