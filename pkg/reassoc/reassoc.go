// Package reassoc converts an input layout tree (spec §3.1, package tree)
// into the binary reassociated tree of spec §3.2: a tree over Atom, Spacer,
// JoinH, JoinV, and Wrap nodes with no Newlines remaining.
//
// Newlines are modeled as a left-associative infix operator of precedence 1
// over a stream of sibling expressions; adjacent siblings with no Newline
// between them are joined by an implicit operator of precedence 2. The
// token stream is resolved with a standard precedence-climbing parser
// (spec §4.1).
package reassoc

import (
	"fmt"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

// Kind discriminates the reassociated tree's node variants.
type Kind int

const (
	KindAtom Kind = iota
	KindSpacer
	KindJoinH
	KindJoinV
	KindWrap
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "Atom"
	case KindSpacer:
		return "Spacer"
	case KindJoinH:
		return "JoinH"
	case KindJoinV:
		return "JoinV"
	case KindWrap:
		return "Wrap"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is one node of the reassociated (binary) tree.
//
// Every Atom/Spacer carries a Column: a dense 0..N index assigned in
// document order, shared by both kinds, which the Timetable (spec §3.5)
// and Backing (spec §3.3) use to key their per-fragment data. Every Wrap
// carries an ID: a stable identity for the original Node it was produced
// from, assigned once here in pre-order starting at 1 (uid 0 is reserved,
// per spec §4.2, for the implicit base cell). Consumers that need a fresh
// uid numbering of their own (the Timetable) may still renumber; L1P uses
// this ID directly as its cell uid.
type Node struct {
	Kind Kind

	// Atom / Spacer
	Text   string
	Rect   geom.Rect
	Column int

	// JoinH / JoinV
	Lhs, Rhs *Node

	// Wrap
	Child   *Node
	Padding float64
	Style   tree.Style
	ID      int
}

// IsFragment reports whether n is a leaf fragment (Atom or Spacer).
func (n *Node) IsFragment() bool { return n.Kind == KindAtom || n.Kind == KindSpacer }

// counter assigns Columns to fragments and IDs to wraps during one
// Reassociate call. It is not safe for concurrent use; each call to
// Reassociate owns its own counter (spec §5: "an internal counter for
// uids which is scoped to one layout call").
type counter struct {
	column int
	wrapID int
}

func (c *counter) nextColumn() int {
	v := c.column
	c.column++
	return v
}

func (c *counter) nextWrapID() int {
	c.wrapID++
	return c.wrapID
}

// Reassociate converts a measured input tree into its reassociated form.
// empty is the sentinel value substituted at empty-children, trailing-
// operator, and consecutive-Newline positions (spec §4.1 edge cases); it
// is typically tree.Atom("").
func Reassociate(t tree.Tree, empty tree.Tree) (*Node, error) {
	c := &counter{}
	return reassocNode(t, empty, c)
}

func reassocNode(t tree.Tree, empty tree.Tree, c *counter) (*Node, error) {
	switch t.Kind {
	case tree.KindAtom:
		return &Node{Kind: KindAtom, Text: t.Text, Rect: t.Rect, Column: c.nextColumn()}, nil
	case tree.KindSpacer:
		return &Node{Kind: KindSpacer, Text: t.Text, Rect: t.Rect, Column: c.nextColumn()}, nil
	case tree.KindNewline:
		return buildExpr([]tree.Tree{t}, empty, c)
	case tree.KindNode:
		id := c.nextWrapID()
		child, err := buildExpr(t.Children, empty, c)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindWrap, Child: child, Padding: t.Padding, Style: t.Style, ID: id}, nil
	default:
		return nil, fmt.Errorf("reassoc: unknown tree kind %v", t.Kind)
	}
}

// buildExpr tokenizes a sibling list and parses it into a single
// reassociated expression tree.
func buildExpr(children []tree.Tree, empty tree.Tree, c *counter) (*Node, error) {
	toks, err := tokenize(children, empty, c)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("reassoc: malformed token stream: %d tokens unconsumed", len(p.toks)-p.pos)
	}
	return n, nil
}

// token is either an expression (a resolved sub-tree) or an operator.
type token struct {
	isOp bool
	op   opKind
	expr *Node
}

type opKind int

const (
	opNewline opKind = iota // precedence 1
	opJoin                  // precedence 2 (implicit, between adjacent siblings)
)

func precedence(op opKind) int {
	if op == opJoin {
		return 2
	}
	return 1
}

// tokenize emits the alternating expr/op token stream described in spec
// §4.1: children are visited left-to-right; a Newline child becomes an
// operator token; any other child is resolved (recursing into sub-Nodes)
// and becomes an expression token. An implicit join operator is inserted
// between two adjacent expression tokens. Empty-atom sentinels are
// inserted at a leading/trailing operator and between two consecutive
// Newlines, so the stream always starts and ends on an expression.
func tokenize(children []tree.Tree, empty tree.Tree, c *counter) ([]token, error) {
	var toks []token
	lastWasExpr := false
	haveLast := false

	emitEmpty := func() error {
		n, err := reassocNode(empty, empty, c)
		if err != nil {
			return err
		}
		toks = append(toks, token{expr: n})
		lastWasExpr, haveLast = true, true
		return nil
	}

	for _, child := range children {
		if child.Kind == tree.KindNewline {
			if !haveLast || !lastWasExpr {
				if err := emitEmpty(); err != nil {
					return nil, err
				}
			}
			toks = append(toks, token{isOp: true, op: opNewline})
			lastWasExpr, haveLast = false, true
			continue
		}

		n, err := reassocNode(child, empty, c)
		if err != nil {
			return nil, err
		}
		if haveLast && lastWasExpr {
			toks = append(toks, token{isOp: true, op: opJoin})
		}
		toks = append(toks, token{expr: n})
		lastWasExpr, haveLast = true, true
	}

	if haveLast && !lastWasExpr {
		if err := emitEmpty(); err != nil {
			return nil, err
		}
	}
	if !haveLast {
		if err := emitEmpty(); err != nil {
			return nil, err
		}
	}
	return toks, nil
}

// parser resolves a flat expr/op/expr/... token stream into a binary tree
// using precedence climbing. Operators are left-associative: a pair
// (op1, op2) with prec(op1) >= prec(op2) ends op1's right operand.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) parseExpr(minPrec int) (*Node, error) {
	if p.pos >= len(p.toks) || p.toks[p.pos].isOp {
		return nil, fmt.Errorf("reassoc: malformed token stream: expected expression at %d", p.pos)
	}
	left := p.toks[p.pos].expr
	p.pos++

	for p.pos < len(p.toks) {
		opTok := p.toks[p.pos]
		if !opTok.isOp || precedence(opTok.op) < minPrec {
			break
		}
		p.pos++
		right, err := p.parseExpr(precedence(opTok.op) + 1)
		if err != nil {
			return nil, err
		}
		left = combine(opTok.op, left, right)
	}
	return left, nil
}

func combine(op opKind, lhs, rhs *Node) *Node {
	if op == opJoin {
		return &Node{Kind: KindJoinH, Lhs: lhs, Rhs: rhs}
	}
	return &Node{Kind: KindJoinV, Lhs: lhs, Rhs: rhs}
}
