// Package tree defines the input layout tree: the structured text the core
// lays out. A tree is a finite rooted tree of Atoms (text fragments),
// Spacers (horizontal whitespace), Newlines (hard breaks), and Nodes
// (interior, styled containers) — see spec §3.1.
package tree

import (
	"fmt"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
)

// Kind discriminates the node variants of a layout tree.
type Kind int

const (
	// KindAtom is a leaf text fragment.
	KindAtom Kind = iota
	// KindSpacer is a leaf representing horizontal whitespace.
	KindSpacer
	// KindNewline is a hard break between sibling groups.
	KindNewline
	// KindNode is an interior, padded container.
	KindNode
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "Atom"
	case KindSpacer:
		return "Spacer"
	case KindNewline:
		return "Newline"
	case KindNode:
		return "Node"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Style carries the optional visual attributes of an interior Node.
type Style struct {
	Fill    string
	Borders []string
}

// Tree is one node of an input layout tree. The zero value with Kind ==
// KindNewline is a valid Newline leaf; other kinds require their
// corresponding fields to be set.
//
// Invariant (spec §3.1): exactly one Newline between sibling groups
// produces one line break; N consecutive Newlines produce N blank rows.
type Tree struct {
	Kind Kind

	// Atom / Spacer
	Text  string  // Atom text, or Spacer text (width derived by measurement)
	Width float64 // explicit Spacer width; ignored unless Kind == KindSpacer and Text == ""

	// Node
	Children []Tree
	Padding  float64
	Style    Style

	// Measurement, filled in by Measure. Zero value before measurement.
	Rect geom.Rect
}

// Atom constructs a leaf text fragment.
func Atom(text string) Tree { return Tree{Kind: KindAtom, Text: text} }

// SpacerText constructs a Spacer whose width is derived from measuring text.
func SpacerText(text string) Tree { return Tree{Kind: KindSpacer, Text: text} }

// SpacerWidth constructs a Spacer with an explicit width.
func SpacerWidth(w float64) Tree { return Tree{Kind: KindSpacer, Width: w} }

// Newline constructs a hard line break leaf.
func Newline() Tree { return Tree{Kind: KindNewline} }

// Node constructs an interior container with the given padding, style, and
// children. Padding must be >= 0; negative padding is a caller bug and is
// clamped to 0 rather than silently producing an inside-out Wrap.
func Node(padding float64, style Style, children ...Tree) Tree {
	if padding < 0 {
		padding = 0
	}
	return Tree{Kind: KindNode, Padding: padding, Style: style, Children: children}
}

// IsLeaf reports whether t has no children (Atom, Spacer, or Newline).
func (t Tree) IsLeaf() bool {
	return t.Kind == KindAtom || t.Kind == KindSpacer || t.Kind == KindNewline
}
