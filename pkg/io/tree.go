package io

import (
	"encoding/json"
	"fmt"
	stdio "io"
	"os"

	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

// treeNode is the wire representation of a tree.Tree: a discriminated
// union on "kind" (spec §3.7).
type treeNode struct {
	Kind     string     `json:"kind"`
	Text     string     `json:"text,omitempty"`
	Width    float64    `json:"width,omitempty"`
	Padding  float64    `json:"padding,omitempty"`
	Style    *nodeStyle `json:"style,omitempty"`
	Children []treeNode `json:"children,omitempty"`
}

type nodeStyle struct {
	Fill    string   `json:"fill,omitempty"`
	Borders []string `json:"borders,omitempty"`
}

// ReadJSON decodes a layout tree from r.
//
// Every object must carry a "kind" field of "atom", "spacer", "newline",
// or "node". Atoms and text-derived spacers carry "text"; explicit-width
// spacers carry "width" instead; interior nodes carry "padding", an
// optional "style", and "children".
func ReadJSON(r stdio.Reader) (tree.Tree, error) {
	var n treeNode
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return tree.Tree{}, fmt.Errorf("decode: %w", err)
	}
	return decodeNode(n)
}

func decodeNode(n treeNode) (tree.Tree, error) {
	switch n.Kind {
	case "atom":
		return tree.Atom(n.Text), nil
	case "spacer":
		if n.Text != "" {
			return tree.SpacerText(n.Text), nil
		}
		return tree.SpacerWidth(n.Width), nil
	case "newline":
		return tree.Newline(), nil
	case "node":
		children := make([]tree.Tree, len(n.Children))
		for i, c := range n.Children {
			ct, err := decodeNode(c)
			if err != nil {
				return tree.Tree{}, fmt.Errorf("child %d: %w", i, err)
			}
			children[i] = ct
		}
		style := tree.Style{}
		if n.Style != nil {
			style = tree.Style{Fill: n.Style.Fill, Borders: n.Style.Borders}
		}
		return tree.Node(n.Padding, style, children...), nil
	default:
		return tree.Tree{}, fmt.Errorf("unknown kind %q", n.Kind)
	}
}

// ImportJSON reads a layout tree from a JSON file at path.
func ImportJSON(path string) (tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return tree.Tree{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes t as JSON and writes it to w, 2-space indented.
func WriteJSON(t tree.Tree, w stdio.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(encodeNode(t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func encodeNode(t tree.Tree) treeNode {
	switch t.Kind {
	case tree.KindAtom:
		return treeNode{Kind: "atom", Text: t.Text}
	case tree.KindSpacer:
		if t.Text != "" {
			return treeNode{Kind: "spacer", Text: t.Text}
		}
		return treeNode{Kind: "spacer", Width: t.Width}
	case tree.KindNewline:
		return treeNode{Kind: "newline"}
	default: // tree.KindNode
		children := make([]treeNode, len(t.Children))
		for i, c := range t.Children {
			children[i] = encodeNode(c)
		}
		n := treeNode{Kind: "node", Padding: t.Padding, Children: children}
		if t.Style.Fill != "" || len(t.Style.Borders) > 0 {
			n.Style = &nodeStyle{Fill: t.Style.Fill, Borders: t.Style.Borders}
		}
		return n
	}
}

// ExportJSON writes t to a JSON file at path, creating or truncating it.
func ExportJSON(t tree.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}
