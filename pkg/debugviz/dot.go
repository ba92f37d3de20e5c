// Package debugviz renders the reassociated tree and Timetable as
// Graphviz DOT graphs, for diagnosing layout decisions. This is a
// debug/inspection aid, not part of the core pipeline: the core
// (pkg/reassoc, pkg/timetable, pkg/layout) never imports this package.
package debugviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
	"github.com/sbcohen2000/raggedblocks/pkg/timetable"
)

// TreeDOT converts a reassociated tree to Graphviz DOT format. The
// resulting DOT string can be rendered to an image with [RenderSVG].
func TreeDOT(n *reassoc.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph ReassocTree {\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=white, fontname=monospace];\n")
	var id int
	walkTree(&buf, n, &id)
	buf.WriteString("}\n")
	return buf.String()
}

func walkTree(buf *bytes.Buffer, n *reassoc.Node, id *int) int {
	if n == nil {
		return -1
	}
	self := *id
	*id++

	label := n.Kind.String()
	switch n.Kind {
	case reassoc.KindAtom, reassoc.KindSpacer:
		fmt.Fprintf(buf, "  n%d [label=%q, fillcolor=lightyellow];\n", self, fmt.Sprintf("%s\ncol %d\n%q", label, n.Column, n.Text))
		return self
	case reassoc.KindWrap:
		fmt.Fprintf(buf, "  n%d [label=%q, fillcolor=lightblue];\n", self, fmt.Sprintf("Wrap #%d\npad %v", n.ID, n.Padding))
		child := walkTree(buf, n.Child, id)
		if child >= 0 {
			fmt.Fprintf(buf, "  n%d -> n%d;\n", self, child)
		}
		return self
	default: // JoinH, JoinV
		fmt.Fprintf(buf, "  n%d [label=%q];\n", self, label)
		lhs := walkTree(buf, n.Lhs, id)
		rhs := walkTree(buf, n.Rhs, id)
		if lhs >= 0 {
			fmt.Fprintf(buf, "  n%d -> n%d [label=lhs];\n", self, lhs)
		}
		if rhs >= 0 {
			fmt.Fprintf(buf, "  n%d -> n%d [label=rhs];\n", self, rhs)
		}
		return self
	}
}

// TimetableDOT renders a Timetable's per-column padding cells as a
// Graphviz DOT graph: one cluster per fragment column, one node per
// wrap-depth cell.
func TimetableDOT(tt *timetable.Timetable) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Timetable {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=record, fontname=monospace];\n")

	for col := 0; col < tt.NumColumns(); col++ {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", col)
		kind := "fragment"
		if tt.IsSpacer(col) {
			kind = "spacer"
		}
		fmt.Fprintf(&buf, "    label=\"col %d (%s)\";\n", col, kind)
		for depth, cell := range tt.Cells(col) {
			fmt.Fprintf(&buf, "    c%d_%d [label=\"depth %d | uid %d | pad %v\"];\n",
				col, depth, depth, cell.UID, cell.Padding)
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph produced by [TreeDOT] or [TimetableDOT]
// to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
