// Package pkg provides the core libraries for ragged-blocks layout.
//
// # Overview
//
// ragged-blocks lays out a tree of text fragments and styled containers
// into ragged, content-hugging polygons, using one of five interchangeable
// algorithms (Blocks, L1P, L1S, L1S+, S-Blocks). The pkg directory is
// organized into four main areas:
//
//  1. Data model ([tree], [reassoc], [backing], [timetable], [polygon], [geom])
//  2. Layout algorithms ([layout])
//  3. Rendering and inspection ([render], [debugviz], [io])
//  4. Ambient stack ([pipeline], [cache], [store], [httpapi], [errors], [observability])
//
// # Architecture
//
// The typical data flow through ragged-blocks:
//
//	Input tree (pkg/tree)
//	         ↓
//	   measure (cached by value)
//	         ↓
//	   pkg/reassoc (precedence-climbing reassociation)
//	         ↓
//	   pkg/layout ({Blocks,L1P,L1S,L1S+,S-Blocks})
//	         ↓
//	   pkg/render (SVG/PDF/PNG/JSON output)
//
// # Quick Start
//
// Measure, lay out, and render a tree:
//
//	import (
//	    "github.com/sbcohen2000/raggedblocks/pkg/cache"
//	    "github.com/sbcohen2000/raggedblocks/pkg/pipeline"
//	    "github.com/sbcohen2000/raggedblocks/pkg/tree"
//	)
//
//	runner := pipeline.NewRunner(cache.NewMapCache(), nil, tree.NewMonospaceMeasurer(6, 12), nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Tree:      tree.Node(1, tree.Style{}, tree.Atom("hello"), tree.SpacerText(" "), tree.Atom("world")),
//	    Algorithm: "l1p",
//	    Formats:   []string{pipeline.FormatSVG},
//	})
//
// # Main Packages
//
// ## Data model
//
// [tree] - The input layout tree: Atom/Spacer/Newline/Node, plus a
// Measurer abstraction (monospace + caching decorator) for resolving
// Atom/Spacer rectangles.
//
// [reassoc] - Reassociates a measured tree into a binary ReassocTree
// (Atom/Spacer/JoinH/JoinV/Wrap) via precedence-climbing parsing.
//
// [backing] / [timetable] - The Backing+Region positional store and the
// per-column Timetable padding model shared by every layout algorithm.
//
// [polygon] - The rectilinear polygon kernel used by L1S+'s wrap
// outlines (union, containment, simplification).
//
// [geom] - Shared Rect/Point primitives.
//
// ## Layout
//
// [layout] - The five layout algorithms (Blocks, L1P, L1S, L1S+,
// S-Blocks) and the Algorithm/ContextAlgorithm/Settings interfaces they
// implement.
//
// ## Rendering and inspection
//
// [render] - SVG/PDF/PNG render targets for a layout.Result.
//
// [debugviz] - Graphviz DOT export of the reassociated tree and
// Timetable, for diagnosing layout decisions.
//
// [io] - JSON import/export of layout trees and layout.Result values.
//
// ## Ambient stack
//
// [pipeline] - The measure → reassoc → layout → render Runner shared by
// the CLI, HTTP API, and terminal preview.
//
// [cache] - Pluggable measurement/layout/artifact caching (in-memory,
// file-based, Redis).
//
// [store] - Durable render history (MongoDB-backed, with a no-op
// default).
//
// [httpapi] - The chi-routed HTTP API (POST /v1/layout, POST /v1/render,
// GET /v1/history, GET /healthz).
//
// [errors] - Structured error codes shared across the pipeline, CLI, and
// HTTP API.
//
// [observability] - Pipeline stage hooks for metrics/tracing
// integration.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...       # All tests
//	go test ./pkg/layout/... # Specific package
//
// [tree]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/tree
// [reassoc]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/reassoc
// [backing]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/backing
// [timetable]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/timetable
// [polygon]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/polygon
// [geom]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/geom
// [layout]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/layout
// [render]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/render
// [debugviz]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/debugviz
// [io]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/cache
// [store]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/store
// [httpapi]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/httpapi
// [errors]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/errors
// [observability]: https://pkg.go.dev/github.com/sbcohen2000/raggedblocks/pkg/observability
package pkg
