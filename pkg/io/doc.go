// Package io provides JSON import and export for layout trees and
// computed layout results.
//
// # Overview
//
// A layout tree round-trips through a JSON document with a discriminated
// "kind" field on every node (spec §3.7):
//
//	{
//	  "kind": "node",
//	  "padding": 2,
//	  "children": [
//	    {"kind": "atom", "text": "hello"},
//	    {"kind": "spacer", "text": " "},
//	    {"kind": "newline"},
//	    {"kind": "atom", "text": "world"}
//	  ]
//	}
//
// Use [ImportJSON] to read a tree from a file path, or [ReadJSON] to read
// from any io.Reader. Use [ExportJSON] to write a tree to a file, or
// [WriteJSON] to write to any io.Writer.
//
// # Layout export
//
// A computed [layout.Result] can be serialized with [WriteResultJSON] for
// external tools that need positioned fragments and wraps without
// re-running the layout algorithm.
package io
