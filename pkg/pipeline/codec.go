package pipeline

import (
	"bytes"
	"encoding/json"

	stdio "github.com/sbcohen2000/raggedblocks/pkg/io"
	"github.com/sbcohen2000/raggedblocks/pkg/layout"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

// treeFingerprint returns a deterministic byte encoding of t suitable
// for hashing into a cache key; it is never decoded back.
func treeFingerprint(t tree.Tree) []byte {
	var buf bytes.Buffer
	_ = stdio.WriteJSON(t, &buf)
	return buf.Bytes()
}

// layoutFingerprint returns a deterministic byte encoding of res
// suitable for hashing into a cache key; it is never decoded back.
func layoutFingerprint(res layout.Result) []byte {
	var buf bytes.Buffer
	_ = stdio.WriteResultJSON(res, &buf)
	return buf.Bytes()
}

// encodeLayoutResult/decodeLayoutResult persist a computed layout.Result
// between invocations via plain field-reflection JSON — round-trippable,
// unlike pkg/io's one-way WriteResultJSON export format.
func encodeLayoutResult(res layout.Result) []byte {
	data, err := json.Marshal(res)
	if err != nil {
		return nil
	}
	return data
}

func decodeLayoutResult(data []byte) (layout.Result, bool) {
	var res layout.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return layout.Result{}, false
	}
	return res, true
}
