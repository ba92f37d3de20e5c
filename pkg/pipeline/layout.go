package pipeline

import (
	"strings"

	"github.com/sbcohen2000/raggedblocks/pkg/errors"
	"github.com/sbcohen2000/raggedblocks/pkg/layout"
	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
)

// algorithms maps every name errors.ValidateAlgorithmName accepts to its
// layout.Algorithm implementation.
var algorithms = map[string]layout.Algorithm{
	"blocks":   layout.Blocks{},
	"l1p":      layout.L1P{},
	"l1s":      layout.L1S{},
	"l1s+":     layout.L1SPlus{},
	"s-blocks": layout.SBlocks{},
	"sblocks":  layout.SBlocks{},
}

// GenerateLayout reassociates a measured tree and runs the algorithm
// named by opts.Algorithm over it.
func GenerateLayout(n *reassoc.Node, opts Options) (layout.Result, error) {
	algo, ok := algorithms[strings.ToLower(opts.Algorithm)]
	if !ok {
		return layout.Result{}, errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", opts.Algorithm)
	}
	return algo.Layout(n, opts.Settings())
}
