package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	stdio "github.com/sbcohen2000/raggedblocks/pkg/io"
	"github.com/sbcohen2000/raggedblocks/pkg/pipeline"

	"github.com/sbcohen2000/raggedblocks/internal/tui"
)

// previewCommand creates the preview command, computing a layout and
// opening an interactive terminal preview of it.
func (c *CLI) previewCommand() *cobra.Command {
	var noCache bool
	popts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [tree.json]",
		Short: "Open an interactive terminal preview of a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.setCLIDefaults(&popts)
			return c.runPreview(cmd.Context(), args[0], popts, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&popts.Algorithm, "algorithm", "a", "", "layout algorithm: blocks, l1p, l1s, l1s+, sblocks")
	cmd.Flags().BoolVar(&popts.TranslateWraps, "translate-wraps", false, "shift each wrap's contents right by its padding before inflating its box")
	cmd.Flags().BoolVar(&popts.SimplifyOutlines, "simplify-outlines", false, "simplify rectilinear wrap outlines")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, popts pipeline.Options, noCache bool) error {
	t, err := stdio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load tree %s: %w", input, err)
	}
	popts.Tree = t
	popts.Formats = nil

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	return tui.Run(result.Layout, popts.Algorithm, c.Config.CellWidth, c.Config.CellHeight)
}
