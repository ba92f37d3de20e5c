package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	stdio "github.com/sbcohen2000/raggedblocks/pkg/io"
	"github.com/sbcohen2000/raggedblocks/pkg/pipeline"
)

// renderOpts holds the flags for the render command.
type renderOpts struct {
	output  string
	formats string
	noCache bool
	refresh bool
}

// renderCommand creates the render command for computing and rendering
// a ragged-blocks layout to one or more output formats.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts
	popts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [tree.json]",
		Short: "Compute a layout and render it to svg/png/pdf/json",
		Long: `Compute a ragged-blocks layout from an input tree and render it.

The tree.json file holds a discriminated-union layout tree (atom/spacer/
newline/node). Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts.Formats = parseFormats(opts.formats)
			popts.Refresh = opts.refresh
			c.setCLIDefaults(&popts)
			return c.runRender(cmd.Context(), args[0], popts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: <input> with format extension)")
	cmd.Flags().StringVarP(&opts.formats, "formats", "f", "svg", "comma-separated output formats: svg, png, pdf, json")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache reads for this run")

	cmd.Flags().StringVarP(&popts.Algorithm, "algorithm", "a", "", "layout algorithm: blocks, l1p, l1s, l1s+, sblocks")
	cmd.Flags().BoolVar(&popts.TranslateWraps, "translate-wraps", false, "shift each wrap's contents right by its padding before inflating its box")
	cmd.Flags().BoolVar(&popts.SimplifyOutlines, "simplify-outlines", false, "simplify rectilinear wrap outlines")
	cmd.Flags().Float64Var(&popts.IdealLeading, "ideal-leading", 0, "ideal vertical leading between lines")
	cmd.Flags().Float64Var(&popts.Width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&popts.Height, "height", 0, "frame height")

	return cmd
}

// runRender loads the input tree, computes the layout, and writes each
// requested format to disk.
func (c *CLI) runRender(ctx context.Context, input string, popts pipeline.Options, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	t, err := stdio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load tree %s: %w", input, err)
	}
	popts.Tree = t

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", popts.Algorithm))
	spinner.Start()

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := basePath(opts.output, input)
	for _, format := range popts.Formats {
		data, ok := result.Artifacts[format]
		if !ok {
			continue
		}
		path := fmt.Sprintf("%s.%s", base, format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printSuccess("Render complete")
	printStats(result.Stats.FragmentCount, result.Stats.WrapCount, result.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Preview in terminal", "raggedblocks preview "+input)

	return nil
}

// basePath derives the output base path (without a format extension)
// from an explicit --output flag or, failing that, the input path.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}
