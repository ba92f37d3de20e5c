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

// layoutCommand creates the layout command for computing a layout
// without rendering it to a visual format.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	popts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [tree.json]",
		Short: "Compute a layout from an input tree",
		Long: `Compute a ragged-blocks layout from a tree.json file (produced by hand
or by another tool) and write the result as layout.json.

The output format matches 'render -f json' and can be fed to a custom
rendering or analysis tool.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts.Formats = []string{pipeline.FormatJSON}
			c.setCLIDefaults(&popts)
			return c.runLayout(cmd.Context(), args[0], popts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&popts.Algorithm, "algorithm", "a", "", "layout algorithm: blocks, l1p, l1s, l1s+, sblocks")
	cmd.Flags().BoolVar(&popts.TranslateWraps, "translate-wraps", false, "shift each wrap's contents right by its padding before inflating its box")
	cmd.Flags().BoolVar(&popts.SimplifyOutlines, "simplify-outlines", false, "simplify rectilinear wrap outlines")
	cmd.Flags().Float64Var(&popts.IdealLeading, "ideal-leading", 0, "ideal vertical leading between lines")

	return cmd
}

// runLayout loads the tree, computes the layout, and writes it as JSON.
func (c *CLI) runLayout(ctx context.Context, input string, popts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Computing layout for %s", input)

	t, err := stdio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load tree %s: %w", input, err)
	}
	popts.Tree = t

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", popts.Algorithm))
	spinner.Start()

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	data := result.Artifacts[pipeline.FormatJSON]
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Stats.FragmentCount, result.Stats.WrapCount, result.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Render", "raggedblocks render "+input)

	return nil
}
