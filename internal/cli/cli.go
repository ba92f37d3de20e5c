// Package cli implements the raggedblocks command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sbcohen2000/raggedblocks/pkg/buildinfo"
	"github.com/sbcohen2000/raggedblocks/pkg/cache"
	"github.com/sbcohen2000/raggedblocks/pkg/pipeline"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "raggedblocks"

	// defaultCellWidth and defaultCellHeight size the monospace measurer
	// used for the layout/render/preview commands when no config file
	// supplies different metrics.
	defaultCellWidth  = 6.0
	defaultCellHeight = 12.0
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and config loaded
// from raggedblocks.toml in the working directory, if present.
func New(w io.Writer, level log.Level) *CLI {
	cfg, err := loadConfigIfPresent(configFileName)
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	if err != nil {
		logger.Warn("failed to load config, using defaults", "file", configFileName, "err", err)
		cfg = DefaultConfig()
	}
	return &CLI{Logger: logger, Config: cfg}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "raggedblocks",
		Short:        "raggedblocks lays out structured text as ragged, content-hugging blocks",
		Long:         `raggedblocks computes and renders ragged-blocks layouts: a tree of text fragments and styled containers, laid out by one of five interchangeable algorithms (Blocks, L1P, L1S, L1S+, S-Blocks) and rendered to SVG, PNG, PDF, or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	ch, err := newCache(noCache, c.Config.CacheBackend)
	if err != nil {
		return nil, err
	}
	measurer := tree.NewMonospaceMeasurer(c.Config.CellWidth, c.Config.CellHeight)
	return pipeline.NewRunner(ch, nil, measurer, c.Logger), nil
}

func newCache(noCache bool, backend string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch {
	case backend == "memory":
		return cache.NewMapCache(), nil
	case backend == "none":
		return cache.NewNullCache(), nil
	case strings.HasPrefix(backend, "redis://"):
		return cache.NewRedisCache(backend)
	default: // "file" or unset
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/raggedblocks/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// setCLIDefaults applies config-file and CLI-specific defaults on top of
// pipeline defaults, mirroring the layered (pipeline defaults, then config
// file, then explicit flags) precedence described by the configuration
// format.
func (c *CLI) setCLIDefaults(opts *pipeline.Options) {
	if opts.Algorithm == "" {
		opts.Algorithm = c.Config.Algorithm
	}
	if opts.Width == 0 {
		opts.Width = c.Config.Width
	}
	if opts.Height == 0 {
		opts.Height = c.Config.Height
	}
	if opts.IdealLeading == 0 {
		opts.IdealLeading = c.Config.IdealLeading
	}
	opts.TranslateWraps = opts.TranslateWraps || c.Config.TranslateWraps
	opts.SimplifyOutlines = opts.SimplifyOutlines || c.Config.SimplifyOutlines
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
