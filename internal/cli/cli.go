// Package cli implements the wortwolke command-line interface.
//
// This package provides commands for computing word-cloud layouts from item
// files, serving the layout HTTP API, benchmarking the placement strategies,
// previewing layouts in the terminal, and managing the layout cache. The CLI
// is built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute a word-cloud layout from an item list
//   - serve: Run the HTTP layout service
//   - preview: Render a layout in the terminal
//   - bench: Benchmark placement strategies on synthetic input
//   - cache: Manage the layout result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kulturkompass/wortwolke/pkg/buildinfo"
	"github.com/kulturkompass/wortwolke/pkg/cache"
	"github.com/kulturkompass/wortwolke/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "wortwolke"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Wortwolke places word clouds for the event discovery quiz",
		Long:         `Wortwolke computes collision-free word-cloud layouts: labeled, value-weighted words placed inside a bounded container, sized for touch and free of overlaps. It powers the floating word selection steps of the event discovery quiz.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), nil, c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/wortwolke/).
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
