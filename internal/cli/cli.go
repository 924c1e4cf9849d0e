// Package cli implements the stopcontagion command-line interface.
//
// This package provides commands for isolating the most influential nodes of
// a contact network, ranking nodes by influence, computing force-directed
// layouts, rendering them as visualizations, and serving an interactive HTTP
// viewer. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - inoculate: Repeatedly isolate the highest-influence node
//   - rank: Show per-node influence scores
//   - layout: Compute a force-directed 2D layout
//   - visualize: Render a layout as SVG, DOT, PDF, or PNG
//   - watch: Step through isolations interactively
//   - serve: Serve the network over HTTP
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cszach/Network-Inoculator/pkg/buildinfo"
	"github.com/cszach/Network-Inoculator/pkg/cache"
	"github.com/cszach/Network-Inoculator/pkg/config"
)

// appName is the application name used for directories and display.
const appName = "stopcontagion"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	cfg    config.Config
}

// New creates a new CLI instance with a default logger and the layered
// configuration from [config.Load]. A broken config file downgrades to
// defaults with a warning rather than blocking every command.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}

	cfg, err := config.Load()
	if err != nil {
		c.Logger.Warn("Ignoring config file", "err", err)
		cfg = config.Default()
	}
	c.cfg = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stopcontagion inoculates contact networks against contagion spread",
		Long:         `Stopcontagion is a CLI tool for analyzing contagion spread through contact networks. It finds the most influential spreaders, isolates them one round at a time, and visualizes the fragmenting network.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.inoculateCommand())
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache returns the layout cache, falling back to a null cache when the
// cache directory cannot be resolved.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/stopcontagion/).
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
