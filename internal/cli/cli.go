// Package cli implements the grapheditor command-line interface.
//
// The CLI is a terminal presentation layer for the graph store: it drives
// the same command surface a desktop front end would, either interactively
// through a line shell or one command at a time.
//
// # Commands
//
//   - shell: read commands from stdin against a single in-memory store
//   - exec: run a ';'-separated command script and print the JSON results
//   - generate: build a complete or random graph and print it
//   - commands: list the command surface
//   - config: show the configuration path and effective values
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes one line per command invocation with its id and duration.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/grapheditor/pkg/buildinfo"
	"github.com/matzehuels/grapheditor/pkg/command"
	"github.com/matzehuels/grapheditor/pkg/config"
	"github.com/matzehuels/grapheditor/pkg/store"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	in  io.Reader
	out io.Writer

	configPath string
	seed       uint64
}

// New creates a new CLI instance writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetIO replaces standard input and output, mainly for tests.
func (c *CLI) SetIO(in io.Reader, out io.Writer) {
	c.in = in
	c.out = out
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "grapheditor",
		Short:        "In-memory graph editing backend",
		Long:         `grapheditor keeps a graph of nodes and edges in memory and edits it through a fixed set of commands: add, move and delete nodes and edges, generate complete or random graphs, and arrange nodes on a circle.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/grapheditor/config.toml)")
	root.PersistentFlags().Uint64Var(&c.seed, "seed", 0, "seed for random graphs (0 = from config or random)")

	root.AddCommand(c.shellCommand())
	root.AddCommand(c.execCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.commandsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// loadConfig reads the config file and applies flag overrides.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if c.seed != 0 {
		cfg.Generate.Seed = c.seed
	}
	return cfg, nil
}

// newStore creates an empty store configured from the config file and flags.
func (c *CLI) newStore(ctx context.Context) (*store.Store, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	return store.New(store.WithConfig(cfg), store.WithLogger(loggerFromContext(ctx))), nil
}

// newDispatcher creates a fresh store behind the command surface.
func (c *CLI) newDispatcher(ctx context.Context) (*command.Dispatcher, error) {
	s, err := c.newStore(ctx)
	if err != nil {
		return nil, err
	}
	return command.New(s, command.WithLogger(loggerFromContext(ctx))), nil
}
