package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/grapheditor/pkg/graph"
)

type generateOptions struct {
	align bool
	json  bool
}

// generateCommand creates the generate command with complete and random
// subcommands.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a complete or random graph and print it",
	}
	cmd.PersistentFlags().BoolVar(&opts.align, "align", false, "arrange nodes on a circle afterwards")
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "print the graph as JSON")

	cmd.AddCommand(c.generateSubcommand("complete", "Generate a complete graph on N nodes", &opts,
		func(g generator, n int) error { return g.GenerateComplete(n) }))
	cmd.AddCommand(c.generateSubcommand("random", "Generate a random graph on N nodes", &opts,
		func(g generator, n int) error { return g.GenerateRandom(n) }))

	return cmd
}

// generator is the part of the store the generate command drives.
type generator interface {
	GenerateComplete(n int) error
	GenerateRandom(n int) error
	AlignCircle() error
	Graph() graph.Graph
}

func (c *CLI) generateSubcommand(name, short string, opts *generateOptions, run func(generator, int) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <N>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 31)
			if err != nil {
				return fmt.Errorf("invalid node count %q", args[0])
			}
			s, err := c.newStore(cmd.Context())
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			prog := newProgress(logger)
			if err := run(s, int(n)); err != nil {
				return err
			}
			if opts.align {
				if err := s.AlignCircle(); err != nil {
					return err
				}
			}
			st := s.Stats()
			prog.done(fmt.Sprintf("Generated %s graph with %d nodes and %d edges", name, st.Nodes, st.Edges))

			g := s.Graph()
			if opts.json {
				return graph.WriteGraph(g, c.out)
			}
			printGraph(c.out, g)
			printStats(c.out, st)
			return nil
		},
	}
}
