package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/grapheditor/pkg/command"
	"github.com/matzehuels/grapheditor/pkg/errors"
	"github.com/matzehuels/grapheditor/pkg/graph"
	"github.com/matzehuels/grapheditor/pkg/observability"
)

const shellPrompt = "graph> "

// shellOptions controls how the shell prints results.
type shellOptions struct {
	json     bool // print raw JSON results
	noPrompt bool // suppress the prompt, for piped input
}

// shellCommand creates the interactive shell command.
func (c *CLI) shellCommand() *cobra.Command {
	var opts shellOptions

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Edit a graph interactively",
		Long: `Start a line-oriented shell over a single in-memory graph.

Each line is a command name followed by its arguments, for example:

  generate_complete_graph 5
  add_node 120 80
  add_edge 0 5
  align_graph
  get_graph

Built-ins: help, stats, quit (or exit). Lines starting with # are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.newDispatcher(cmd.Context())
			if err != nil {
				return err
			}
			return runShell(cmd.Context(), d, c.in, c.out, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "do not print a prompt")

	return cmd
}

// runShell reads commands from in until EOF or quit.
// Command failures are reported and the loop continues.
func runShell(ctx context.Context, d *command.Dispatcher, in io.Reader, out io.Writer, opts shellOptions) error {
	counter := observability.NewCommandCounter()
	observability.SetCommandHooks(counter)
	defer observability.Reset()

	scanner := bufio.NewScanner(in)
	for {
		if !opts.noPrompt {
			fmt.Fprint(out, StyleDim.Render(shellPrompt))
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch name, args := fields[0], fields[1:]; name {
		case "quit", "exit":
			printSummary(out, counter)
			return nil
		case "help":
			printCommands(out, d.Commands())
		case "stats":
			printStats(out, d.Store().Stats())
		default:
			result, err := d.InvokeArgs(ctx, name, args...)
			if err != nil {
				printError(out, "%s", errors.UserMessage(err))
				continue
			}
			if err := printResult(out, name, result, opts.json); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	printSummary(out, counter)
	return nil
}

// printResult renders one command result.
func printResult(w io.Writer, name string, result json.RawMessage, raw bool) error {
	if raw {
		fmt.Fprintln(w, string(result))
		return nil
	}

	switch name {
	case command.AddNode:
		var n graph.Node
		if err := json.Unmarshal(result, &n); err != nil {
			return fmt.Errorf("decode node: %w", err)
		}
		printSuccess(w, "node %s at (%s, %s)", StyleNumber.Render(fmt.Sprint(n.ID)), formatCoord(n.X), formatCoord(n.Y))
	case command.AddEdge:
		var e graph.Edge
		if err := json.Unmarshal(result, &e); err != nil {
			return fmt.Errorf("decode edge: %w", err)
		}
		printSuccess(w, "edge %s: %d %s %d", StyleNumber.Render(fmt.Sprint(e.ID)), e.Source, iconEdge, e.Target)
	case command.GetGraph:
		var g graph.Graph
		if err := json.Unmarshal(result, &g); err != nil {
			return err
		}
		printGraph(w, g)
	default:
		printSuccess(w, "%s", name)
	}
	return nil
}

func printCommands(w io.Writer, cmds []command.Command) {
	fmt.Fprintln(w, StyleTitle.Render("Commands"))
	for _, c := range cmds {
		printCommand(w, c.Name, c.Usage(), c.Summary)
	}
}

func printSummary(w io.Writer, counter *observability.CommandCounter) {
	calls, failures := counter.Totals()
	if calls == 0 {
		return
	}
	if failures > 0 {
		printWarning(w, "%d commands, %d failed", calls, failures)
		return
	}
	printInfo(w, "%d commands", calls)
}
