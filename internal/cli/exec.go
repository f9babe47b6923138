package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/grapheditor/pkg/command"
	"github.com/matzehuels/grapheditor/pkg/errors"
)

// execCommand creates the exec command, which runs a command script against
// a fresh store and prints one JSON result per command.
func (c *CLI) execCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command> [args...] [; <command> [args...]]...",
		Short: "Run commands and print their JSON results",
		Long: `Run one or more commands against a fresh graph and print each result as JSON.

Separate commands with a standalone ';' (quote it for your shell):

  grapheditor exec generate_complete_graph 4 ';' align_graph ';' get_graph`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.newDispatcher(cmd.Context())
			if err != nil {
				return err
			}
			return runScript(cmd.Context(), d, splitScript(args), c.out)
		},
	}
}

// splitScript splits args into commands at standalone ";" tokens. A token
// ending in ";" also terminates its command.
func splitScript(args []string) [][]string {
	var script [][]string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			script = append(script, cur)
			cur = nil
		}
	}
	for _, a := range args {
		switch {
		case a == ";":
			flush()
		case strings.HasSuffix(a, ";"):
			cur = append(cur, strings.TrimSuffix(a, ";"))
			flush()
		default:
			cur = append(cur, a)
		}
	}
	flush()
	return script
}

// runScript invokes each command in order and stops at the first failure.
func runScript(ctx context.Context, d *command.Dispatcher, script [][]string, out io.Writer) error {
	for i, line := range script {
		result, err := d.InvokeArgs(ctx, line[0], line[1:]...)
		if err != nil {
			return fmt.Errorf("command %d (%s): %s", i+1, line[0], errors.UserMessage(err))
		}
		fmt.Fprintln(out, string(result))
	}
	return nil
}
