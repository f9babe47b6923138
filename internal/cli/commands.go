package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/grapheditor/pkg/command"
	"github.com/matzehuels/grapheditor/pkg/store"
)

// commandsCommand lists the command surface with argument usage.
func (c *CLI) commandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the graph commands available to shell and exec",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printCommands(c.out, command.New(store.New()).Commands())
			return nil
		},
	}
}
