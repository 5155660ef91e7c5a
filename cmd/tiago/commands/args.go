package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newArgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "args",
		Short: "List the declared hardware launch arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := c.app.Arguments(launchFile(cmd))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDEFAULT\tCHOICES\tDESCRIPTION")
			for _, arg := range args {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					arg.Name, arg.Default, strings.Join(arg.Choices, ", "), arg.Description)
			}
			return w.Flush()
		},
	}
}
