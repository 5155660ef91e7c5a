package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/tiago/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Render the robot description via the xacro templating tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := overrides(cmd)
			if err != nil {
				return err
			}
			shareDir, _ := cmd.Flags().GetString("share-dir")
			force, _ := cmd.Flags().GetBool("force")
			output, _ := cmd.Flags().GetString("output")

			doc, err := c.app.Describe(cmd.Context(), app.DescribeOptions{
				LaunchFile: launchFile(cmd),
				Overrides:  values,
				ShareDir:   shareDir,
				Force:      force,
			})
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(doc), 0o644); err != nil { //nolint:gosec // user chosen destination
					return zerr.Wrap(err, "failed to write robot description")
				}
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), doc)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write the description to a file instead of stdout")
	cmd.Flags().String("share-dir", "", "Use this share directory instead of resolving the installed package")
	cmd.Flags().BoolP("force", "f", false, "Re-render even when a cached description exists")

	return cmd
}
