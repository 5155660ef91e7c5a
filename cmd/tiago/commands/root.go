// Package commands implements the CLI commands for the tiago launch toolkit.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/tiago/internal/app"
	"go.trai.ch/tiago/internal/build"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for tiago.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tiago",
		Short:         "Launch-time configuration helpers for the TIAGo robot description",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("launch-file", "l", "", "Path to a YAML launch file (hardware dimensions and argument overrides)")
	rootCmd.PersistentFlags().StringArrayP("arg", "a", nil, "Launch argument override as name=value (repeatable)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newArgsCmd())
	rootCmd.AddCommand(c.newSuffixCmd())
	rootCmd.AddCommand(c.newDescribeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// launchFile returns the value of the persistent launch-file flag.
func launchFile(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("launch-file")
	return path
}

// overrides parses the repeated --arg name=value flags into a map.
func overrides(cmd *cobra.Command) (map[string]string, error) {
	pairs, err := cmd.Flags().GetStringArray("arg")
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, nil
	}
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, zerr.With(zerr.New("argument override must be name=value"), "arg", pair)
		}
		values[name] = value
	}
	return values, nil
}
