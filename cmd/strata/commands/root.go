// Package commands implements the CLI commands for strata.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/strata/internal/app"
	"go.trai.ch/strata/internal/build"
)

// CLI represents the command line interface for strata.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	onJSON  func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Flatten(ctx context.Context, opts app.FlattenOptions) error
	Replay(ctx context.Context, opts app.ReplayOptions) error
}

// New creates a new CLI instance with the given app. onJSON, when non-nil, is
// called with the value of --json before a command runs.
func New(a Application, onJSON func(bool)) *CLI {
	rootCmd := &cobra.Command{
		Use:           "strata",
		Short:         "Flatten hierarchical scene descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", ".", "Scene file, or a directory containing strata.yaml")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log a timing span for every stage of the run")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		onJSON:  onJSON,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json")
		if c.onJSON != nil {
			c.onJSON(jsonLogs)
		}
	}

	rootCmd.AddCommand(c.newFlattenCmd())
	rootCmd.AddCommand(c.newReplayCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addWalkFlags registers the flags shared by the flatten and replay commands.
func addWalkFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("parallelism", "j", 0, "Maximum concurrent prim visits (0 uses every CPU)")
	cmd.Flags().String("root", "/", "Prim path to start the traversal at")
	cmd.Flags().StringSlice("disable", nil, "Flattening domains to turn off (xform, visibility, purpose, model, materialBindings, primvars)")
	cmd.Flags().String("output", "auto", "Output mode: auto, styled or plain")
}

func readOptions(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	trace, _ := cmd.Flags().GetBool("trace")
	parallelism, _ := cmd.Flags().GetInt("parallelism")
	root, _ := cmd.Flags().GetString("root")
	disable, _ := cmd.Flags().GetStringSlice("disable")
	outputMode, _ := cmd.Flags().GetString("output")

	return app.Options{
		ConfigPath:  configPath,
		Root:        root,
		Parallelism: parallelism,
		Disable:     disable,
		Trace:       trace,
		Out:         cmd.OutOrStdout(),
		Output:      outputMode,
	}
}
