// Package commands implements the CLI commands for crateq.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/crateq/internal/app"
	"go.trai.ch/crateq/internal/build"
	"go.trai.ch/crateq/internal/core/domain"
)

// CLI represents the command line interface for crateq.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	settings app.Settings
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "crateq",
		Short:         "Query crate metadata from the crates.io sparse index",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.settings.CargoBinary, "cargo", domain.CargoBinary, "Cargo executable used to refresh the index")
	flags.StringVar(&c.settings.CargoHome, "cargo-home", "", "Cargo home directory (defaults to $CARGO_HOME or ~/.cargo)")
	flags.BoolVar(&c.settings.Debug, "debug", false, "Enable debug logging")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.Configure(c.settings)
	}

	rootCmd.AddCommand(
		c.newQueryCmd(queryCmd{
			use:     "dependencies",
			aliases: []string{"Dependencies", "deps"},
			short:   "List the dependencies of a crate version",
			view:    domain.ViewDependencies,
		}),
		c.newQueryCmd(queryCmd{
			use:     "features",
			aliases: []string{"Features"},
			short:   "List the features of a crate version",
			view:    domain.ViewFeatures,
		}),
		c.newQueryCmd(queryCmd{
			use:     "rust-version",
			aliases: []string{"RustVersion"},
			short:   "Show the minimum supported Rust version of a crate version",
			view:    domain.ViewRustVersion,
		}),
		c.newQueryCmd(queryCmd{
			use:     "versions",
			aliases: []string{"Versions"},
			short:   "List the published versions of a crate",
			view:    domain.ViewVersions,
		}),
		c.newVersionCmd(),
	)

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

// SetOut sets the writer for command output such as help and version. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
