// Package commands implements the CLI commands for bnc.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/llegomark/better-nginx-cache/internal/app"
	"github.com/llegomark/better-nginx-cache/internal/build"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for bnc.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SetLogFormat(json bool)
	Purge(ctx context.Context) (domain.PurgeOutcome, error)
	Validate(ctx context.Context) (string, error)
	Stats(ctx context.Context, opts app.StatsOptions) (domain.CacheStatistics, error)
	Dispatch(ctx context.Context, events []domain.Event) (*domain.DispatchReport, error)
	DispatchBatch(ctx context.Context, data []byte) (*domain.DispatchReport, error)
	Watch(ctx context.Context, dir string, opts app.WatchOptions) error
	Settings() []app.Setting
	GetSetting(key string) (any, error)
	SetSetting(key, value string) (any, error)
	InitSettings() ([]string, error)
	ResetSettings() error
	SettingsPath() string
	Footer() (string, bool)
	AppendFooter(doc, contentType string) (string, bool)
	CacheStatus(headerLines []string) string
	CacheStatusValue(value string) string
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bnc",
		Short:         "Purge and inspect an Nginx FastCGI cache",
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

	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		asJSON, _ := cmd.Flags().GetBool("json")
		a.SetLogFormat(asJSON)
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPurgeCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newEventCmd())
	rootCmd.AddCommand(c.newDispatchCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newFooterCmd())
	rootCmd.AddCommand(c.newStatusCmd())
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

// SetInput sets the stream read by commands that accept "-" as a file. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
