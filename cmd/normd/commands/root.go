// Package commands implements the CLI commands for normd.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/normd/normd/internal/adapters/detector"
	"github.com/normd/normd/internal/adapters/logger"
	"github.com/normd/normd/internal/app"
	"github.com/normd/normd/internal/build"
	"github.com/normd/normd/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for normd.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Convert(ctx context.Context, path string, opts app.ConvertOptions) error
	ServeDaemon(ctx context.Context) error
	StartDaemon(ctx context.Context) error
	StopDaemon(ctx context.Context) error
	RestartDaemon(ctx context.Context) error
	DaemonStatus(ctx context.Context) error
	ConfigList(ctx context.Context) error
	ConfigAdd(ctx context.Context, raw string, ignore, children bool) error
	ConfigRemove(ctx context.Context, index int) error
	ConfigMove(ctx context.Context, index, delta int) error
	ConfigSort(ctx context.Context) error
	ConfigToggleAction(ctx context.Context, index int) error
	ConfigToggleMode(ctx context.Context, index int) error
	Edit(ctx context.Context) error
}

// logControl is the optional logger surface the persistent flags drive.
// Loggers that do not expose it keep their defaults.
type logControl interface {
	SetLevel(level slog.Level)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "normd",
		Short:         "Keep filenames Unicode-normalized",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v debug, -vv trace)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Force JSON log output")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		c.configureLogging(cmd)
	}

	rootCmd.AddCommand(c.newConvertCmd())
	rootCmd.AddCommand(c.newDaemonCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newEditCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configureLogging applies the persistent logging flags before any command
// runs.
func (c *CLI) configureLogging(cmd *cobra.Command) {
	ctl, ok := c.logger.(logControl)
	if !ok {
		return
	}

	jsonFlag, _ := cmd.Flags().GetBool("json-logs")
	if detector.ResolveLogMode(detector.DetectLogMode(), jsonFlag) == detector.LogModeJSON {
		ctl.SetJSON(true)
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	switch {
	case verbosity >= 2:
		ctl.SetLevel(logger.LevelTrace)
	case verbosity == 1:
		ctl.SetLevel(slog.LevelDebug)
	}
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
