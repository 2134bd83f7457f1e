package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"passkeep/internal/app"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

// skipWire marks commands that run without the credential store.
const skipWire = "passkeep/skip-wire"

// cli holds flag values and the wired dependencies shared by subcommands.
type cli struct {
	configPath string
	home       string
	backend    string
	logLevel   string
	timeout    time.Duration

	wire *app.Wire
}

// Execute runs the passkeep CLI with the process arguments.
func Execute(ctx context.Context) error {
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command line args and releases the storage backend
// afterwards, whether or not the command failed.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c := &cli{}
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if c.wire != nil {
		err = errors.Join(err, c.wire.Close())
	}
	return err
}

// newRootCmd builds the command tree around c.
func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "passkeep",
		Short:         "Local password manager",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipWire] == "true" {
				return nil
			}
			cfg, err := c.config(cmd)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cmd.Context(), cfg, app.WithLogOutput(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			c.wire = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML config file (default $PASSKEEP_CONFIG)")
	pf.StringVar(&c.home, "home", "", "data dir (default ~/.passkeep)")
	pf.StringVar(&c.backend, "backend", app.BackendFile, "storage backend: file or sqlite")
	pf.StringVar(&c.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.DurationVar(&c.timeout, "timeout", 5*time.Second, "bound on each storage read or write")

	root.AddCommand(
		generateCmd(),
		addCmd(c),
		removeCmd(c),
		listCmd(c),
		sitesCmd(c),
		mcpCmd(c),
	)
	return root
}

// config layers explicitly set flags over the file and environment.
func (c *cli) config(cmd *cobra.Command) (app.Config, error) {
	cfg, err := app.LoadConfig(c.configPath)
	if err != nil {
		return app.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("home") {
		cfg.Home = c.home
	}
	if flags.Changed("backend") {
		cfg.Backend = c.backend
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if flags.Changed("timeout") {
		cfg.IOTimeout = c.timeout
	}
	return cfg, nil
}
