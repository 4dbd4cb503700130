// Package commands implements the CLI commands for peerseek.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"
	"go.trai.ch/peerseek/internal/app"
	"go.trai.ch/peerseek/internal/build"
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
)

// CLI represents the command line interface for peerseek.
type CLI struct {
	app     *app.App
	metrics ports.Metrics
	out     io.Writer
	clock   clock.Clock
	rootCmd *cobra.Command
}

// New creates a new CLI instance over the wired components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "peerseek",
		Short:         "Simulate resource discovery in peer-to-peer overlay networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "network.yaml", "Path to the network file")
	rootCmd.PersistentFlags().String("cache-key", "", "Cache key policy: query or full (defaults to the network file)")
	rootCmd.PersistentFlags().String("metrics-out", "", "Write Prometheus metrics to this file after the command")

	cli := &CLI{
		app:     c.App,
		metrics: c.Metrics,
		out:     os.Stdout,
		clock:   clock.New(),
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		path, err := cmd.Flags().GetString("metrics-out")
		if err != nil || path == "" {
			return err
		}
		return cli.metrics.WriteTextfile(path)
	}

	rootCmd.AddCommand(cli.newQueryCmd())
	rootCmd.AddCommand(cli.newBenchCmd())
	rootCmd.AddCommand(cli.newValidateCmd())
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
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
	c.out = w
	c.rootCmd.SetOut(w)
}

// SetClock sets the clock that paces trace replay. Used for testing.
func (c *CLI) SetClock(clk clock.Clock) {
	c.clock = clk
}

func (c *CLI) load(cmd *cobra.Command) (*domain.Network, domain.Settings, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, domain.Settings{}, err
	}
	net, settings, err := c.app.Load(path)
	if err != nil {
		return nil, domain.Settings{}, err
	}

	if cmd.Flags().Changed("cache-key") {
		raw, _ := cmd.Flags().GetString("cache-key")
		policy, err := domain.ParseKeyPolicy(raw)
		if err != nil {
			return nil, domain.Settings{}, err
		}
		settings.CacheKey = policy
	}
	return net, settings, nil
}
