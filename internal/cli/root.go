// Package cli implements groupctl, a terminal client for the groups and reviews API.
package cli

import (
	"fmt"
	"io"
	"time"

	"group-reviews/internal/client"
	"group-reviews/internal/page"
	"group-reviews/internal/reldate"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs once flags and config are resolved.
type app struct {
	cfg     *Config
	loader  *page.Loader
	printer *Printer
	logger  *logrus.Logger
}

type rootOptions struct {
	cfgFile string
	noColor bool
	verbose bool
	now     reldate.Clock
}

// Option customizes the root command.
type Option func(*rootOptions)

// WithClock fixes the clock used for relative dates.
func WithClock(c reldate.Clock) Option {
	return func(o *rootOptions) { o.now = c }
}

// NewRootCommand builds the groupctl command tree writing to out and logging to errOut.
func NewRootCommand(out, errOut io.Writer, opts ...Option) *cobra.Command {
	o := &rootOptions{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "groupctl",
		Short: "Browse and review VK and Telegram groups",
		Long: `groupctl talks to the group reviews API.

It lists and searches groups, shows a group with its rating distribution
and reviews, adds reviews, prints aggregated statistics and manages groups.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, o, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "", "config file (default is ./.groupctl.yaml)")
	flags.String("api-url", "", "API base URL")
	flags.Duration("timeout", 0, "per-request timeout")
	flags.String("locale", "", "date locale (ru or en)")
	flags.Bool("json", false, "print JSON instead of tables")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newGroupsCommand(a),
		newGroupCommand(a),
		newReviewsCommand(a),
		newReviewCommand(a),
		newStatsCommand(a),
		newAdminCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, o *rootOptions, out, errOut io.Writer) error {
	cfg, err := LoadConfig(o.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(errOut)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logger.SetLevel(level)
	if o.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	apiClient := client.New(cfg.API.BaseURL, cfg.API.Timeout, client.WithLogger(logger))
	dates := reldate.New(cfg.Display.Locale, reldate.WithClock(o.now))

	a.cfg = cfg
	a.logger = logger
	a.loader = page.NewLoader(apiClient, dates, logger)
	a.printer = NewPrinter(out, cfg.Output.Colors && !o.noColor)
	return nil
}

// Execute runs groupctl with os arguments.
func Execute(out, errOut io.Writer) error {
	return NewRootCommand(out, errOut).Execute()
}
