// Package commands implements the cakectl command tree.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/clients/shop"
	"github.com/jsamuelsen11/cakeshop/internal/platform/config"
	"github.com/jsamuelsen11/cakeshop/internal/platform/httpclient"
	"github.com/jsamuelsen11/cakeshop/internal/platform/logging"
	"github.com/jsamuelsen11/cakeshop/internal/ports"
)

// session is what every subcommand runs against. It is populated by the
// root command before any subcommand executes.
type session struct {
	client ports.ShopClient
	locale language.Tag
	logger *slog.Logger
}

type rootFlags struct {
	server        string
	profile       string
	configDir     string
	timeout       time.Duration
	verbose       bool
	correlationID string
}

// Option configures NewRootCmd.
type Option func(*session)

// WithClient makes every subcommand use client instead of one built from
// the --server, --profile and --timeout flags.
func WithClient(client ports.ShopClient) Option {
	return func(s *session) {
		s.client = client
	}
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Output goes to the command's configured
// writers so callers can capture it.
func NewRootCmd(opts ...Option) *cobra.Command {
	var (
		flags rootFlags
		s     session
	)
	for _, opt := range opts {
		opt(&s)
	}

	root := &cobra.Command{
		Use:          "cakectl",
		Short:        "Inspect and drive a cake shop server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.init(cmd, flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.server, "server", "", "server base URL (overrides client.base_url)")
	root.PersistentFlags().StringVar(&flags.profile, "profile", os.Getenv("APP_PROFILE"), "config profile to load (default built-in settings)")
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "configs", "directory holding the profile YAML files")
	root.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "per-request timeout (overrides client.timeout)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log requests to stderr")
	root.PersistentFlags().StringVar(&flags.correlationID, "correlation-id", "", "X-Correlation-ID sent with every request (default random per run)")

	root.AddCommand(stateCmd(&s), buyCmd(&s), dispatchCmd(&s))
	return root
}

func (s *session) init(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	s.logger = logging.New(level, "text", cmd.ErrOrStderr())

	s.locale, err = language.Parse(cfg.View.Locale)
	if err != nil {
		return fmt.Errorf("parsing view locale %q: %w", cfg.View.Locale, err)
	}

	if s.client == nil {
		hc := httpclient.New(&cfg.Client, "cakeshop-api", nil, s.logger)
		s.client = shop.NewClient(hc, s.logger)
	}

	// One correlation ID per run ties together the dispatches of a multi-cake
	// buy in the server's logs.
	corrID := flags.correlationID
	if corrID == "" {
		corrID = uuid.NewString()
	}
	cmd.SetContext(httpclient.WithCorrelationID(cmd.Context(), corrID))
	s.logger.DebugContext(cmd.Context(), "session ready", slog.String("correlation_id", corrID))
	return nil
}

func loadConfig(flags rootFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.profile != "" {
		cfg, err = config.Load(flags.profile, config.WithConfigDir(flags.configDir))
	} else {
		cfg, err = config.Defaults()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flags.server != "" {
		cfg.Client.BaseURL = flags.server
	}
	if flags.timeout < 0 {
		return nil, errors.New("--timeout must not be negative")
	}
	if flags.timeout > 0 {
		cfg.Client.Timeout = flags.timeout
	}
	return cfg, nil
}
