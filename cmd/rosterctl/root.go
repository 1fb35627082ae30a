package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/config"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/httpclient"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/telemetry"
	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

const serviceName = "roster-api"

// globalOptions holds the persistent flags and the client built from them.
type globalOptions struct {
	server    string
	timeout   time.Duration
	output    string
	profile   string
	configDir string
	logLevel  string
	corrID    string

	logger *slog.Logger
	client ports.RosterClient
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "rosterctl",
		Short:         "Manage the PiXELL River Financial employee roster",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.connect(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.server, "server", "", "roster server base URL (default: client.base_url from config)")
	f.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout (default: client.timeout from config)")
	f.StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")
	f.StringVar(&opts.profile, "profile", os.Getenv("APP_PROFILE"), "config profile to load from --config-dir; empty uses built-in defaults")
	f.StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	f.StringVar(&opts.corrID, "correlation-id", "", "X-Correlation-ID sent with every request (default: a new UUID per run)")

	cmd.AddCommand(
		newDepartmentsCmd(opts),
		newEmployeesCmd(opts),
		newReseedCmd(opts),
	)
	return cmd
}

// connect loads configuration, applies flag overrides and builds the API
// client used by every subcommand.
func (o *globalOptions) connect(cmd *cobra.Command) error {
	if o.output != outputText && o.output != outputJSON {
		return fmt.Errorf("unknown --output %q (want %s or %s)", o.output, outputText, outputJSON)
	}

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	if o.server != "" {
		cfg.Client.BaseURL = o.server
	}
	if o.timeout > 0 {
		cfg.Client.Timeout = o.timeout
	}

	if o.corrID == "" {
		o.corrID = uuid.NewString()
	}

	o.logger = logging.New(o.logLevel, "text", cmd.ErrOrStderr())
	o.logger.Debug("rosterctl configured",
		slog.String("server", cfg.Client.BaseURL),
		slog.Duration("timeout", cfg.Client.Timeout),
		slog.String("profile", o.profile),
		slog.String("correlation_id", o.corrID),
	)

	metrics, err := telemetry.NewMetrics(otel.GetMeterProvider())
	if err != nil {
		return fmt.Errorf("creating client metrics: %w", err)
	}

	client := httpclient.New(&cfg.Client, serviceName, o.logger,
		httpclient.WithCorrelationID(o.corrID),
		httpclient.WithMetrics(metrics),
	)
	o.client = acl.NewRosterClient(client, o.logger)
	return nil
}

func (o *globalOptions) loadConfig() (*config.Config, error) {
	if o.profile == "" {
		cfg, err := config.LoadDefaults()
		if err != nil {
			return nil, fmt.Errorf("loading default config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load(o.profile, config.WithConfigDir(o.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading %s config: %w", o.profile, err)
	}
	return cfg, nil
}
