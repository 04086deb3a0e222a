// Package cli implements the clusterconf command-line client. Commands talk
// to a running service through [ports.ClusterConfClient] and render records
// as tables or JSON.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/clusterconf/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/clusterconf/internal/app/poll"
	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/platform/config"
	"github.com/jsamuelsen11/clusterconf/internal/platform/httpclient"
	"github.com/jsamuelsen11/clusterconf/internal/platform/logging"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

// Exit codes returned by Main.
const (
	ExitCodeSuccess   = 0
	ExitCodeError     = 1
	ExitCodeNotFound  = 2
	ExitCodeExhausted = 3
)

const defaultProfile = "local"

// Option customizes the root command.
type Option func(*runtime)

// WithClient injects the API client instead of building one from config.
func WithClient(c ports.ClusterConfClient) Option {
	return func(r *runtime) { r.client = c }
}

// WithOutput redirects command output.
func WithOutput(w io.Writer) Option {
	return func(r *runtime) { r.out = w }
}

// runtime carries state shared by every subcommand of one invocation.
type runtime struct {
	out    io.Writer
	client ports.ClusterConfClient
	policy poll.Policy
	logger *slog.Logger

	profile   string
	configDir string
	server    string
	output    string
	verbose   bool
}

// NewRootCmd builds the clusterconf command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	rt := &runtime{
		out:    os.Stdout,
		policy: poll.DefaultPolicy(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(rt)
	}

	root := &cobra.Command{
		Use:   "clusterconf",
		Short: "Query and change cluster configuration options",
		Long: `clusterconf reads the cluster_conf option catalog from a running service
and, when the admin API is enabled, sets and removes per-section overrides.

Writes become visible to queries eventually. Use "clusterconf wait" to block
until a value has converged.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init()
		},
	}
	root.SetOut(rt.out)

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rt.profile, "profile", profile, "configuration profile (configs/{profile}.yaml)")
	pf.StringVar(&rt.configDir, "config-dir", "", "directory holding base.yaml and profile files")
	pf.StringVar(&rt.server, "server", "", "service base URL (overrides client.base_url)")
	pf.StringVarP(&rt.output, "output", "o", outputTable, "output format: table or json")
	pf.BoolVarP(&rt.verbose, "verbose", "v", false, "log client activity to stderr at the configured level")

	root.AddCommand(
		newListCmd(rt),
		newGetCmd(rt),
		newFilterCmd(rt),
		newConfigCmd(rt),
		newWaitCmd(rt),
	)

	return root
}

// init validates flags and, unless a client was injected, loads config and
// builds the HTTP client.
func (rt *runtime) init() error {
	if rt.output != outputTable && rt.output != outputJSON {
		return fmt.Errorf("--output must be %s or %s, got %q: %w", outputTable, outputJSON, rt.output, domain.ErrValidation)
	}
	if rt.client != nil {
		return nil
	}

	var loadOpts []config.Option
	if rt.configDir != "" {
		loadOpts = append(loadOpts, config.WithConfigDir(rt.configDir))
	}
	cfg, err := config.Load(rt.profile, loadOpts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if rt.server != "" {
		cfg.Client.BaseURL = rt.server
	}

	level := logging.LevelOff
	if rt.verbose {
		level = cfg.Log.Level
	}
	rt.logger = logging.New(level, "text", os.Stderr)
	rt.policy = poll.Policy{
		MaxAttempts: cfg.Poll.MaxAttempts,
		Interval:    cfg.Poll.Interval,
		Logger:      rt.logger,
	}
	rt.client = acl.NewClusterConfClient(
		httpclient.New(&cfg.Client, "cluster-conf-api", nil, rt.logger),
		rt.logger,
	)
	return nil
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, poll.ErrExhausted):
		return ExitCodeExhausted
	case errors.Is(err, domain.ErrNotFound):
		return ExitCodeNotFound
	default:
		return ExitCodeError
	}
}

// Main runs the command tree with args and returns the exit code.
func Main(args []string, opts ...Option) int {
	cmd := NewRootCmd(opts...)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	}
	return ExitCode(err)
}
