package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/blocklaunch/blocklaunch/internal/observability"
	"github.com/blocklaunch/blocklaunch/internal/observability/logging"
	otelobs "github.com/blocklaunch/blocklaunch/internal/observability/otel"
	"github.com/blocklaunch/blocklaunch/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blocklaunch",
	Short: "Manifest-driven launcher for local game installations",
	Long: `blocklaunch: launch installed game versions from their manifests.
Resolves the classpath and argument templates of versions/<name>/<name>.json
and spawns the JVM detached.`,
	Version:           version.BuildVersion(),
	PersistentPreRunE: setupContext,
	SilenceUsage:      true,
}

var (
	configFlag       string
	logFormatFlag    string
	logLevelFlag     string
	logOutputFlag    string
	otelFlag         bool
	otelEndpointFlag string
	otelProtocolFlag string
	otelInsecureFlag bool
)

var activeLogger logging.Logger

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFlag, "config", "", "Path to config file (default blocklaunch.yaml)")
	pf.String("root", "", "Game directory (default ~/.minecraft)")
	pf.StringVar(&logFormatFlag, "log-format", logging.DefaultConfig().Format, "Log format: pretty or jsonl")
	pf.StringVar(&logLevelFlag, "log-level", logging.DefaultConfig().Level, "Log level: debug, info, warn, or error")
	pf.StringVar(&logOutputFlag, "log-output", logging.DefaultConfig().Output, "Log output: stderr or a file path")
	pf.BoolVar(&otelFlag, "otel", false, "Enable OpenTelemetry tracing")
	pf.StringVar(&otelEndpointFlag, "otel-endpoint", "", "OTLP endpoint (default per protocol)")
	pf.StringVar(&otelProtocolFlag, "otel-protocol", otelobs.ProtocolHTTP, "OTLP protocol: otlphttp or otlpgrpc")
	pf.BoolVar(&otelInsecureFlag, "otel-insecure", false, "Allow insecure OTLP connections")

	rootCmd.AddCommand(GetLaunchCmd())
	rootCmd.AddCommand(GetPlanCmd())
	rootCmd.AddCommand(GetVersionsCmd())
	rootCmd.AddCommand(GetDiffCmd())
}

// setupContext wires the op ID, logger, and optional OTel handle into the
// command context before any subcommand runs.
func setupContext(cmd *cobra.Command, args []string) error {
	ctx := observability.WithOpID(cmd.Context())

	logger, err := logging.NewLogger(logging.Config{
		Format: logFormatFlag,
		Level:  logLevelFlag,
		Output: logOutputFlag,
	})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	activeLogger = logger
	ctx = logging.WithLogger(ctx, logger)

	if otelFlag {
		cfg := otelobs.DefaultConfig()
		cfg.Enabled = true
		cfg.Endpoint = otelEndpointFlag
		cfg.Protocol = otelProtocolFlag
		cfg.Insecure = otelInsecureFlag
		handle, err := otelobs.Init(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		ctx = otelobs.WithHandle(ctx, handle)
		cobra.OnFinalize(func() {
			_ = handle.Shutdown(context.Background())
		})
	}

	cmd.SetContext(ctx)
	return nil
}

func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if activeLogger != nil {
		_ = activeLogger.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
