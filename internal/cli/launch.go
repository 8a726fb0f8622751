package cli

import (
	"fmt"
	"time"

	"github.com/blocklaunch/blocklaunch/internal/config"
	"github.com/blocklaunch/blocklaunch/internal/models"
	"github.com/blocklaunch/blocklaunch/internal/observability"
	"github.com/blocklaunch/blocklaunch/internal/observability/logging"
	otelobs "github.com/blocklaunch/blocklaunch/internal/observability/otel"
	"github.com/blocklaunch/blocklaunch/internal/policy"
	"github.com/blocklaunch/blocklaunch/internal/runner"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// launchCmd spawns a version as a detached process
var launchCmd = &cobra.Command{
	Use:   "launch <version>",
	Short: "Launch an installed version",
	Long: `Resolves the version manifest, builds the classpath and argument string,
and spawns the JVM detached. The launcher does not wait on the game process.

Examples:
  # Launch with configured defaults
  blocklaunch launch 1.8.9

  # Override player name and heap size
  blocklaunch launch 1.8.9 --player Alice --memory 4096

  # Let the JVM pick its own heap size
  blocklaunch launch 1.8.9 --system-memory

  # Verify everything without spawning
  blocklaunch launch 1.8.9 --dry-run

  # Gate the launch on a policy preset
  blocklaunch launch 1.8.9 --policy baseline`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

var (
	launchDryRunFlag bool
	launchPolicyFlag string
)

func init() {
	launchCmd.Flags().String("player", "", "Player name")
	launchCmd.Flags().String("java", "", "JVM executable (default resolved from PATH)")
	launchCmd.Flags().Int("memory", 0, "Heap size in megabytes for -Xms/-Xmx")
	launchCmd.Flags().Bool("system-memory", false, "Defer heap sizing to the JVM")
	launchCmd.Flags().BoolVar(&launchDryRunFlag, "dry-run", false, "Build and verify the plan but don't spawn")
	launchCmd.Flags().StringVar(&launchPolicyFlag, "policy", "", "Launch policy: baseline, strict, or path to YAML file")
}

// GetLaunchCmd export
func GetLaunchCmd() *cobra.Command {
	return launchCmd
}

func runLaunch(cmd *cobra.Command, args []string) (err error) {
	ctx := cmd.Context()
	log := logging.From(ctx)
	start := time.Now()
	versionName := args[0]

	if h := otelobs.From(ctx); h != nil {
		var span trace.Span
		ctx, span = h.Tracer.Start(ctx, "blocklaunch.launch",
			trace.WithAttributes(
				attribute.String("blocklaunch.op_id", observability.OpID(ctx)),
				attribute.String("blocklaunch.command", "launch"),
				attribute.String("blocklaunch.version", versionName),
			))
		defer func() {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "failed")
			} else {
				span.SetStatus(codes.Ok, "success")
			}
			span.End()
		}()
	}

	log.Event(ctx, "launch.start", map[string]any{"version": versionName})

	var resultStatus string
	defer func() {
		log.Event(ctx, "launch.complete", map[string]any{
			"duration_ms": time.Since(start).Milliseconds(),
			"result":      resultStatus,
		})
	}()

	cfg, err := config.Load(configFlag, cmd.Flags())
	if err != nil {
		resultStatus = "fail"
		return err
	}

	runConfig := &runner.RunConfig{
		Root:       cfg.Root,
		Version:    versionName,
		PlayerName: cfg.PlayerName,
		Options: models.LaunchOptions{
			JavaBin:      cfg.JavaBin,
			MemoryMB:     cfg.MemoryMB,
			SystemMemory: cfg.SystemMemory,
		},
		DryRun: launchDryRunFlag,
	}

	if launchPolicyFlag != "" {
		policyConfig, err := policy.Resolve(launchPolicyFlag)
		if err != nil {
			resultStatus = "fail"
			return err
		}
		runConfig.Policy = policyConfig
	}

	result, err := runner.Run(ctx, runConfig)
	if err != nil {
		resultStatus = "fail"
		return err
	}

	if launchDryRunFlag {
		fmt.Println(result.Plan.CommandLine())
	} else {
		fmt.Printf("Launched %s (pid %d)\n", versionName, result.PID)
	}
	if result.SkippedLibraries > 0 {
		fmt.Printf("%d libraries could not be resolved and were skipped\n", result.SkippedLibraries)
	}

	resultStatus = "success"
	return nil
}
