package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/blocklaunch/blocklaunch/internal/config"
	"github.com/blocklaunch/blocklaunch/internal/models"
	"github.com/blocklaunch/blocklaunch/internal/runner"
	"github.com/spf13/cobra"
)

// planCmd prints the fully resolved launch plan without spawning
var planCmd = &cobra.Command{
	Use:   "plan <version>",
	Short: "Show the resolved launch plan for a version",
	Long: `Builds the complete launch plan for a version and prints it without
spawning anything. Useful for inspecting what 'launch' would run.

Examples:
  blocklaunch plan 1.8.9
  blocklaunch plan 1.8.9 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

var planFormatFlag string

func init() {
	planCmd.Flags().StringVar(&planFormatFlag, "format", "text", "Output format: text or json")
}

// GetPlanCmd export
func GetPlanCmd() *cobra.Command {
	return planCmd
}

// planOutput is the JSON projection of a resolved plan.
type planOutput struct {
	Executable  string `json:"executable"`
	Classpath   string `json:"classpath"`
	MainClass   string `json:"main_class"`
	GameArgs    string `json:"game_args"`
	CommandLine string `json:"command_line"`
	Skipped     int    `json:"skipped_libraries"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag, cmd.Flags())
	if err != nil {
		return err
	}

	result, err := runner.Run(cmd.Context(), &runner.RunConfig{
		Root:       cfg.Root,
		Version:    args[0],
		PlayerName: cfg.PlayerName,
		Options: models.LaunchOptions{
			JavaBin:      cfg.JavaBin,
			MemoryMB:     cfg.MemoryMB,
			SystemMemory: cfg.SystemMemory,
		},
		DryRun: true,
	})
	if err != nil {
		return err
	}

	if planFormatFlag == "json" {
		out := planOutput{
			Executable:  result.Plan.Executable,
			Classpath:   result.Plan.Classpath,
			MainClass:   result.Plan.MainClass,
			GameArgs:    result.Plan.GameArgs,
			CommandLine: result.Plan.CommandLine(),
			Skipped:     result.SkippedLibraries,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Executable: %s\n", result.Plan.Executable)
	fmt.Printf("Main class: %s\n", result.Plan.MainClass)
	fmt.Printf("Classpath:  %s\n", result.Plan.Classpath)
	fmt.Printf("Game args:  %s\n", result.Plan.GameArgs)
	if result.SkippedLibraries > 0 {
		fmt.Printf("Skipped:    %d libraries\n", result.SkippedLibraries)
	}
	fmt.Println()
	fmt.Println(result.Plan.CommandLine())
	return nil
}
