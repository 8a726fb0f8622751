package cli

import (
	"fmt"

	"github.com/blocklaunch/blocklaunch/internal/config"
	"github.com/blocklaunch/blocklaunch/internal/differ"
	"github.com/spf13/cobra"
)

// diffCmd compares two installed version manifests
var diffCmd = &cobra.Command{
	Use:   "diff <old-version> <new-version>",
	Short: "Compare two installed versions",
	Long: `Compares the manifests of two installed versions: entry point, asset
index, library coordinates, and argument templates.

Examples:
  blocklaunch diff 1.8.9 1.12.2`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

// GetDiffCmd export
func GetDiffCmd() *cobra.Command {
	return diffCmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag, cmd.Flags())
	if err != nil {
		return err
	}

	result, err := differ.NewEngine().ComputeDiff(cfg.Root, args[0], args[1])
	if err != nil {
		return err
	}

	if !result.HasChanges {
		fmt.Printf("No differences between %s and %s\n", args[0], args[1])
		return nil
	}

	if result.MainClassChange != "" {
		fmt.Printf("Main class: %s\n", result.MainClassChange)
	}
	if result.AssetIndexChange != "" {
		fmt.Printf("Asset index: %s\n", result.AssetIndexChange)
	}

	for _, d := range result.LibraryDiffs {
		switch d.DiffType {
		case differ.DiffTypeAdded:
			fmt.Printf("  + %s %s\n", d.Key, d.NewValue)
		case differ.DiffTypeRemoved:
			fmt.Printf("  - %s %s\n", d.Key, d.OldValue)
		case differ.DiffTypeChanged:
			fmt.Printf("  ~ %s %s -> %s\n", d.Key, d.OldValue, d.NewValue)
		}
	}

	for _, change := range result.ArgumentChanges {
		fmt.Printf("  args: %s\n", change)
	}

	return nil
}
