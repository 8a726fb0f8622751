package cli

import (
	"fmt"
	"os"

	"github.com/blocklaunch/blocklaunch/internal/config"
	"github.com/blocklaunch/blocklaunch/internal/manifest"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// versionsCmd lists installed versions
var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List versions installed under the game directory",
	Args:  cobra.NoArgs,
	RunE:  runVersions,
}

// GetVersionsCmd export
func GetVersionsCmd() *cobra.Command {
	return versionsCmd
}

func runVersions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag, cmd.Flags())
	if err != nil {
		return err
	}

	summaries, err := manifest.NewManager().ListVersions(cfg.Root)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Printf("No versions installed under %s\n", cfg.Root)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Version", "Type", "Main Class", "Assets"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.ID, s.Type, s.MainClass, s.Assets})
	}
	t.Render()
	return nil
}
