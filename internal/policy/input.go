package policy

import (
	"os"
	"strings"

	"github.com/blocklaunch/blocklaunch/internal/models"
)

var pathListSeparator = string(os.PathListSeparator)

// LaunchInput converts a manifest, an assembled plan, and the launch
// options into the map CEL rules evaluate against.
func LaunchInput(m *models.VersionManifest, p models.LaunchPlan, opts models.LaunchOptions) map[string]interface{} {
	classpathCount := 0
	if p.Classpath != "" {
		classpathCount = strings.Count(p.Classpath, pathListSeparator) + 1
	}

	return map[string]interface{}{
		"version": map[string]interface{}{
			"id":          m.ID,
			"main_class":  m.MainClass,
			"asset_index": m.Assets,
			"libraries":   len(m.Libraries),
		},
		"plan": map[string]interface{}{
			"executable":      p.Executable,
			"main_class":      p.MainClass,
			"classpath_count": classpathCount,
			"game_args":       p.GameArgs,
		},
		"options": map[string]interface{}{
			"memory_mb":     opts.MemoryMB,
			"system_memory": opts.SystemMemory,
		},
	}
}
