// Package classpath resolves a manifest's library list into an ordered
// classpath.
package classpath

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/blocklaunch/blocklaunch/internal/models"
	"github.com/blocklaunch/blocklaunch/internal/rules"
)

// ExistsFunc reports whether a file exists. Injected so the builder is
// testable without a populated game directory.
type ExistsFunc func(path string) bool

// StatExists is the production ExistsFunc.
func StatExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// archToken is replaced in native classifiers with the platform word size.
const archToken = "${arch}"

// Skip records one library that contributed nothing to the classpath.
// Skips are diagnostic only and never fail the build.
type Skip struct {
	Library string
	Reason  string
}

// Build walks the manifest's libraries and returns the resolved classpath
// entries in manifest order, seeded with the primary version jar. Entries
// whose rules exclude the platform, whose coordinates are malformed, or
// whose files are absent are skipped. Duplicates are not filtered: manifest
// order is authoritative.
func Build(m *models.VersionManifest, root string, platform rules.PlatformInfo, exists ExistsFunc) ([]string, []Skip) {
	entries := []string{VersionJar(root, m.ID)}
	var skips []Skip

	for _, lib := range m.Libraries {
		if !rules.Evaluate(lib.Rules, platform) {
			continue
		}

		path, reason := resolve(lib, root, platform, exists)
		if path == "" {
			skips = append(skips, Skip{Library: lib.Name, Reason: reason})
			continue
		}
		entries = append(entries, path)
	}

	return entries, skips
}

// Join renders the entries with the platform's path-list separator.
func Join(entries []string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

// VersionJar is the primary artifact path for a version, always the first
// classpath entry.
func VersionJar(root, version string) string {
	return filepath.Join(root, "versions", version, version+".jar")
}

func resolve(lib models.Library, root string, platform rules.PlatformInfo, exists ExistsFunc) (string, string) {
	parts := strings.Split(lib.Name, ":")
	if len(parts) != 3 {
		return "", "malformed coordinate"
	}
	group, artifact, version := parts[0], parts[1], parts[2]
	dir := filepath.Join(root, "libraries",
		filepath.FromSlash(strings.ReplaceAll(group, ".", "/")),
		artifact, version)

	if classifier, ok := lib.Natives[platform.OS]; ok {
		classifier = strings.ReplaceAll(classifier, archToken, platform.WordSize())
		native := filepath.Join(dir, artifact+"-"+version+"-"+classifier+".jar")
		if exists(native) {
			return native, ""
		}
	}

	plain := filepath.Join(dir, artifact+"-"+version+".jar")
	if exists(plain) {
		return plain, ""
	}
	return "", "artifact not found"
}
