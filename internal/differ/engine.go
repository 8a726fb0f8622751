// Package differ compares two installed version manifests.
package differ

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blocklaunch/blocklaunch/internal/manifest"
	"github.com/blocklaunch/blocklaunch/internal/models"
	"github.com/wI2L/jsondiff"
)

// DiffType indicates what kind of difference was detected
type DiffType string

const (
	DiffTypeAdded   DiffType = "added"
	DiffTypeRemoved DiffType = "removed"
	DiffTypeChanged DiffType = "changed"
)

// LibraryDiff is the difference for a single library coordinate.
type LibraryDiff struct {
	// Key is the group:artifact part of the coordinate.
	Key      string
	DiffType DiffType
	OldValue string
	NewValue string
}

// DiffResult contains the complete comparison of two versions.
type DiffResult struct {
	HasChanges bool
	// MainClassChange is "old -> new" when the entry point moved.
	MainClassChange string
	// AssetIndexChange is "old -> new" when the asset index moved.
	AssetIndexChange string
	LibraryDiffs     []LibraryDiff
	// ArgumentPatches is the raw JSON diff of the argument templates.
	ArgumentPatches jsondiff.Patch
	// ArgumentChanges are human-readable translations of the patches.
	ArgumentChanges []string
}

// Engine performs manifest diff operations
type Engine struct {
	manifests *manifest.Manager
}

func NewEngine() *Engine {
	return &Engine{manifests: manifest.NewManager()}
}

// ComputeDiff loads both versions under root and compares them.
func (e *Engine) ComputeDiff(root, oldVersion, newVersion string) (*DiffResult, error) {
	oldManifest, err := e.manifests.LoadVersion(root, oldVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", oldVersion, err)
	}
	newManifest, err := e.manifests.LoadVersion(root, newVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", newVersion, err)
	}

	return e.Compare(oldManifest, newManifest)
}

// Compare diffs two parsed manifests.
func (e *Engine) Compare(oldManifest, newManifest *models.VersionManifest) (*DiffResult, error) {
	result := &DiffResult{}

	if oldManifest.MainClass != newManifest.MainClass {
		result.HasChanges = true
		result.MainClassChange = oldManifest.MainClass + " -> " + newManifest.MainClass
	}
	if oldManifest.Assets != newManifest.Assets {
		result.HasChanges = true
		result.AssetIndexChange = oldManifest.Assets + " -> " + newManifest.Assets
	}

	result.LibraryDiffs = compareLibraries(oldManifest.Libraries, newManifest.Libraries)
	if len(result.LibraryDiffs) > 0 {
		result.HasChanges = true
	}

	patches, err := e.compareArguments(oldManifest, newManifest)
	if err != nil {
		return nil, fmt.Errorf("failed to diff argument templates: %w", err)
	}
	if len(patches) > 0 {
		result.HasChanges = true
		result.ArgumentPatches = patches
		result.ArgumentChanges = Translate(patches)
	}

	return result, nil
}

// compareLibraries keys libraries by group:artifact so version bumps show
// as changes rather than remove/add pairs.
func compareLibraries(oldLibs, newLibs []models.Library) []LibraryDiff {
	oldByKey := libraryVersions(oldLibs)
	newByKey := libraryVersions(newLibs)

	var diffs []LibraryDiff
	for _, lib := range oldLibs {
		key := libraryKey(lib.Name)
		if _, found := newByKey[key]; !found {
			diffs = append(diffs, LibraryDiff{
				Key:      key,
				DiffType: DiffTypeRemoved,
				OldValue: oldByKey[key],
			})
		}
	}

	for _, lib := range newLibs {
		key := libraryKey(lib.Name)
		newVersion := newByKey[key]
		oldVersion, found := oldByKey[key]
		if !found {
			diffs = append(diffs, LibraryDiff{
				Key:      key,
				DiffType: DiffTypeAdded,
				NewValue: newVersion,
			})
			continue
		}
		if oldVersion != newVersion {
			diffs = append(diffs, LibraryDiff{
				Key:      key,
				DiffType: DiffTypeChanged,
				OldValue: oldVersion,
				NewValue: newVersion,
			})
		}
	}

	return diffs
}

func libraryKey(coordinate string) string {
	parts := strings.Split(coordinate, ":")
	if len(parts) < 2 {
		return coordinate
	}
	return parts[0] + ":" + parts[1]
}

func libraryVersions(libs []models.Library) map[string]string {
	versions := make(map[string]string, len(libs))
	for _, lib := range libs {
		parts := strings.Split(lib.Name, ":")
		if len(parts) == 3 {
			versions[libraryKey(lib.Name)] = parts[2]
		} else {
			versions[libraryKey(lib.Name)] = ""
		}
	}
	return versions
}

// argumentView is the diffable projection of a manifest's argument
// sources.
type argumentView struct {
	Legacy string            `json:"legacy,omitempty"`
	Game   []json.RawMessage `json:"game,omitempty"`
}

func (e *Engine) compareArguments(oldManifest, newManifest *models.VersionManifest) (jsondiff.Patch, error) {
	oldJSON, err := json.Marshal(argumentsOf(oldManifest))
	if err != nil {
		return nil, err
	}
	newJSON, err := json.Marshal(argumentsOf(newManifest))
	if err != nil {
		return nil, err
	}

	return jsondiff.CompareJSON(oldJSON, newJSON)
}

func argumentsOf(m *models.VersionManifest) argumentView {
	view := argumentView{Legacy: m.MinecraftArguments}
	if m.Arguments != nil {
		view.Game = m.Arguments.Game
	}
	return view
}
