// Package runner composes the launch pipeline and spawns the game process.
package runner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/blocklaunch/blocklaunch/internal/classpath"
	"github.com/blocklaunch/blocklaunch/internal/compose"
	"github.com/blocklaunch/blocklaunch/internal/manifest"
	"github.com/blocklaunch/blocklaunch/internal/models"
	"github.com/blocklaunch/blocklaunch/internal/observability/logging"
	"github.com/blocklaunch/blocklaunch/internal/plan"
	"github.com/blocklaunch/blocklaunch/internal/policy"
	"github.com/blocklaunch/blocklaunch/internal/rules"
)

// SpawnError is a fatal failure to start the game process, surfaced after
// the command line was fully composed.
type SpawnError struct {
	Executable string
	Err        error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn %s: %v", e.Executable, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Spawner starts a LaunchPlan as a detached process and returns its PID.
type Spawner interface {
	Spawn(plan models.LaunchPlan) (int, error)
}

// RunConfig describes one launch attempt.
type RunConfig struct {
	Root       string
	Version    string
	PlayerName string
	Options    models.LaunchOptions

	// Policy is an optional pre-spawn gate; nil means no gate.
	Policy *models.PolicyConfig

	// DryRun builds and validates everything but spawns nothing.
	DryRun bool

	// Platform defaults to the host when zero.
	Platform rules.PlatformInfo
	// Exists defaults to a stat-backed check when nil.
	Exists classpath.ExistsFunc
	// Spawner defaults to the detached os/exec spawner when nil.
	Spawner Spawner
}

// RunResult reports one completed launch attempt.
type RunResult struct {
	Plan models.LaunchPlan
	// PID of the detached child; zero on dry runs.
	PID int
	// SkippedLibraries counts entries that contributed nothing to the
	// classpath.
	SkippedLibraries int
}

// Run reads the version manifest, builds the classpath and argument
// string, assembles the launch plan, applies the policy gate, and spawns
// the detached process. Manifest and spawn failures abort the attempt;
// per-library resolution failures are logged and recovered locally.
func Run(ctx context.Context, config *RunConfig) (*RunResult, error) {
	log := logging.From(ctx)

	m, err := manifest.NewManager().LoadVersion(config.Root, config.Version)
	if err != nil {
		return nil, err
	}
	if m.ID == "" || m.MainClass == "" {
		return nil, fmt.Errorf("manifest for %s is missing id or mainClass", config.Version)
	}

	platform := config.Platform
	if platform == (rules.PlatformInfo{}) {
		platform = rules.Host()
	}
	exists := config.Exists
	if exists == nil {
		exists = classpath.StatExists
	}

	entries, skips := classpath.Build(m, config.Root, platform, exists)
	for _, skip := range skips {
		log.Warn("runner", "library skipped", "library", skip.Library, "reason", skip.Reason)
	}

	composed := compose.Compose(m, models.RuntimeContext{
		PlayerName:  config.PlayerName,
		VersionName: m.ID,
		GameDir:     config.Root,
		AssetsDir:   filepath.Join(config.Root, "assets"),
		AssetIndex:  m.Assets,
	})

	p := plan.Assemble(config.Root, m.ID, m.MainClass, classpath.Join(entries), composed, config.Options)

	if config.Policy != nil {
		if err := gate(config.Policy, m, p, config.Options); err != nil {
			return nil, err
		}
	}

	result := &RunResult{Plan: p, SkippedLibraries: len(skips)}
	if config.DryRun {
		log.Info("runner", "dry run, not spawning", "executable", p.Executable)
		return result, nil
	}

	spawner := config.Spawner
	if spawner == nil {
		spawner = &detachedSpawner{}
	}
	pid, err := spawner.Spawn(p)
	if err != nil {
		return nil, err
	}

	log.Info("runner", "game spawned", "pid", pid, "version", m.ID)
	result.PID = pid
	return result, nil
}

// gate evaluates the launch policy and fails the attempt on the first
// rule that does not pass.
func gate(cfg *models.PolicyConfig, m *models.VersionManifest, p models.LaunchPlan, opts models.LaunchOptions) error {
	engine, err := policy.NewEngine()
	if err != nil {
		return err
	}

	results, err := engine.Evaluate(cfg, policy.LaunchInput(m, p, opts))
	if err != nil {
		return err
	}
	for _, result := range results {
		if !result.Passed {
			return fmt.Errorf("launch blocked by policy rule %q: %s", result.RuleName, result.FailureMsg)
		}
	}
	return nil
}
