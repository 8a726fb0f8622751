// Package rules decides whether a library declaration applies to a platform.
package rules

import (
	"runtime"

	"github.com/blocklaunch/blocklaunch/internal/models"
)

// PlatformInfo identifies the platform rules are evaluated against. It is
// passed in explicitly so evaluation is testable against platforms other
// than the host.
type PlatformInfo struct {
	// OS uses manifest spelling: "windows", "linux", "osx".
	OS string
	// Arch uses manifest spelling: "x86", "x86_64", "arm64".
	Arch string
}

// Host returns the PlatformInfo for the running process.
func Host() PlatformInfo {
	return PlatformInfo{
		OS:   manifestOS(runtime.GOOS),
		Arch: manifestArch(runtime.GOARCH),
	}
}

func manifestOS(goos string) string {
	if goos == "darwin" {
		return "osx"
	}
	return goos
}

func manifestArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	default:
		return goarch
	}
}

// WordSize returns the "64" or "32" label substituted for the ${arch}
// token in native classifiers.
func (p PlatformInfo) WordSize() string {
	switch p.Arch {
	case "x86", "arm":
		return "32"
	default:
		return "64"
	}
}

// Evaluate folds over the rules in declaration order and returns whether
// the entry is included. An empty rule list means include. The decision
// starts at true and the last rule that touches it wins:
//
//	allow, no OS            -> true
//	allow, OS matches       -> true when arch unset or matching, else false
//	allow, OS differs       -> false
//	disallow, no OS         -> false
//	disallow, OS matches    -> false
//	disallow, OS differs    -> unchanged
//
// Malformed rules are treated as having no constraint rather than failing.
func Evaluate(rs []models.Rule, platform PlatformInfo) bool {
	include := true
	for _, r := range rs {
		switch r.Action {
		case models.RuleActionAllow:
			if r.OS == nil || r.OS.Name == "" {
				include = true
				continue
			}
			if r.OS.Name != platform.OS {
				include = false
				continue
			}
			include = r.OS.Arch == "" || r.OS.Arch == platform.Arch
		case models.RuleActionDisallow:
			if r.OS == nil || r.OS.Name == "" || r.OS.Name == platform.OS {
				include = false
			}
		}
	}
	return include
}
