package models

import "strings"

// LaunchOptions are the user-supplied overrides for a launch.
type LaunchOptions struct {
	// JavaBin is the executable to invoke. Empty means the bare name
	// "java", resolved through PATH by the OS.
	JavaBin string
	// MemoryMB is the requested heap size. Zero means unset.
	MemoryMB int
	// SystemMemory defers heap sizing to the JVM's own defaults; when
	// set, MemoryMB is ignored.
	SystemMemory bool
}

// RuntimeContext carries the ambient values substituted into argument
// templates. Authentication fields are not here: offline constants are
// supplied by the composer.
type RuntimeContext struct {
	PlayerName  string
	VersionName string
	GameDir     string
	AssetsDir   string
	AssetIndex  string
}

// LaunchPlan is the fully resolved invocation. Built once per launch
// attempt and consumed exactly once by the spawner.
type LaunchPlan struct {
	Executable string
	// Args is the complete argv after the executable, in final order:
	// memory flags, fixed JVM flags, -cp, classpath, main class, game args.
	Args []string

	// Kept separately for display and policy input.
	Classpath string
	MainClass string
	GameArgs  string
}

// CommandLine renders the plan as a single display string. The classpath
// is quoted since it routinely contains separators and spaces.
func (p LaunchPlan) CommandLine() string {
	var b strings.Builder
	b.WriteString(p.Executable)
	for i, arg := range p.Args {
		b.WriteByte(' ')
		if i > 0 && p.Args[i-1] == "-cp" {
			b.WriteByte('"')
			b.WriteString(arg)
			b.WriteByte('"')
			continue
		}
		b.WriteString(arg)
	}
	return b.String()
}
