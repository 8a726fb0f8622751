// Package plan assembles the final JVM invocation from the resolved
// pipeline outputs.
package plan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/blocklaunch/blocklaunch/internal/models"
	"github.com/blocklaunch/blocklaunch/internal/version"
)

// DefaultExecutable is used when no java binary is configured; the OS
// resolves it through PATH.
const DefaultExecutable = "java"

// LauncherBrand identifies this launcher to the game runtime.
const LauncherBrand = "blocklaunch"

// fixedFlags is the JVM flag block every launch carries, reproduced
// verbatim for compatibility with the runtime's expectations. The
// library-path and brand flags are appended separately since they carry
// derived values.
var fixedFlags = []string{
	"-Dfile.encoding=UTF-8",
	"-XX:+UnlockExperimentalVMOptions",
	"-XX:+UseG1GC",
	"-XX:G1NewSizePercent=20",
	"-XX:G1ReservePercent=20",
	"-XX:MaxGCPauseMillis=50",
	"-XX:G1HeapRegionSize=16M",
}

// Assemble builds the LaunchPlan. Memory flags are omitted when the
// options defer to the JVM's own sizing or no size was requested;
// otherwise minimum and maximum heap are pinned to the same value.
// Assemble performs no I/O and cannot fail.
func Assemble(root, versionName, mainClass, classpath, composedArgs string, opts models.LaunchOptions) models.LaunchPlan {
	executable := opts.JavaBin
	if executable == "" {
		executable = DefaultExecutable
	}

	var args []string
	if !opts.SystemMemory && opts.MemoryMB > 0 {
		args = append(args,
			fmt.Sprintf("-Xms%dM", opts.MemoryMB),
			fmt.Sprintf("-Xmx%dM", opts.MemoryMB),
		)
	}

	args = append(args, fixedFlags...)
	args = append(args,
		"-Djava.library.path="+filepath.Join(root, "versions", versionName, "natives"),
		"-Dminecraft.launcher.brand="+LauncherBrand,
		"-Dminecraft.launcher.version="+version.BuildVersion(),
	)

	args = append(args, "-cp", classpath, mainClass)
	if composedArgs != "" {
		args = append(args, strings.Fields(composedArgs)...)
	}

	return models.LaunchPlan{
		Executable: executable,
		Args:       args,
		Classpath:  classpath,
		MainClass:  mainClass,
		GameArgs:   composedArgs,
	}
}
