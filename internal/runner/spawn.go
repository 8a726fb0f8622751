package runner

import (
	"os/exec"

	"github.com/blocklaunch/blocklaunch/internal/models"
)

// detachedSpawner starts the process and releases it. The launcher does
// not wait on the child, stream its output, or manage its lifecycle
// beyond obtaining the PID.
type detachedSpawner struct{}

func (s *detachedSpawner) Spawn(plan models.LaunchPlan) (int, error) {
	cmd := exec.Command(plan.Executable, plan.Args...)
	if err := cmd.Start(); err != nil {
		return 0, &SpawnError{Executable: plan.Executable, Err: err}
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		// The child is already running; a release failure only leaks the
		// handle in this process.
		return pid, nil
	}
	return pid, nil
}
