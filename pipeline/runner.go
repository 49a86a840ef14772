package pipeline

import (
	"os/exec"

	"github.com/airy1236/obj2tet-toolchain/logger"
)

// CommandRunner executes an external tool and reports its exit status.
// Tests substitute an in-process fake so no child processes are spawned.
type CommandRunner interface {
	Run(name string, args ...string) error
}

// ExecRunner runs commands with os/exec. Arguments are passed directly to
// the child, so paths with embedded spaces need no quoting. The call
// blocks until the child terminates; there is no timeout.
type ExecRunner struct{}

// Run executes the command and logs its combined output.
func (ExecRunner) Run(name string, args ...string) error {
	logger.Sugar.Infof("executing: %s %v", name, args)
	out, err := exec.Command(name, args...).CombinedOutput()
	if len(out) > 0 {
		logger.Sugar.Debugf("%s output:\n%s", name, out)
	}
	if err != nil {
		logger.Sugar.Errorf("%s failed: %v", name, err)
	}
	return err
}
