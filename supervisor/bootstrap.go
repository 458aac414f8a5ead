package supervisor

import (
	"os"
	"os/exec"
	"syscall"

	"nurse/errors"
)

// start is the Child Bootstrapper adaptation (§4.3). It launches
// p.ChildArgv[0] with an empty environment, requesting to be traced via
// SysProcAttr.Ptrace — the host runtime performs PTRACE_TRACEME in the
// child before exec, so the kernel halts the child at the exec boundary
// with a trap, exactly as §4.3's rationale describes.
//
// Because os/exec's fork/exec sequence is atomic and offers no hook for
// arbitrary child-side code between fork and exec, resource limits are
// applied here from the supervisor side once the initial trap confirms the
// child is halted at its own entry point and has not yet executed any
// instruction of the target image (see SPEC_FULL.md §4.3's Go adaptation
// note). If limit application fails, the child is killed and setup error
// is reported, matching the contract that the child must never fall
// through a failed setup step.
func start(p *Program) (*exec.Cmd, error) {
	cmd := exec.Command(p.ChildArgv[0], p.ChildArgv[1:]...)
	cmd.Env = []string{}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Ptrace: true}

	if err := cmd.Start(); err != nil {
		return nil, errors.ErrChildExec.WithErr(err)
	}
	p.Pid = cmd.Process.Pid

	var ws syscall.WaitStatus
	if _, err := syscall.Wait4(p.Pid, &ws, 0, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrExec, "initial-wait")
	}
	p.LastStatus = ws

	if !ws.Stopped() || ws.StopSignal() != syscall.SIGTRAP {
		// The child died before reaching its post-exec trap (e.g. the
		// exec itself failed); nothing more to bootstrap.
		return cmd, nil
	}

	if p.Limits != nil {
		if err := p.Limits.Apply(p.Pid); err != nil {
			syscall.Kill(p.Pid, syscall.SIGKILL)
			return nil, errors.ErrLimitApply.WithErr(err)
		}
	}

	return cmd, nil
}
