package supervisor

import (
	"context"
	"log/slog"
	"runtime"
	"syscall"

	"nurse/errors"
	"nurse/linux"
	"nurse/logging"
)

const (
	openStringMax  = 256
	writeShotMax   = 64
	printableWidth = 64
)

// Display names of the syscalls that get special handling on entry (§4.4
// step 7). They are compared against the name the registry returns rather
// than against hardcoded numbers, since the registry already carries the
// canonical x86_64 numbering.
const (
	displayExit    = linux.DisplayPrefix + "exit"
	displayOpen    = linux.DisplayPrefix + "open"
	displayOpenat  = linux.DisplayPrefix + "openat"
	displayWrite   = linux.DisplayPrefix + "write"
)

// Run drives the full traced-program pipeline for p: it pins the calling
// goroutine to its OS thread (ptrace is thread-scoped in the kernel),
// bootstraps the child, installs the teardown hook, and either runs the
// Tracer Engine to completion or — when tracing is disabled — detaches and
// lets the child run free after its resource limits are applied. It sets
// p.ExitStatus and returns only a fatal setup/internal error; policy
// violations and ordinary child termination are not reported as errors.
func Run(ctx context.Context, p *Program) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := logging.FromContext(ctx)

	if _, err := start(p); err != nil {
		return err
	}

	if !wasTrapped(p.LastStatus) {
		outcome := Classify(p.LastStatus)
		log.Warn(outcome.Describe(), slog.Int("pid", p.Pid))
		p.ExitStatus = outcome.SupervisorExitCode(p.ReportChildFailure)
		return nil
	}

	cancel, err := InstallTeardownHook(p.Pid)
	if err != nil {
		syscall.Kill(p.Pid, syscall.SIGKILL)
		return err
	}
	defer cancel()

	if !p.TraceEnabled {
		return runDetached(p, log)
	}

	return runTraced(p, log)
}

// wasTrapped reports whether status is the initial post-exec syscall-stop
// sentinel: a traced stop with SIGTRAP.
func wasTrapped(status syscall.WaitStatus) bool {
	return status.Stopped() && status.StopSignal() == syscall.SIGTRAP
}

// runDetached lets the child run free once its resource limits are in
// place: tracing was never requested for this invocation, so the Tracer
// Engine has nothing to enforce. The trace relationship established by
// SysProcAttr.Ptrace is released with PTRACE_DETACH, and the supervisor
// falls back to an ordinary wait for the child's final status.
func runDetached(p *Program, log *slog.Logger) error {
	if err := syscall.PtraceDetach(p.Pid); err != nil {
		log.Warn("detach failed, continuing traced", slog.String("error", err.Error()))
		return runTraced(p, log)
	}

	var ws syscall.WaitStatus
	if _, err := syscall.Wait4(p.Pid, &ws, 0, nil); err != nil {
		return errors.Wrap(err, errors.ErrExec, "wait-detached")
	}
	p.LastStatus = ws
	outcome := Classify(ws)
	log.Info(outcome.Describe(), slog.Int("pid", p.Pid))
	p.ExitStatus = outcome.SupervisorExitCode(p.ReportChildFailure)
	return nil
}

// runTraced is the Tracer Engine (§4.4): it alternates resuming the child
// to its next syscall boundary and waiting for the resulting stop, toggling
// in-call to classify each stop as entry or exit, until the waited status
// no longer matches the syscall-stop sentinel.
func runTraced(p *Program, log *slog.Logger) error {
	p.InCall = false

	for {
		if err := syscall.PtraceSyscall(p.Pid, 0); err != nil {
			log.Warn("ptrace continue failed", slog.String("error", err.Error()))
		}

		var ws syscall.WaitStatus
		if _, err := syscall.Wait4(p.Pid, &ws, 0, nil); err != nil {
			return errors.Wrap(err, errors.ErrExec, "wait-syscall-stop")
		}
		p.LastStatus = ws

		if !wasTrapped(ws) {
			break
		}
		p.Counter++

		p.InCall = !p.InCall

		regs, err := GetRegisters(p.Pid)
		if err != nil {
			log.Warn(errors.ErrGetRegsFailed.WithErr(err).Error(), slog.Int("pid", p.Pid))
			continue
		}

		if p.InCall {
			if violated, fatal := handleEntry(p, log, regs); fatal != nil {
				return fatal
			} else if violated {
				syscall.Kill(p.Pid, syscall.SIGKILL)
				log.Error(errors.ErrSyscallViolation.Error(), slog.Int("pid", p.Pid))
			}
		} else {
			handleExit(log, regs)
		}
	}

	outcome := Classify(p.LastStatus)
	log.Info(outcome.Describe(), slog.Int("pid", p.Pid))
	p.ExitStatus = outcome.SupervisorExitCode(p.ReportChildFailure)
	return nil
}

// handleEntry performs §4.4 step 5 and step 7 for a single entry-phase
// stop. It returns violated=true if the call should be killed, and a
// non-nil fatal error for the syscall-number-zero case (§4.4 step 7, exit
// code 69) or for a failed child-memory read (§4.5).
func handleEntry(p *Program, log *slog.Logger, regs Registers) (violated bool, fatal error) {
	number := regs.SyscallNumber()

	if number == 0 {
		return false, errors.ErrImpossibleSyscall
	}

	name, found := p.Registry.Lookup(number)
	if !found {
		log.Debug("unrecognized syscall entry", slog.Int("number", number), slog.Int("pid", p.Pid))
		return false, nil
	}

	if name == displayExit {
		log.Debug("exit syscall, skipping policy accounting", slog.Int("pid", p.Pid))
		return false, nil
	}

	entryLog := logging.WithSyscall(logging.WithPID(log, p.Pid), name)

	switch name {
	case displayOpen, displayOpenat:
		argIdx := 1
		if name == displayOpenat {
			argIdx = 2
		}
		if data, truncated, err := ReadCString(p.Pid, regs.Arg(argIdx), openStringMax); err != nil {
			return false, errors.ErrPeekFailed.WithErr(err)
		} else {
			if truncated {
				entryLog.Warn("path read truncated without terminator")
			}
			entryLog.Info("syscall entry", slog.String("path", PrintableShot(data, printableWidth)))
		}
	case displayWrite:
		length := int(regs.Arg(3))
		if length > writeShotMax {
			length = writeShotMax
		}
		if data, truncated, err := ReadCString(p.Pid, regs.Arg(2), length); err != nil {
			return false, errors.ErrPeekFailed.WithErr(err)
		} else {
			if truncated {
				entryLog.Warn("buffer read truncated without terminator")
			}
			entryLog.Info("syscall entry", slog.String("data", PrintableShot(data, printableWidth)))
		}
	default:
		entryLog.Info("syscall entry")
	}

	violated = p.Registry.Observe(number)
	return violated, nil
}

// handleExit performs §4.4 step 6: log the return value of the most
// recently entered syscall.
func handleExit(log *slog.Logger, regs Registers) {
	log.Debug("syscall exit", slog.Int64("return", regs.ReturnValue()))
}
