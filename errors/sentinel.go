// Package errors provides predefined sentinel errors for common failure cases.
package errors

// Argument binding errors.
var (
	// ErrNoSeparatorNoArgv indicates fewer than two tokens were given and no
	// "--" separator was present.
	ErrNoSeparatorNoArgv = &NurseError{
		Kind:   ErrUsage,
		Detail: "usage: nurse [NAME soft hard]* -- executable [args...]",
	}

	// ErrEmptyChildArgv indicates "--" was found but no child argv followed.
	ErrEmptyChildArgv = &NurseError{
		Kind:   ErrUsage,
		Detail: "no executable given after --",
	}
)

// Startup errors.
var (
	// ErrRegistryMisindexed indicates the syscall registry consistency check
	// failed (§4.8).
	ErrRegistryMisindexed = &NurseError{
		Kind:   ErrConsistency,
		Detail: "syscall registry entry misindexed",
	}

	// ErrTeardownRegistration indicates the best-effort kill-on-exit hook
	// could not be installed.
	ErrTeardownRegistration = &NurseError{
		Kind:   ErrTeardownHook,
		Detail: "failed to register teardown hook",
	}
)

// Child bootstrap errors.
var (
	// ErrLimitApply indicates a resource limit could not be applied to the
	// traced child.
	ErrLimitApply = &NurseError{
		Kind:   ErrSetup,
		Detail: "failed to apply resource limit",
	}

	// ErrChildExec indicates the target executable could not be launched.
	ErrChildExec = &NurseError{
		Kind:   ErrExec,
		Detail: "failed to exec target",
	}
)

// Tracer errors.
var (
	// ErrPeekFailed indicates a child-memory peek failed; this is fatal
	// because it signals the tracee vanished or the address is invalid.
	ErrPeekFailed = &NurseError{
		Kind:   ErrTracerIO,
		Detail: "child memory read failed",
	}

	// ErrGetRegsFailed indicates a register fetch failed for one stop; this
	// is non-fatal and the stop is skipped.
	ErrGetRegsFailed = &NurseError{
		Kind:   ErrTracerIO,
		Detail: "failed to read child registers",
	}

	// ErrImpossibleSyscall indicates a stop reported syscall number zero,
	// treated as impossible (§4.4, exit code 69).
	ErrImpossibleSyscall = &NurseError{
		Kind:   ErrInternal,
		Detail: "stop reported syscall number zero",
		Code:   69,
	}

	// ErrSyscallViolation indicates the child exceeded a configured maximum.
	ErrSyscallViolation = &NurseError{
		Kind:   ErrViolation,
		Detail: "syscall count exceeded policy maximum",
	}
)

// Policy loader errors.
var (
	// ErrPolicyFileMissing indicates the policy file could not be opened.
	// Recoverable: tracing is disabled for the run, resource limits still
	// apply (§4.2, §7).
	ErrPolicyFileMissing = &NurseError{
		Kind:   ErrPolicyMissing,
		Detail: "policy file not found",
	}
)
