// Package supervisor implements the traced-program pipeline: the Child
// Bootstrapper, the Tracer Engine, the child-memory string extractor, the
// printable-shot formatter, and the Exit Reporter (SPEC_FULL.md §4.3–§4.8).
package supervisor

import (
	"syscall"

	"nurse/linux"
)

// Program is the Traced-program record (§3): the per-invocation state
// bundle threaded through the fork/run/exit pipeline.
type Program struct {
	// ChildArgv is the child's argument vector; ChildArgv[0] is the
	// executable path.
	ChildArgv []string

	// Limits is the Resource-Limit Table entries activated by the
	// argument binder.
	Limits *linux.LimitTable

	// Registry is the Syscall Registry consulted and updated by the
	// tracer engine.
	Registry *linux.Registry

	// TraceEnabled gates whether the tracer engine runs at all; false
	// means the child still gets its resource limits but runs free.
	TraceEnabled bool

	// ReportChildFailure is the "propagate child failure" mode switch
	// (§4.7, NURSE_HACK_REPORT_EXIT_FAIL).
	ReportChildFailure bool

	// Pid is the child's process id, set once the child has been
	// started.
	Pid int

	// LastStatus is the most recently waited status word.
	LastStatus syscall.WaitStatus

	// InCall toggles on every syscall-stop observation: false means the
	// next stop is an entry phase, true means it's an exit phase for the
	// syscall most recently entered.
	InCall bool

	// Counter counts syscall-stop observations, for diagnostics.
	Counter int

	// ExitStatus is the synthesized final supervisor exit code (§4.7).
	ExitStatus int
}

// NewProgram constructs a Program from already-bound arguments, a
// populated limit table, and a fresh syscall registry. TraceEnabled
// defaults to false; the caller sets it from the policy loader's result.
func NewProgram(childArgv []string, limits *linux.LimitTable, registry *linux.Registry) *Program {
	return &Program{
		ChildArgv: childArgv,
		Limits:    limits,
		Registry:  registry,
	}
}
