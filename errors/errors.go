// Package errors provides typed error handling for nurse.
//
// This package defines domain-specific error types that enable better error
// classification, debugging, and user feedback. All errors support the
// standard errors.Is() and errors.As() functions for error inspection.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of an error, per SPEC_FULL.md §7.
type ErrorKind int

const (
	// ErrUsage indicates a malformed command line.
	ErrUsage ErrorKind = iota
	// ErrConsistency indicates the syscall registry was misindexed at startup.
	ErrConsistency
	// ErrSetup indicates resource-limit application failed for the child.
	ErrSetup
	// ErrPolicyMissing indicates the policy file could not be opened; tracing
	// is disabled for the run but this is not fatal.
	ErrPolicyMissing
	// ErrExec indicates the target executable could not be launched.
	ErrExec
	// ErrTracerIO indicates a ptrace peek or getregs call failed.
	ErrTracerIO
	// ErrViolation indicates the child exceeded a configured syscall maximum.
	ErrViolation
	// ErrTeardownHook indicates the best-effort kill-on-exit hook failed to
	// register.
	ErrTeardownHook
	// ErrInternal indicates an error with no more specific classification.
	ErrInternal
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrUsage:
		return "usage error"
	case ErrConsistency:
		return "consistency error"
	case ErrSetup:
		return "setup error"
	case ErrPolicyMissing:
		return "policy file missing"
	case ErrExec:
		return "exec failure"
	case ErrTracerIO:
		return "tracer I/O error"
	case ErrViolation:
		return "policy violation"
	case ErrTeardownHook:
		return "teardown hook registration failed"
	case ErrInternal:
		return "internal error"
	default:
		return "unknown error"
	}
}

// ExitCode maps an error kind to the supervisor exit code it produces, per
// SPEC_FULL.md §6. Kinds with no dedicated code (policy-file-missing is
// recoverable and never reaches main; violations drain to the exit
// reporter instead) fall back to EXIT_FAILURE.
func (k ErrorKind) ExitCode() int {
	switch k {
	case ErrConsistency:
		return 38
	case ErrTeardownHook:
		return 39
	default:
		return 1
	}
}

// NurseError represents an error raised by a nurse component.
type NurseError struct {
	// Op is the operation that failed (e.g., "bind-args", "apply-limits").
	Op string
	// Err is the underlying error.
	Err error
	// Kind is the error classification.
	Kind ErrorKind
	// Detail provides additional context about the error.
	Detail string
	// Code overrides Kind.ExitCode() when non-zero. Used for the handful
	// of sentinels that carry a specific exit code not implied by their
	// Kind (the syscall-number-zero sentinel exits 69, not 1).
	Code int
}

// ExitCode returns Code if set, otherwise Kind.ExitCode().
func (e *NurseError) ExitCode() int {
	if e.Code != 0 {
		return e.Code
	}
	return e.Kind.ExitCode()
}

// WithErr returns a copy of a sentinel error with err attached as the
// underlying cause, so a call site can report a concrete failure while
// keeping the sentinel's Kind, Detail, and Code intact.
func (e *NurseError) WithErr(err error) *NurseError {
	c := *e
	c.Err = err
	return &c
}

// WithDetail returns a copy of a sentinel error with Detail replaced, for
// call sites that need to attach dynamic context (such as a path) to an
// otherwise-static sentinel.
func (e *NurseError) WithDetail(detail string) *NurseError {
	c := *e
	c.Detail = detail
	return &c
}

// Error returns the error message.
func (e *NurseError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var msg string
	if e.Op != "" {
		msg = fmt.Sprintf("%s: ", e.Op)
	}
	if e.Detail != "" {
		msg += e.Detail
	} else {
		msg += e.Kind.String()
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *NurseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether the error matches the target.
// It matches if the target is a *NurseError with the same Kind; matching
// against the underlying error is left to errors.Is, which follows Unwrap.
func (e *NurseError) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	if t, ok := target.(*NurseError); ok {
		return e.Kind == t.Kind
	}
	return false
}

// New creates a new NurseError with the given kind.
func New(kind ErrorKind, op string, detail string) *NurseError {
	return &NurseError{
		Op:     op,
		Kind:   kind,
		Detail: detail,
	}
}

// Wrap wraps an error with operation context.
func Wrap(err error, kind ErrorKind, op string) *NurseError {
	return &NurseError{
		Op:   op,
		Err:  err,
		Kind: kind,
	}
}

// WrapWithDetail wraps an error with additional detail.
func WrapWithDetail(err error, kind ErrorKind, op string, detail string) *NurseError {
	return &NurseError{
		Op:     op,
		Err:    err,
		Kind:   kind,
		Detail: detail,
	}
}

// IsKind checks if an error is of a specific kind.
func IsKind(err error, kind ErrorKind) bool {
	var nerr *NurseError
	if errors.As(err, &nerr) {
		return nerr.Kind == kind
	}
	return false
}

// GetKind returns the error kind if the error is a NurseError.
func GetKind(err error) (ErrorKind, bool) {
	var nerr *NurseError
	if errors.As(err, &nerr) {
		return nerr.Kind, true
	}
	return 0, false
}

// ExitCodeFor returns the supervisor exit code implied by err: the
// NurseError's own ExitCode() if err carries one in its chain, otherwise
// 1 for any other non-nil error, or 0 for a nil error.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var nerr *NurseError
	if errors.As(err, &nerr) {
		return nerr.ExitCode()
	}
	return 1
}

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)
