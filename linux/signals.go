package linux

import "syscall"

// SignalEntry is a single Signal Catalog slot: a read-only mapping from a
// signal number to its symbolic name and a short human diagnostic.
type SignalEntry struct {
	Number     int
	Name       string
	Diagnostic string
}

// signalCatalog is the Signal Catalog (SC), fixed at startup and never
// mutated. Numbers follow the Linux x86_64 signal numbering.
var signalCatalog = []SignalEntry{
	{int(syscall.SIGHUP), "SIGHUP", "terminal hangup or controlling process died"},
	{int(syscall.SIGINT), "SIGINT", "interrupt from keyboard"},
	{int(syscall.SIGQUIT), "SIGQUIT", "quit from keyboard"},
	{int(syscall.SIGILL), "SIGILL", "illegal instruction"},
	{int(syscall.SIGTRAP), "SIGTRAP", "trace/breakpoint trap"},
	{int(syscall.SIGABRT), "SIGABRT", "abort"},
	{int(syscall.SIGBUS), "SIGBUS", "bus error, bad memory access"},
	{int(syscall.SIGFPE), "SIGFPE", "floating point exception"},
	{int(syscall.SIGKILL), "SIGKILL", "killed"},
	{int(syscall.SIGUSR1), "SIGUSR1", "user-defined signal 1"},
	{int(syscall.SIGSEGV), "SIGSEGV", "segmentation violation"},
	{int(syscall.SIGUSR2), "SIGUSR2", "user-defined signal 2"},
	{int(syscall.SIGPIPE), "SIGPIPE", "broken pipe"},
	{int(syscall.SIGALRM), "SIGALRM", "alarm clock"},
	{int(syscall.SIGTERM), "SIGTERM", "terminated"},
	{16, "SIGSTKFLT", "stack fault on coprocessor"},
	{int(syscall.SIGCHLD), "SIGCHLD", "child stopped or terminated"},
	{int(syscall.SIGCONT), "SIGCONT", "continued"},
	{int(syscall.SIGSTOP), "SIGSTOP", "stopped (signal)"},
	{int(syscall.SIGTSTP), "SIGTSTP", "stopped (terminal input)"},
	{int(syscall.SIGTTIN), "SIGTTIN", "stopped (terminal input)"},
	{int(syscall.SIGTTOU), "SIGTTOU", "stopped (terminal output)"},
	{int(syscall.SIGURG), "SIGURG", "urgent I/O condition"},
	{int(syscall.SIGXCPU), "SIGXCPU", "CPU time limit exceeded"},
	{int(syscall.SIGXFSZ), "SIGXFSZ", "file size limit exceeded"},
	{int(syscall.SIGVTALRM), "SIGVTALRM", "virtual alarm clock"},
	{int(syscall.SIGPROF), "SIGPROF", "profiling timer expired"},
	{int(syscall.SIGWINCH), "SIGWINCH", "window resize"},
	{int(syscall.SIGIO), "SIGIO", "I/O now possible"},
	{int(syscall.SIGPWR), "SIGPWR", "power failure"},
	{int(syscall.SIGSYS), "SIGSYS", "bad system call"},
}

// SignalDiagnostic returns a short human-readable description of signal
// number n, suitable for the Exit Reporter's "signaled" / "stopped"
// classifications. Unknown numbers get a generic fallback.
func SignalDiagnostic(n int) string {
	for _, e := range signalCatalog {
		if e.Number == n {
			return e.Diagnostic
		}
	}
	return "unrecognized signal"
}

// SignalName returns the symbolic name of signal number n, or "" if
// unknown.
func SignalName(n int) string {
	for _, e := range signalCatalog {
		if e.Number == n {
			return e.Name
		}
	}
	return ""
}
