package supervisor

import (
	"fmt"
	"syscall"

	"nurse/linux"
)

// Outcome is the Exit Reporter's classification of a child's final waited
// status (§4.7): exactly one of exited, signaled, or stopped.
type Outcome struct {
	Kind   string // "exited", "signaled", "stopped", "unknown"
	Code   int    // valid when Kind == "exited"
	Signal int    // valid when Kind == "signaled" or "stopped"
}

// Classify maps a final syscall.WaitStatus into an Outcome.
func Classify(status syscall.WaitStatus) Outcome {
	switch {
	case status.Exited():
		return Outcome{Kind: "exited", Code: status.ExitStatus()}
	case status.Signaled():
		return Outcome{Kind: "signaled", Signal: int(status.Signal())}
	case status.Stopped():
		return Outcome{Kind: "stopped", Signal: int(status.StopSignal())}
	default:
		return Outcome{Kind: "unknown"}
	}
}

// Describe renders a human diagnostic for the outcome, using the Signal
// Catalog for signaled/stopped cases.
func (o Outcome) Describe() string {
	switch o.Kind {
	case "exited":
		return fmt.Sprintf("child exited with code %d", o.Code)
	case "signaled":
		return fmt.Sprintf("child signaled: %s (%s)", linux.SignalName(o.Signal), linux.SignalDiagnostic(o.Signal))
	case "stopped":
		return fmt.Sprintf("child stopped: %s (%s)", linux.SignalName(o.Signal), linux.SignalDiagnostic(o.Signal))
	default:
		return "child in unrecognized wait state"
	}
}

// SupervisorExitCode synthesizes the supervisor's own exit code from this
// outcome (§4.7). In normal mode the supervisor always exits 0 after
// logging. In propagate-child-failure mode it exits 0 only if the child
// exited normally with code 0.
func (o Outcome) SupervisorExitCode(reportChildFailure bool) int {
	if !reportChildFailure {
		return 0
	}
	if o.Kind == "exited" && o.Code == 0 {
		return 0
	}
	return 1
}
