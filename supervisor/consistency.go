package supervisor

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"nurse/errors"
	"nurse/linux"
)

// CheckConsistency runs the Startup Consistency Check (§4.8) before any
// other work: every populated syscall registry entry's stored number must
// equal its index.
func CheckConsistency(reg *linux.Registry) error {
	if err := reg.CheckConsistency(); err != nil {
		return errors.ErrRegistryMisindexed.WithErr(err)
	}
	return nil
}

var teardownMu sync.Mutex

// InstallTeardownHook registers the best-effort kill-on-exit hook (§4.8,
// §9): on SIGINT or SIGTERM delivered to the supervisor, it sends SIGKILL
// to pid before the supervisor itself terminates. It returns a cancel
// function the caller must invoke once the tracer loop finishes normally,
// so the hook doesn't fire after the child is already gone.
//
// This is explicitly acknowledged as unreliable (§9): it does nothing for
// SIGKILL delivered to the supervisor, nor for a panic that unwinds past
// any deferred cancel. A pid <= 0 is the one precondition this function
// actually validates, returning errors.ErrTeardownRegistration — the
// supervisor's only signal that this hook could not be installed at all.
func InstallTeardownHook(pid int) (cancel func(), err error) {
	if pid <= 0 {
		return nil, errors.ErrTeardownRegistration
	}

	teardownMu.Lock()
	defer teardownMu.Unlock()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigCh:
			syscall.Kill(pid, syscall.SIGKILL)
			os.Exit(1)
		case <-done:
		}
	}()

	return func() {
		close(done)
		signal.Stop(sigCh)
	}, nil
}
