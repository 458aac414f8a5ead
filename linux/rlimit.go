// Package linux provides the static kernel-facing registries nurse consults
// at startup: resource limits, syscall numbers, and signals.
package linux

import "golang.org/x/sys/unix"

// LimitEntry is a single resource-limit slot: a symbolic name, the kernel
// resource id it maps to, whether the invocation activated it, and the
// soft/hard pair to apply when active.
type LimitEntry struct {
	Name     string
	Resource int
	Active   bool
	Soft     uint64
	Hard     uint64
}

// LimitTable is the Resource-Limit Table. It is declared once per invocation
// from the fixed set below and mutated only by the argument binder, before
// the child is forked; the tracer engine never touches it.
type LimitTable struct {
	entries []LimitEntry
}

// NewLimitTable returns a fresh table with every known resource present and
// inactive.
func NewLimitTable() *LimitTable {
	t := &LimitTable{entries: make([]LimitEntry, len(limitNames))}
	for i, name := range limitNames {
		t.entries[i] = LimitEntry{Name: name, Resource: limitResources[name]}
	}
	return t
}

// limitNames fixes iteration order; limitResources holds the name-to-id map.
// Names come from §6: AS, CORE, CPU, DATA, FSIZE, LOCKS, MEMLOCK, NOFILE,
// NPROC, RSS, STACK.
var limitNames = []string{
	"AS", "CORE", "CPU", "DATA", "FSIZE", "LOCKS", "MEMLOCK",
	"NOFILE", "NPROC", "RSS", "STACK",
}

var limitResources = map[string]int{
	"AS":      unix.RLIMIT_AS,
	"CORE":    unix.RLIMIT_CORE,
	"CPU":     unix.RLIMIT_CPU,
	"DATA":    unix.RLIMIT_DATA,
	"FSIZE":   unix.RLIMIT_FSIZE,
	"LOCKS":   unix.RLIMIT_LOCKS,
	"MEMLOCK": unix.RLIMIT_MEMLOCK,
	"NOFILE":  unix.RLIMIT_NOFILE,
	"NPROC":   unix.RLIMIT_NPROC,
	"RSS":     unix.RLIMIT_RSS,
	"STACK":   unix.RLIMIT_STACK,
}

// Activate marks name active with the given soft/hard values. It reports
// whether name was recognized; unrecognized names are a no-op so the
// argument binder can silently ignore malformed limit groups per §4.1.
func (t *LimitTable) Activate(name string, soft, hard uint64) bool {
	for i := range t.entries {
		if t.entries[i].Name == name {
			t.entries[i].Active = true
			t.entries[i].Soft = soft
			t.entries[i].Hard = hard
			return true
		}
	}
	return false
}

// Active returns every activated entry, in table order.
func (t *LimitTable) Active() []LimitEntry {
	var out []LimitEntry
	for _, e := range t.entries {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

// Apply pushes every active entry to the process identified by pid via
// prlimit64. It is called by the Child Bootstrapper adaptation (§4.3) from
// the supervisor side, targeting the traced child while it is still halted
// at its post-exec trap and before the target image has run any code of its
// own — see SPEC_FULL.md §4.3 for why this replaces the original in-child
// setrlimit call.
func (t *LimitTable) Apply(pid int) error {
	for _, e := range t.entries {
		if !e.Active {
			continue
		}
		rlim := unix.Rlimit{Cur: e.Soft, Max: e.Hard}
		if err := unix.Prlimit(pid, e.Resource, &rlim, nil); err != nil {
			return err
		}
	}
	return nil
}
