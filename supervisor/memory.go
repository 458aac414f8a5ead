package supervisor

import (
	"syscall"
	"unsafe"
)

var wordSize = int(unsafe.Sizeof(uintptr(0)))

// ReadCString is the Child-Memory String Extractor (§4.5): it copies bytes
// from the traced child starting at addr, one machine word at a time via
// the tracer's peek primitive, stopping at the first zero byte or after
// max bytes. It reports truncated=true when max was reached without a
// terminator — the caller still gets a valid prefix, it has just lost the
// terminator, and should log a warning rather than treat this as failure.
// A non-nil error means the peek itself failed, which is fatal (§4.5): the
// tracee has vanished or the address is invalid.
func ReadCString(pid int, addr uintptr, max int) (data []byte, truncated bool, err error) {
	out := make([]byte, 0, max)
	word := make([]byte, wordSize)

	for len(out) < max {
		n, peekErr := syscall.PtracePeekData(pid, addr, word)
		if peekErr != nil {
			return nil, false, peekErr
		}
		if n <= 0 {
			return out, true, nil
		}
		for i := 0; i < n; i++ {
			if word[i] == 0 {
				return out, false, nil
			}
			out = append(out, word[i])
			if len(out) >= max {
				return out, true, nil
			}
		}
		addr += uintptr(n)
	}
	return out, true, nil
}
