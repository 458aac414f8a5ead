//go:build linux && amd64

package supervisor

import "syscall"

// Registers is the register-access capability SPEC_FULL.md §6/§9 asks for:
// it confines the ABI-specific layout (here, the x86_64 System V syscall
// convention) to this one file. Porting to another architecture means
// writing a sibling file with the same method set under a different build
// tag.
type Registers struct {
	raw syscall.PtraceRegs
}

// GetRegisters reads the general-purpose registers of the stopped process
// identified by pid.
func GetRegisters(pid int) (Registers, error) {
	var regs Registers
	err := syscall.PtraceGetRegs(pid, &regs.raw)
	return regs, err
}

// SyscallNumber returns the original syscall number for the current stop.
func (r Registers) SyscallNumber() int {
	return int(r.raw.Orig_rax)
}

// Arg returns argument register i (1-based, i in [1,3] per §3's
// syscall-stop record).
func (r Registers) Arg(i int) uintptr {
	switch i {
	case 1:
		return uintptr(r.raw.Rdi)
	case 2:
		return uintptr(r.raw.Rsi)
	case 3:
		return uintptr(r.raw.Rdx)
	default:
		return 0
	}
}

// ReturnValue returns the accumulator register, valid on exit-phase stops.
func (r Registers) ReturnValue() int64 {
	return int64(r.raw.Rax)
}
