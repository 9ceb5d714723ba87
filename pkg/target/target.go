// Package target fixes the machine model the generated code runs on:
// x86-64 Linux, NASM syntax, raw syscalls with no libc.
package target

// Register roles. The tape pointer is a byte offset into the tape, not an
// address, so every cell access goes through base plus offset.
const (
	BaseReg = "r8" // tape base address, the mmap return value
	PtrReg  = "r9" // tape pointer, a byte offset from BaseReg
)

// IOBuf is the one-byte staging area shared by the read and write
// syscalls, reserved in .bss.
const IOBuf = "iobuf"

// DefaultTapeSize is the classic 30000-byte tape.
const DefaultTapeSize = 30000

// Linux x86-64 syscall numbers.
const (
	SysRead   = 0
	SysWrite  = 1
	SysMmap   = 9
	SysMunmap = 11
	SysExit   = 60
)

// Standard file descriptors.
const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

// mmap arguments for an anonymous private read-write mapping.
const (
	ProtReadWrite  = 0x3  // PROT_READ | PROT_WRITE
	MapPrivateAnon = 0x22 // MAP_PRIVATE | MAP_ANONYMOUS
)

// Cell is the operand for the byte under the tape pointer.
func Cell() string {
	return "byte [" + BaseReg + " + " + PtrReg + "]"
}
