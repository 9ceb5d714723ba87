package compiler

import (
	"fmt"
	"strconv"

	"gobf/pkg/target"
)

// Options control code generation.
type Options struct {
	// TapeSize is the tape length in bytes. Zero or negative means
	// target.DefaultTapeSize.
	TapeSize int

	// BoundsCheck emits a range check after every pointer move that traps
	// to a diagnostic-and-exit stub instead of running off the tape. Off
	// by default: the reference behavior leaves out-of-range moves
	// undefined.
	BoundsCheck bool
}

// DefaultOptions is the classic configuration: a 30000-byte tape and no
// runtime checks.
func DefaultOptions() Options {
	return Options{TapeSize: target.DefaultTapeSize}
}

// Labels reserved by the generator. labelFor only ever produces "LP"
// followed by digits, so these cannot collide.
const (
	oobLabel    = "oob"
	oobMsgLabel = "oobmsg"
	oobLenLabel = "oobmsglen"
)

// labelFor names the jump label for the Command at index i. Labels are a
// pure function of the index, so regenerating the same Program yields
// identical text.
func labelFor(i int) string {
	return "LP" + strconv.Itoa(i)
}

// CodeGen emits NASM x86-64 assembly for a resolved Program.
type CodeGen struct {
	opts  Options
	lines []string
}

func NewCodeGen(opts Options) *CodeGen {
	if opts.TapeSize <= 0 {
		opts.TapeSize = target.DefaultTapeSize
	}
	return &CodeGen{opts: opts}
}

func Generate(prog Program, opts Options) []string {
	return NewCodeGen(opts).Generate(prog)
}

// Generate translates prog into complete assembly source, one line per
// element. Each call starts fresh, so a CodeGen can be reused.
func (cg *CodeGen) Generate(prog Program) []string {
	cg.lines = nil

	cg.prologue()
	for i, cmd := range prog {
		cg.command(i, cmd)
	}
	cg.epilogue()
	if cg.opts.BoundsCheck {
		cg.oobTrap()
	}

	return cg.lines
}

func (cg *CodeGen) line(format string, args ...any) {
	cg.lines = append(cg.lines, fmt.Sprintf(format, args...))
}

func (cg *CodeGen) comment(format string, args ...any) {
	cg.line("; "+format, args...)
}

// command emits the translation of a single Command. Every Command maps to
// a fixed instruction template; the input order is the output order.
func (cg *CodeGen) command(i int, cmd Command) {
	switch cmd.Inst {
	case RIGHT:
		cg.line("    inc %s", target.PtrReg)
		cg.rangeCheck()
	case LEFT:
		cg.line("    dec %s", target.PtrReg)
		cg.rangeCheck()
	case PLUS:
		cg.line("    inc %s", target.Cell())
	case MINUS:
		cg.line("    dec %s", target.Cell())
	case PUT:
		cg.put()
	case GET:
		cg.get()
	case LOOP_START:
		cg.line("%s:", labelFor(i))
		cg.line("    cmp %s, 0", target.Cell())
		cg.line("    je %s", labelFor(cmd.JumpTo))
	case LOOP_END:
		cg.line("    jmp %s", labelFor(cmd.JumpTo))
		cg.line("%s:", labelFor(i))
	}
}

// rangeCheck guards the tape pointer after a move. One unsigned compare
// covers both directions: a decrement below zero wraps far past any tape
// size.
func (cg *CodeGen) rangeCheck() {
	if !cg.opts.BoundsCheck {
		return
	}
	cg.line("    cmp %s, %d", target.PtrReg, cg.opts.TapeSize)
	cg.line("    jae %s", oobLabel)
}

// put writes the current cell to stdout through the staging byte.
func (cg *CodeGen) put() {
	cg.line("    mov al, %s", target.Cell())
	cg.line("    mov [%s], al", target.IOBuf)
	cg.line("    mov rax, %d          ; write", target.SysWrite)
	cg.line("    mov rdi, %d          ; stdout", target.Stdout)
	cg.line("    mov rsi, %s", target.IOBuf)
	cg.line("    mov rdx, 1")
	cg.line("    syscall")
}

// get reads one byte from stdin into the current cell. On end of input the
// read syscall returns without touching the staging byte, so the cell
// receives whatever was read last.
func (cg *CodeGen) get() {
	cg.line("    mov rax, %d          ; read", target.SysRead)
	cg.line("    mov rdi, %d          ; stdin", target.Stdin)
	cg.line("    mov rsi, %s", target.IOBuf)
	cg.line("    mov rdx, 1")
	cg.line("    syscall")
	cg.line("    mov al, [%s]", target.IOBuf)
	cg.line("    mov %s, al", target.Cell())
}

func (cg *CodeGen) prologue() {
	cg.line("global _start")
	cg.line("")
	cg.line("section .bss")
	cg.line("%s: resb 1", target.IOBuf)
	cg.line("")
	cg.line("section .text")
	cg.line("_start:")
	cg.comment("map the tape")
	cg.line("    mov rax, %d          ; mmap", target.SysMmap)
	cg.line("    xor rdi, rdi         ; addr: kernel chooses")
	cg.line("    mov rsi, %d", cg.opts.TapeSize)
	cg.line("    mov rdx, %d          ; PROT_READ|PROT_WRITE", target.ProtReadWrite)
	cg.line("    mov r10, %d         ; MAP_PRIVATE|MAP_ANONYMOUS", target.MapPrivateAnon)
	cg.line("    mov %s, -1           ; no backing file", target.BaseReg)
	cg.line("    xor %s, %s           ; offset 0", target.PtrReg, target.PtrReg)
	cg.line("    syscall")
	cg.line("    mov %s, rax          ; tape base", target.BaseReg)
	cg.line("    xor %s, %s           ; tape pointer", target.PtrReg, target.PtrReg)
}

func (cg *CodeGen) epilogue() {
	cg.comment("release the tape and exit")
	cg.line("    mov rax, %d         ; munmap", target.SysMunmap)
	cg.line("    mov rdi, %s", target.BaseReg)
	cg.line("    mov rsi, %d", cg.opts.TapeSize)
	cg.line("    syscall")
	cg.line("    mov rax, %d         ; exit", target.SysExit)
	cg.line("    xor rdi, rdi")
	cg.line("    syscall")
}

// oobTrap is the shared landing site for failed range checks: report on
// stderr, exit 1.
func (cg *CodeGen) oobTrap() {
	cg.line("")
	cg.line("%s:", oobLabel)
	cg.line("    mov rax, %d          ; write", target.SysWrite)
	cg.line("    mov rdi, %d          ; stderr", target.Stderr)
	cg.line("    mov rsi, %s", oobMsgLabel)
	cg.line("    mov rdx, %s", oobLenLabel)
	cg.line("    syscall")
	cg.line("    mov rax, %d         ; exit", target.SysExit)
	cg.line("    mov rdi, 1")
	cg.line("    syscall")
	cg.line("")
	cg.line("section .data")
	cg.line("%s: db \"tape pointer out of range\", 10", oobMsgLabel)
	cg.line("%s equ $ - %s", oobLenLabel, oobMsgLabel)
}
