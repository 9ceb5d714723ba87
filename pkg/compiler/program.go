package compiler

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmatchedLoopEnd reports a ']' with no '[' still open before it.
	ErrUnmatchedLoopEnd = errors.New("unmatched ']'")

	// ErrUnmatchedLoopStart reports a '[' still open at end of input.
	ErrUnmatchedLoopStart = errors.New("unmatched '['")
)

// LoopMismatchError pinpoints the instruction that broke loop nesting. It
// wraps ErrUnmatchedLoopEnd or ErrUnmatchedLoopStart, so callers can tell
// the two cases apart with errors.Is.
type LoopMismatchError struct {
	Index int // index of the offending instruction
	Err   error
}

func (e *LoopMismatchError) Error() string {
	return fmt.Sprintf("instruction %d: %v", e.Index, e.Err)
}

func (e *LoopMismatchError) Unwrap() error { return e.Err }

// Command is one executable step of a Program: an Instruction plus, for the
// two loop brackets, the index of the matching bracket's Command.
type Command struct {
	Inst   Instruction
	JumpTo int // meaningful only for LOOP_START and LOOP_END, zero otherwise
}

// Program is a fully resolved instruction sequence. A Command's index in
// the Program is its jump target number; the code generator derives labels
// from it.
type Program []Command

// BuildProgram resolves loop brackets into jump targets in a single
// forward pass, pairing each LOOP_END with the most recently opened
// LOOP_START and writing both directions of the jump at the moment the
// pair closes.
//
// A ']' with nothing open, or a '[' still open at end of input, aborts
// with a *LoopMismatchError and no partial Program.
func BuildProgram(insts []Instruction) (Program, error) {
	prog := make(Program, 0, len(insts))
	var open []int // indexes of LOOP_STARTs awaiting their LOOP_END

	for i, inst := range insts {
		cmd := Command{Inst: inst}
		switch inst {
		case LOOP_START:
			open = append(open, i)
		case LOOP_END:
			if len(open) == 0 {
				return nil, &LoopMismatchError{Index: i, Err: ErrUnmatchedLoopEnd}
			}
			j := open[len(open)-1]
			open = open[:len(open)-1]
			cmd.JumpTo = j
			prog[j].JumpTo = i
		}
		prog = append(prog, cmd)
	}

	if len(open) > 0 {
		// Report the innermost one; any others are unmatched too.
		return nil, &LoopMismatchError{Index: open[len(open)-1], Err: ErrUnmatchedLoopStart}
	}
	return prog, nil
}
