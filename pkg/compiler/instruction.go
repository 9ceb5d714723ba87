package compiler

import "fmt"

// Instruction identifies one of the eight executable operations.
type Instruction int

const (
	RIGHT Instruction = iota // >  move the tape pointer right
	LEFT                     // <  move the tape pointer left
	PLUS                     // +  increment the current cell
	MINUS                    // -  decrement the current cell
	PUT                      // .  write the current cell to stdout
	GET                      // ,  read one byte from stdin into the cell
	LOOP_START               // [  jump past the matching ] if the cell is zero
	LOOP_END                 // ]  jump back to the matching [
)

// instructionNames is indexed by Instruction.
var instructionNames = [...]string{
	RIGHT:      "RIGHT",
	LEFT:       "LEFT",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	PUT:        "PUT",
	GET:        "GET",
	LOOP_START: "LOOP_START",
	LOOP_END:   "LOOP_END",
}

// instructionSymbols is indexed by Instruction.
var instructionSymbols = [...]byte{
	RIGHT:      '>',
	LEFT:       '<',
	PLUS:       '+',
	MINUS:      '-',
	PUT:        '.',
	GET:        ',',
	LOOP_START: '[',
	LOOP_END:   ']',
}

func (in Instruction) String() string {
	if int(in) >= 0 && int(in) < len(instructionNames) {
		return instructionNames[in]
	}
	return fmt.Sprintf("Instruction(%d)", int(in))
}

// Symbol returns the source character the instruction was lexed from.
func (in Instruction) Symbol() byte {
	if int(in) >= 0 && int(in) < len(instructionSymbols) {
		return instructionSymbols[in]
	}
	return '?'
}
