package compiler

// symbols maps a source character to its Instruction.
var symbols = map[byte]Instruction{
	'>': RIGHT,
	'<': LEFT,
	'+': PLUS,
	'-': MINUS,
	'.': PUT,
	',': GET,
	'[': LOOP_START,
	']': LOOP_END,
}

// Lex scans src and returns its instructions in source order. Any character
// that is not one of the eight instruction symbols is a comment and is
// skipped, so Lex cannot fail; unbalanced loops are only detectable later,
// by BuildProgram.
func Lex(src string) []Instruction {
	var insts []Instruction
	for i := 0; i < len(src); i++ {
		if inst, ok := symbols[src[i]]; ok {
			insts = append(insts, inst)
		}
	}
	return insts
}
