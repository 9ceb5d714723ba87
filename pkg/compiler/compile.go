package compiler

// Compile runs the full pipeline over src and returns the generated
// assembly lines. The only possible failure is a loop mismatch from
// BuildProgram.
func Compile(src string, opts Options) ([]string, error) {
	prog, err := BuildProgram(Lex(src))
	if err != nil {
		return nil, err
	}
	return Generate(prog, opts), nil
}
