package compiler

import "testing"

// tightLoop is a minimal looping program used for benchmarking the fast path.
const tightLoop = "++[+-]."

// nestedLoops exercises deep nesting and every instruction.
const nestedLoops = "+[>+[>+[>+[-<],]<.-]<]>><<"

func BenchmarkLex_Tight(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if insts := Lex(tightLoop); len(insts) == 0 {
			b.Fatal("lexed nothing")
		}
	}
}

func BenchmarkLex_Hello(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if insts := Lex(helloWorld); len(insts) == 0 {
			b.Fatal("lexed nothing")
		}
	}
}

func BenchmarkBuildProgram_Nested(b *testing.B) {
	insts := Lex(nestedLoops)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BuildProgram(insts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_Hello(b *testing.B) {
	prog, err := BuildProgram(Lex(helloWorld))
	if err != nil {
		b.Fatal(err)
	}
	opts := DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if lines := Generate(prog, opts); len(lines) == 0 {
			b.Fatal("generated nothing")
		}
	}
}

func BenchmarkCompile_Tight(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(tightLoop, DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompile_Hello(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(helloWorld, DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
