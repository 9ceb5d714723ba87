package compiler

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]" +
	">>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func TestCompile_HelloWorld(t *testing.T) {
	lines, err := Compile(helloWorld, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if lines[0] != "global _start" {
		t.Errorf("first line = %q, want the entry declaration", lines[0])
	}

	defRe := regexp.MustCompile(`^(LP\d+):$`)
	refRe := regexp.MustCompile(`^\s+(?:je|jmp) (LP\d+)$`)
	defs := make(map[string]int)
	refs := make(map[string]int)
	for _, line := range lines {
		if m := defRe.FindStringSubmatch(line); m != nil {
			defs[m[1]]++
		}
		if m := refRe.FindStringSubmatch(line); m != nil {
			refs[m[1]]++
		}
	}

	// Three loops, one label per bracket.
	if len(defs) != 6 {
		t.Errorf("defined %d labels, want 6", len(defs))
	}
	if !reflect.DeepEqual(defs, refs) {
		t.Errorf("label definitions %v do not match references %v", defs, refs)
	}

	code := strings.Join(lines, "\n")
	assertContains(t, code, "; write")
	if strings.Contains(code, "; read") {
		t.Errorf("hello world does not read input, but a read block was emitted")
	}
}

func TestCompile_Cat(t *testing.T) {
	lines, err := Compile(",[.,]", DefaultOptions())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	code := strings.Join(lines, "\n")

	assertContains(t, code, "; read")
	assertContains(t, code, "; write")
	assertContains(t, code, "LP1:")
	assertContains(t, code, "je LP4")
	assertContains(t, code, "jmp LP1")
	assertContains(t, code, "LP4:")
}

func TestCompile_Deterministic(t *testing.T) {
	first, err := Compile(helloWorld, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	second, err := Compile(helloWorld, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two compilations of the same source differ")
	}
}

func TestCompile_LoopMismatch(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "Dangling Close", input: "]", wantErr: ErrUnmatchedLoopEnd},
		{name: "Dangling Open", input: "[unclosed", wantErr: ErrUnmatchedLoopStart},
		{name: "Deep Dangling Open", input: "+[>[-]<", wantErr: ErrUnmatchedLoopStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Compile(tt.input, DefaultOptions())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile() error = %v, want %v", err, tt.wantErr)
			}
			if lines != nil {
				t.Errorf("Compile() emitted code for a malformed program")
			}
		})
	}
}

func TestCompile_BoundsCheckedBuild(t *testing.T) {
	src := ">><<"
	lines, err := Compile(src, Options{TapeSize: 1024, BoundsCheck: true})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	code := strings.Join(lines, "\n")

	if got := strings.Count(code, "jae oob"); got != 4 {
		t.Errorf("emitted %d pointer checks, want one per move (4)", got)
	}
	assertContains(t, code, "cmp r9, 1024")
	assertContains(t, code, "oob:")
}
