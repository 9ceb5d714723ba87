// Package toolchain turns generated assembly text into an executable by
// driving an external assembler and linker.
package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/tebeka/atexit"
)

// Config names the external tools and controls intermediate artifacts.
type Config struct {
	Assembler string // assembler command, must accept nasm-style flags
	Linker    string // linker command, must accept ld-style flags
	KeepTemps bool   // keep the .s and .o files next to the output
}

// DefaultConfig targets the stock nasm and GNU ld.
func DefaultConfig() Config {
	return Config{Assembler: "nasm", Linker: "ld"}
}

// AsmPath names the assembly file for a given output binary. Intermediates
// sit next to the output so a kept build is easy to inspect.
func AsmPath(outPath string) string { return outPath + ".s" }

// ObjPath names the object file for a given output binary.
func ObjPath(outPath string) string { return outPath + ".o" }

// BuildArtifacts lists every path a build writing outPath creates: the
// output itself and both intermediates. Drivers use it to refuse builds
// whose artifacts would land on the source file.
func BuildArtifacts(outPath string) []string {
	return []string{outPath, AsmPath(outPath), ObjPath(outPath)}
}

// WriteAsmFile writes the assembly lines to path, one per line, with a
// trailing newline.
func WriteAsmFile(lines []string, path string) error {
	text := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing assembly: %w", err)
	}
	return nil
}

// Builder runs the assemble-and-link stage for one output binary.
type Builder struct {
	cfg Config
}

func NewBuilder(cfg Config) *Builder {
	if cfg.Assembler == "" {
		cfg.Assembler = "nasm"
	}
	if cfg.Linker == "" {
		cfg.Linker = "ld"
	}
	return &Builder{cfg: cfg}
}

func Build(lines []string, outPath string, cfg Config) error {
	return NewBuilder(cfg).Build(lines, outPath)
}

// Build writes the assembly next to outPath, assembles and links it, and
// removes the intermediates. Removal is also registered as an exit handler
// so an early atexit.Exit elsewhere in the process still cleans up.
func (b *Builder) Build(lines []string, outPath string) error {
	asmPath := AsmPath(outPath)
	objPath := ObjPath(outPath)

	if err := WriteAsmFile(lines, asmPath); err != nil {
		return err
	}
	if !b.cfg.KeepTemps {
		atexit.Register(func() {
			os.Remove(asmPath)
			os.Remove(objPath)
		})
	}

	if err := run(b.cfg.Assembler, assembleArgs(asmPath, objPath)); err != nil {
		return err
	}
	if err := run(b.cfg.Linker, linkArgs(objPath, outPath)); err != nil {
		return err
	}

	if !b.cfg.KeepTemps {
		os.Remove(asmPath)
		os.Remove(objPath)
	}
	return nil
}

func assembleArgs(asmPath, objPath string) []string {
	return []string{"-f", "elf64", "-o", objPath, asmPath}
}

func linkArgs(objPath, outPath string) []string {
	return []string{"-o", outPath, objPath}
}

// run executes one external tool, folding its output into the error when
// it fails.
func run(tool string, args []string) error {
	out, err := exec.Command(tool, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", tool, err, msg)
		}
		return fmt.Errorf("%s: %w", tool, err)
	}
	return nil
}
