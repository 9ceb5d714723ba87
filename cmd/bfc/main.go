package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"gobf/pkg/compiler"
	"gobf/pkg/target"
	"gobf/pkg/toolchain"
	"gobf/pkg/utils"
)

var (
	outPath     string
	emitAsm     bool
	keepTemps   bool
	tapeSize    int
	boundsCheck bool
	assembler   string
	linker      string
)

var rootCmd = &cobra.Command{
	Use:   "bfc sourceFile",
	Short: "Brainfuck compiler for x86-64 Linux",
	Long: `Bfc compiles a Brainfuck source file to a standalone Linux executable.

The compiler emits NASM syntax x86-64 assembly that talks to the kernel
directly and hands it to an external assembler and linker (nasm and ld by
default). Pass -S to stop after code generation and keep only the .s file.
`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return build(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "", "output path (default: source path without its extension)")
	rootCmd.Flags().BoolVarP(&emitAsm, "emit-asm", "S", false, "write the generated .s file and stop")
	rootCmd.Flags().BoolVarP(&keepTemps, "keep-temps", "k", false, "keep the intermediate .s and .o files")
	rootCmd.Flags().IntVar(&tapeSize, "tape-size", target.DefaultTapeSize, "tape length in bytes")
	rootCmd.Flags().BoolVar(&boundsCheck, "bounds-check", false, "compile in runtime tape pointer checks")
	rootCmd.Flags().StringVar(&assembler, "assembler", "nasm", "assembler command")
	rootCmd.Flags().StringVar(&linker, "linker", "ld", "linker command")
}

func build(srcPath string) error {
	src, err := readSource(srcPath)
	if err != nil {
		return err
	}

	lines, err := compiler.Compile(src, compiler.Options{
		TapeSize:    tapeSize,
		BoundsCheck: boundsCheck,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", srcPath, err)
	}

	out := outPath
	if out == "" {
		out = utils.OutputName(srcPath)
	}
	clash, err := sourceCollision(out, srcPath)
	if err != nil {
		return err
	}
	if clash != "" {
		return fmt.Errorf("%s: building %s would overwrite the source; choose a different output with -o", srcPath, clash)
	}

	if emitAsm {
		return toolchain.WriteAsmFile(lines, toolchain.AsmPath(out))
	}

	return toolchain.Build(lines, out, toolchain.Config{
		Assembler: assembler,
		Linker:    linker,
		KeepTemps: keepTemps,
	})
}

// sourceCollision returns the build artifact that would overwrite the
// source file, or "" when the build leaves it alone. Paths are resolved
// before comparing so relative and absolute spellings of the same file
// still collide.
func sourceCollision(out, srcPath string) (string, error) {
	srcAbs, err := utils.Resolve(srcPath)
	if err != nil {
		return "", err
	}
	for _, p := range toolchain.BuildArtifacts(out) {
		abs, err := utils.Resolve(p)
		if err != nil {
			return "", err
		}
		if abs == srcAbs {
			return p, nil
		}
	}
	return "", nil
}

func readSource(srcPath string) (string, error) {
	fullPath, err := utils.Resolve(srcPath)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
