package main

import (
	"fmt"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"gobf/pkg/compiler"
)

// dumpCmd shows the two front-end stages for a source file: the lexed
// instruction stream and the jump-resolved program.
var dumpCmd = &cobra.Command{
	Use:          "dump sourceFile",
	Short:        "Show the lexed instructions and resolved loop targets",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dump(args[0])
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func dump(srcPath string) error {
	src, err := readSource(srcPath)
	if err != nil {
		return err
	}

	insts := compiler.Lex(src)
	fmt.Printf("Instructions (%d)\n", len(insts))
	for i, inst := range insts {
		fmt.Printf("  %4d  %-10s %c\n", i, inst, inst.Symbol())
	}
	fmt.Println()

	prog, err := compiler.BuildProgram(insts)
	if err != nil {
		return fmt.Errorf("%s: %w", srcPath, err)
	}
	pp.Println(prog)
	return nil
}
