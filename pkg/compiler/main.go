// Package compiler translates Brainfuck source into x86-64 assembly text
// for NASM on Linux.
//
// Pipeline: Brainfuck source → Lex → BuildProgram → Generate → assembly text
package compiler
