// Command bytevmdump prints the parse tree and/or compiled program for a
// pattern, and optionally runs it against an input string. It is a
// read-only inspection tool: it never writes anything back to the
// pattern or input it is given.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/coregx/bytevm/ast"
	"github.com/coregx/bytevm/compile"
	"github.com/coregx/bytevm/vm"
)

type args struct {
	pattern *string
	input   *string

	astOnly bool
	asmOnly bool
}

func readArgs() *args {
	a := &args{
		pattern: flag.String("pattern", "", "Pattern to parse and compile"),
		input:   flag.String("input", "", "Optional input to match the pattern against"),
	}

	flag.BoolVar(&a.astOnly, "ast-only", false, "Print only the parse tree")
	flag.BoolVar(&a.asmOnly, "asm-only", false, "Print only the compiled program")

	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	if *a.pattern == "" {
		log.Fatal("bytevmdump: -pattern is required")
	}

	root, err := ast.Parse(*a.pattern)
	if err != nil {
		log.Fatalf("bytevmdump: %v", err)
	}

	if !a.asmOnly {
		fmt.Println("AST:")
		fmt.Print(ast.Dump(root))
	}

	prog, err := compile.Compile(root)
	if err != nil {
		log.Fatalf("bytevmdump: %v", err)
	}

	if !a.astOnly {
		fmt.Println("\nProgram:")
		fmt.Print(prog.Disassemble())
	}

	if a.astOnly || a.asmOnly {
		return
	}

	if *a.input == "" {
		return
	}

	captures := make([]int, 2*prog.NumCaptures)
	matched := vm.Run(prog, *a.input, captures)

	fmt.Println()
	if !matched {
		fmt.Println("no match")
		return
	}

	fmt.Printf("match: %q\n", (*a.input)[captures[0]:captures[1]])
	for i := 1; i < prog.NumCaptures; i++ {
		lo, hi := captures[2*i], captures[2*i+1]
		if lo < 0 {
			fmt.Printf("group %d: <no match>\n", i)
			continue
		}
		fmt.Printf("group %d: %q\n", i, (*a.input)[lo:hi])
	}
}
