package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/snsinfu/dpll-sat/pkg/dimacs"
	"github.com/snsinfu/dpll-sat/pkg/sat"
)

func main() {
	filePtr := flag.String("file", "", "Path to a DIMACS CNF file; if empty, the formula is read from the standard input")
	flag.Parse()

	input := os.Stdin
	if *filePtr != "" {
		file, err := os.Open(*filePtr)
		if err != nil {
			log.Fatalf("cannot open input file: %v", err)
		}
		defer file.Close()
		input = file
	}

	formula, err := dimacs.Decode(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	assignment, satisfiable := sat.CheckSat(formula)
	if !satisfiable {
		os.Exit(1)
	}

	fmt.Println(dimacs.FormatAssignment(assignment))
}
