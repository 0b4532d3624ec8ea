// SPDX-License-Identifier: MIT

// Command matcalc is a line-oriented matrix calculator.
//
// Usage:
//
//	matcalc [flags] [file ...]
//
// With no files it reads commands from standard input and, unless -q is
// given, prints a banner and a prompt. Type "help" for the command list.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/katalvlaran/linalg/calc"
	"github.com/katalvlaran/linalg/matrix"
)

var (
	eps     = flag.Float64("eps", matrix.Epsilon, "tolerance below which values count as zero")
	maxIter = flag.Int("maxiter", matrix.DefaultMaxIterations, "iteration cap for eigenvalues")
	quiet   = flag.Bool("q", false, "no banner and no prompt")
	prompt  = flag.String("prompt", calc.DefaultPrompt, "command prompt")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("matcalc: ")
	flag.Usage = usage
	flag.Parse()

	if math.IsNaN(*eps) || math.IsInf(*eps, 0) || *eps < 0 {
		log.Fatalf("-eps must be a finite non-negative number, got %v", *eps)
	}
	if *maxIter <= 0 {
		log.Fatalf("-maxiter must be positive, got %d", *maxIter)
	}

	s := calc.NewSession(os.Stdout,
		calc.WithEpsilon(*eps),
		calc.WithMaxIterations(*maxIter),
		calc.WithErrorOutput(os.Stderr),
		calc.WithPrompt(*prompt),
	)

	if flag.NArg() == 0 {
		interactive := !*quiet
		if interactive {
			fmt.Println("matrix calculator; type help for commands, quit to leave")
		}
		if err := s.Run(os.Stdin, interactive); err != nil {
			log.Fatal(err)
		}
		if !interactive && s.Failures() > 0 {
			os.Exit(1)
		}
		return
	}

	for _, name := range flag.Args() {
		fd, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		err = s.Run(fd, false)
		fd.Close()
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
	}
	if s.Failures() > 0 {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: matcalc [flags] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
