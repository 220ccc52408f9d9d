/*
File    : gomix/cmd/gomix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command gomix is the interpreter's entry point.
//
//	gomix              start the REPL
//	gomix PATH         run the script at PATH
//	gomix -banner FILE.yaml ...   reskin the REPL banner/prompt
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akashmaji946/gomix-lang/env"
	"github.com/akashmaji946/gomix-lang/eval"
	"github.com/akashmaji946/gomix-lang/lexer"
	"github.com/akashmaji946/gomix-lang/objects"
	"github.com/akashmaji946/gomix-lang/parser"
	"github.com/akashmaji946/gomix-lang/repl"
	"github.com/fatih/color"
)

const version = "0.1.0"

// main parses command-line flags and dispatches to the REPL or to
// file-execution mode depending on whether a script path was given.
//
// Flags:
//   - -banner FILE: YAML file overriding the REPL banner/prompt/version text
func main() {
	bannerPath := flag.String("banner", "", "YAML file overriding the REPL banner/prompt/version text")
	flag.Parse()

	cfg, err := loadBannerConfig(*bannerPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load banner config: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		runRepl(cfg)
		return
	}

	runFile(args[0])
}

// runRepl builds a Repl from cfg and starts its interactive loop on
// stdout.
//
// Parameters:
//   - cfg: the banner/prompt/version text to display
func runRepl(cfg bannerConfig) {
	r := repl.New(cfg.Banner, cfg.Version, cfg.Author, cfg.Line, cfg.License, cfg.Prompt)
	r.Start(os.Stdout)
}

// runFile reads path, parses it, and evaluates it silently except for
// a runtime Error (printed via its Inspect form) or parser errors
// (printed one per line). A read failure prints "Could not open file:
// PATH" and exits nonzero.
//
// Parameters:
//   - path: filesystem path of the script to run
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Could not open file: %s\n", path)
		os.Exit(1)
	}

	p := parser.New(lexer.New(string(src)))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		red := color.New(color.FgRed)
		for _, e := range errs {
			red.Printf("%s\n", e)
		}
		os.Exit(1)
	}

	result := eval.Eval(program, env.New())
	if result != nil && result.Type() == objects.ErrorType {
		color.New(color.FgRed).Printf("%s\n", result.Inspect())
		os.Exit(1)
	}
}
