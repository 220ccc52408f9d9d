/*
File    : gomix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter.
The REPL provides an interactive environment where users can:
- Enter source line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and evaluator to execute user input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/gomix-lang/env"
	"github.com/akashmaji946/gomix-lang/eval"
	"github.com/akashmaji946/gomix-lang/lexer"
	"github.com/akashmaji946/gomix-lang/objects"
	"github.com/akashmaji946/gomix-lang/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output. They provide visual feedback to
// enhance user experience: blue for separators, yellow for results,
// red for errors, green for the banner, cyan for instructions.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. Its fields
// configure the banner text printed at startup; cmd/gomix fills them
// from defaultBannerConfig, optionally overridden by a `-banner` YAML
// config file.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g. ">>")
}

// New creates a Repl with the given display configuration.
//
// Parameters:
//   - banner: ASCII art/title text shown at startup
//   - version: version string shown in the banner
//   - author: author contact information shown in the banner
//   - line: separator string repeated around the banner
//   - license: license text shown in the banner
//   - prompt: command prompt shown to the user (e.g. ">>")
//
// Returns:
//   - a *Repl ready for Start
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
//
// Parameters:
//   - writer: destination the banner is written to (e.g. os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: print the banner, read lines via
// readline (history + editing), evaluate each in a persistent
// environment shared across the whole session, print the result.
//
// Per the external-interface contract, the Null singleton is never
// printed — every other value's Inspect form is. Parser errors print
// one per line; a runtime Error prints its Inspect form.
//
// Parameters:
//   - writer: destination for banner, prompts, and results
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	environment := env.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, environment)
	}
}

// evalLine parses and evaluates one line against environment, keeping
// the REPL alive regardless of the outcome: parser errors or a
// runtime Error are reported, not fatal.
//
// Parameters:
//   - writer: destination for error and result output
//   - line: the raw source line entered by the user
//   - environment: the session's persistent binding scope
func (r *Repl) evalLine(writer io.Writer, line string, environment *env.Environment) {
	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result := eval.Eval(program, environment)
	if result == nil || result == objects.NULL {
		return
	}

	if result.Type() == objects.ErrorType {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
