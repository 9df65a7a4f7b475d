/*
File    : monkey/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Monkey interpreter. It
provides two modes of operation:
 1. REPL Mode (default): interactive Read-Eval-Print Loop
 2. File Mode: execute a Monkey source file given on the command line
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/monkey-lang/eval"
	"github.com/akashmaji946/monkey-lang/object"
	"github.com/akashmaji946/monkey-lang/parser"
	"github.com/akashmaji946/monkey-lang/repl"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LICENSE = "MIT"
	PROMPT  = "monkey >>> "
	LINE    = "----------------------------------------------------------------"
	BANNER  = `
  __  __             _
 |  \/  | ___  _ __ | | _____ _   _
 | |\/| |/ _ \| '_ \| |/ / _ \ | | |
 | |  | | (_) | | | |   <  __/ |_| |
 |_|  |_|\___/|_| |_|_|\_\___|\__, |
                              |___/
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on os.Args: no arguments starts the REPL, one
// argument is treated as a path to a Monkey source file to run.
//
// Usage:
//
//	monkey              - start the interactive REPL
//	monkey <filename>   - execute the given source file
//	monkey --help       - display help information
//	monkey --version    - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Monkey - A small interpreted expression language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  monkey                  Start interactive REPL mode")
	yellowColor.Println("  monkey <path-to-file>   Execute a Monkey file (.mk)")
	yellowColor.Println("  monkey --help           Display this help message")
	yellowColor.Println("  monkey --version        Display version information")
}

func showVersion() {
	cyanColor.Println("Monkey - A small interpreted expression language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Monkey source file, printing parse
// errors or the final evaluation error (if any) and exiting non-zero.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(fileContent))
}

// executeFileWithRecovery parses and evaluates source, recovering from
// any panic and reporting it the same way a parse or runtime error is
// reported. Unlike the REPL, a null result is not printed — only a
// non-null, non-error result is echoed, matching the convention that
// running a file should be quiet unless it has something to say.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	par := parser.NewParser(source)
	program := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	if result == nil {
		return
	}

	if errObj, ok := result.(*object.Error); ok {
		redColor.Fprintf(os.Stderr, "%s\n", errObj.Inspect())
		os.Exit(1)
	}

	if result.Type() != object.NULL_OBJ {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
}
