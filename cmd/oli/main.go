package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oli-lang/oliscript/oli"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "tokens":
		return tokensCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	showTokens := fs.Bool("tokens", false, "also print the token stream before the tree")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("oli run: script path required")
	}

	source, err := readScript(remaining[0])
	if err != nil {
		return err
	}

	tokens, err := oli.NewLexer(source).ScanTokens()
	if err != nil {
		return fmt.Errorf("scan failed:\n%w", err)
	}
	if *showTokens {
		for _, tok := range tokens {
			fmt.Println(tok)
		}
	}

	expr, err := oli.NewParser(tokens).Parse()
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	fmt.Println(expr)
	return nil
}

func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("oli tokens: script path required")
	}

	source, err := readScript(remaining[0])
	if err != nil {
		return err
	}

	// Print the best-effort stream even when the scan reported errors;
	// the diagnostics follow on stderr via the returned error.
	tokens, scanErr := oli.NewLexer(source).ScanTokens()
	for _, tok := range tokens {
		fmt.Println(tok)
	}
	if scanErr != nil {
		return fmt.Errorf("scan failed:\n%w", scanErr)
	}
	return nil
}

func readScript(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(input), nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [args]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run [-tokens] <script>  parse a script and print its expression tree")
	fmt.Fprintln(os.Stderr, "  tokens <script>         scan a script and print its token stream")
	fmt.Fprintln(os.Stderr, "  repl                    start the interactive prompt")
	fmt.Fprintln(os.Stderr, "  help                    show this help")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
