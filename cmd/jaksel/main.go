package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	jaksel "github.com/fajaralfa/jaksel-lang"
)

const appName = "jaksel"

// Exit codes follow the sysexits convention: 65 for a load-time (lex/parse)
// error, 70 for a runtime error.
const (
	exitLoadError    = 65
	exitRuntimeError = 70
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "eval":
		os.Exit(cmdEval(os.Args[2:]))
	case "version":
		fmt.Println(jaksel.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`jaksel %s

Usage:
  %s run [-n] <file.jaksel>       Run a script.
  %s eval [-n] <code>             Evaluate a one-liner.
  %s repl [-n] [-q] [-c <file>]   Start the REPL.
  %s version                      Print the interpreter version.

Flags:
  -n    disable colored diagnostics
  -q    suppress the REPL banner
  -c    config file (default ~/.jakselrc.yaml)

`, jaksel.Version, appName, appName, appName, appName)
}

// commonOpts parses the flags shared by all subcommands and returns the
// remaining positional arguments.
func commonOpts(args []string, spec string) (rest []string, noColor, quiet bool, cfgPath string, err error) {
	opts, optind, err := getopt.Getopts(args, spec)
	if err != nil {
		return nil, false, false, "", err
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'n':
			noColor = true
		case 'q':
			quiet = true
		case 'c':
			cfgPath = opt.Value
		}
	}
	return args[optind:], noColor, quiet, cfgPath, nil
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	rest, noColor, _, _, err := commonOpts(args, "n")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 2
	}
	if len(rest) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run [-n] <file.jaksel>\n", appName)
		return 2
	}
	if noColor {
		color.NoColor = true
	}

	file := rest[0]
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	runner := jaksel.NewRunner(os.Stdout, os.Stderr)
	runner.Run(filepath.Base(file), string(src))
	return exitCode(runner)
}

// -----------------------------------------------------------------------------
// eval
// -----------------------------------------------------------------------------

func cmdEval(args []string) int {
	rest, noColor, _, _, err := commonOpts(args, "n")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 2
	}
	if len(rest) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s eval [-n] <code>\n", appName)
		return 2
	}
	if noColor {
		color.NoColor = true
	}

	runner := jaksel.NewRunner(os.Stdout, os.Stderr)
	v, hadValue := runner.Run("eval", strings.Join(rest, " "))
	if hadValue {
		fmt.Println(jaksel.FormatValue(v))
	}
	return exitCode(runner)
}

func exitCode(runner *jaksel.Runner) int {
	switch {
	case runner.Reporter.HadError:
		return exitLoadError
	case runner.Reporter.HadRuntimeError:
		return exitRuntimeError
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(args []string) int {
	rest, noColor, quiet, cfgPath, err := commonOpts(args, "nqc:")
	if err != nil || len(rest) != 0 {
		fmt.Fprintf(os.Stderr, "usage: %s repl [-n] [-q] [-c <file>]\n", appName)
		return 2
	}

	if cfgPath == "" {
		cfgPath = jaksel.DefaultConfigPath()
	}
	cfg, err := jaksel.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	if noColor || (cfg.Color != nil && !*cfg.Color) {
		color.NoColor = true
	}
	if !quiet && (cfg.Banner == nil || *cfg.Banner) {
		fmt.Printf("jaksel %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", jaksel.Version)
	}

	home, _ := os.UserHomeDir()
	histPath := cfg.History
	if !filepath.IsAbs(histPath) {
		histPath = filepath.Join(home, histPath)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	runner := jaksel.NewRunner(os.Stdout, os.Stderr)

	for {
		code, ok := readStatement(ln, cfg.Prompt, cfg.ContPrompt)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		// Error flags reset per line; the global environment persists.
		runner.Reporter.Reset()
		v, hadValue := runner.Run("repl", code+"\n")
		if hadValue {
			fmt.Println(jaksel.FormatValue(v))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readStatement keeps prompting with the continuation prompt while the input
// parses as incomplete (an unclosed kalo block), so multi-line constructs
// can be typed interactively.
func readStatement(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if jaksel.Incomplete(src + "\n") {
			continue
		}
		return src, true
	}
}
