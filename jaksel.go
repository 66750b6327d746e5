// Package jaksel implements a tree-walking interpreter for the jaksel
// scripting language: a hand-written lexer feeding a recursive-descent
// parser, whose statement tree is evaluated directly against lexically
// scoped environments. There is no bytecode and no separate compilation
// pass.
package jaksel

import "io"

// Version of the interpreter.
const Version = "0.2.0"

// Runner ties the scan → parse → interpret pipeline together for one source
// string at a time while keeping the interpreter's global environment and
// the Reporter alive across runs, which is what the REPL needs.
type Runner struct {
	Reporter    *Reporter
	Interpreter *Interpreter
}

// NewRunner creates a runner printing spill output to out and diagnostics
// to errOut.
func NewRunner(out, errOut io.Writer) *Runner {
	rep := NewReporter(errOut)
	return &Runner{
		Reporter:    rep,
		Interpreter: NewInterpreter(out, rep),
	}
}

// Run executes one source text to completion. Diagnostics go to the
// Reporter (name labels them); when the parse produced any error the
// interpreter is not entered at all. It returns the value of the last bare
// expression statement and whether there was one, for REPL echo.
func (r *Runner) Run(name, src string) (Value, bool) {
	r.Reporter.SetSource(name, src)
	tokens := NewLexer(src, r.Reporter).Scan()
	stmts := NewParser(tokens, r.Reporter).Parse()
	if r.Reporter.HadError {
		return Nil, false
	}
	v, hadValue, ok := r.Interpreter.Interpret(stmts)
	if !ok {
		return Nil, false
	}
	return v, hadValue
}

// Incomplete reports whether src fails to parse only because the input
// ended mid-construct (an unclosed kalo block, for example). The REPL uses
// it to decide between reporting an error and prompting for a continuation
// line. Nothing is written to the caller's diagnostic sink.
func Incomplete(src string) bool {
	rep := NewReporter(io.Discard)
	tokens := NewLexer(src, rep).Scan()
	NewParser(tokens, rep).Parse()
	return rep.IncompleteAtEOF()
}
