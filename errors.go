package jaksel

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ParseError is a recoverable grammar violation. The parser unwinds it to
// the nearest statement boundary and synchronizes; it never escapes Parse.
type ParseError struct {
	Token Token
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Token.Line, e.Token.Col, e.Msg)
}

// RuntimeError is an execution-time failure carrying the offending token for
// position reporting. It aborts the remainder of the current run.
type RuntimeError struct {
	Token Token
	Msg   string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: %s", e.Token.Line, e.Token.Col, e.Msg)
}

// Reporter is the diagnostic sink shared by the lexer, parser and
// interpreter. It renders one diagnostic per error as a caret-annotated
// snippet of the current source and flips the flags the host reads to decide
// process exit codes (65 for a load error, 70 for a runtime error).
type Reporter struct {
	Out io.Writer

	HadError        bool // lex or parse error in the current run
	HadRuntimeError bool

	srcName string
	src     string

	errAtEOF bool

	header *color.Color
}

// NewReporter creates a reporter writing rendered diagnostics to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		Out:    out,
		header: color.New(color.FgRed, color.Bold),
	}
}

// SetSource installs the source text used for snippet rendering.
func (r *Reporter) SetSource(name, src string) {
	r.srcName = name
	r.src = src
}

// Reset clears the error flags. The REPL calls this between input lines;
// the interpreter's global environment survives the reset.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
	r.errAtEOF = false
}

// ReportLexError records an unexpected-character or unterminated-string
// diagnostic. Scanning continues after the report.
func (r *Reporter) ReportLexError(line, col int, msg string) {
	r.HadError = true
	r.render("LEXICAL ERROR", line, col, msg)
}

// ReportParseError records a grammar violation at the offending token.
func (r *Reporter) ReportParseError(tok Token, msg string) {
	if tok.Type == EOF {
		if !r.HadError {
			r.errAtEOF = true
		}
		msg = "at end: " + msg
	} else {
		msg = fmt.Sprintf("at %q: %s", tok.Lexeme, msg)
		r.errAtEOF = false
	}
	r.HadError = true
	r.render("PARSE ERROR", tok.Line, tok.Col, msg)
}

// ReportRuntimeError records a runtime failure and flips HadRuntimeError.
func (r *Reporter) ReportRuntimeError(err *RuntimeError) {
	r.HadRuntimeError = true
	r.render("RUNTIME ERROR", err.Token.Line, err.Token.Col, err.Msg)
}

// IncompleteAtEOF reports whether the only parse failure so far happened at
// the EOF token. The REPL uses it to keep prompting for continuation lines.
func (r *Reporter) IncompleteAtEOF() bool { return r.errAtEOF }

// render writes a header line plus a caret snippet pointing at the 1-based
// line/column, with one line of context on each side when available.
func (r *Reporter) render(kind string, line, col int, msg string) {
	if r.Out == nil {
		return
	}
	head := fmt.Sprintf("%s at %d:%d: %s", kind, line, col, msg)
	if r.srcName != "" {
		head = fmt.Sprintf("%s in %s at %d:%d: %s", kind, r.srcName, line, col, msg)
	}
	fmt.Fprintln(r.Out, r.header.Sprint(head))
	fmt.Fprint(r.Out, snippet(r.src, line, col))
}

func snippet(src string, line, col int) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	var b strings.Builder
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
