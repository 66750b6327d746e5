package jaksel

import (
	"io"
	"testing"
)

func parseSrc(t *testing.T, src string) ([]Stmt, *Reporter) {
	t.Helper()
	rep := NewReporter(io.Discard)
	rep.SetSource("test", src)
	tokens := NewLexer(src, rep).Scan()
	if rep.HadError {
		t.Fatalf("unexpected lex error for %q", src)
	}
	return NewParser(tokens, rep).Parse(), rep
}

func parseClean(t *testing.T, src string) []Stmt {
	t.Helper()
	stmts, rep := parseSrc(t, src)
	if rep.HadError {
		t.Fatalf("unexpected parse error for %q", src)
	}
	return stmts
}

func wantProgram(t *testing.T, src, want string) {
	t.Helper()
	stmts := parseClean(t, src)
	got := (&AstPrinter{}).PrintProgram(stmts)
	if got != want {
		t.Fatalf("\nsource:\n%q\nwant:\n%s\ngot:\n%s\n", src, want, got)
	}
}

func Test_Parser_PrecedenceAndAssociativity(t *testing.T) {
	cases := []struct{ src, want string }{
		{"2 + 3 * 4\n", "(expr (+ 2 (* 3 4)))"},
		{"(2 + 3) * 4\n", "(expr (* (group (+ 2 3)) 4))"},
		{"1 - 2 - 3\n", "(expr (- (- 1 2) 3))"},
		{"8 / 4 / 2\n", "(expr (/ (/ 8 4) 2))"},
		{"-1 - -2\n", "(expr (- (- 1) (- 2)))"},
		{"!ril == impossible\n", "(expr (== (! ril) impossible))"},
		{"1 < 2 == 3 >= 4\n", "(expr (== (< 1 2) (>= 3 4)))"},
		{"!!ril\n", "(expr (! (! ril)))"},
	}
	for _, c := range cases {
		wantProgram(t, c.src, c.want)
	}
}

func Test_Parser_AssignmentIsRightAssociative(t *testing.T) {
	wantProgram(t, "a itu b itu 1\n", "(expr (itu a (itu b 1)))")
}

func Test_Parser_VarDeclaration(t *testing.T) {
	wantProgram(t, "literally x itu 10\n", "(literally x 10)")
	wantProgram(t, "literally x\n", "(literally x)")
	// EOF is an accepted statement terminator
	wantProgram(t, "literally x itu 10", "(literally x 10)")
}

func Test_Parser_SpillStatement(t *testing.T) {
	wantProgram(t, "spill \"halo\"\n", `(spill "halo")`)
	wantProgram(t, "spill 1 + 2", "(spill (+ 1 2))")
}

func Test_Parser_BlankLinesAreSkipped(t *testing.T) {
	wantProgram(t, "\n\nspill 1\n\n\nspill 2\n", "(spill 1)\n(spill 2)")
}

func Test_Parser_IfConstruct(t *testing.T) {
	src := `kalo x > 1
spill "gede"
perhaps x > 0
spill "kecil"
kalogak
spill "minus"
udahan
`
	want := `(kalo (> x 1) (block (spill "gede")) (perhaps (> x 0) (block (spill "kecil"))) (kalogak (block (spill "minus"))))`
	wantProgram(t, src, want)
}

func Test_Parser_IfWithoutElse(t *testing.T) {
	src := "kalo ril\nspill 1\nudahan\n"
	wantProgram(t, src, "(kalo ril (block (spill 1)))")
}

func Test_Parser_NestedIf(t *testing.T) {
	src := `kalo ril
kalo impossible
spill 1
udahan
spill 2
udahan
`
	want := "(kalo ril (block (kalo impossible (block (spill 1))) (spill 2)))"
	wantProgram(t, src, want)
}

func Test_Parser_DeclarationInsideBlock(t *testing.T) {
	src := "kalo ril\nliterally x itu 1\nudahan\n"
	wantProgram(t, src, "(kalo ril (block (literally x 1)))")
}

func Test_Parser_InvalidAssignmentTarget(t *testing.T) {
	stmts, rep := parseSrc(t, "1 itu 2\n")
	if !rep.HadError {
		t.Fatal("want a parse error for invalid assignment target")
	}
	// the statement is reported but not aborted: the left side survives
	if len(stmts) != 1 || stmts[0] == nil {
		t.Fatalf("want one surviving statement, got %v", stmts)
	}
	if got := (&AstPrinter{}).PrintStmt(stmts[0]); got != "(expr 1)" {
		t.Fatalf("want (expr 1), got %s", got)
	}
}

func Test_Parser_StrayTokenRecoversAtNextLine(t *testing.T) {
	stmts, rep := parseSrc(t, ")\nspill 1\n")
	if !rep.HadError {
		t.Fatal("want a parse error for stray ')'")
	}
	if len(stmts) != 2 {
		t.Fatalf("want nil marker plus recovered statement, got %d entries", len(stmts))
	}
	if stmts[0] != nil {
		t.Fatalf("want nil for the failed statement, got %v", stmts[0])
	}
	if got := (&AstPrinter{}).PrintStmt(stmts[1]); got != "(spill 1)" {
		t.Fatalf("parsing did not resume cleanly: got %s", got)
	}
}

func Test_Parser_SynchronizeOnStatementKeyword(t *testing.T) {
	// the error and the next statement share a line; sync stops at 'spill'
	stmts, rep := parseSrc(t, ") spill 2\n")
	if !rep.HadError {
		t.Fatal("want a parse error")
	}
	if len(stmts) != 2 || stmts[0] != nil || stmts[1] == nil {
		t.Fatalf("want [nil (spill 2)], got %v", stmts)
	}
}

func Test_Parser_MissingCloseParen(t *testing.T) {
	stmts, rep := parseSrc(t, "(1 + 2\n")
	if !rep.HadError {
		t.Fatal("want a parse error for missing ')'")
	}
	if len(stmts) != 1 || stmts[0] != nil {
		t.Fatalf("want a single nil entry, got %v", stmts)
	}
}

func Test_Parser_UnterminatedIfReportsAtEOF(t *testing.T) {
	_, rep := parseSrc(t, "kalo ril\nspill 1\n")
	if !rep.HadError {
		t.Fatal("want a parse error for missing 'udahan'")
	}
	if !rep.IncompleteAtEOF() {
		t.Fatal("error should be flagged as incomplete-at-EOF")
	}
}

func Test_Parser_Incomplete(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"kalo ril\n", true},
		{"kalo ril\nspill 1\n", true},
		{"kalo ril\nspill 1\nudahan\n", false},
		{"spill 1\n", false},
		{")\n", false},
	}
	for _, c := range cases {
		if got := Incomplete(c.src); got != c.want {
			t.Fatalf("Incomplete(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}
