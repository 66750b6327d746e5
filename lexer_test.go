package jaksel

import (
	"io"
	"reflect"
	"testing"
)

func scanAll(t *testing.T, src string) ([]Token, *Reporter) {
	t.Helper()
	rep := NewReporter(io.Discard)
	rep.SetSource("test", src)
	return NewLexer(src, rep).Scan(), rep
}

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, rep := scanAll(t, src)
	if rep.HadError {
		t.Fatalf("unexpected lex error for %q", src)
	}
	return ts
}

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := tokenTypes(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%q\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_PunctuationGauntlet(t *testing.T) {
	src := "(),.-+*/!!===>=<==\n><\t# c\r\n \"hi\""
	want := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, COMMA, DOT, MINUS, PLUS, STAR, SLASH,
		BANG, BANG_EQUAL, EQUAL_EQUAL, GREATER_EQUAL, LESS_EQUAL, EQUAL,
		NEWLINE,
		GREATER, LESS,
		NEWLINE,
		STRING,
		EOF,
	}
	wantTypes(t, src, want)
}

func Test_Lexer_NumberLiteral(t *testing.T) {
	got := wantTypes(t, "123.45", []TokenType{NUMBER, EOF})
	if got[0].Literal.(float64) != 123.45 {
		t.Fatalf("want literal 123.45, got %v", got[0].Literal)
	}
	if got[0].Lexeme != "123.45" {
		t.Fatalf("want lexeme %q, got %q", "123.45", got[0].Lexeme)
	}
}

func Test_Lexer_NumberShapesAlwaysDecode(t *testing.T) {
	// every digits ('.' digits)? lexeme yields a NUMBER with a decoded value
	cases := []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"007", 7},
		{"1.0", 1},
		{"0.5", 0.5},
		{"9007199254740993", 9007199254740992}, // rounds to the nearest double
	}
	for _, c := range cases {
		got := wantTypes(t, c.src, []TokenType{NUMBER, EOF})
		if got[0].Literal.(float64) != c.want {
			t.Fatalf("%q: want literal %v, got %v", c.src, c.want, got[0].Literal)
		}
	}
}

func Test_Lexer_NumberDoesNotEatTrailingDot(t *testing.T) {
	// no leading-dot numbers, no trailing-dot numbers
	wantTypes(t, "1.x", []TokenType{NUMBER, DOT, IDENTIFIER, EOF})
	wantTypes(t, ".5", []TokenType{DOT, NUMBER, EOF})
}

func Test_Lexer_Keywords(t *testing.T) {
	src := "literally umur itu 17\nkalo umur perhaps kalogak udahan\nspill ril impossible hampa\n"
	want := []TokenType{
		LITERALLY, IDENTIFIER, ITU, NUMBER, NEWLINE,
		KALO, IDENTIFIER, PERHAPS, KALOGAK, UDAHAN, NEWLINE,
		SPILL, RIL, IMPOSSIBLE, HAMPA, NEWLINE,
		EOF,
	}
	got := wantTypes(t, src, want)
	if got[12].Literal != true || got[13].Literal != false || got[14].Literal != nil {
		t.Fatalf("keyword literals wrong: %v %v %v", got[12].Literal, got[13].Literal, got[14].Literal)
	}
}

func Test_Lexer_IdentifierIsNotKeywordPrefix(t *testing.T) {
	wantTypes(t, "spillage rilx _hampa", []TokenType{IDENTIFIER, IDENTIFIER, IDENTIFIER, EOF})
}

func Test_Lexer_StringLiteral(t *testing.T) {
	got := wantTypes(t, `"halo dunia"`, []TokenType{STRING, EOF})
	if got[0].Literal.(string) != "halo dunia" {
		t.Fatalf("want decoded string without quotes, got %q", got[0].Literal)
	}
}

func Test_Lexer_UnterminatedString(t *testing.T) {
	ts, rep := scanAll(t, `spill "nggak selesai`)
	if !rep.HadError {
		t.Fatal("want lex error for unterminated string")
	}
	// no STRING token is produced, scanning still terminates in EOF
	want := []TokenType{SPILL, EOF}
	if !reflect.DeepEqual(tokenTypes(ts), want) {
		t.Fatalf("want %v, got %v", want, tokenTypes(ts))
	}
}

func Test_Lexer_UnexpectedCharacterRecovers(t *testing.T) {
	ts, rep := scanAll(t, "1 @ 2\n")
	if !rep.HadError {
		t.Fatal("want lex error for unexpected character")
	}
	want := []TokenType{NUMBER, NUMBER, NEWLINE, EOF}
	if !reflect.DeepEqual(tokenTypes(ts), want) {
		t.Fatalf("single-character recovery failed: got %v", tokenTypes(ts))
	}
}

func Test_Lexer_CommentRunsToNewline(t *testing.T) {
	wantTypes(t, "1 # ini komentar + - *\n2", []TokenType{NUMBER, NEWLINE, NUMBER, EOF})
}

func Test_Lexer_LineAndColumnTracking(t *testing.T) {
	ts := toks(t, "literally x\nspill x\n")
	checks := []struct {
		idx  int
		line int
		col  int
	}{
		{0, 1, 1},  // literally
		{1, 1, 11}, // x
		{2, 1, 12}, // newline
		{3, 2, 1},  // spill
		{4, 2, 7},  // x
		{5, 2, 8},  // newline
		{6, 3, 1},  // EOF
	}
	for _, c := range checks {
		if ts[c.idx].Line != c.line || ts[c.idx].Col != c.col {
			t.Fatalf("token %d (%s): want %d:%d, got %d:%d",
				c.idx, ts[c.idx], c.line, c.col, ts[c.idx].Line, ts[c.idx].Col)
		}
	}
}

func Test_Lexer_AlwaysEndsInEOF(t *testing.T) {
	for _, src := range []string{"", "\n", "   ", "# cuma komentar", "@@@", `"`} {
		rep := NewReporter(io.Discard)
		ts := NewLexer(src, rep).Scan()
		if len(ts) == 0 || ts[len(ts)-1].Type != EOF {
			t.Fatalf("source %q: token stream does not end in EOF: %v", src, ts)
		}
	}
}
