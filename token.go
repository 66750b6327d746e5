package jaksel

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Punctuation
	LEFT_PAREN  // "("
	RIGHT_PAREN // ")"
	COMMA       // ","
	DOT         // "."

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	BANG          // "!"
	BANG_EQUAL    // "!="
	EQUAL         // "="
	EQUAL_EQUAL   // "=="
	GREATER       // ">"
	GREATER_EQUAL // ">="
	LESS          // "<"
	LESS_EQUAL    // "<="

	// Layout: statements are newline-terminated, so '\n' is a real token.
	NEWLINE

	// Literals & identifiers
	IDENTIFIER
	STRING
	NUMBER

	// Keywords
	LITERALLY  // variable declaration
	ITU        // "=" (initializer and assignment)
	SPILL      // print
	KALO       // if
	PERHAPS    // else-if
	KALOGAK    // else
	UDAHAN     // end of a kalo construct
	RIL        // true
	IMPOSSIBLE // false
	HAMPA      // nil
)

// Token is a lexical unit with optional decoded literal value.
// Line and Col are 1-based and point at the first byte of the lexeme.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw source slice
	Literal interface{} // decoded value for NUMBER/STRING and the literal keywords
	Line    int
	Col     int
}

func (t Token) String() string {
	if t.Type == EOF {
		return fmt.Sprintf("%d:%d EOF", t.Line, t.Col)
	}
	return fmt.Sprintf("%d:%d %q", t.Line, t.Col, t.Lexeme)
}

// keywords maps reserved words to their token kinds. Any identifier not in
// this table is a plain variable name.
var keywords = map[string]TokenType{
	"literally":  LITERALLY,
	"itu":        ITU,
	"spill":      SPILL,
	"kalo":       KALO,
	"perhaps":    PERHAPS,
	"kalogak":    KALOGAK,
	"udahan":     UDAHAN,
	"ril":        RIL,
	"impossible": IMPOSSIBLE,
	"hampa":      HAMPA,
}
