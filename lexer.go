package jaksel

import (
	"fmt"
	"strconv"
)

// Lexer scans a jaksel source string into tokens.
//
// Scanning never fails outright: an invalid character or an unterminated
// string is reported to the Reporter and the scan continues, so the result
// always ends with exactly one EOF token.
type Lexer struct {
	src      string
	reporter *Reporter

	start  int // start index of current lexeme
	cur    int // current index
	line   int // 1-based
	col    int // 1-based column of cur
	tokens []Token

	// position of the first byte of the current lexeme
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string, reporter *Reporter) *Lexer {
	return &Lexer{
		src:      src,
		reporter: reporter,
		line:     1,
		col:      1,
	}
}

// Scan tokenizes the entire source and returns the tokens, EOF included.
func (l *Lexer) Scan() []Token {
	for !l.isAtEnd() {
		l.start = l.cur
		l.tokStartLine = l.line
		l.tokStartCol = l.col
		l.scanToken()
	}
	l.start = l.cur
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.addToken(EOF, nil)
	return l.tokens
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) peekNext() byte {
	if l.cur+1 >= len(l.src) {
		return 0
	}
	return l.src[l.cur+1]
}

// match consumes the next byte only when it equals want.
func (l *Lexer) match(want byte) bool {
	if l.isAtEnd() || l.src[l.cur] != want {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) addToken(tt TokenType, lit interface{}) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	})
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func (l *Lexer) scanToken() {
	ch := l.advance()
	switch ch {
	case '(':
		l.addToken(LEFT_PAREN, nil)
	case ')':
		l.addToken(RIGHT_PAREN, nil)
	case ',':
		l.addToken(COMMA, nil)
	case '.':
		l.addToken(DOT, nil)
	case '+':
		l.addToken(PLUS, nil)
	case '-':
		l.addToken(MINUS, nil)
	case '*':
		l.addToken(STAR, nil)
	case '/':
		l.addToken(SLASH, nil)
	case '!':
		if l.match('=') {
			l.addToken(BANG_EQUAL, nil)
		} else {
			l.addToken(BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.addToken(EQUAL_EQUAL, nil)
		} else {
			l.addToken(EQUAL, nil)
		}
	case '<':
		if l.match('=') {
			l.addToken(LESS_EQUAL, nil)
		} else {
			l.addToken(LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.addToken(GREATER_EQUAL, nil)
		} else {
			l.addToken(GREATER, nil)
		}
	case '#':
		// line comment, runs to (not including) the next newline
		for !l.isAtEnd() && l.peek() != '\n' {
			l.advance()
		}
	case ' ', '\r', '\t':
		// insignificant whitespace
	case '\n':
		l.addToken(NEWLINE, nil)
	case '"':
		l.scanString()
	default:
		switch {
		case isDigit(ch):
			l.scanNumber()
		case isAlpha(ch):
			l.scanIdentifier()
		default:
			l.reporter.ReportLexError(l.tokStartLine, l.tokStartCol, fmt.Sprintf("unexpected character %q", ch))
		}
	}
}

// scanString consumes a double-quoted string literal. The opening quote has
// already been consumed. Strings may span lines; there are no escapes.
func (l *Lexer) scanString() {
	for !l.isAtEnd() && l.peek() != '"' {
		l.advance()
	}
	if l.isAtEnd() {
		l.reporter.ReportLexError(l.tokStartLine, l.tokStartCol, "string was not terminated")
		return
	}
	l.advance() // closing quote
	l.addToken(STRING, l.src[l.start+1:l.cur-1])
}

// scanNumber consumes digits optionally followed by '.' and more digits.
// No exponent notation, no leading-dot numbers. Decoded eagerly to float64.
func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	// the lexeme is always digits ('.' digits)?, which ParseFloat accepts
	v, _ := strconv.ParseFloat(l.src[l.start:l.cur], 64)
	l.addToken(NUMBER, v)
}

func (l *Lexer) scanIdentifier() {
	for isAlphaNum(l.peek()) {
		l.advance()
	}
	lex := l.src[l.start:l.cur]
	tt, ok := keywords[lex]
	if !ok {
		l.addToken(IDENTIFIER, nil)
		return
	}
	switch tt {
	case RIL:
		l.addToken(RIL, true)
	case IMPOSSIBLE:
		l.addToken(IMPOSSIBLE, false)
	case HAMPA:
		l.addToken(HAMPA, nil)
	default:
		l.addToken(tt, nil)
	}
}
