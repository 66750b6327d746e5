package jaksel

import "errors"

// Parser assembles the token stream into statements by recursive descent.
//
// Grammar, highest to lowest precedence (binary operators left-associative,
// assignment right-associative):
//
//	program     → (NEWLINE | declaration)* EOF
//	declaration → "literally" IDENTIFIER ("itu" expression)? NEWLINE
//	            | statement
//	statement   → ifStmt | spillStmt | exprStmt
//	ifStmt      → "kalo" expression block ("perhaps" expression block)*
//	              ("kalogak" block)? "udahan"
//	block       → NEWLINE (declaration | NEWLINE)*   // until perhaps/kalogak/udahan
//	spillStmt   → "spill" expression (NEWLINE|EOF)
//	exprStmt    → expression (NEWLINE|EOF)
//	expression  → assignment
//	assignment  → equality ("itu" assignment)?
//	equality    → comparison (("!="|"==") comparison)*
//	comparison  → term ((">"|">="|"<"|"<=") term)*
//	term        → factor (("-"|"+") factor)*
//	factor      → unary (("*"|"/") unary)*
//	unary       → ("!"|"-") unary | primary
//	primary     → "impossible" | "ril" | "hampa" | NUMBER | STRING
//	            | IDENTIFIER | "(" expression ")"
//
// Parse errors are values, not panics: a failed statement unwinds to the
// declaration boundary, is reported once, and the parser synchronizes to the
// next statement start so one syntax error never aborts the rest of the
// input.
type Parser struct {
	tokens   []Token
	current  int
	reporter *Reporter
}

// NewParser creates a parser over a scanned token sequence (EOF-terminated).
func NewParser(tokens []Token, reporter *Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse consumes the whole token stream and returns one entry per
// statement. A nil entry marks a statement that failed to parse; the error
// has already been reported. Blank lines between statements are skipped.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		if p.match(NEWLINE) {
			continue
		}
		stmts = append(stmts, p.declarationRecover())
	}
	return stmts
}

// ───────────────────────── token basics ─────────────────────────

func (p *Parser) isAtEnd() bool { return p.peek().Type == EOF }

func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() Token { return p.tokens[p.current-1] }

func (p *Parser) check(tt TokenType) bool { return p.peek().Type == tt }

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) match(tts ...TokenType) bool {
	for _, tt := range tts {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires a single token kind and returns it, or a ParseError
// reporting the offending token with the caller-supplied message.
func (p *Parser) consume(tt TokenType, msg string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, &ParseError{Token: p.peek(), Msg: msg}
}

// terminator accepts a statement terminator: a newline (consumed) or the
// end of input (left in place).
func (p *Parser) terminator(msg string) error {
	if p.match(NEWLINE) || p.check(EOF) {
		return nil
	}
	return &ParseError{Token: p.peek(), Msg: msg}
}

// synchronize discards tokens until a statement boundary: just past a
// newline, or in front of a statement-start keyword.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == NEWLINE {
			return
		}
		switch p.peek().Type {
		case LITERALLY, SPILL, KALO:
			return
		}
		p.advance()
	}
}

// ───────────────────────── declarations & statements ─────────────────────────

// declarationRecover is the panic-mode recovery point: an error from any
// nested production is reported here, the parser synchronizes, and a nil
// statement marks the failure.
func (p *Parser) declarationRecover() Stmt {
	stmt, err := p.declaration()
	if err == nil {
		return stmt
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		p.reporter.ReportParseError(perr.Token, perr.Msg)
	}
	p.synchronize()
	return nil
}

func (p *Parser) declaration() (Stmt, error) {
	if p.match(LITERALLY) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.match(ITU) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.terminator("Expect newline after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: init}, nil
}

func (p *Parser) statement() (Stmt, error) {
	if p.match(KALO) {
		return p.ifStatement()
	}
	if p.match(SPILL) {
		return p.printStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) ifStatement() (Stmt, error) {
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{Condition: cond, Then: then}
	for p.match(PERHAPS) {
		elifCond, err := p.expression()
		if err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, ElseIf{Condition: elifCond, Body: body})
	}
	if p.match(KALOGAK) {
		stmt.Else, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(UDAHAN, "Expect 'udahan' to close the kalo block."); err != nil {
		return nil, err
	}
	if err := p.terminator("Expect newline after 'udahan'."); err != nil {
		return nil, err
	}
	return stmt, nil
}

// block parses the newline-introduced statement sequence of one kalo branch.
// It stops in front of perhaps, kalogak or udahan, leaving the keyword for
// the caller.
func (p *Parser) block() ([]Stmt, error) {
	if _, err := p.consume(NEWLINE, "Expect newline before block."); err != nil {
		return nil, err
	}
	var stmts []Stmt
	for !p.isAtEnd() {
		switch p.peek().Type {
		case PERHAPS, KALOGAK, UDAHAN:
			return stmts, nil
		case NEWLINE:
			p.advance()
			continue
		}
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return nil, &ParseError{Token: p.peek(), Msg: "Expect 'udahan' to close the kalo block."}
}

func (p *Parser) printStatement() (Stmt, error) {
	keyword := p.previous()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.terminator("Expect newline after value."); err != nil {
		return nil, err
	}
	return &PrintStmt{Keyword: keyword, Expression: expr}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.terminator("Expect newline after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expression: expr}, nil
}

// ───────────────────────── expressions ─────────────────────────

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

// assignment is right-associative. The left side is parsed as a general
// expression first; when an "itu" follows it must already be a variable.
// An invalid target is reported at the operator but parsing proceeds, so
// the malformed assignment does not abort the statement.
func (p *Parser) assignment() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	if p.match(ITU) {
		op := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: v.Name, Value: value}, nil
		}
		p.reporter.ReportParseError(op, "Invalid assignment target.")
		return expr, nil
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(BANG_EQUAL, EQUAL_EQUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MINUS, PLUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(STAR, SLASH) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(BANG, MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: op, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(IMPOSSIBLE):
		return &LiteralExpr{Value: Bool(false)}, nil
	case p.match(RIL):
		return &LiteralExpr{Value: Bool(true)}, nil
	case p.match(HAMPA):
		return &LiteralExpr{Value: Nil}, nil
	case p.match(NUMBER):
		return &LiteralExpr{Value: Num(p.previous().Literal.(float64))}, nil
	case p.match(STRING):
		return &LiteralExpr{Value: Str(p.previous().Literal.(string))}, nil
	case p.match(IDENTIFIER):
		return &VariableExpr{Name: p.previous()}, nil
	case p.match(LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpr{Expression: expr}, nil
	}
	return nil, &ParseError{Token: p.peek(), Msg: "Expect expression."}
}
