package jaksel

import (
	"fmt"
	"strings"
)

// AstPrinter renders nodes in a parenthesized prefix form, mostly for tests
// and debugging. It is the second visitor over the tree and exists to keep
// the accept/visit protocol honest: adding it required no change to the
// node types.
type AstPrinter struct{}

// Print renders a single expression.
func (p *AstPrinter) Print(e Expr) string {
	s, _ := e.Accept(p)
	return s.(string)
}

// PrintStmt renders a single statement.
func (p *AstPrinter) PrintStmt(s Stmt) string {
	out, _ := s.Accept(p)
	return out.(string)
}

// PrintProgram renders a parsed program, one statement per line. Failed
// (nil) statements render as "<error>".
func (p *AstPrinter) PrintProgram(stmts []Stmt) string {
	parts := make([]string, 0, len(stmts))
	for _, s := range stmts {
		if s == nil {
			parts = append(parts, "<error>")
			continue
		}
		parts = append(parts, p.PrintStmt(s))
	}
	return strings.Join(parts, "\n")
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(p.Print(e))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *AstPrinter) VisitLiteralExpr(e *LiteralExpr) (interface{}, error) {
	if e.Value.Tag == VTStr {
		return fmt.Sprintf("%q", e.Value.Data.(string)), nil
	}
	return FormatValue(e.Value), nil
}

func (p *AstPrinter) VisitGroupingExpr(e *GroupingExpr) (interface{}, error) {
	return p.parenthesize("group", e.Expression), nil
}

func (p *AstPrinter) VisitUnaryExpr(e *UnaryExpr) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Right), nil
}

func (p *AstPrinter) VisitBinaryExpr(e *BinaryExpr) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p *AstPrinter) VisitVariableExpr(e *VariableExpr) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (p *AstPrinter) VisitAssignExpr(e *AssignExpr) (interface{}, error) {
	return p.parenthesize("itu "+e.Name.Lexeme, e.Value), nil
}

func (p *AstPrinter) VisitExpressionStmt(s *ExpressionStmt) (interface{}, error) {
	return p.parenthesize("expr", s.Expression), nil
}

func (p *AstPrinter) VisitPrintStmt(s *PrintStmt) (interface{}, error) {
	return p.parenthesize("spill", s.Expression), nil
}

func (p *AstPrinter) VisitVarStmt(s *VarStmt) (interface{}, error) {
	if s.Initializer == nil {
		return fmt.Sprintf("(literally %s)", s.Name.Lexeme), nil
	}
	return p.parenthesize("literally "+s.Name.Lexeme, s.Initializer), nil
}

func (p *AstPrinter) VisitIfStmt(s *IfStmt) (interface{}, error) {
	var b strings.Builder
	b.WriteString("(kalo ")
	b.WriteString(p.Print(s.Condition))
	b.WriteString(" ")
	b.WriteString(p.block(s.Then))
	for _, elif := range s.ElseIfs {
		b.WriteString(" (perhaps ")
		b.WriteString(p.Print(elif.Condition))
		b.WriteString(" ")
		b.WriteString(p.block(elif.Body))
		b.WriteString(")")
	}
	if s.Else != nil {
		b.WriteString(" (kalogak ")
		b.WriteString(p.block(s.Else))
		b.WriteString(")")
	}
	b.WriteString(")")
	return b.String(), nil
}

func (p *AstPrinter) block(stmts []Stmt) string {
	parts := make([]string, 0, len(stmts)+1)
	parts = append(parts, "(block")
	for _, s := range stmts {
		parts = append(parts, p.PrintStmt(s))
	}
	return strings.Join(parts, " ") + ")"
}
