package jaksel

import (
	"errors"
	"fmt"
	"io"
)

// Interpreter walks the statement tree and executes it directly. It is the
// canonical visitor over both node kinds.
//
// The global environment persists across Interpret calls, so variables
// defined on one REPL line remain visible on the next. A runtime failure
// aborts the remainder of the current run (unlike parse errors, runtime
// errors are not individually recovered) and is surfaced to the Reporter
// with the offending token.
type Interpreter struct {
	globals  *Environment
	env      *Environment
	out      io.Writer
	reporter *Reporter

	lastValue Value
	hadValue  bool
}

// NewInterpreter creates an interpreter whose spill output goes to out.
func NewInterpreter(out io.Writer, reporter *Reporter) *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{
		globals:  globals,
		env:      globals,
		out:      out,
		reporter: reporter,
	}
}

// Globals exposes the persistent top-level environment.
func (ip *Interpreter) Globals() *Environment { return ip.globals }

// Interpret runs the statements strictly in order. Nil entries (statements
// the parser could not build) are skipped. It returns the value of the last
// bare expression statement, if any, so a REPL can echo it, and whether the
// run completed without a runtime error.
func (ip *Interpreter) Interpret(stmts []Stmt) (Value, bool, bool) {
	ip.lastValue = Nil
	ip.hadValue = false
	for _, s := range stmts {
		if s == nil {
			continue
		}
		if err := ip.execute(s); err != nil {
			var rerr *RuntimeError
			if errors.As(err, &rerr) {
				ip.reporter.ReportRuntimeError(rerr)
			} else {
				ip.reporter.ReportRuntimeError(&RuntimeError{Msg: err.Error()})
			}
			return Nil, false, false
		}
	}
	return ip.lastValue, ip.hadValue, true
}

func (ip *Interpreter) execute(s Stmt) error {
	_, err := s.Accept(ip)
	return err
}

// executeBlock runs a branch body inside env, restoring the previous scope
// on the way out.
func (ip *Interpreter) executeBlock(stmts []Stmt, env *Environment) error {
	prev := ip.env
	ip.env = env
	defer func() { ip.env = prev }()
	for _, s := range stmts {
		if s == nil {
			continue
		}
		if err := ip.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interpreter) evaluate(e Expr) (Value, error) {
	v, err := e.Accept(ip)
	if err != nil {
		return Nil, err
	}
	return v.(Value), nil
}

// ───────────────────────── statements ─────────────────────────

func (ip *Interpreter) VisitExpressionStmt(s *ExpressionStmt) (interface{}, error) {
	v, err := ip.evaluate(s.Expression)
	if err != nil {
		return nil, err
	}
	ip.lastValue = v
	ip.hadValue = true
	return nil, nil
}

func (ip *Interpreter) VisitPrintStmt(s *PrintStmt) (interface{}, error) {
	v, err := ip.evaluate(s.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(ip.out, FormatValue(v))
	return nil, nil
}

func (ip *Interpreter) VisitVarStmt(s *VarStmt) (interface{}, error) {
	value := Nil
	if s.Initializer != nil {
		var err error
		value, err = ip.evaluate(s.Initializer)
		if err != nil {
			return nil, err
		}
	}
	ip.env.Define(s.Name.Lexeme, value)
	return nil, nil
}

func (ip *Interpreter) VisitIfStmt(s *IfStmt) (interface{}, error) {
	cond, err := ip.evaluate(s.Condition)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return nil, ip.executeBlock(s.Then, NewEnvironment(ip.env))
	}
	for _, elif := range s.ElseIfs {
		cond, err := ip.evaluate(elif.Condition)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return nil, ip.executeBlock(elif.Body, NewEnvironment(ip.env))
		}
	}
	if s.Else != nil {
		return nil, ip.executeBlock(s.Else, NewEnvironment(ip.env))
	}
	return nil, nil
}

// ───────────────────────── expressions ─────────────────────────

func (ip *Interpreter) VisitLiteralExpr(e *LiteralExpr) (interface{}, error) {
	return e.Value, nil
}

func (ip *Interpreter) VisitGroupingExpr(e *GroupingExpr) (interface{}, error) {
	v, err := ip.evaluate(e.Expression)
	return v, err
}

func (ip *Interpreter) VisitVariableExpr(e *VariableExpr) (interface{}, error) {
	return ip.env.Get(e.Name)
}

func (ip *Interpreter) VisitAssignExpr(e *AssignExpr) (interface{}, error) {
	value, err := ip.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if err := ip.env.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (ip *Interpreter) VisitUnaryExpr(e *UnaryExpr) (interface{}, error) {
	right, err := ip.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case BANG:
		return Bool(!right.Truthy()), nil
	case MINUS:
		n, err := numberOperand(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return Num(-n), nil
	}
	return nil, &RuntimeError{Token: e.Operator, Msg: "unknown unary operator"}
}

func (ip *Interpreter) VisitBinaryExpr(e *BinaryExpr) (interface{}, error) {
	left, err := ip.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := ip.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case PLUS:
		if left.Tag == VTNum && right.Tag == VTNum {
			return Num(left.Data.(float64) + right.Data.(float64)), nil
		}
		if left.Tag == VTStr && right.Tag == VTStr {
			return Str(left.Data.(string) + right.Data.(string)), nil
		}
		return nil, &RuntimeError{Token: e.Operator, Msg: "Operands must be two numbers or two strings."}
	case EQUAL_EQUAL:
		return Bool(left.Equal(right)), nil
	case BANG_EQUAL:
		return Bool(!left.Equal(right)), nil
	}

	// The remaining operators are numeric only. Division by zero follows
	// IEEE double semantics (infinity/NaN), it is not an error.
	l, r, err := numberOperands(e.Operator, left, right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case MINUS:
		return Num(l - r), nil
	case STAR:
		return Num(l * r), nil
	case SLASH:
		return Num(l / r), nil
	case GREATER:
		return Bool(l > r), nil
	case GREATER_EQUAL:
		return Bool(l >= r), nil
	case LESS:
		return Bool(l < r), nil
	case LESS_EQUAL:
		return Bool(l <= r), nil
	}
	return nil, &RuntimeError{Token: e.Operator, Msg: "unknown binary operator"}
}

func numberOperand(op Token, v Value) (float64, error) {
	if v.Tag != VTNum {
		return 0, &RuntimeError{Token: op, Msg: "Operand must be a number."}
	}
	return v.Data.(float64), nil
}

func numberOperands(op Token, l, r Value) (float64, float64, error) {
	if l.Tag != VTNum || r.Tag != VTNum {
		return 0, 0, &RuntimeError{Token: op, Msg: "Operands must be a number."}
	}
	return l.Data.(float64), r.Data.(float64), nil
}
