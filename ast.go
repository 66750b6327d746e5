package jaksel

// The AST is a closed set of expression and statement variants. Nodes are
// pure data; their only behavior is double dispatch into a visitor, so any
// new operation over the tree (evaluation, pretty-printing, ...) is a new
// visitor implementation, never a change to the node types.

// Expr is an expression node.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor dispatches over the expression variants.
type ExprVisitor interface {
	VisitLiteralExpr(e *LiteralExpr) (interface{}, error)
	VisitGroupingExpr(e *GroupingExpr) (interface{}, error)
	VisitUnaryExpr(e *UnaryExpr) (interface{}, error)
	VisitBinaryExpr(e *BinaryExpr) (interface{}, error)
	VisitVariableExpr(e *VariableExpr) (interface{}, error)
	VisitAssignExpr(e *AssignExpr) (interface{}, error)
}

// LiteralExpr holds a value decoded at scan time (number, string, ril,
// impossible, hampa).
type LiteralExpr struct {
	Value Value
}

func (e *LiteralExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	Expression Expr
}

func (e *GroupingExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// UnaryExpr is prefix "!" or "-".
type UnaryExpr struct {
	Operator Token
	Right    Expr
}

func (e *UnaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// BinaryExpr covers arithmetic, comparison and equality operators.
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *BinaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// VariableExpr is a variable read.
type VariableExpr struct {
	Name Token
}

func (e *VariableExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// AssignExpr is "name itu value"; the parser guarantees Name came from a
// VariableExpr left-hand side.
type AssignExpr struct {
	Name  Token
	Value Expr
}

func (e *AssignExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// Stmt is a statement node.
type Stmt interface {
	Accept(v StmtVisitor) (interface{}, error)
}

// StmtVisitor dispatches over the statement variants.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) (interface{}, error)
	VisitPrintStmt(s *PrintStmt) (interface{}, error)
	VisitVarStmt(s *VarStmt) (interface{}, error)
	VisitIfStmt(s *IfStmt) (interface{}, error)
}

// ExpressionStmt evaluates an expression for its effects.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitExpressionStmt(s) }

// PrintStmt is "spill expression".
type PrintStmt struct {
	Keyword    Token
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitPrintStmt(s) }

// VarStmt is "literally name (itu initializer)?". Initializer may be nil,
// in which case the variable starts out as hampa.
type VarStmt struct {
	Name        Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitVarStmt(s) }

// ElseIf is one "perhaps condition" branch of a kalo construct.
type ElseIf struct {
	Condition Expr
	Body      []Stmt
}

// IfStmt is the kalo / perhaps* / kalogak? / udahan construct. Exactly one
// branch executes, in a fresh nested scope.
type IfStmt struct {
	Condition Expr
	Then      []Stmt
	ElseIfs   []ElseIf
	Else      []Stmt // nil when there is no kalogak branch
}

func (s *IfStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitIfStmt(s) }
