package ast

import "luna/internal/token"

// Basic interfaces

type Node interface {
	Pos() token.Position
}

type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

// Program

// Program is the root of a parse: the ordered top-level statements.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Pos() token.Position {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Pos()
	}
	return token.Position{}
}

// Op identifies a binary operation.
type Op int

const (
	Add Op = iota
	Subtract
	Multiply
	Divide
	Equals
	GreaterThan
	LessThan
	GreaterThanEquals
	LessThanEquals
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Equals:
		return "=="
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	case GreaterThanEquals:
		return ">="
	case LessThanEquals:
		return "<="
	default:
		return "?"
	}
}

// ---------- Statements ----------

type ReturnStmt struct {
	ReturnPos token.Position
	Result    Expr
}

func (s *ReturnStmt) Pos() token.Position { return s.ReturnPos }
func (s *ReturnStmt) stmtNode()           {}

type LocalStmt struct {
	LocalPos token.Position
	Name     string
	NamePos  token.Position
	Value    Expr
}

func (s *LocalStmt) Pos() token.Position { return s.LocalPos }
func (s *LocalStmt) stmtNode()           {}

type ElseifClause struct {
	ElseifPos token.Position
	Cond      Expr
	Body      []Stmt
}

func (c *ElseifClause) Pos() token.Position { return c.ElseifPos }

type ElseClause struct {
	ElsePos token.Position
	Body    []Stmt
}

func (c *ElseClause) Pos() token.Position { return c.ElsePos }

type IfStmt struct {
	IfPos   token.Position
	Cond    Expr
	Then    []Stmt
	Elseifs []*ElseifClause
	Else    *ElseClause // nil when there is no else branch
}

func (s *IfStmt) Pos() token.Position { return s.IfPos }
func (s *IfStmt) stmtNode()           {}

// NumericForStmt is `for name = start, stop[, step] do body end`.
// Step is nil when absent; the step then defaults to 1 at evaluation time.
type NumericForStmt struct {
	ForPos  token.Position
	Name    string
	NamePos token.Position
	Start   Expr
	Stop    Expr
	Step    Expr
	Body    []Stmt
}

func (s *NumericForStmt) Pos() token.Position { return s.ForPos }
func (s *NumericForStmt) stmtNode()           {}

type FunctionDeclStmt struct {
	FuncPos token.Position
	Name    string
	NamePos token.Position
	Params  []string
	Body    []Stmt
}

func (s *FunctionDeclStmt) Pos() token.Position { return s.FuncPos }
func (s *FunctionDeclStmt) stmtNode()           {}

// AssignStmt accepts any expression shape as its target; whether the target
// is actually assignable (identifier, field, or index) is a later-stage
// semantic concern.
type AssignStmt struct {
	Target    Expr
	AssignPos token.Position
	Value     Expr
}

func (s *AssignStmt) Pos() token.Position { return s.Target.Pos() }
func (s *AssignStmt) stmtNode()           {}

type ExprStmt struct {
	Expression Expr
}

func (s *ExprStmt) Pos() token.Position { return s.Expression.Pos() }
func (s *ExprStmt) stmtNode()           {}

// ---------- Expressions ----------

type Ident struct {
	Name    string
	NamePos token.Position
}

func (e *Ident) Pos() token.Position { return e.NamePos }
func (e *Ident) exprNode()           {}

type NumberLit struct {
	Value  float64
	LitPos token.Position
	Raw    string
}

func (e *NumberLit) Pos() token.Position { return e.LitPos }
func (e *NumberLit) exprNode()           {}

type StringLit struct {
	Value  string
	LitPos token.Position
}

func (e *StringLit) Pos() token.Position { return e.LitPos }
func (e *StringLit) exprNode()           {}

type BoolLit struct {
	Value  bool
	LitPos token.Position
}

func (e *BoolLit) Pos() token.Position { return e.LitPos }
func (e *BoolLit) exprNode()           {}

type NilLit struct {
	LitPos token.Position
}

func (e *NilLit) Pos() token.Position { return e.LitPos }
func (e *NilLit) exprNode()           {}

type FuncLit struct {
	FuncPos token.Position
	Params  []string
	Body    []Stmt
}

func (e *FuncLit) Pos() token.Position { return e.FuncPos }
func (e *FuncLit) exprNode()           {}

// TableItem is one entry of a table constructor. Exactly one keying form
// applies: Name for `name = value`, Key for `[expr] = value`, neither for a
// positional entry.
type TableItem struct {
	Name    string
	NamePos token.Position
	Key     Expr
	Value   Expr
}

func (i *TableItem) Pos() token.Position {
	if i.Name != "" {
		return i.NamePos
	}
	if i.Key != nil {
		return i.Key.Pos()
	}
	return i.Value.Pos()
}

// TableLit preserves item declaration order; order is semantically
// meaningful for positional entries.
type TableLit struct {
	LBrace token.Position
	Items  []*TableItem
	RBrace token.Position
}

func (e *TableLit) Pos() token.Position { return e.LBrace }
func (e *TableLit) exprNode()           {}

type DotExpr struct {
	X       Expr
	Name    string
	NamePos token.Position
}

func (e *DotExpr) Pos() token.Position { return e.X.Pos() }
func (e *DotExpr) exprNode()           {}

type IndexExpr struct {
	X        Expr
	LBracket token.Position
	Index    Expr
	RBracket token.Position
}

func (e *IndexExpr) Pos() token.Position { return e.X.Pos() }
func (e *IndexExpr) exprNode()           {}

type CallExpr struct {
	Callee Expr
	LParen token.Position
	Args   []Expr
	RParen token.Position
}

func (e *CallExpr) Pos() token.Position { return e.Callee.Pos() }
func (e *CallExpr) exprNode()           {}

type BinaryExpr struct {
	OpPos token.Position
	Op    Op
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) Pos() token.Position { return e.Left.Pos() }
func (e *BinaryExpr) exprNode()           {}
