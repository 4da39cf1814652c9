// Package analysis performs post-parse checks that the grammar alone cannot
// express: assignment targets must be lvalues, parameter lists must not
// repeat names, and record keys within one table literal must be unique.
package analysis

import (
	"fmt"

	"luna/internal/ast"
	"luna/internal/token"
)

// Diagnostic is a single finding with the position it refers to.
type Diagnostic struct {
	Pos token.Position
	Msg string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Pos.Line, d.Pos.Column, d.Msg)
}

// Checker walks a program and collects diagnostics. Unlike parsing, analysis
// does not stop at the first finding.
type Checker struct {
	diags []Diagnostic
}

func NewChecker() *Checker {
	return &Checker{}
}

// Check walks the program and returns every diagnostic found, in source
// order within each construct.
func (c *Checker) Check(prog *ast.Program) []Diagnostic {
	c.checkStmts(prog.Stmts)
	return c.diags
}

func (c *Checker) errorf(pos token.Position, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

func (c *Checker) checkStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		c.checkStmt(s)
	}
}

func (c *Checker) checkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		c.checkExpr(s.Result)

	case *ast.LocalStmt:
		c.checkExpr(s.Value)

	case *ast.IfStmt:
		c.checkExpr(s.Cond)
		c.checkStmts(s.Then)
		for _, clause := range s.Elseifs {
			c.checkExpr(clause.Cond)
			c.checkStmts(clause.Body)
		}
		if s.Else != nil {
			c.checkStmts(s.Else.Body)
		}

	case *ast.NumericForStmt:
		c.checkExpr(s.Start)
		c.checkExpr(s.Stop)
		if s.Step != nil {
			c.checkExpr(s.Step)
		}
		c.checkStmts(s.Body)

	case *ast.FunctionDeclStmt:
		c.checkParams(s.Params, s.Pos())
		c.checkStmts(s.Body)

	case *ast.AssignStmt:
		if !isLvalue(s.Target) {
			c.errorf(s.Target.Pos(), "cannot assign to this expression")
		}
		c.checkExpr(s.Target)
		c.checkExpr(s.Value)

	case *ast.ExprStmt:
		c.checkExpr(s.Expression)
	}
}

func (c *Checker) checkExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.FuncLit:
		c.checkParams(e.Params, e.Pos())
		c.checkStmts(e.Body)

	case *ast.TableLit:
		seen := make(map[string]bool)
		for _, item := range e.Items {
			if item.Name != "" {
				if seen[item.Name] {
					c.errorf(item.NamePos, "duplicate table key %q", item.Name)
				}
				seen[item.Name] = true
			}
			if item.Key != nil {
				c.checkExpr(item.Key)
			}
			c.checkExpr(item.Value)
		}

	case *ast.DotExpr:
		c.checkExpr(e.X)

	case *ast.IndexExpr:
		c.checkExpr(e.X)
		c.checkExpr(e.Index)

	case *ast.CallExpr:
		c.checkExpr(e.Callee)
		for _, a := range e.Args {
			c.checkExpr(a)
		}

	case *ast.BinaryExpr:
		c.checkExpr(e.Left)
		c.checkExpr(e.Right)
	}
}

func (c *Checker) checkParams(params []string, pos token.Position) {
	seen := make(map[string]bool)
	for _, name := range params {
		if seen[name] {
			c.errorf(pos, "duplicate parameter %q", name)
		}
		seen[name] = true
	}
}

// isLvalue reports whether an expression may appear left of an assignment:
// a name, a field access or an index access.
func isLvalue(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Ident, *ast.DotExpr, *ast.IndexExpr:
		return true
	}
	return false
}
