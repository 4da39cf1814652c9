package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump returns a human-readable representation of the AST.
func Dump(node Node) string {
	var sb strings.Builder
	fprintNode(&sb, node, 0)
	return sb.String()
}

func fprintNode(w io.Writer, n Node, indent int) {
	if n == nil {
		return
	}

	ind := strings.Repeat("  ", indent)

	switch n := n.(type) {
	case *Program:
		fmt.Fprintf(w, "%sProgram\n", ind)
		for _, s := range n.Stmts {
			fprintNode(w, s, indent+1)
		}

	case *ReturnStmt:
		fmt.Fprintf(w, "%sReturn\n", ind)
		fprintNode(w, n.Result, indent+1)

	case *LocalStmt:
		fmt.Fprintf(w, "%sLocal name=%s\n", ind, n.Name)
		fprintNode(w, n.Value, indent+1)

	case *IfStmt:
		fmt.Fprintf(w, "%sIf\n", ind)
		fmt.Fprintf(w, "%s  Cond:\n", ind)
		fprintNode(w, n.Cond, indent+2)
		fmt.Fprintf(w, "%s  Then:\n", ind)
		fprintStmts(w, n.Then, indent+2)
		for _, c := range n.Elseifs {
			fmt.Fprintf(w, "%s  Elseif:\n", ind)
			fmt.Fprintf(w, "%s    Cond:\n", ind)
			fprintNode(w, c.Cond, indent+3)
			fmt.Fprintf(w, "%s    Body:\n", ind)
			fprintStmts(w, c.Body, indent+3)
		}
		if n.Else != nil {
			fmt.Fprintf(w, "%s  Else:\n", ind)
			fprintStmts(w, n.Else.Body, indent+2)
		}

	case *NumericForStmt:
		fmt.Fprintf(w, "%sNumericFor var=%s\n", ind, n.Name)
		fmt.Fprintf(w, "%s  Start:\n", ind)
		fprintNode(w, n.Start, indent+2)
		fmt.Fprintf(w, "%s  Stop:\n", ind)
		fprintNode(w, n.Stop, indent+2)
		if n.Step != nil {
			fmt.Fprintf(w, "%s  Step:\n", ind)
			fprintNode(w, n.Step, indent+2)
		}
		fmt.Fprintf(w, "%s  Body:\n", ind)
		fprintStmts(w, n.Body, indent+2)

	case *FunctionDeclStmt:
		fmt.Fprintf(w, "%sFunctionDecl name=%s params=(%s)\n", ind, n.Name, strings.Join(n.Params, ", "))
		fprintStmts(w, n.Body, indent+1)

	case *AssignStmt:
		fmt.Fprintf(w, "%sAssign\n", ind)
		fmt.Fprintf(w, "%s  Target:\n", ind)
		fprintNode(w, n.Target, indent+2)
		fmt.Fprintf(w, "%s  Value:\n", ind)
		fprintNode(w, n.Value, indent+2)

	case *ExprStmt:
		fmt.Fprintf(w, "%sExprStmt\n", ind)
		fprintNode(w, n.Expression, indent+1)

	case *Ident:
		fmt.Fprintf(w, "%sIdent %s\n", ind, n.Name)

	case *NumberLit:
		fmt.Fprintf(w, "%sNumber %s\n", ind, n.Raw)

	case *StringLit:
		fmt.Fprintf(w, "%sString %q\n", ind, n.Value)

	case *BoolLit:
		fmt.Fprintf(w, "%sBool %v\n", ind, n.Value)

	case *NilLit:
		fmt.Fprintf(w, "%sNil\n", ind)

	case *FuncLit:
		fmt.Fprintf(w, "%sFuncLit params=(%s)\n", ind, strings.Join(n.Params, ", "))
		fprintStmts(w, n.Body, indent+1)

	case *TableLit:
		fmt.Fprintf(w, "%sTable\n", ind)
		for _, item := range n.Items {
			switch {
			case item.Name != "":
				fmt.Fprintf(w, "%s  Item name=%s:\n", ind, item.Name)
			case item.Key != nil:
				fmt.Fprintf(w, "%s  Item key:\n", ind)
				fprintNode(w, item.Key, indent+2)
			default:
				fmt.Fprintf(w, "%s  Item:\n", ind)
			}
			fprintNode(w, item.Value, indent+2)
		}

	case *DotExpr:
		fmt.Fprintf(w, "%sDot name=%s\n", ind, n.Name)
		fprintNode(w, n.X, indent+1)

	case *IndexExpr:
		fmt.Fprintf(w, "%sIndex\n", ind)
		fmt.Fprintf(w, "%s  X:\n", ind)
		fprintNode(w, n.X, indent+2)
		fmt.Fprintf(w, "%s  Key:\n", ind)
		fprintNode(w, n.Index, indent+2)

	case *CallExpr:
		fmt.Fprintf(w, "%sCall\n", ind)
		fmt.Fprintf(w, "%s  Callee:\n", ind)
		fprintNode(w, n.Callee, indent+2)
		if len(n.Args) > 0 {
			fmt.Fprintf(w, "%s  Args:\n", ind)
			for _, a := range n.Args {
				fprintNode(w, a, indent+2)
			}
		}

	case *BinaryExpr:
		fmt.Fprintf(w, "%sBinary op=%s\n", ind, n.Op)
		fmt.Fprintf(w, "%s  Left:\n", ind)
		fprintNode(w, n.Left, indent+2)
		fmt.Fprintf(w, "%s  Right:\n", ind)
		fprintNode(w, n.Right, indent+2)

	default:
		fmt.Fprintf(w, "%s<unknown node %T>\n", ind, n)
	}
}

func fprintStmts(w io.Writer, stmts []Stmt, indent int) {
	for _, s := range stmts {
		fprintNode(w, s, indent)
	}
}
