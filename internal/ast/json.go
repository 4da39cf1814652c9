package ast

import "encoding/json"

// MarshalJSON encodes a tree as indented JSON with a "kind" discriminator on
// every node, for consumption by external tooling.
func MarshalJSON(node Node) ([]byte, error) {
	return json.MarshalIndent(jsonValue(node), "", "  ")
}

func jsonValue(n Node) any {
	if n == nil {
		return nil
	}

	switch n := n.(type) {
	case *Program:
		return map[string]any{"kind": "Program", "stmts": jsonStmts(n.Stmts)}

	case *ReturnStmt:
		return map[string]any{"kind": "Return", "expr": jsonValue(n.Result)}

	case *LocalStmt:
		return map[string]any{"kind": "Local", "name": n.Name, "expr": jsonValue(n.Value)}

	case *IfStmt:
		m := map[string]any{
			"kind": "If",
			"cond": jsonValue(n.Cond),
			"then": jsonStmts(n.Then),
		}
		if len(n.Elseifs) > 0 {
			clauses := make([]any, len(n.Elseifs))
			for i, c := range n.Elseifs {
				clauses[i] = map[string]any{"cond": jsonValue(c.Cond), "body": jsonStmts(c.Body)}
			}
			m["elseifs"] = clauses
		}
		if n.Else != nil {
			m["else"] = jsonStmts(n.Else.Body)
		}
		return m

	case *NumericForStmt:
		m := map[string]any{
			"kind":  "NumericFor",
			"var":   n.Name,
			"start": jsonValue(n.Start),
			"stop":  jsonValue(n.Stop),
			"body":  jsonStmts(n.Body),
		}
		if n.Step != nil {
			m["step"] = jsonValue(n.Step)
		}
		return m

	case *FunctionDeclStmt:
		return map[string]any{
			"kind":   "FunctionDecl",
			"name":   n.Name,
			"params": n.Params,
			"body":   jsonStmts(n.Body),
		}

	case *AssignStmt:
		return map[string]any{"kind": "Assign", "target": jsonValue(n.Target), "value": jsonValue(n.Value)}

	case *ExprStmt:
		return map[string]any{"kind": "ExprStmt", "expr": jsonValue(n.Expression)}

	case *Ident:
		return map[string]any{"kind": "Ident", "name": n.Name}

	case *NumberLit:
		return map[string]any{"kind": "Number", "value": n.Value}

	case *StringLit:
		return map[string]any{"kind": "String", "value": n.Value}

	case *BoolLit:
		return map[string]any{"kind": "Bool", "value": n.Value}

	case *NilLit:
		return map[string]any{"kind": "Nil"}

	case *FuncLit:
		return map[string]any{"kind": "FuncLit", "params": n.Params, "body": jsonStmts(n.Body)}

	case *TableLit:
		items := make([]any, len(n.Items))
		for i, item := range n.Items {
			m := map[string]any{"value": jsonValue(item.Value)}
			switch {
			case item.Name != "":
				m["name"] = item.Name
			case item.Key != nil:
				m["key"] = jsonValue(item.Key)
			}
			items[i] = m
		}
		return map[string]any{"kind": "Table", "items": items}

	case *DotExpr:
		return map[string]any{"kind": "Dot", "object": jsonValue(n.X), "field": n.Name}

	case *IndexExpr:
		return map[string]any{"kind": "Index", "object": jsonValue(n.X), "key": jsonValue(n.Index)}

	case *CallExpr:
		args := make([]any, len(n.Args))
		for i, a := range n.Args {
			args[i] = jsonValue(a)
		}
		return map[string]any{"kind": "Call", "callee": jsonValue(n.Callee), "args": args}

	case *BinaryExpr:
		return map[string]any{
			"kind":  "Binary",
			"op":    n.Op.String(),
			"left":  jsonValue(n.Left),
			"right": jsonValue(n.Right),
		}

	default:
		return map[string]any{"kind": "unknown"}
	}
}

func jsonStmts(stmts []Stmt) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = jsonValue(s)
	}
	return out
}
