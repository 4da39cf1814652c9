package ast_test

import (
	"encoding/json"
	"strings"
	"testing"

	"luna/internal/ast"
	"luna/internal/parser"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func TestDumpBinaryTree(t *testing.T) {
	prog := parse(t, "1 + 2 * 3")

	want := `Program
  ExprStmt
    Binary op=+
      Left:
        Number 1
      Right:
        Binary op=*
          Left:
            Number 2
          Right:
            Number 3
`
	if got := ast.Dump(prog); got != want {
		t.Fatalf("dump mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpStatements(t *testing.T) {
	prog := parse(t, `local x = 1
if x then
    return x
else
    return nil
end`)

	got := ast.Dump(prog)
	for _, line := range []string{
		"Local name=x",
		"If",
		"Cond:",
		"Then:",
		"Else:",
		"Return",
		"Nil",
	} {
		if !strings.Contains(got, line) {
			t.Fatalf("dump missing %q:\n%s", line, got)
		}
	}
}

func TestDumpTableItemForms(t *testing.T) {
	prog := parse(t, "{1, x = 2, [y] = 3}")

	got := ast.Dump(prog)
	for _, line := range []string{
		"Item:",
		"Item name=x:",
		"Item key:",
	} {
		if !strings.Contains(got, line) {
			t.Fatalf("dump missing %q:\n%s", line, got)
		}
	}
}

func TestDumpPreservesNumberSpelling(t *testing.T) {
	got := ast.Dump(parse(t, "21.5"))
	if !strings.Contains(got, "Number 21.5") {
		t.Fatalf("expected raw spelling 21.5 in dump:\n%s", got)
	}
}

func TestOpStrings(t *testing.T) {
	tests := []struct {
		op   ast.Op
		want string
	}{
		{ast.Add, "+"},
		{ast.Subtract, "-"},
		{ast.Multiply, "*"},
		{ast.Divide, "/"},
		{ast.Equals, "=="},
		{ast.GreaterThan, ">"},
		{ast.LessThan, "<"},
		{ast.GreaterThanEquals, ">="},
		{ast.LessThanEquals, "<="},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Fatalf("Op %d: expected %q, got %q", tt.op, tt.want, got)
		}
	}
}

func TestMarshalJSONShape(t *testing.T) {
	prog := parse(t, `local x = a.b(1)`)

	data, err := ast.MarshalJSON(prog)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if root["kind"] != "Program" {
		t.Fatalf("expected kind Program, got %v", root["kind"])
	}

	stmts := root["stmts"].([]any)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}

	local := stmts[0].(map[string]any)
	if local["kind"] != "Local" || local["name"] != "x" {
		t.Fatalf("expected Local x, got %v", local)
	}

	call := local["expr"].(map[string]any)
	if call["kind"] != "Call" {
		t.Fatalf("expected Call, got %v", call["kind"])
	}
	dot := call["callee"].(map[string]any)
	if dot["kind"] != "Dot" || dot["field"] != "b" {
		t.Fatalf("expected Dot .b callee, got %v", dot)
	}
	args := call["args"].([]any)
	if len(args) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(args))
	}
	if arg := args[0].(map[string]any); arg["kind"] != "Number" || arg["value"].(float64) != 1 {
		t.Fatalf("expected Number 1 argument, got %v", args[0])
	}
}

func TestMarshalJSONTableItems(t *testing.T) {
	prog := parse(t, "{1, x = 2, [y] = 3}")

	data, err := ast.MarshalJSON(prog)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	table := root["stmts"].([]any)[0].(map[string]any)["expr"].(map[string]any)
	if table["kind"] != "Table" {
		t.Fatalf("expected Table, got %v", table["kind"])
	}

	items := table["items"].([]any)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	first := items[0].(map[string]any)
	if _, has := first["name"]; has {
		t.Fatalf("positional item should carry no name: %v", first)
	}
	second := items[1].(map[string]any)
	if second["name"] != "x" {
		t.Fatalf("expected name x on second item, got %v", second)
	}
	third := items[2].(map[string]any)
	key, ok := third["key"].(map[string]any)
	if !ok || key["kind"] != "Ident" {
		t.Fatalf("expected computed Ident key on third item, got %v", third)
	}
}

func TestPositionsPointAtNodeStart(t *testing.T) {
	prog := parse(t, "local x = 1\ny = a + b")

	local := prog.Stmts[0].(*ast.LocalStmt)
	if p := local.Pos(); p.Line != 1 || p.Column != 1 {
		t.Fatalf("expected local at 1:1, got %d:%d", p.Line, p.Column)
	}

	assign := prog.Stmts[1].(*ast.AssignStmt)
	if p := assign.Pos(); p.Line != 2 || p.Column != 1 {
		t.Fatalf("expected assignment at 2:1, got %d:%d", p.Line, p.Column)
	}

	// A binary node reports its left operand's position.
	bin := assign.Value.(*ast.BinaryExpr)
	if p := bin.Pos(); p.Line != 2 || p.Column != 5 {
		t.Fatalf("expected expression at 2:5, got %d:%d", p.Line, p.Column)
	}
}
