package analysis_test

import (
	"strings"
	"testing"

	"luna/internal/analysis"
	"luna/internal/parser"
)

func check(t *testing.T, input string) []analysis.Diagnostic {
	t.Helper()
	prog, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return analysis.NewChecker().Check(prog)
}

func TestCleanProgram(t *testing.T) {
	diags := check(t, `function add(a, b)
    return a + b
end

local t = {x = 1, y = 2}
t.x = add(t.x, t.y)
t[k] = 3`)

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestAssignToNonLvalue(t *testing.T) {
	diags := check(t, "1 = 2")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if !strings.Contains(diags[0].Msg, "cannot assign") {
		t.Fatalf("unexpected message: %s", diags[0].Msg)
	}
	if diags[0].Pos.Line != 1 || diags[0].Pos.Column != 1 {
		t.Fatalf("expected diagnostic at 1:1, got %d:%d", diags[0].Pos.Line, diags[0].Pos.Column)
	}
}

func TestAssignToCallResult(t *testing.T) {
	diags := check(t, "f() = 1")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
}

func TestDuplicateParameters(t *testing.T) {
	diags := check(t, "function f(a, b, a) end")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if !strings.Contains(diags[0].Msg, `duplicate parameter "a"`) {
		t.Fatalf("unexpected message: %s", diags[0].Msg)
	}
}

func TestDuplicateParametersInFunctionLiteral(t *testing.T) {
	diags := check(t, "local f = function(x, x) return x end")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
}

func TestDuplicateTableKeys(t *testing.T) {
	diags := check(t, "{x = 1, y = 2, x = 3}")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if !strings.Contains(diags[0].Msg, `duplicate table key "x"`) {
		t.Fatalf("unexpected message: %s", diags[0].Msg)
	}
}

func TestComputedKeysAreNotDeduplicated(t *testing.T) {
	// Two computed keys may evaluate to the same value; that is not
	// knowable here, so no finding.
	diags := check(t, "{[a] = 1, [a] = 2}")
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestFindingsInNestedConstructs(t *testing.T) {
	diags := check(t, `if cond then
    for i = 1, 10 do
        1 = 2
    end
else
    {x = 1, x = 2}
end`)

	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", diags)
	}
	if diags[0].Pos.Line != 3 {
		t.Fatalf("expected first finding on line 3, got %d", diags[0].Pos.Line)
	}
	if diags[1].Pos.Line != 6 {
		t.Fatalf("expected second finding on line 6, got %d", diags[1].Pos.Line)
	}
}

func TestAnalysisCollectsAllFindings(t *testing.T) {
	diags := check(t, "1 = 2\n3 = 4\n5 = 6")
	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %v", diags)
	}
}
