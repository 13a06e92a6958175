package parser

import (
	"testing"

	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/lexer"
)

func parseModule(t *testing.T, src string) *ast.Module {
	t.Helper()
	p := New(lexer.New(src))
	m := p.ParseModule()
	if err := p.Err(); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return m
}

func TestParseHelloModule(t *testing.T) {
	src := `MODULE H; BEGIN Write("Hi"); WriteLn(); END H.`
	m := parseModule(t, src)
	if m.Name != "H" || m.TrailingName != "H" {
		t.Fatalf("expected module name H, got %q/%q", m.Name, m.TrailingName)
	}
	if len(m.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(m.Body))
	}
	call, ok := m.Body[0].(*ast.ProcCall)
	if !ok || call.Callee != "Write" {
		t.Fatalf("expected first statement to be Write(...), got %#v", m.Body[0])
	}
}

func TestParseVarsAndSum(t *testing.T) {
	src := `MODULE S; VAR a,b,s: INTEGER; BEGIN a:=10; b:=20; s:=a+b; Write(s); WriteLn(); END S.`
	m := parseModule(t, src)
	if len(m.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(m.Decls))
	}
	vd, ok := m.Decls[0].(*ast.VarDecl)
	if !ok || len(vd.Names) != 3 {
		t.Fatalf("expected VarDecl with 3 names, got %#v", m.Decls[0])
	}
}

func TestParseForLoop(t *testing.T) {
	src := `MODULE L; VAR i: INTEGER; BEGIN FOR i:=1 TO 3 DO Write(i); Write(" "); END; WriteLn(); END L.`
	m := parseModule(t, src)
	forStmt, ok := m.Body[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected a ForStmt, got %#v", m.Body[0])
	}
	if forStmt.Var != "i" || len(forStmt.Body) != 2 {
		t.Fatalf("unexpected ForStmt shape: %#v", forStmt)
	}
}

func TestParseProcedureWithReturn(t *testing.T) {
	src := `MODULE F; PROCEDURE f(n:INTEGER):INTEGER; BEGIN IF n<=1 THEN RETURN 1; ELSE RETURN n*f(n-1); END; END f; BEGIN Write(f(5)); WriteLn(); END F.`
	m := parseModule(t, src)
	proc, ok := m.Decls[0].(*ast.ProcDecl)
	if !ok {
		t.Fatalf("expected a ProcDecl, got %#v", m.Decls[0])
	}
	if proc.Name != "f" || len(proc.Params) != 1 || proc.ReturnType == nil {
		t.Fatalf("unexpected ProcDecl shape: %#v", proc)
	}
	ifStmt, ok := proc.Body[0].(*ast.IfStmt)
	if !ok || ifStmt.Else == nil {
		t.Fatalf("expected an IfStmt with an ELSE branch, got %#v", proc.Body[0])
	}
}

func TestParseMultiDimArrayShorthand(t *testing.T) {
	src := `MODULE M; VAR m: ARRAY 2,2 OF INTEGER; BEGIN m[1,0] := 10; END M.`
	m := parseModule(t, src)
	vd := m.Decls[0].(*ast.VarDecl)
	arr, ok := vd.Type.(*ast.ArrayTypeExpr)
	if !ok || len(arr.Lengths) != 2 {
		t.Fatalf("expected a 2-dimensional array type, got %#v", vd.Type)
	}
	assign := m.Body[0].(*ast.Assignment)
	if len(assign.TargetExpr.Indices) != 2 {
		t.Fatalf("expected designator with 2 indices, got %#v", assign.TargetExpr)
	}
}

func TestParseNestedArrayType(t *testing.T) {
	src := `MODULE M; VAR m: ARRAY 2 OF ARRAY 3 OF INTEGER; BEGIN END M.`
	m := parseModule(t, src)
	vd := m.Decls[0].(*ast.VarDecl)
	outer, ok := vd.Type.(*ast.ArrayTypeExpr)
	if !ok || outer.Lengths[0] != 2 {
		t.Fatalf("expected outer array length 2, got %#v", vd.Type)
	}
	inner, ok := outer.Element.(*ast.ArrayTypeExpr)
	if !ok || inner.Lengths[0] != 3 {
		t.Fatalf("expected inner array length 3, got %#v", outer.Element)
	}
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 should bind as 1 + (2 * 3)
	src := `MODULE P; VAR x: INTEGER; BEGIN x := 1 + 2 * 3; END P.`
	m := parseModule(t, src)
	assign := m.Body[0].(*ast.Assignment)
	bin, ok := assign.Value.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.OpAdd {
		t.Fatalf("expected top-level '+' expression, got %#v", assign.Value)
	}
	rhs, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || rhs.Op != ast.OpMul {
		t.Fatalf("expected right operand to be a '*' expression, got %#v", bin.Right)
	}
}

func TestModuleTrailingNameMismatchIsError(t *testing.T) {
	p := New(lexer.New(`MODULE A; BEGIN END B.`))
	p.ParseModule()
	if p.Err() == nil {
		t.Fatal("expected a parse error for mismatched trailing module name")
	}
}

func TestFirstErrorAborts(t *testing.T) {
	p := New(lexer.New(`MODULE A; BEGIN x := ; END A.`))
	p.ParseModule()
	if p.Err() == nil {
		t.Fatal("expected a parse error for missing expression")
	}
}
