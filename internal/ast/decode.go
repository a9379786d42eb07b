package ast

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// DecodeProgram decodes a top-level JSON array of statement nodes into
// a statement list ready for the program driver.
//
// Decoding goes through gjson rather than encoding/json struct tags
// because node shapes are heterogeneous — the field set differs per
// "kind" — and because the wire format carries two inconsistent
// spellings for a single-sub-expression field ("expr" vs "expression")
// across program generations; that ambiguity is resolved here, at the
// wire boundary, by accepting either spelling.
func DecodeProgram(data []byte) ([]Stmt, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("program is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("program root must be a JSON array of statements")
	}
	var stmts []Stmt
	var decodeErr error
	root.ForEach(func(_, node gjson.Result) bool {
		s, err := decodeStmt(node)
		if err != nil {
			decodeErr = err
			return false
		}
		stmts = append(stmts, s)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return stmts, nil
}

// field returns the first of the candidate field names present on obj.
func field(obj gjson.Result, names ...string) gjson.Result {
	for _, n := range names {
		if v := obj.Get(n); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

func lineOf(obj gjson.Result) int {
	return int(obj.Get("line").Int())
}

func decodeStmtList(arr gjson.Result) ([]Stmt, error) {
	if !arr.Exists() {
		return nil, nil
	}
	var out []Stmt
	var err error
	arr.ForEach(func(_, node gjson.Result) bool {
		var s Stmt
		s, err = decodeStmt(node)
		if err != nil {
			return false
		}
		out = append(out, s)
		return true
	})
	return out, err
}

func decodeExprList(arr gjson.Result) ([]Expr, error) {
	if !arr.Exists() {
		return nil, nil
	}
	var out []Expr
	var err error
	arr.ForEach(func(_, node gjson.Result) bool {
		var e Expr
		e, err = decodeExpr(node)
		if err != nil {
			return false
		}
		out = append(out, e)
		return true
	})
	return out, err
}

func decodeExpr(node gjson.Result) (Expr, error) {
	kind := node.Get("kind").String()
	b := base{line: lineOf(node)}
	switch kind {
	case "null":
		return &NullLit{base: b}, nil
	case "boolean":
		return &BooleanLit{base: b, Value: node.Get("value").Bool()}, nil
	case "string":
		return &StringLit{base: b, Value: node.Get("value").String()}, nil
	case "integer":
		return &IntegerLit{base: b, Value: node.Get("value").String()}, nil
	case "float":
		return &FloatLit{base: b, Value: node.Get("value").String()}, nil
	case "variable", "identifier":
		return &Variable{base: b, Name: node.Get("name").String()}, nil
	case "collection":
		val := node.Get("value")
		lit := &CollectionLit{base: b}
		var err error
		val.ForEach(func(key, v gjson.Result) bool {
			var e Expr
			e, err = decodeExpr(v)
			if err != nil {
				return false
			}
			lit.Keys = append(lit.Keys, key.String())
			lit.Values = append(lit.Values, e)
			return true
		})
		if err != nil {
			return nil, err
		}
		return lit, nil
	case "closure":
		var params []string
		node.Get("params").ForEach(func(_, p gjson.Result) bool {
			params = append(params, p.String())
			return true
		})
		body, err := decodeStmtList(node.Get("body"))
		if err != nil {
			return nil, err
		}
		return &ClosureLit{base: b, Params: params, Body: body}, nil
	case "attribute":
		coll, err := decodeExpr(node.Get("collection"))
		if err != nil {
			return nil, err
		}
		return &Attribute{base: b, Collection: coll, Attribute: node.Get("attribute").String()}, nil
	case "subscriptor":
		coll, err := decodeExpr(node.Get("collection"))
		if err != nil {
			return nil, err
		}
		idx, err := decodeExpr(field(node, "expr", "expression", "index", "key"))
		if err != nil {
			return nil, err
		}
		return &Subscriptor{base: b, Collection: coll, Expr: idx}, nil
	case "unop":
		operand, err := decodeExpr(field(node, "expr", "expression"))
		if err != nil {
			return nil, err
		}
		return &UnOp{base: b, Op: node.Get("op").String(), Expr: operand}, nil
	case "binop":
		e1, err := decodeExpr(field(node, "e1", "left"))
		if err != nil {
			return nil, err
		}
		e2, err := decodeExpr(field(node, "e2", "right"))
		if err != nil {
			return nil, err
		}
		return &BinOp{base: b, Op: node.Get("op").String(), E1: e1, E2: e2}, nil
	case "call":
		fun, err := decodeExpr(node.Get("fun"))
		if err != nil {
			return nil, err
		}
		args, err := decodeExprList(node.Get("args"))
		if err != nil {
			return nil, err
		}
		return &Call{base: b, Fun: fun, Args: args}, nil
	case "ternary":
		test, err := decodeExpr(node.Get("test"))
		if err != nil {
			return nil, err
		}
		trueExpr, err := decodeExpr(field(node, "trueExpr", "then"))
		if err != nil {
			return nil, err
		}
		falseExpr, err := decodeExpr(field(node, "falseExpr", "else"))
		if err != nil {
			return nil, err
		}
		return &Ternary{base: b, Test: test, TrueExpr: trueExpr, FalseExpr: falseExpr}, nil
	default:
		return nil, fmt.Errorf("Line %d: unknown expression kind: %q", b.line, kind)
	}
}

func decodeStmt(node gjson.Result) (Stmt, error) {
	kind := node.Get("kind").String()
	b := base{line: lineOf(node)}
	switch kind {
	case "static":
		e, err := decodeExpr(field(node, "expr", "expression"))
		if err != nil {
			return nil, err
		}
		return &Static{base: b, Expr: e}, nil
	case "assignment":
		targets, err := decodeExprList(node.Get("assignArr"))
		if err != nil {
			return nil, err
		}
		e, err := decodeExpr(field(node, "expr", "expression"))
		if err != nil {
			return nil, err
		}
		return &Assignment{base: b, Targets: targets, Expr: e}, nil
	case "if":
		var clauses []IfClause
		var err error
		node.Get("truePartArr").ForEach(func(_, clause gjson.Result) bool {
			var test Expr
			test, err = decodeExpr(clause.Get("test"))
			if err != nil {
				return false
			}
			var part []Stmt
			part, err = decodeStmtList(clause.Get("part"))
			if err != nil {
				return false
			}
			clauses = append(clauses, IfClause{Test: test, Part: part})
			return true
		})
		if err != nil {
			return nil, err
		}
		elseBody, err := decodeStmtList(node.Get("falsePart"))
		if err != nil {
			return nil, err
		}
		return &If{base: b, Clauses: clauses, ElseBody: elseBody}, nil
	case "while":
		test, err := decodeExpr(node.Get("test"))
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(node.Get("body"))
		if err != nil {
			return nil, err
		}
		return &While{base: b, Test: test, Body: body}, nil
	case "for":
		inits, err := decodeStmtList(node.Get("inits"))
		if err != nil {
			return nil, err
		}
		test, err := decodeExpr(node.Get("test"))
		if err != nil {
			return nil, err
		}
		updates, err := decodeStmtList(node.Get("updates"))
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(node.Get("body"))
		if err != nil {
			return nil, err
		}
		return &For{base: b, Inits: inits, Test: test, Updates: updates, Body: body}, nil
	case "delete":
		target, err := decodeExpr(field(node, "expr", "expression"))
		if err != nil {
			return nil, err
		}
		return &Delete{base: b, Target: target}, nil
	case "return":
		e, err := decodeExpr(field(node, "expr", "expression"))
		if err != nil {
			return nil, err
		}
		return &Return{base: b, Expr: e}, nil
	case "break":
		return &Break{base: b}, nil
	case "continue":
		return &Continue{base: b}, nil
	default:
		return nil, fmt.Errorf("Line %d: unknown statement kind: %q", b.line, kind)
	}
}
