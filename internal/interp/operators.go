package interp

import (
	"math"

	"github.com/scopescript-go/scopescript/internal/ast"
	"github.com/scopescript-go/scopescript/internal/errors"
)

// evalUnOp handles !, ~, +, -, and the prefix-only ++/--. ++/--
// read the operand, compute the new value, and assign it back
// through the l-value protocol — they are the one unary form that can
// fail on a non-assignable operand.
func (in *Interpreter) evalUnOp(env *Environment, e *ast.UnOp) (Value, error) {
	switch e.Op {
	case "++", "--":
		return in.evalIncDec(env, e)
	}

	v, err := in.eval(env, e.Expr)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case "!":
		return Boolean{Value: !truthy(v)}, nil
	case "~":
		if !isIntegerLike(v) {
			return nil, errors.New(e.Line(), "bad operand type for unary ~: <%s>", v.Kind())
		}
		return Integer{Value: ^numAsInt(v)}, nil
	case "+":
		if !isNumber(v) {
			return nil, errors.New(e.Line(), "bad operand type for unary +: <%s>", v.Kind())
		}
		return v, nil
	case "-":
		if !isNumber(v) {
			return nil, errors.New(e.Line(), "bad operand type for unary -: <%s>", v.Kind())
		}
		if isFloatValue(v) {
			return Float{Value: -numAsFloat(v)}, nil
		}
		return Integer{Value: -numAsInt(v)}, nil
	default:
		return nil, errors.New(e.Line(), "unknown operator: %s", e.Op)
	}
}

func (in *Interpreter) evalIncDec(env *Environment, e *ast.UnOp) (Value, error) {
	v, err := in.eval(env, e.Expr)
	if err != nil {
		return nil, err
	}
	if !isNumber(v) {
		return nil, errors.New(e.Line(), "bad operand type for %s: <%s>", e.Op, v.Kind())
	}
	delta := int64(1)
	if e.Op == "--" {
		delta = -1
	}
	var result Value
	if isFloatValue(v) {
		result = Float{Value: numAsFloat(v) + float64(delta)}
	} else {
		result = Integer{Value: numAsInt(v) + delta}
	}
	if !isAssignable(e.Expr) {
		return nil, errors.New(e.Line(), "invalid prefix %s target", e.Op)
	}
	return in.assign(env, e.Expr, result)
}

func isAssignable(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Variable, *ast.Attribute, *ast.Subscriptor:
		return true
	}
	return false
}

// evalBinOp handles every binary operator, including the short-circuit
// logical forms.
func (in *Interpreter) evalBinOp(env *Environment, e *ast.BinOp) (Value, error) {
	if e.Op == "&&" || e.Op == "||" {
		return in.evalLogical(env, e)
	}

	left, err := in.eval(env, e.E1)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(env, e.E2)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "+", "-", "*", "/", "%", "**":
		return evalArith(e.Line(), e.Op, left, right)
	case "<<", ">>", "&", "|", "^":
		return evalBitwise(e.Line(), e.Op, left, right)
	case "==", "!=":
		eq := valuesEqual(left, right)
		if e.Op == "!=" {
			eq = !eq
		}
		return Boolean{Value: eq}, nil
	case "<", ">", "<=", ">=":
		return evalCompare(e.Line(), e.Op, left, right)
	default:
		return nil, errors.New(e.Line(), "unknown operator: %s", e.Op)
	}
}

func (in *Interpreter) evalLogical(env *Environment, e *ast.BinOp) (Value, error) {
	left, err := in.eval(env, e.E1)
	if err != nil {
		return nil, err
	}
	if e.Op == "&&" {
		if !truthy(left) {
			return left, nil
		}
	} else { // "||"
		if truthy(left) {
			return left, nil
		}
	}
	return in.eval(env, e.E2)
}

func evalArith(line int, op string, left, right Value) (Value, error) {
	if op == "+" {
		ls, lok := left.(String)
		rs, rok := right.(String)
		if lok && rok {
			return String{Value: ls.Value + rs.Value}, nil
		}
	}
	if !isNumber(left) || !isNumber(right) {
		return nil, errors.New(line, "unsupported operand type(s) for %s: <%s> and <%s>", op, left.Kind(), right.Kind())
	}

	resultFloat := op == "/" || isFloatValue(left) || isFloatValue(right)
	lf, rf := numAsFloat(left), numAsFloat(right)

	var f float64
	switch op {
	case "+":
		f = lf + rf
	case "-":
		f = lf - rf
	case "*":
		f = lf * rf
	case "/":
		f = lf / rf
	case "%":
		if resultFloat {
			f = math.Mod(lf, rf)
		} else {
			li, ri := numAsInt(left), numAsInt(right)
			if ri == 0 {
				return nil, errors.New(line, "integer division or modulo by zero")
			}
			return Integer{Value: li % ri}, nil
		}
	case "**":
		f = math.Pow(lf, rf)
	}
	if resultFloat {
		return Float{Value: f}, nil
	}
	return Integer{Value: int64(f)}, nil
}

func evalBitwise(line int, op string, left, right Value) (Value, error) {
	if !isIntegerLike(left) || !isIntegerLike(right) {
		return nil, errors.New(line, "unsupported operand type(s) for %s: <%s> and <%s>", op, left.Kind(), right.Kind())
	}
	l, r := numAsInt(left), numAsInt(right)
	switch op {
	case "<<":
		return Integer{Value: l << uint(r)}, nil
	case ">>":
		return Integer{Value: l >> uint(r)}, nil
	case "&":
		return Integer{Value: l & r}, nil
	case "|":
		return Integer{Value: l | r}, nil
	case "^":
		return Integer{Value: l ^ r}, nil
	}
	return nil, errors.New(line, "unknown operator: %s", op)
}

func evalCompare(line int, op string, left, right Value) (Value, error) {
	var cmp int
	switch {
	case isNumber(left) && isNumber(right):
		lf, rf := numAsFloat(left), numAsFloat(right)
		switch {
		case lf < rf:
			cmp = -1
		case lf > rf:
			cmp = 1
		}
	case isStringValue(left) && isStringValue(right):
		ls, rs := left.(String).Value, right.(String).Value
		switch {
		case ls < rs:
			cmp = -1
		case ls > rs:
			cmp = 1
		}
	default:
		return nil, errors.New(line, "unsupported operand type(s) for %s: <%s> and <%s>", op, left.Kind(), right.Kind())
	}

	var result bool
	switch op {
	case "<":
		result = cmp < 0
	case ">":
		result = cmp > 0
	case "<=":
		result = cmp <= 0
	case ">=":
		result = cmp >= 0
	}
	return Boolean{Value: result}, nil
}

func isStringValue(v Value) bool {
	_, ok := v.(String)
	return ok
}

// valuesEqual implements the == / != contract: strict equality across
// matching numeric domains and strings; mismatched kinds compare
// unequal, except that numbers (integer/float/boolean) compare across
// their shared numeric domain per the is-number predicate.
func valuesEqual(a, b Value) bool {
	if isNumber(a) && isNumber(b) {
		return numAsFloat(a) == numAsFloat(b)
	}
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	case *Collection:
		bv, ok := b.(*Collection)
		return ok && collectionsEqual(av, bv)
	case *Closure:
		bv, ok := b.(*Closure)
		return ok && av == bv
	}
	return false
}

// collectionsEqual compares two collections structurally: same number
// of entries, and every key in a present in b with a valuesEqual
// value. Order doesn't matter.
func collectionsEqual(a, b *Collection) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.keys {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || !valuesEqual(av, bv) {
			return false
		}
	}
	return true
}
