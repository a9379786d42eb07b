package interp

import (
	"math"
	"strconv"
	"strings"

	"github.com/scopescript-go/scopescript/internal/ast"
	"github.com/scopescript-go/scopescript/internal/errors"
)

// builtins is the single name->handler mapping: a flat map keeps
// resolution O(1) and lets a user closure of the same name shadow a
// built-in by simply being looked up first.
var builtins = map[string]builtinFunc{
	"type":  biType,
	"ord":   biOrd,
	"len":   biLen,
	"bool":  biBool,
	"int":   biInt,
	"float": biFloat,
	"str":   biStr,
	"abs":   biAbs,
	"print": biPrint,
	"pow":   biPow,
}

// evalArgs evaluates each argument expression in order against env —
// every built-in except print wants its arguments pre-evaluated.
func (in *Interpreter) evalArgs(env *Environment, args []ast.Expr) ([]Value, error) {
	vals := make([]Value, len(args))
	for i, a := range args {
		v, err := in.eval(env, a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func requireArity(line int, name string, args []ast.Expr, n int) error {
	if len(args) != n {
		return errors.New(line, "invalid argument count for %s(...): %d", name, len(args))
	}
	return nil
}

func biType(in *Interpreter, env *Environment, args []ast.Expr, line int) (Value, error) {
	if err := requireArity(line, "type", args, 1); err != nil {
		return nil, err
	}
	vals, err := in.evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	return String{Value: vals[0].Kind()}, nil
}

func biOrd(in *Interpreter, env *Environment, args []ast.Expr, line int) (Value, error) {
	if err := requireArity(line, "ord", args, 1); err != nil {
		return nil, err
	}
	vals, err := in.evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	r, err := assertSingleCharString(line, vals[0])
	if err != nil {
		return nil, err
	}
	return Integer{Value: int64(r)}, nil
}

func biLen(in *Interpreter, env *Environment, args []ast.Expr, line int) (Value, error) {
	if err := requireArity(line, "len", args, 1); err != nil {
		return nil, err
	}
	vals, err := in.evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	switch v := vals[0].(type) {
	case String:
		return Integer{Value: int64(len([]rune(v.Value)))}, nil
	case *Collection:
		return Integer{Value: int64(v.Len())}, nil
	default:
		return nil, errors.New(line, "invalid argument type for len(...): <%s>", v.Kind())
	}
}

func biBool(in *Interpreter, env *Environment, args []ast.Expr, line int) (Value, error) {
	if err := requireArity(line, "bool", args, 1); err != nil {
		return nil, err
	}
	vals, err := in.evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	return Boolean{Value: truthy(vals[0])}, nil
}

func biInt(in *Interpreter, env *Environment, args []ast.Expr, line int) (Value, error) {
	if err := requireArity(line, "int", args, 1); err != nil {
		return nil, err
	}
	vals, err := in.evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	v := vals[0]
	if s, ok := v.(String); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(s.Value), 10, 64)
		if err != nil {
			return nil, errors.New(line, "invalid literal for int(...) with base 10: '%s'", s.Value)
		}
		return Integer{Value: n}, nil
	}
	if !isNumber(v) {
		return nil, errors.New(line, "invalid argument type for int(...): <%s>", v.Kind())
	}
	return Integer{Value: int64(numAsFloat(v))}, nil
}

func biFloat(in *Interpreter, env *Environment, args []ast.Expr, line int) (Value, error) {
	if err := requireArity(line, "float", args, 1); err != nil {
		return nil, err
	}
	vals, err := in.evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	v := vals[0]
	if s, ok := v.(String); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
		if err != nil {
			return nil, errors.New(line, "could not convert string to float(...): '%s'", s.Value)
		}
		return Float{Value: f}, nil
	}
	if !isNumber(v) {
		return nil, errors.New(line, "invalid argument type for float(...): <%s>", v.Kind())
	}
	return Float{Value: numAsFloat(v)}, nil
}

func biStr(in *Interpreter, env *Environment, args []ast.Expr, line int) (Value, error) {
	if err := requireArity(line, "str", args, 1); err != nil {
		return nil, err
	}
	vals, err := in.evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	return String{Value: stringify(vals[0])}, nil
}

func biAbs(in *Interpreter, env *Environment, args []ast.Expr, line int) (Value, error) {
	if err := requireArity(line, "abs", args, 1); err != nil {
		return nil, err
	}
	vals, err := in.evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	v := vals[0]
	if !isNumber(v) {
		return nil, errors.New(line, "invalid argument type for abs(...): <%s>", v.Kind())
	}
	if isFloatValue(v) {
		return Float{Value: math.Abs(numAsFloat(v))}, nil
	}
	n := numAsInt(v)
	if n < 0 {
		n = -n
	}
	return Integer{Value: n}, nil
}

// biPrint appends each argument's canonical string form followed by a
// single-space entry, then a trailing newline marker: print(x) yields
// the output entries str(x), " ", "\n". A zero-arg call emits just the
// newline marker.
func biPrint(in *Interpreter, env *Environment, args []ast.Expr, line int) (Value, error) {
	sink := env.Output()
	for _, a := range args {
		v, err := in.eval(env, a)
		if err != nil {
			return nil, err
		}
		sink.Append(stringify(v))
		sink.Append(" ")
	}
	sink.Append("\n")
	return Null{}, nil
}

// biPow implements pow(base, exp) as a numeric built-in, delegating to
// the same promotion helper the ** binop uses.
func biPow(in *Interpreter, env *Environment, args []ast.Expr, line int) (Value, error) {
	if err := requireArity(line, "pow", args, 2); err != nil {
		return nil, err
	}
	vals, err := in.evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	return evalArith(line, "**", vals[0], vals[1])
}
