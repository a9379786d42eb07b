package interp

import (
	"github.com/scopescript-go/scopescript/internal/ast"
	"github.com/scopescript-go/scopescript/internal/errors"
)

// builtinFunc is a built-in's handler: it receives the interpreter,
// the calling environment, the unevaluated argument expressions (so
// arity-checking built-ins can report "invalid argument count" before
// evaluating anything), and the call site's line number.
type builtinFunc func(in *Interpreter, env *Environment, args []ast.Expr, line int) (Value, error)

// evalCall resolves the callee and invokes it. A bare-name callee checks scope first —
// "user definitions shadow built-ins" — falling back to the built-in
// table only when the name is unresolved in scope.
func (in *Interpreter) evalCall(env *Environment, e *ast.Call) (Value, error) {
	if nameExpr, ok := e.Fun.(*ast.Variable); ok {
		if v, found := env.Get(nameExpr.Name); found {
			closure, ok := v.(*Closure)
			if !ok {
				return nil, errors.New(e.Line(), "invalid type for function call: <%s>", v.Kind())
			}
			return in.invoke(env, closure, nameExpr.Name, e.Args, e.Line())
		}
		if fn, ok := builtins[nameExpr.Name]; ok {
			return fn(in, env, e.Args, e.Line())
		}
		return nil, errors.New(e.Line(), "function %s(...) is not defined", nameExpr.Name)
	}

	calleeVal, err := in.eval(env, e.Fun)
	if err != nil {
		return nil, err
	}
	closure, ok := calleeVal.(*Closure)
	if !ok {
		return nil, errors.New(e.Line(), "invalid type for function call: <%s>", calleeVal.Kind())
	}
	return in.invoke(env, closure, "", e.Args, e.Line())
}

// invoke binds args into a fresh frame parented on the closure's
// captured environment and executes its body. Recursion is bounded by an explicit
// depth counter rather than the Go call stack so overflow
// surfaces as a call-site diagnostic instead of a host crash.
func (in *Interpreter) invoke(callerEnv *Environment, closure *Closure, name string, argExprs []ast.Expr, line int) (Value, error) {
	displayName := name
	if displayName == "" {
		displayName = "(anonymous)"
	}

	if len(argExprs) != len(closure.Params) {
		return nil, errors.New(line, "invalid argument count for %s(...): expected %d, got %d", displayName, len(closure.Params), len(argExprs))
	}

	in.callDepth++
	defer func() { in.callDepth-- }()
	if in.callDepth > in.maxCallDepth {
		return nil, errors.New(line, "maximum recursion depth exceeded for %s(...)", displayName)
	}

	callEnv := NewChildEnvironment(closure.Parent)
	for i, param := range closure.Params {
		argVal, err := in.eval(callerEnv, argExprs[i])
		if err != nil {
			return nil, err
		}
		callEnv.Define(param, argVal)
	}

	signal, err := in.execBlock(callEnv, closure.Body, flags{inFunc: true, inLoop: false})
	if err != nil {
		return nil, err
	}
	switch {
	case signal.isReturn():
		return signal.Value, nil
	case signal == nil:
		return Null{}, nil
	default:
		// break/continue must never escape a function body.
		return nil, errors.New(line, "%s outside of loop in function %s(...)", signalName(signal), displayName)
	}
}

func signalName(s *Signal) string {
	switch s.Kind {
	case signalBreak:
		return "break"
	case signalContinue:
		return "continue"
	default:
		return "signal"
	}
}
