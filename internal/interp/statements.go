package interp

import (
	"github.com/scopescript-go/scopescript/internal/ast"
	"github.com/scopescript-go/scopescript/internal/errors"
)

// execStmt is eval_stmt: evaluate one statement,
// returning a signal (or nil) and an error. Dispatch is a type switch
// over the concrete ast.Stmt, the statement-layer counterpart to
// eval's expression dispatch.
func (in *Interpreter) execStmt(env *Environment, stmt ast.Stmt, fl flags) (*Signal, error) {
	switch s := stmt.(type) {
	case *ast.Static:
		_, err := in.eval(env, s.Expr)
		return nil, err
	case *ast.Assignment:
		return nil, in.execAssignment(env, s)
	case *ast.If:
		return in.execIf(env, s, fl)
	case *ast.While:
		return in.execWhile(env, s, fl)
	case *ast.For:
		return in.execFor(env, s, fl)
	case *ast.Delete:
		return nil, in.deleteTarget(env, s.Target)
	case *ast.Return:
		return in.execReturn(env, s, fl)
	case *ast.Break:
		if !fl.inLoop {
			return nil, errors.New(s.Line(), "break outside of loop")
		}
		return breakSignal, nil
	case *ast.Continue:
		if !fl.inLoop {
			return nil, errors.New(s.Line(), "continue outside of loop")
		}
		return continueSignal, nil
	default:
		return nil, errors.New(stmt.Line(), "unknown statement")
	}
}

// execBlock runs statements in order, stopping at the first signal.
func (in *Interpreter) execBlock(env *Environment, stmts []ast.Stmt, fl flags) (*Signal, error) {
	for _, stmt := range stmts {
		sig, err := in.execStmt(env, stmt, fl)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

// execAssignment evaluates expr exactly once and assigns the single
// value to every target, left-to-right.
func (in *Interpreter) execAssignment(env *Environment, s *ast.Assignment) error {
	val, err := in.eval(env, s.Expr)
	if err != nil {
		return err
	}
	for _, target := range s.Targets {
		if _, err := in.assign(env, target, val); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execReturn(env *Environment, s *ast.Return, fl flags) (*Signal, error) {
	if !fl.inFunc {
		return nil, errors.New(s.Line(), "return outside of function")
	}
	v, err := in.eval(env, s.Expr)
	if err != nil {
		return nil, err
	}
	return returnSignal(v), nil
}
