// Package interp is the evaluation core: the value model, the scope
// chain, expression and statement evaluation, and the function-call
// protocol. It consumes an already-built AST (internal/ast) and
// produces an ordered sequence of output strings, terminating either
// with an ok result or an error result whose output holds a single
// diagnostic line.
package interp

import (
	"github.com/scopescript-go/scopescript/internal/ast"
	"github.com/scopescript-go/scopescript/internal/errors"
)

// DefaultMaxCallDepth is the recursion ceiling: a practical limit of
// well over 999 user-level recursive calls, set high enough that
// ordinary recursive programs never graze it while still bounding the
// native Go call stack.
const DefaultMaxCallDepth = 4096

// Interpreter holds the run-scoped state threaded through expression
// and statement evaluation: the call-depth counter used to bound
// recursion and the configured ceiling. It carries no environment of
// its own — each evaluation call receives the environment it should
// run against explicitly.
type Interpreter struct {
	maxCallDepth int
	callDepth    int
}

// New returns an Interpreter with the default recursion ceiling.
func New() *Interpreter {
	return &Interpreter{maxCallDepth: DefaultMaxCallDepth}
}

// NewWithMaxCallDepth returns an Interpreter with a caller-chosen
// recursion ceiling, wired from internal/config so an operator can
// tune it without touching code.
func NewWithMaxCallDepth(max int) *Interpreter {
	if max <= 0 {
		max = DefaultMaxCallDepth
	}
	return &Interpreter{maxCallDepth: max}
}

// flags carries the two booleans statement evaluation needs to reject
// misplaced return/break/continue.
type flags struct {
	inFunc bool
	inLoop bool
}

// Run is the program driver: it builds a root
// environment, executes the top-level block, and packages the result.
// On any internal failure it discards whatever partial output had
// accumulated and returns only the single diagnostic line.
func Run(program []ast.Stmt) Result {
	return New().Run(program)
}

// Run executes program against a fresh root environment using this
// Interpreter's configured recursion ceiling.
func (in *Interpreter) Run(program []ast.Stmt) Result {
	env := NewRootEnvironment()
	_, err := in.execBlock(env, program, flags{inFunc: false, inLoop: false})
	if err != nil {
		msg := err.Error()
		if d, ok := errors.AsDiagnostic(err); ok {
			msg = d.Error()
		}
		return Result{Kind: ResultError, Output: []string{msg}}
	}
	return Result{Kind: ResultOK, Output: append([]string(nil), env.Output().Lines()...)}
}

// ResultKind discriminates the two terminal states a run can reach.
type ResultKind string

const (
	ResultOK    ResultKind = "ok"
	ResultError ResultKind = "error"
)

// Result is the record the driver returns: either the
// accumulated output, or (for an error) a single-element slice holding
// the diagnostic line.
type Result struct {
	Kind   ResultKind
	Output []string
}
