package interp

import "github.com/scopescript-go/scopescript/internal/ast"

// execIf opens a single child frame for the whole construct, but
// evaluates each clause's test in the *outer* environment — only body
// execution happens in the child.
func (in *Interpreter) execIf(env *Environment, s *ast.If, fl flags) (*Signal, error) {
	child := NewChildEnvironment(env)
	for _, clause := range s.Clauses {
		test, err := in.eval(env, clause.Test)
		if err != nil {
			return nil, err
		}
		if truthy(test) {
			return in.execBlock(child, clause.Part, fl)
		}
	}
	return in.execBlock(child, s.ElseBody, fl)
}

// execWhile opens one child frame for the whole loop. The test is
// re-evaluated in the outer environment each iteration; the body runs
// in the (shared, reused) child frame.
func (in *Interpreter) execWhile(env *Environment, s *ast.While, fl flags) (*Signal, error) {
	child := NewChildEnvironment(env)
	loopFlags := flags{inFunc: fl.inFunc, inLoop: true}

	for {
		test, err := in.eval(env, s.Test)
		if err != nil {
			return nil, err
		}
		if !truthy(test) {
			return nil, nil
		}
		sig, err := in.execBlock(child, s.Body, loopFlags)
		if err != nil {
			return nil, err
		}
		switch {
		case sig.isReturn():
			return sig, nil
		case sig.isBreak():
			return nil, nil
		case sig.isContinue():
			continue
		}
	}
}

// execFor runs inits once in the loop's child frame, then evaluates
// both the test and the updates against that same child frame (unlike
// while, which tests against the outer frame) since inits define the
// loop variables there.
func (in *Interpreter) execFor(env *Environment, s *ast.For, fl flags) (*Signal, error) {
	child := NewChildEnvironment(env)
	loopFlags := flags{inFunc: fl.inFunc, inLoop: true}

	if _, err := in.execBlock(child, s.Inits, flags{inFunc: fl.inFunc, inLoop: false}); err != nil {
		return nil, err
	}

	for {
		test, err := in.eval(child, s.Test)
		if err != nil {
			return nil, err
		}
		if !truthy(test) {
			return nil, nil
		}

		sig, err := in.execBlock(child, s.Body, loopFlags)
		if err != nil {
			return nil, err
		}
		switch {
		case sig.isReturn():
			return sig, nil
		case sig.isBreak():
			return nil, nil
		}

		if _, err := in.execBlock(child, s.Updates, flags{inFunc: fl.inFunc, inLoop: false}); err != nil {
			return nil, err
		}
	}
}
