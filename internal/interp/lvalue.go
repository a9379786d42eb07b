package interp

import (
	"github.com/scopescript-go/scopescript/internal/ast"
	"github.com/scopescript-go/scopescript/internal/errors"
)

// assign implements the l-value protocol. It is the single place
// plain assignment and prefix ++/-- write through (delete resolves its
// target separately, in deleteTarget). For ++/--, the target is first
// read with eval and then written here, so the collection and key
// sub-expressions of an attribute or subscriptor target are evaluated
// twice.
func (in *Interpreter) assign(env *Environment, target ast.Expr, value Value) (Value, error) {
	switch t := target.(type) {
	case *ast.Variable:
		if !env.Assign(t.Name, value) {
			env.Define(t.Name, value)
		}
		return value, nil
	case *ast.Attribute:
		collVal, err := in.eval(env, t.Collection)
		if err != nil {
			return nil, err
		}
		coll, ok := collVal.(*Collection)
		if !ok {
			return nil, errors.New(t.Line(), "cannot assign attribute '%s' of <%s>", t.Attribute, collVal.Kind())
		}
		coll.Set(t.Attribute, value)
		return value, nil
	case *ast.Subscriptor:
		collVal, err := in.eval(env, t.Collection)
		if err != nil {
			return nil, err
		}
		keyVal, err := in.eval(env, t.Expr)
		if err != nil {
			return nil, err
		}
		coll, ok := collVal.(*Collection)
		if !ok {
			return nil, errors.New(t.Line(), "cannot assign subscript of <%s>", collVal.Kind())
		}
		if !isSubscriptableKey(keyVal) {
			return nil, errors.New(t.Line(), "invalid key type for subscript assignment: <%s>", keyVal.Kind())
		}
		coll.Set(subscriptKey(keyVal), value)
		return value, nil
	default:
		return nil, errors.New(target.Line(), "invalid assignment target")
	}
}

// deleteTarget removes a key addressed by an attribute or subscriptor
// expression.
func (in *Interpreter) deleteTarget(env *Environment, target ast.Expr) error {
	var collExpr ast.Expr
	var key string

	switch t := target.(type) {
	case *ast.Attribute:
		collExpr = t.Collection
		key = t.Attribute
	case *ast.Subscriptor:
		collExpr = t.Collection
		keyVal, err := in.eval(env, t.Expr)
		if err != nil {
			return err
		}
		if !isSubscriptableKey(keyVal) {
			return errors.New(t.Line(), "invalid key type for delete: <%s>", keyVal.Kind())
		}
		key = subscriptKey(keyVal)
	default:
		return errors.New(target.Line(), "cannot delete <%s>", target.Kind())
	}

	collVal, err := in.eval(env, collExpr)
	if err != nil {
		return err
	}
	coll, ok := collVal.(*Collection)
	if !ok {
		return errors.New(target.Line(), "invalid collection type for attribute deletion '%s': <%s>", key, collVal.Kind())
	}
	if !coll.Delete(key) {
		return errors.New(target.Line(), "unknown attribute reference: '%s'", key)
	}
	return nil
}
