// Package result carries the driver's output record
// across the host boundary: {"kind": "ok"|"error", "output": [...]}.
package result

import (
	"github.com/scopescript-go/scopescript/internal/interp"
	"github.com/tidwall/sjson"
)

// FromInterp adapts an interp.Result into the package's own Result,
// keeping the core package free of any serialization concern.
func FromInterp(r interp.Result) Result {
	return Result{Kind: string(r.Kind), Output: r.Output}
}

// Result is the host-facing record: the driver never joins Output
// itself.
type Result struct {
	Kind   string
	Output []string
}

// MarshalSSJSON renders the result as the two-key JSON document the
// host contract describes, built incrementally with sjson.SetBytes
// rather than a struct marshal: the document only ever needs its two
// top-level keys set once each, which is exactly the shape sjson's
// in-place mutation API is for, and it pairs with gjson's read side
// the AST decoder in internal/ast already uses.
func (r Result) MarshalSSJSON() ([]byte, error) {
	data := []byte("{}")
	var err error
	data, err = sjson.SetBytes(data, "kind", r.Kind)
	if err != nil {
		return nil, err
	}
	data, err = sjson.SetBytes(data, "output", r.Output)
	if err != nil {
		return nil, err
	}
	return data, nil
}
