package interp

import (
	"strings"
	"testing"
)

func TestRecursiveFactorial(t *testing.T) {
	prog := mustDecode(t, `[
		{"kind":"assignment","line":1,"assignArr":[{"kind":"variable","line":1,"name":"fact"}],
		 "expr":{"kind":"closure","line":1,"params":["n"],"body":[
			{"kind":"if","line":2,"truePartArr":[
				{"test":{"kind":"binop","line":2,"op":"<=","e1":{"kind":"variable","line":2,"name":"n"},"e2":{"kind":"integer","line":2,"value":"1"}},
				 "part":[{"kind":"return","line":2,"expr":{"kind":"integer","line":2,"value":"1"}}]}
			],"falsePart":[
				{"kind":"return","line":3,"expr":{"kind":"binop","line":3,"op":"*","e1":{"kind":"variable","line":3,"name":"n"},
					"e2":{"kind":"call","line":3,"fun":{"kind":"variable","line":3,"name":"fact"},"args":[
						{"kind":"binop","line":3,"op":"-","e1":{"kind":"variable","line":3,"name":"n"},"e2":{"kind":"integer","line":3,"value":"1"}}
					]}}}
			]}
		 ]}},
		{"kind":"static","line":5,"expr":{"kind":"call","line":5,"fun":{"kind":"variable","line":5,"name":"print"},"args":[
			{"kind":"call","line":5,"fun":{"kind":"variable","line":5,"name":"fact"},"args":[{"kind":"integer","line":5,"value":"5"}]}
		]}}
	]`)
	res := Run(prog)
	if res.Kind != ResultOK {
		t.Fatalf("expected ok, got %v: %v", res.Kind, res.Output)
	}
	if got := strings.Join(res.Output, ""); got != "120 \n" {
		t.Errorf("got %q, want %q", got, "120 \n")
	}
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	prog := mustDecode(t, `[
		{"kind":"assignment","line":1,"assignArr":[{"kind":"variable","line":1,"name":"makeAdder"}],
		 "expr":{"kind":"closure","line":1,"params":["x"],"body":[
			{"kind":"return","line":2,"expr":{"kind":"closure","line":2,"params":["y"],"body":[
				{"kind":"return","line":2,"expr":{"kind":"binop","line":2,"op":"+","e1":{"kind":"variable","line":2,"name":"x"},"e2":{"kind":"variable","line":2,"name":"y"}}}
			]}}
		 ]}},
		{"kind":"assignment","line":4,"assignArr":[{"kind":"variable","line":4,"name":"add5"}],
		 "expr":{"kind":"call","line":4,"fun":{"kind":"variable","line":4,"name":"makeAdder"},"args":[{"kind":"integer","line":4,"value":"5"}]}},
		{"kind":"static","line":5,"expr":{"kind":"call","line":5,"fun":{"kind":"variable","line":5,"name":"print"},"args":[
			{"kind":"call","line":5,"fun":{"kind":"variable","line":5,"name":"add5"},"args":[{"kind":"integer","line":5,"value":"3"}]}
		]}}
	]`)
	res := Run(prog)
	if res.Kind != ResultOK {
		t.Fatalf("expected ok, got %v: %v", res.Kind, res.Output)
	}
	if got := strings.Join(res.Output, ""); got != "8 \n" {
		t.Errorf("got %q, want %q", got, "8 \n")
	}
}

func TestUserClosureShadowsBuiltin(t *testing.T) {
	prog := mustDecode(t, `[
		{"kind":"assignment","line":1,"assignArr":[{"kind":"variable","line":1,"name":"len"}],
		 "expr":{"kind":"closure","line":1,"params":[],"body":[
			{"kind":"return","line":1,"expr":{"kind":"integer","line":1,"value":"42"}}
		 ]}},
		{"kind":"static","line":2,"expr":{"kind":"call","line":2,"fun":{"kind":"variable","line":2,"name":"print"},"args":[
			{"kind":"call","line":2,"fun":{"kind":"variable","line":2,"name":"len"},"args":[]}
		]}}
	]`)
	res := Run(prog)
	if res.Kind != ResultOK {
		t.Fatalf("expected ok, got %v: %v", res.Kind, res.Output)
	}
	if got := strings.Join(res.Output, ""); got != "42 \n" {
		t.Errorf("expected user closure to shadow the built-in len, got %q", got)
	}
}

func TestRecursionDepthExceeded(t *testing.T) {
	prog := mustDecode(t, `[
		{"kind":"assignment","line":1,"assignArr":[{"kind":"variable","line":1,"name":"loop"}],
		 "expr":{"kind":"closure","line":1,"params":["n"],"body":[
			{"kind":"return","line":1,"expr":{"kind":"call","line":1,"fun":{"kind":"variable","line":1,"name":"loop"},"args":[
				{"kind":"binop","line":1,"op":"+","e1":{"kind":"variable","line":1,"name":"n"},"e2":{"kind":"integer","line":1,"value":"1"}}
			]}}
		 ]}},
		{"kind":"static","line":2,"expr":{"kind":"call","line":2,"fun":{"kind":"variable","line":2,"name":"loop"},"args":[{"kind":"integer","line":2,"value":"0"}]}}
	]`)
	res := New().Run(prog)
	if res.Kind != ResultError {
		t.Fatalf("expected error from a runaway recursion, got %v", res.Kind)
	}
	if len(res.Output) != 1 || !strings.Contains(res.Output[0], "maximum recursion depth exceeded for loop(...)") {
		t.Errorf("got %v", res.Output)
	}
}

func TestArityMismatchDiagnostic(t *testing.T) {
	prog := mustDecode(t, `[
		{"kind":"assignment","line":1,"assignArr":[{"kind":"variable","line":1,"name":"f"}],
		 "expr":{"kind":"closure","line":1,"params":["a","b"],"body":[]}},
		{"kind":"static","line":2,"expr":{"kind":"call","line":2,"fun":{"kind":"variable","line":2,"name":"f"},"args":[{"kind":"integer","line":2,"value":"1"}]}}
	]`)
	res := Run(prog)
	if res.Kind != ResultError {
		t.Fatalf("expected error, got %v", res.Kind)
	}
	want := "Line 2: invalid argument count for f(...): expected 2, got 1"
	if len(res.Output) != 1 || res.Output[0] != want {
		t.Errorf("got %v, want [%q]", res.Output, want)
	}
}
