package interp

import (
	"strings"
	"testing"
)

func TestForLoopBreakSkipsUpdate(t *testing.T) {
	// for (x=0; true; x++) { x++; break; } leaves x == 1: break must
	// skip the update clause. x is defined before the loop so the
	// loop's assignments reach the outer frame and stay visible after it.
	prog := mustDecode(t, `[
		{"kind":"assignment","line":1,"assignArr":[{"kind":"variable","line":1,"name":"x"}],"expr":{"kind":"integer","line":1,"value":"0"}},
		{"kind":"for","line":1,
		 "inits":[{"kind":"assignment","line":1,"assignArr":[{"kind":"variable","line":1,"name":"x"}],"expr":{"kind":"integer","line":1,"value":"0"}}],
		 "test":{"kind":"boolean","line":1,"value":true},
		 "updates":[{"kind":"assignment","line":1,"assignArr":[{"kind":"variable","line":1,"name":"x"}],
			"expr":{"kind":"binop","line":1,"op":"+","e1":{"kind":"variable","line":1,"name":"x"},"e2":{"kind":"integer","line":1,"value":"1"}}}],
		 "body":[
			{"kind":"assignment","line":1,"assignArr":[{"kind":"variable","line":1,"name":"x"}],
				"expr":{"kind":"binop","line":1,"op":"+","e1":{"kind":"variable","line":1,"name":"x"},"e2":{"kind":"integer","line":1,"value":"1"}}},
			{"kind":"break","line":1}
		 ]},
		{"kind":"static","line":2,"expr":{"kind":"call","line":2,"fun":{"kind":"variable","line":2,"name":"print"},"args":[{"kind":"variable","line":2,"name":"x"}]}}
	]`)
	res := Run(prog)
	if res.Kind != ResultOK {
		t.Fatalf("expected ok, got %v: %v", res.Kind, res.Output)
	}
	if got := strings.Join(res.Output, ""); got != "1 \n" {
		t.Errorf("got %q, want %q", got, "1 \n")
	}
}

func TestWhileLoopContinue(t *testing.T) {
	// sum the odd numbers from 1 to 5 by continuing past the even ones.
	prog := mustDecode(t, `[
		{"kind":"assignment","line":1,"assignArr":[{"kind":"variable","line":1,"name":"i"}],"expr":{"kind":"integer","line":1,"value":"0"}},
		{"kind":"assignment","line":1,"assignArr":[{"kind":"variable","line":1,"name":"sum"}],"expr":{"kind":"integer","line":1,"value":"0"}},
		{"kind":"while","line":2,"test":{"kind":"binop","line":2,"op":"<","e1":{"kind":"variable","line":2,"name":"i"},"e2":{"kind":"integer","line":2,"value":"5"}},
		 "body":[
			{"kind":"assignment","line":3,"assignArr":[{"kind":"variable","line":3,"name":"i"}],
				"expr":{"kind":"binop","line":3,"op":"+","e1":{"kind":"variable","line":3,"name":"i"},"e2":{"kind":"integer","line":3,"value":"1"}}},
			{"kind":"if","line":4,"truePartArr":[
				{"test":{"kind":"binop","line":4,"op":"==","e1":{"kind":"binop","line":4,"op":"%","e1":{"kind":"variable","line":4,"name":"i"},"e2":{"kind":"integer","line":4,"value":"2"}},"e2":{"kind":"integer","line":4,"value":"0"}},
				 "part":[{"kind":"continue","line":4}]}
			],"falsePart":[]},
			{"kind":"assignment","line":5,"assignArr":[{"kind":"variable","line":5,"name":"sum"}],
				"expr":{"kind":"binop","line":5,"op":"+","e1":{"kind":"variable","line":5,"name":"sum"},"e2":{"kind":"variable","line":5,"name":"i"}}}
		 ]},
		{"kind":"static","line":6,"expr":{"kind":"call","line":6,"fun":{"kind":"variable","line":6,"name":"print"},"args":[{"kind":"variable","line":6,"name":"sum"}]}}
	]`)
	res := Run(prog)
	if res.Kind != ResultOK {
		t.Fatalf("expected ok, got %v: %v", res.Kind, res.Output)
	}
	// 1 + 3 + 5 = 9
	if got := strings.Join(res.Output, ""); got != "9 \n" {
		t.Errorf("got %q, want %q", got, "9 \n")
	}
}

func TestBreakOutsideLoopIsDiagnosed(t *testing.T) {
	prog := mustDecode(t, `[{"kind":"break","line":1}]`)
	res := Run(prog)
	if res.Kind != ResultError {
		t.Fatalf("expected error, got %v", res.Kind)
	}
	if len(res.Output) != 1 || res.Output[0] != "Line 1: break outside of loop" {
		t.Errorf("got %v", res.Output)
	}
}
