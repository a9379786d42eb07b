package interp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/scopescript-go/scopescript/internal/ast"
)

// TestMain lets go-snaps clean up snapshots left behind by fixtures
// that were since removed.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// TestFixtures runs every .ssjson program under testdata/fixtures end to
// end through the driver and snapshots its Result, covering the
// combinations the focused unit tests above don't each exercise in
// isolation (collections, nested control flow, ternaries together).
func TestFixtures(t *testing.T) {
	fixturePaths, err := filepath.Glob("../../testdata/fixtures/*.ssjson")
	if err != nil {
		t.Fatalf("failed to glob fixtures: %v", err)
	}
	if len(fixturePaths) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range fixturePaths {
		name := strings.TrimSuffix(filepath.Base(path), ".ssjson")
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read %s: %v", path, err)
			}
			program, err := ast.DecodeProgram(data)
			if err != nil {
				t.Fatalf("failed to decode %s: %v", path, err)
			}
			res := Run(program)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_kind", name), res.Kind)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", name), strings.Join(res.Output, ""))
		})
	}
}
