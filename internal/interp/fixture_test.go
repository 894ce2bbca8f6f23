package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/zoren/go-wuns/internal/lexer"
	"github.com/zoren/go-wuns/internal/parser"
)

// TestFixtures runs every script under testdata/fixtures through the full
// read-eval-print loop and snapshots stdout. Fatal errors are part of the
// snapshot: output printed before the error is preserved, then a single
// diagnostic line.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "testdata", "fixtures", "*.wuns"))
	if err != nil {
		t.Fatalf("globbing fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found")
	}

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".wuns")
		t.Run(name, func(t *testing.T) {
			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("opening fixture: %v", err)
			}
			defer f.Close()

			var buf bytes.Buffer
			in := New(&buf)
			p := parser.New(lexer.New(f))
			if runErr := in.Run(p); runErr != nil {
				buf.WriteString("error: " + runErr.Error() + "\n")
			}
			snaps.MatchSnapshot(t, buf.String())
		})
	}
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
