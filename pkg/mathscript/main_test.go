package mathscript

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain lets go-snaps prune snapshots that no longer correspond to any
// TestGoldenProgramOutputs subtest once the package's tests finish.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
