package tests

import (
	"testing"

	"github.com/andreyvit/diff"
	"github.com/google/go-cmp/cmp"
)

// ExpectFiles fails the test if got does not equal want, order included.
func ExpectFiles(t *testing.T, want, got []string) {
	t.Helper()

	if !cmp.Equal(want, got) {
		t.Fatalf("unexpected files:\n%s", cmp.Diff(want, got))
	}
}

// ExpectOutput fails the test if got does not equal want, printing a
// line-based diff of the two.
func ExpectOutput(t *testing.T, want, got string) {
	t.Helper()

	if want != got {
		t.Fatalf("unexpected output:\n%s", diff.LineDiff(want, got))
	}
}


