package tests

import (
	"path"
	"testing"

	"github.com/spf13/afero"
)

func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// WriteFiles writes the given files to fsys, creating parent directories as
// needed. Keys are slash-separated paths, values the file contents.
func WriteFiles(t *testing.T, fsys afero.Fs, files map[string]string) {
	t.Helper()

	for name, content := range files {
		if dir := path.Dir(name); dir != "." {
			if err := fsys.MkdirAll(dir, 0o755); err != nil {
				t.Fatalf("create directory %q: %v", dir, err)
			}
		}

		if err := afero.WriteFile(fsys, name, []byte(content), 0o644); err != nil {
			t.Fatalf("write file %q: %v", name, err)
		}
	}
}


