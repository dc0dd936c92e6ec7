package find_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/emarcon/srccat/find"
	"github.com/emarcon/srccat/internal/tests"
)

func entry(t *testing.T, fsys fs.FS, path string) find.Exclusion {
	t.Helper()

	info := tests.Must(fs.Stat(fsys, path))

	return find.Exclusion{DirEntry: fs.FileInfoToDirEntry(info), Path: path}
}

func TestSkipNone(t *testing.T) {
	fsys := fstest.MapFS{
		".hidden/a.js": {Data: []byte("let x = 1;")},
		".dot.js":      {Data: []byte("let y = 2;")},
	}

	skip := find.SkipNone()

	if skip.ExcludeDir(entry(t, fsys, ".hidden")) {
		t.Errorf("SkipNone must not exclude hidden directories")
	}
	if skip.ExcludeFile(entry(t, fsys, ".dot.js")) {
		t.Errorf("SkipNone must not exclude dotfiles")
	}
}

func TestSkipDefault(t *testing.T) {
	fsys := fstest.MapFS{
		".hidden/a.js": {Data: []byte("let x = 1;")},
		".dot.js":      {Data: []byte("let y = 2;")},
		"visible/b.js": {Data: []byte("let z = 3;")},
	}

	skip := find.SkipDefault()

	if !skip.ExcludeDir(entry(t, fsys, ".hidden")) {
		t.Errorf("SkipDefault must exclude hidden directories")
	}
	if !skip.ExcludeFile(entry(t, fsys, ".dot.js")) {
		t.Errorf("SkipDefault must exclude dotfiles")
	}
	if skip.ExcludeDir(entry(t, fsys, "visible")) {
		t.Errorf("SkipDefault must not exclude visible directories")
	}
	if skip.ExcludeFile(entry(t, fsys, "visible/b.js")) {
		t.Errorf("SkipDefault must not exclude visible files")
	}
}
