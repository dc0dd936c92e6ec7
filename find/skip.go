package find

import (
	"io/fs"
	"strings"
)

// Skip holds exclusion rules a Finder applies while walking. Hidden excludes
// hidden directories, Dotfiles excludes files whose name starts with a dot.
// Dir and File can be set to custom rules. Skip implements Option, so a Skip
// value can be passed directly to New.
type Skip struct {
	Hidden   bool
	Dotfiles bool

	Dir  func(Exclusion) bool
	File func(Exclusion) bool
}

// Exclusion describes a directory entry that is being evaluated against Skip
// rules.
type Exclusion struct {
	fs.DirEntry
	Path string
}

// SkipNone returns a Skip with no exclusions. It is the default of a Finder:
// every entry under the root is a candidate.
func SkipNone() Skip {
	return Skip{}
}

// SkipDefault returns a Skip that excludes hidden directories and dotfiles.
func SkipDefault() Skip {
	return Skip{
		Hidden:   true,
		Dotfiles: true,
	}
}

func (s Skip) apply(f *Finder) {
	f.skip = &s
}

// ExcludeDir reports whether the given directory should be skipped entirely.
func (s Skip) ExcludeDir(e Exclusion) bool {
	if s.Hidden && strings.HasPrefix(e.Name(), ".") {
		return true
	}

	if s.Dir != nil {
		return s.Dir(e)
	}

	return false
}

// ExcludeFile reports whether the given file should be dropped from the
// results.
func (s Skip) ExcludeFile(e Exclusion) bool {
	if s.Dotfiles && strings.HasPrefix(e.Name(), ".") {
		return true
	}

	if s.File != nil {
		return s.File(e)
	}

	return false
}
