package source

import (
	"path/filepath"

	"glslpp/internal/core/domain"
	"glslpp/internal/core/ports"
)

var (
	_ ports.PathPolicy = SplitDirs{}
	_ ports.PathPolicy = SingleDir{}
)

// SplitDirs maps source-role names and include-role names into two separate
// directory roots, so reusable fragments can live apart from entry-point
// shaders. This is the default path policy.
type SplitDirs struct {
	srcRoot     string
	includeRoot string
}

// NewSplitDirs derives the two roots from a common parent: <root>/src for
// entry-point shaders and <root>/include for fragments.
func NewSplitDirs(root string) SplitDirs {
	return SplitDirs{
		srcRoot:     filepath.Join(root, "src"),
		includeRoot: filepath.Join(root, "include"),
	}
}

// NewSplitDirsAt uses two explicitly chosen roots.
func NewSplitDirsAt(srcRoot, includeRoot string) SplitDirs {
	return SplitDirs{
		srcRoot:     srcRoot,
		includeRoot: includeRoot,
	}
}

// Filepath returns the path the named file is read from for the given role.
func (p SplitDirs) Filepath(role domain.SourceRole, name string) string {
	if role == domain.RoleInclude {
		return filepath.Join(p.includeRoot, name)
	}
	return filepath.Join(p.srcRoot, name)
}

// SingleDir resolves every name, regardless of role, under one shared root.
type SingleDir struct {
	root string
}

// NewSingleDir creates a SingleDir policy rooted at the given directory.
func NewSingleDir(root string) SingleDir {
	return SingleDir{root: root}
}

// Filepath returns the path the named file is read from.
func (p SingleDir) Filepath(_ domain.SourceRole, name string) string {
	return filepath.Join(p.root, name)
}
