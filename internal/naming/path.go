package naming

import (
	"path/filepath"
	"strings"
)

// PathParts is a path decomposed into directory, base name and extension.
// Dir keeps its trailing separator (empty for a bare file name) so that
// Dir + Name() reproduces the input exactly. Ext carries no dot.
type PathParts struct {
	Dir  string
	Base string
	Ext  string
}

// SplitPath decomposes p without cleaning or normalizing it. Only the last
// dot of the file name separates the extension; a leading dot (".bashrc")
// or a trailing dot ("name.") leaves Ext empty.
func SplitPath(p string) PathParts {
	seps := "/"
	if filepath.Separator != '/' {
		seps += string(filepath.Separator)
	}
	i := strings.LastIndexAny(p, seps)
	dir, name := p[:i+1], p[i+1:]

	dot := strings.LastIndex(name, ".")
	if dot <= 0 || dot == len(name)-1 {
		return PathParts{Dir: dir, Base: name}
	}
	return PathParts{Dir: dir, Base: name[:dot], Ext: name[dot+1:]}
}

// Name returns the file name: Base, plus "." and Ext when Ext is set.
func (pp PathParts) Name() string {
	if pp.Ext == "" {
		return pp.Base
	}
	return pp.Base + "." + pp.Ext
}

// Path reassembles the full path.
func (pp PathParts) Path() string {
	return pp.Dir + pp.Name()
}
