package archive

import (
	"strings"

	"github.com/obinexus/shellutils/internal/naming"
)

// Classification routes a file to a bundle.
type Classification int

const (
	Excluded Classification = iota
	Editable
	NonEditable
)

func (c Classification) String() string {
	switch c {
	case Editable:
		return "EDITABLE"
	case NonEditable:
		return "NON_EDITABLE"
	default:
		return "EXCLUDED"
	}
}

var classByExt = map[string]Classification{
	"md":  Editable,
	"txt": Editable,
	"pdf": NonEditable,
}

// Classify maps a path to its Classification by extension, ignoring case.
func Classify(path string) Classification {
	ext := strings.ToLower(naming.SplitPath(path).Ext)
	return classByExt[ext]
}
