package naming

import (
	"fmt"
	"strconv"

	"github.com/obinexus/shellutils/internal/platform"
)

// MaxCopyIndex bounds the search for a free duplicate name.
const MaxCopyIndex = 1000

// Candidate is a generated duplicate path and the copy index that produced it.
type Candidate struct {
	Path  string
	Index int
}

// ExistsFunc reports whether a path is already taken.
type ExistsFunc func(path string) (bool, error)

// GenerateName returns the duplicate name for original at copy index
// (index 1 is the first duplicate). It is pure: the directory part is kept
// verbatim and the filesystem is not consulted. An index below 1 is
// treated as 1.
func GenerateName(original string, index int, p platform.Platform) string {
	if index < 1 {
		index = 1
	}
	parts := SplitPath(original)

	switch p {
	case platform.Windows:
		parts.Base += "-copy"
		if index > 1 {
			parts.Base += strconv.Itoa(index)
		}
	default:
		parts.Base += strconv.Itoa(index + 1)
	}
	return parts.Path()
}

// FindAvailableName returns the first generated name, starting at index 1,
// that exists reports as free. It fails with *ExhaustedSearchError once
// MaxCopyIndex candidates are taken, and aborts on the first error from
// exists.
func FindAvailableName(original string, p platform.Platform, exists ExistsFunc) (string, error) {
	c, err := findCandidate(original, p, exists)
	if err != nil {
		return "", err
	}
	return c.Path, nil
}

func findCandidate(original string, p platform.Platform, exists ExistsFunc) (Candidate, error) {
	for index := 1; index <= MaxCopyIndex; index++ {
		path := GenerateName(original, index, p)
		taken, err := exists(path)
		if err != nil {
			return Candidate{}, fmt.Errorf("checking %s: %w", path, err)
		}
		if !taken {
			return Candidate{Path: path, Index: index}, nil
		}
	}
	return Candidate{}, &ExhaustedSearchError{Original: original, Limit: MaxCopyIndex}
}
