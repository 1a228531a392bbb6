package naming

import "fmt"

// SourceNotFoundError reports a duplicate request whose source is missing
// or is not a regular file.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// ExhaustedSearchError reports that every candidate up to Limit exists.
type ExhaustedSearchError struct {
	Original string
	Limit    int
}

func (e *ExhaustedSearchError) Error() string {
	return fmt.Sprintf("no available duplicate name for %s within %d attempts", e.Original, e.Limit)
}
