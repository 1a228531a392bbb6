package fsops

import "fmt"

// IOError reports a failed copy or archive write.
type IOError struct {
	Op   string // "copy", "write", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
