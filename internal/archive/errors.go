package archive

import "fmt"

// DirectoryScanError reports that the source directory could not be
// enumerated. No bundle is written when it occurs.
type DirectoryScanError struct {
	Dir string
	Err error
}

func (e *DirectoryScanError) Error() string {
	return fmt.Sprintf("scanning directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryScanError) Unwrap() error { return e.Err }

// BundleError reports a bundle that failed to write.
type BundleError struct {
	Label string
	Err   error
}

func (e *BundleError) Error() string {
	return fmt.Sprintf("writing bundle %s: %v", e.Label, e.Err)
}

func (e *BundleError) Unwrap() error { return e.Err }
