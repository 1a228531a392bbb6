package naming

import (
	"errors"
	"fmt"

	"github.com/obinexus/shellutils/internal/fsops"
	"github.com/obinexus/shellutils/internal/logging"
	"github.com/obinexus/shellutils/internal/platform"
)

// CopyFunc copies src to a new file at dst.
type CopyFunc func(src, dst string) error

// Namer duplicates files under a fixed platform convention.
type Namer struct {
	platform platform.Platform
	exists   ExistsFunc
	isFile   func(path string) bool
	copy     CopyFunc
	log      *logging.Logger
}

// Option configures a Namer.
type Option func(*Namer)

// WithExists replaces the filesystem existence check.
func WithExists(fn ExistsFunc) Option {
	return func(n *Namer) { n.exists = fn }
}

// WithSourceCheck replaces the regular-file check applied to sources.
func WithSourceCheck(fn func(path string) bool) Option {
	return func(n *Namer) { n.isFile = fn }
}

// WithCopier replaces the copy primitive.
func WithCopier(fn CopyFunc) Option {
	return func(n *Namer) { n.copy = fn }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *logging.Logger) Option {
	return func(n *Namer) { n.log = l }
}

// New creates a Namer for p backed by the real filesystem.
func New(p platform.Platform, opts ...Option) *Namer {
	n := &Namer{
		platform: p,
		exists:   fsops.Exists,
		isFile:   fsops.IsRegularFile,
		copy:     fsops.CopyFile,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Platform returns the convention this Namer applies.
func (n *Namer) Platform() platform.Platform {
	return n.platform
}

// Resolve finds the first free duplicate candidate for original.
func (n *Namer) Resolve(original string) (Candidate, error) {
	c, err := findCandidate(original, n.platform, n.exists)
	if err != nil {
		return Candidate{}, err
	}
	n.log.Debug("resolved duplicate name", "original", original, "target", c.Path, "index", c.Index)
	return c, nil
}

// Duplicate copies source to the first free duplicate name and returns
// that name. It fails with *SourceNotFoundError when source is not a
// regular file, *ExhaustedSearchError when no name is free, and
// *fsops.IOError when the copy fails.
func (n *Namer) Duplicate(source string) (string, error) {
	if !n.isFile(source) {
		return "", &SourceNotFoundError{Path: source}
	}

	c, err := n.Resolve(source)
	if err != nil {
		return "", err
	}

	if err := n.copy(source, c.Path); err != nil {
		var ioErr *fsops.IOError
		if !errors.As(err, &ioErr) {
			err = &fsops.IOError{Op: "copy", Path: c.Path, Err: err}
		}
		return "", fmt.Errorf("duplicating %s: %w", source, err)
	}

	n.log.Info("duplicated file", "source", source, "target", c.Path, "platform", n.platform.String())
	return c.Path, nil
}
