// Package collect copies every file with a chosen extension out of a
// directory tree into one flat destination directory.
package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/obinexus/shellutils/internal/archive"
	"github.com/obinexus/shellutils/internal/fsops"
	"github.com/obinexus/shellutils/internal/logging"
	"github.com/obinexus/shellutils/internal/naming"
	"github.com/obinexus/shellutils/internal/platform"
)

// Copy records one completed copy.
type Copy struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// FileError records one failed copy.
type FileError struct {
	Source string `json:"source"`
	Err    error  `json:"-"`
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// Result summarizes a collection run.
type Result struct {
	Found  int         `json:"found"`
	Copied int         `json:"copied"`
	Failed int         `json:"failed"`
	Copies []Copy      `json:"copies"`
	Errors []FileError `json:"-"`
}

// OK reports whether every found file was copied.
func (r *Result) OK() bool { return r.Failed == 0 }

// Collector copies matching files under a fixed naming convention.
type Collector struct {
	platform platform.Platform
	walker   archive.Walker
	log      *logging.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithWalker replaces the directory walker.
func WithWalker(w archive.Walker) Option {
	return func(c *Collector) { c.walker = w }
}

// WithLogger sets the collector's logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Collector) { c.log = l }
}

// New creates a Collector that names collisions the way p does.
func New(p platform.Platform, opts ...Option) *Collector {
	c := &Collector{platform: p, walker: fsops.NewWalker(nil), log: logging.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NormalizeExtensions lower-cases exts and gives each a leading dot.
// Blank entries are dropped.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || e == "." {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether name ends in one of the normalized extensions
// exts, compared case-insensitively. Multi-part extensions such as
// ".tar.gz" match; a name that is only the extension (".md") does not.
func Matches(name string, exts []string) bool {
	name = strings.ToLower(name)
	for _, ext := range exts {
		if len(name) > len(ext) && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Collect copies every regular file under src whose extension is in exts
// into dest, creating dest if needed. A missing src is an error; individual
// copy failures are recorded in the Result and do not stop the run.
func (c *Collector) Collect(src, dest string, exts []string) (*Result, error) {
	wanted := NormalizeExtensions(exts)
	if len(wanted) == 0 {
		return nil, fmt.Errorf("no extensions given")
	}

	files, err := c.walker.Walk(src)
	if err != nil {
		return nil, fmt.Errorf("reading source directory: %w", err)
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, &fsops.IOError{Op: "create directory", Path: dest, Err: err}
	}
	destAbs, _ := filepath.Abs(dest)

	res := &Result{Copies: []Copy{}}
	for _, path := range files {
		if !Matches(filepath.Base(path), wanted) {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil && within(destAbs, abs) {
			continue
		}
		res.Found++

		target, err := c.copyOne(path, dest)
		if err != nil {
			c.log.Warn("copy failed", "source", path, "error", err)
			res.Failed++
			res.Errors = append(res.Errors, FileError{Source: path, Err: err})
			continue
		}
		c.log.Debug("copied", "source", path, "target", target)
		res.Copied++
		res.Copies = append(res.Copies, Copy{Source: path, Target: target})
	}
	return res, nil
}

func (c *Collector) copyOne(path, dest string) (string, error) {
	target := filepath.Join(dest, filepath.Base(path))
	taken, err := fsops.Exists(target)
	if err != nil {
		return "", err
	}
	if taken {
		target, err = naming.FindAvailableName(target, c.platform, fsops.Exists)
		if err != nil {
			return "", err
		}
	}
	if err := fsops.CopyFile(path, target); err != nil {
		return "", err
	}
	return target, nil
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
