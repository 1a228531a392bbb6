// Package scan builds a per-extension inventory of the documents in a
// directory tree: file lists for .md, .pdf and .txt with size and SHA-256,
// plus editable/non-editable totals.
package scan

import (
	"os"
	"sort"
	"strings"

	"github.com/obinexus/shellutils/internal/archive"
	"github.com/obinexus/shellutils/internal/fsops"
	"github.com/obinexus/shellutils/internal/logging"
	"github.com/obinexus/shellutils/internal/naming"
)

// Extensions are the inventoried extensions, in report order.
var Extensions = []string{".md", ".pdf", ".txt"}

// Entry describes one inventoried file.
type Entry struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	SHA256   string `json:"sha256,omitempty"`
	Editable bool   `json:"editable"`
}

// Inventory is the result of a scan. A directory that could not be read
// yields an empty Inventory with Err set.
type Inventory struct {
	Dir         string             `json:"dir"`
	ByExt       map[string][]Entry `json:"by_extension"`
	Total       int                `json:"total"`
	Editable    int                `json:"editable"`
	NonEditable int                `json:"non_editable"`
	Bytes       int64              `json:"bytes"`
	Err         error              `json:"-"`
}

// Count returns the number of files inventoried under ext.
func (inv *Inventory) Count(ext string) int {
	return len(inv.ByExt[ext])
}

// Scanner inventories directories.
type Scanner struct {
	walker    archive.Walker
	checksums bool
	log       *logging.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithChecksums toggles SHA-256 hashing of every inventoried file.
func WithChecksums(on bool) Option {
	return func(s *Scanner) { s.checksums = on }
}

// WithLogger sets the scanner's logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Scanner) { s.log = l }
}

// New creates a Scanner. Checksums are on by default.
func New(walker archive.Walker, opts ...Option) *Scanner {
	s := &Scanner{walker: walker, checksums: true, log: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan inventories dir. It never fails: an unreadable directory produces
// zero counts, and a file that cannot be hashed is listed without a digest.
func (s *Scanner) Scan(dir string) *Inventory {
	inv := &Inventory{Dir: dir, ByExt: make(map[string][]Entry, len(Extensions))}
	for _, ext := range Extensions {
		inv.ByExt[ext] = []Entry{}
	}

	files, err := s.walker.Walk(dir)
	if err != nil {
		s.log.Warn("scan failed, reporting zero counts", "dir", dir, "error", err)
		inv.Err = err
		return inv
	}

	for _, path := range files {
		ext := "." + strings.ToLower(naming.SplitPath(path).Ext)
		if _, ok := inv.ByExt[ext]; !ok {
			continue
		}

		class := archive.Classify(path)
		e := Entry{Path: path, Editable: class == archive.Editable}
		if info, err := os.Stat(path); err == nil {
			e.Size = info.Size()
		}
		if s.checksums {
			sum, err := fsops.Checksum(path)
			if err != nil {
				s.log.Warn("could not checksum file", "path", path, "error", err)
			}
			e.SHA256 = sum
		}

		inv.ByExt[ext] = append(inv.ByExt[ext], e)
		inv.Total++
		inv.Bytes += e.Size
		if e.Editable {
			inv.Editable++
		} else {
			inv.NonEditable++
		}
	}

	for _, entries := range inv.ByExt {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	}
	return inv
}
