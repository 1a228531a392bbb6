package archive

import (
	"errors"
	"sort"

	"github.com/obinexus/shellutils/internal/logging"
)

const (
	EditableSuffix    = "_editable"
	NonEditableSuffix = "_non_editable"
)

// Bundle is one written archive.
type Bundle struct {
	Label   string   `json:"label"`
	Path    string   `json:"path"`
	Files   []string `json:"files"`   // source paths, in archive order
	Entries []string `json:"entries"` // names inside the archive
	Count   int      `json:"count"`
	Size    int64    `json:"size"`
	SHA256  string   `json:"sha256"`
}

// Result maps a bundle label to the bundle actually created.
type Result map[string]*Bundle

// Labels returns the labels in Result, sorted.
func (r Result) Labels() []string {
	labels := make([]string, 0, len(r))
	for label := range r {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Walker lists the regular files below root.
type Walker interface {
	Walk(root string) ([]string, error)
}

// Writer writes files into a bundle named label.
type Writer interface {
	Write(label string, files []string) (*Bundle, error)
}

// Composer partitions a directory's documents and hands them to a Writer.
type Composer struct {
	walker Walker
	writer Writer
	log    *logging.Logger
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithLogger sets the composer's logger.
func WithLogger(l *logging.Logger) ComposerOption {
	return func(c *Composer) { c.log = l }
}

// NewComposer creates a Composer from its collaborators.
func NewComposer(walker Walker, writer Writer, opts ...ComposerOption) *Composer {
	c := &Composer{walker: walker, writer: writer, log: logging.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Partition splits files into editable and non-editable sets, dropping
// excluded files. Both sets are sorted.
func Partition(files []string) (editable, nonEditable []string) {
	for _, f := range files {
		switch Classify(f) {
		case Editable:
			editable = append(editable, f)
		case NonEditable:
			nonEditable = append(nonEditable, f)
		}
	}
	sort.Strings(editable)
	sort.Strings(nonEditable)
	return editable, nonEditable
}

// Compose archives the documents under dir. With separate set, each
// non-empty class gets its own bundle; otherwise all documents go into one
// bundle labelled outputName. Empty sets produce no bundle.
//
// A walk failure returns *DirectoryScanError and writes nothing. Bundle
// failures are returned as *BundleError values (joined when several fail)
// alongside the Result holding every bundle that did complete.
func (c *Composer) Compose(dir, outputName string, separate bool) (Result, error) {
	files, err := c.walker.Walk(dir)
	if err != nil {
		return nil, &DirectoryScanError{Dir: dir, Err: err}
	}

	editable, nonEditable := Partition(files)
	c.log.Debug("classified files",
		"dir", dir,
		"found", len(files),
		"editable", len(editable),
		"non_editable", len(nonEditable),
		"excluded", len(files)-len(editable)-len(nonEditable),
	)

	type job struct {
		label string
		files []string
	}
	var jobs []job
	if separate {
		jobs = []job{
			{outputName + EditableSuffix, editable},
			{outputName + NonEditableSuffix, nonEditable},
		}
	} else {
		union := append(append([]string{}, editable...), nonEditable...)
		sort.Strings(union)
		jobs = []job{{outputName, union}}
	}

	result := make(Result)
	var errs []error
	for _, j := range jobs {
		if len(j.files) == 0 {
			c.log.Debug("skipping empty bundle", "label", j.label)
			continue
		}
		b, err := c.writer.Write(j.label, j.files)
		if err != nil {
			c.log.Error("bundle failed", "label", j.label, "error", err)
			errs = append(errs, &BundleError{Label: j.label, Err: err})
			continue
		}
		c.log.Info("bundle written", "label", j.label, "path", b.Path, "count", b.Count)
		result[j.label] = b
	}

	return result, errors.Join(errs...)
}
