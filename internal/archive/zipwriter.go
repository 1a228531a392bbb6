package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	"github.com/obinexus/shellutils/internal/fsops"
	"github.com/obinexus/shellutils/internal/logging"
	"github.com/obinexus/shellutils/internal/naming"
	"github.com/obinexus/shellutils/internal/platform"
)

// ZipWriter writes bundles as "{outDir}/{label}.zip" using Deflate.
//
// Entries are stored under their base names. When two files share a base
// name, later ones are renamed with the Unix duplicate convention
// (notes.md, notes2.md, notes3.md, ...). Each archive is assembled in a
// temporary file and renamed into place only after it is complete.
type ZipWriter struct {
	outDir string
	level  int
	log    *logging.Logger
}

// bundleMode is the permission of finished archives.
const bundleMode = 0644

// ZipOption configures a ZipWriter.
type ZipOption func(*ZipWriter)

// WithLevel sets the Deflate compression level (flate.BestSpeed ..
// flate.BestCompression).
func WithLevel(level int) ZipOption {
	return func(w *ZipWriter) { w.level = level }
}

// WithZipLogger sets the writer's logger.
func WithZipLogger(l *logging.Logger) ZipOption {
	return func(w *ZipWriter) { w.log = l }
}

// NewZipWriter creates a ZipWriter rooted at outDir.
func NewZipWriter(outDir string, opts ...ZipOption) *ZipWriter {
	w := &ZipWriter{outDir: outDir, level: flate.DefaultCompression, log: logging.Discard()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// PathFor returns the archive path for label.
func (w *ZipWriter) PathFor(label string) string {
	return filepath.Join(w.outDir, label+".zip")
}

// Write packages files into the bundle named label, replacing an existing
// archive of the same name. A label may name a subdirectory of outDir
// ("sub/docs"), which is created. On failure no archive is left behind.
func (w *ZipWriter) Write(label string, files []string) (*Bundle, error) {
	final := w.PathFor(label)
	dir := filepath.Dir(final)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &fsops.IOError{Op: "write", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(final)+"-*.tmp")
	if err != nil {
		return nil, &fsops.IOError{Op: "write", Path: final, Err: err}
	}
	tmpPath := tmp.Name()

	entries, err := w.writeEntries(tmp, files)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err == nil {
		err = platform.Chmod(tmpPath, bundleMode)
	}
	if err != nil {
		os.Remove(tmpPath)
		return nil, &fsops.IOError{Op: "write", Path: final, Err: err}
	}

	if err := os.Rename(tmpPath, final); err != nil {
		os.Remove(tmpPath)
		return nil, &fsops.IOError{Op: "write", Path: final, Err: err}
	}

	b := &Bundle{
		Label:   label,
		Path:    final,
		Files:   append([]string(nil), files...),
		Entries: entries,
		Count:   len(files),
	}
	if info, err := os.Stat(final); err == nil {
		b.Size = info.Size()
	}
	if sum, err := fsops.Checksum(final); err == nil {
		b.SHA256 = sum
	}
	return b, nil
}

func (w *ZipWriter) writeEntries(out io.Writer, files []string) ([]string, error) {
	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(dst io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(dst, w.level)
	})

	used := make(map[string]bool, len(files))
	taken := func(name string) (bool, error) { return used[name], nil }

	entries := make([]string, 0, len(files))
	for _, path := range files {
		name := filepath.Base(path)
		if used[name] {
			renamed, err := naming.FindAvailableName(name, platform.Unix, taken)
			if err != nil {
				return nil, fmt.Errorf("naming entry for %s: %w", path, err)
			}
			w.log.Debug("renamed colliding entry", "file", path, "entry", renamed)
			name = renamed
		}
		used[name] = true

		if err := addFile(zw, path, name); err != nil {
			return nil, err
		}
		entries = append(entries, name)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}
	return entries, nil
}

func addFile(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("building header for %s: %w", path, err)
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("adding %s: %w", name, err)
	}
	if _, err := io.Copy(dst, f); err != nil {
		return fmt.Errorf("compressing %s: %w", path, err)
	}
	return nil
}
