package fsops

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/obinexus/shellutils/internal/platform"
)

// Exists reports whether path exists. A stat failure other than
// "not exist" is returned so callers never treat an unreadable path as free.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsRegularFile reports whether path names an existing regular file,
// following symlinks.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CopyFile copies src to dst byte for byte. dst is created exclusively, so
// a file that appeared after the caller's existence check is never
// overwritten. Permissions and modification time are restored best-effort.
// A failed copy removes the partial dst.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &IOError{Op: "copy", Path: src, Err: err}
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return &IOError{Op: "copy", Path: src, Err: err}
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		return &IOError{Op: "copy", Path: dst, Err: err}
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return &IOError{Op: "copy", Path: dst, Err: fmt.Errorf("copying %s: %w", src, err)}
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return &IOError{Op: "copy", Path: dst, Err: err}
	}

	// The umask may have narrowed the create mode.
	_ = platform.Chmod(dst, srcInfo.Mode())
	_ = os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())

	return nil
}
