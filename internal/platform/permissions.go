package platform

import (
	"os"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits, so a duplicate keeps
// whatever mode the filesystem assigned on create.
func Chmod(path string, mode os.FileMode) error {
	if Current() == Windows {
		return nil
	}
	return os.Chmod(path, mode.Perm())
}
