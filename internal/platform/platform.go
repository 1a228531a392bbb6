package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform selects the duplicate naming convention.
type Platform int

const (
	// Unix names duplicates with a numeric suffix: report2.pdf.
	Unix Platform = iota
	// Windows names duplicates with a "-copy" suffix: report-copy.pdf.
	Windows
)

// String returns "UNIX" or "WINDOWS".
func (p Platform) String() string {
	if p == Windows {
		return "WINDOWS"
	}
	return "UNIX"
}

// Detect maps an OS identifier (a runtime.GOOS value) to a Platform.
// Anything that is not Windows, including an empty or unknown identifier,
// falls back to the Unix convention.
func Detect(goos string) Platform {
	if strings.EqualFold(strings.TrimSpace(goos), "windows") {
		return Windows
	}
	return Unix
}

// Current returns the Platform of the running process.
func Current() Platform {
	return Detect(runtime.GOOS)
}

// Parse resolves a configured platform name. "auto" and "" mean Current().
func Parse(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Current(), nil
	case "windows":
		return Windows, nil
	case "unix", "linux", "darwin":
		return Unix, nil
	default:
		return Unix, fmt.Errorf("unknown platform %q (expected auto, windows, or unix)", name)
	}
}
