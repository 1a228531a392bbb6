package config

import (
	"fmt"
	"strings"
)

// InvalidError reports a config that failed validation.
type InvalidError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Path != "" {
			msgs = append(msgs, is.Path+": "+is.Message)
		} else {
			msgs = append(msgs, is.Message)
		}
	}
	return fmt.Sprintf("invalid config %s: %s", e.Path, strings.Join(msgs, "; "))
}
