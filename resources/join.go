package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JoinPath prepends the supplied path with a with OS/build specific base
// paths, if required.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	var b string

	if checkPortable() {
		b = portablePath()
	} else {
		var err error
		b, err = resourcePath()
		if err != nil {
			return "", fmt.Errorf("resources: %w", err)
		}
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}
