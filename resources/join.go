package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// JoinPath prefixes the path with the base resource path. Directories leading
// up to the final element are created as required but the final element
// itself is never touched.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	b, err := basePath()
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

func basePath() (string, error) {
	if pth, ok := portablePath(); ok {
		return pth, nil
	}
	return resourcePath()
}
