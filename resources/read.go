package resources

import (
	"errors"
	"io/fs"
	"os"
)

// Read the named resource. A resource that does not exist yet is returned as
// an empty string with no error.
func Read(name string) (string, error) {
	pth, err := JoinPath(name)
	if err != nil {
		return "", err
	}

	b, err := os.ReadFile(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	return string(b), nil
}

// Write content to the named resource, replacing anything already there.
func Write(name string, content string) error {
	pth, err := JoinPath(name)
	if err != nil {
		return err
	}
	return os.WriteFile(pth, []byte(content), 0600)
}
