package resources

import (
	"fmt"
	"io"
	"os"
)

// Read the named resource file. A file that does not exist is not an error
// and the empty string is returned
func Read(filename string) (string, error) {
	pth, err := JoinPath(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Open(pth)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("resources: %w", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return string(b), nil
}

// Write content to the named resource file, replacing any previous content
func Write(filename string, content string) error {
	pth, err := JoinPath(filename)
	if err != nil {
		return err
	}

	f, err := os.Create(pth)
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}
	defer f.Close()

	n, err := f.WriteString(content)
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}
	if n != len(content) {
		return fmt.Errorf("resources: content not completely written")
	}

	return nil
}
