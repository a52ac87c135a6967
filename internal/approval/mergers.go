package approval

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadMergersFile reads a newline-delimited list of logins.
// Lines are taken literally; only a trailing newline and CRLF endings are normalised.
func LoadMergersFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is from command-line flag
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	return splitLines(string(data)), nil
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
