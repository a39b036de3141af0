package app

import (
	"fmt"
	"io"
	"os"
)

func isStdin(path string) bool { return path == "" || path == "-" }

func inputName(path string) string {
	if isStdin(path) {
		return "stdin"
	}
	return path
}

// openInput returns stdin for "" and "-", otherwise the named file.
func openInput(path string) (io.Reader, func(), error) {
	if isStdin(path) {
		return stdinReader, func() {}, nil
	}
	f, err := os.Open(path) // #nosec G304 -- the user names the file to read
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
