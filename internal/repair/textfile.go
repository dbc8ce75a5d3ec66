package repair

import (
	"errors"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// readText reads the whole file at path and checks that it is valid UTF-8.
func readText(op, path string) (string, error) {
	if path == "" {
		return "", &OpError{Op: op, Kind: KindInvalidArgument, Err: errors.New("source path is empty")}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fsError(op, path, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", fsError(op, path, err)
	}

	if _, _, err := transform.Bytes(encoding.UTF8Validator, raw); err != nil {
		return "", &OpError{Op: op, Kind: KindEncoding, Path: path, Err: err}
	}
	return string(raw), nil
}

// writeText truncates (or creates) the file at path and writes content to it.
// An existing file keeps its permission bits.
func writeText(op, path, content string) (int, error) {
	if path == "" {
		return 0, &OpError{Op: op, Kind: KindInvalidArgument, Err: errors.New("destination path is empty")}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fsError(op, path, err)
	}

	n, err := io.WriteString(f, content)
	if err != nil {
		f.Close()
		return n, fsError(op, path, err)
	}
	if err := f.Close(); err != nil {
		return n, fsError(op, path, err)
	}
	return n, nil
}
