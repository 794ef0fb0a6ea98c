// Package fileio provides the upload and download collaborators shared by the
// CLI and the MCP server: size-bounded reads as text or data URL, and
// symlink-safe output writes.
package fileio

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// OwnerReadWrite is the file permission mode for converted output files
// (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// DefaultMaxSize bounds reads when the caller passes a non-positive limit.
const DefaultMaxSize int64 = 10 * 1024 * 1024

// StdPath is the path that selects stdin for reads and stdout for writes.
const StdPath = "-"

// ReadText reads the file at path (or stdin for "-") as text.
// Files larger than maxSize bytes are rejected.
func ReadText(path string, maxSize int64) (string, error) {
	data, err := readBounded(path, maxSize, os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadAll reads r as text, rejecting input larger than maxSize bytes.
func ReadAll(r io.Reader, maxSize int64) (string, error) {
	data, err := readLimited(r, maxSize)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadDataURL reads the file at path and returns it as a base64 data URL.
// The MIME type comes from the file extension, falling back to content sniffing.
func ReadDataURL(path string, maxSize int64) (string, error) {
	data, err := readBounded(path, maxSize, os.Stdin)
	if err != nil {
		return "", err
	}
	return DataURL(MIMEType(path, data), data), nil
}

// DataURL encodes data as a base64 data URL of the given MIME type.
func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// MIMEType guesses the MIME type of a file from its extension, then its content.
// Parameters such as charset are stripped.
func MIMEType(path string, data []byte) string {
	mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mt == "" {
		mt = http.DetectContentType(data)
	}
	if base, _, err := mime.ParseMediaType(mt); err == nil {
		return base
	}
	return mt
}

// SanitizeOutputPath validates and cleans an output file path.
// It resolves ".." components via filepath.Clean + filepath.Abs and
// rejects paths that resolve to symlinks. New files in existing
// directories are accepted. Returns the cleaned absolute path.
func SanitizeOutputPath(path string) (string, error) {
	cleaned := filepath.Clean(path)

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("fileio: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("fileio: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
		// New file, nothing to check.
	default:
		return "", fmt.Errorf("fileio: cannot stat path: %w", err)
	}

	return abs, nil
}

// WriteOutput writes data to path with OwnerReadWrite permissions.
// An empty path or "-" writes to stdout instead.
func WriteOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == StdPath {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("fileio: writing output: %w", err)
		}
		return nil
	}
	abs, err := SanitizeOutputPath(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(abs, data, OwnerReadWrite); err != nil {
		return fmt.Errorf("fileio: writing %s: %w", path, err)
	}
	return nil
}

func readBounded(path string, maxSize int64, stdin io.Reader) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if path == StdPath {
		return readLimited(stdin, maxSize)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fileio: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("fileio: %s is a directory", path)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("fileio: %s is %d bytes, exceeding the %d byte limit", path, info.Size(), maxSize)
	}
	f, err := os.Open(path) //nolint:gosec // G304 - reading user-selected input is the purpose
	if err != nil {
		return nil, fmt.Errorf("fileio: %w", err)
	}
	defer func() { _ = f.Close() }()
	return readLimited(f, maxSize)
}

func readLimited(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("fileio: reading input: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("fileio: input exceeds the %d byte limit", maxSize)
	}
	return data, nil
}
