package speech

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WithTempFile copies r into a uniquely named file in dir (os.TempDir when
// empty) and calls fn with its path. The file is removed before WithTempFile
// returns, on success and on every failure path.
func WithTempFile(dir, ext string, r io.Reader, fn func(path string) error) error {
	ext = cleanExt(ext)

	f, err := os.CreateTemp(dir, "speech-*"+ext)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return fn(path)
}

func cleanExt(ext string) string {
	ext = filepath.Base(strings.TrimSpace(ext))
	if ext == "." || ext == string(filepath.Separator) || strings.ContainsAny(ext, `/\*`) {
		return ""
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
