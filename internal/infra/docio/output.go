package docio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"docsum/internal/domain/entity"
)

// CheckWritable verifies that a file can be created in the directory of
// path, without touching path itself. An empty path means stdout and always
// passes.
func CheckWritable(path string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: output directory %s: %w", entity.ErrOutputWrite, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", entity.ErrOutputWrite, dir)
	}

	probe, err := os.CreateTemp(dir, ".docsum-*")
	if err != nil {
		return fmt.Errorf("%w: output directory %s is not writable: %w", entity.ErrOutputWrite, dir, err)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}

// Writer writes the final summary to a file or, when Path is empty, to Stdout.
type Writer struct {
	Path   string
	Stdout io.Writer
}

// Write writes summary followed by exactly one newline. It returns the
// number of bytes written. Failures wrap entity.ErrOutputWrite.
func (w Writer) Write(summary string) (int, error) {
	data := []byte(strings.TrimRight(summary, "\r\n") + "\n")

	if w.Path == "" {
		out := w.Stdout
		if out == nil {
			out = os.Stdout
		}
		n, err := out.Write(data)
		if err != nil {
			return n, fmt.Errorf("%w: write stdout: %w", entity.ErrOutputWrite, err)
		}
		return n, nil
	}

	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return 0, fmt.Errorf("%w: write %s: %w", entity.ErrOutputWrite, w.Path, err)
	}
	return len(data), nil
}
