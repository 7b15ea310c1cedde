// Package docio resolves the input document of a run and writes the final
// summary to its sink.
package docio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"

	"docsum/internal/domain/entity"
	"docsum/internal/observability/logging"
	"docsum/internal/usecase/summarize"
)

// DefaultMaxInputBytes caps the size of an input file.
const DefaultMaxInputBytes int64 = 64 << 20

// Source kinds reported by Resolve.
const (
	SourceText = "text"
	SourceFile = "file"
	SourceHTML = "html"
)

// Reader resolves the document of a run from a file or literal text.
type Reader struct {
	// MaxBytes is the largest accepted input file. Zero means DefaultMaxInputBytes.
	MaxBytes int64
}

// Resolved is a resolved document and the kind of source it came from.
type Resolved struct {
	Document entity.Document
	Kind     string
}

// Resolve returns the document selected by opts. Exactly one of the input
// path and the literal text must be set; callers run
// summarize.Options.CheckInputSource first. Every failure wraps
// entity.ErrInputResolution.
func (r Reader) Resolve(ctx context.Context, opts summarize.Options) (Resolved, error) {
	if err := opts.CheckInputSource(); err != nil {
		return Resolved{}, err
	}

	var res Resolved
	if opts.TextSet || opts.Text != "" {
		res = Resolved{
			Document: entity.Document{Source: entity.SourceLiteral, Text: opts.Text},
			Kind:     SourceText,
		}
	} else {
		doc, kind, err := r.readFile(ctx, opts.InputPath)
		if err != nil {
			return Resolved{}, err
		}
		res = Resolved{Document: doc, Kind: kind}
	}

	if res.Document.IsEmpty() {
		return Resolved{}, fmt.Errorf("%w: empty text provided", entity.ErrInputResolution)
	}
	return res, nil
}

func (r Reader) readFile(ctx context.Context, path string) (entity.Document, string, error) {
	logger := logging.FromContext(ctx)

	data, err := r.read(path)
	if err != nil {
		return entity.Document{}, "", err
	}
	if !utf8.Valid(data) {
		return entity.Document{}, "", fmt.Errorf("%w: %s is not valid UTF-8 text", entity.ErrInputResolution, path)
	}

	if !IsHTML(path) {
		logger.Debug("input file read",
			slog.String("path", path),
			slog.Int("bytes", len(data)))
		return entity.Document{Source: path, Text: string(data)}, SourceFile, nil
	}

	text, err := extractReadable(path, data)
	if err != nil {
		return entity.Document{}, "", err
	}
	logger.Debug("readable text extracted from HTML",
		slog.String("path", path),
		slog.Int("html_bytes", len(data)),
		slog.Int("text_bytes", len(text)))
	return entity.Document{Source: path, Text: text}, SourceHTML, nil
}

func (r Reader) read(path string) ([]byte, error) {
	limit := r.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxInputBytes
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file %s not found", entity.ErrInputResolution, path)
		}
		return nil, fmt.Errorf("%w: open %s: %w", entity.ErrInputResolution, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", entity.ErrInputResolution, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", entity.ErrInputResolution, path)
	}

	// Read one byte past the limit to detect oversized files.
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", entity.ErrInputResolution, path, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", entity.ErrInputResolution, path, limit)
	}
	return data, nil
}

// IsHTML reports whether path names an HTML document by its extension.
func IsHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}

func extractReadable(path string, data []byte) (string, error) {
	var pageURL *url.URL
	if abs, err := filepath.Abs(path); err == nil {
		pageURL = &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	}

	article, err := readability.FromReader(bytes.NewReader(data), pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: extract readable text from %s: %w", entity.ErrInputResolution, path, err)
	}
	return strings.TrimSpace(article.TextContent), nil
}
