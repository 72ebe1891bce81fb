package loader

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"textstat/internal/domain"
)

const DefaultMaxBytes int64 = 5 << 20

var (
	// ErrUnsupportedType is returned for files that are neither .txt nor text/plain.
	ErrUnsupportedType = errors.New("please upload a .txt file only")
	// ErrTooLarge is returned for inputs above the configured size limit.
	ErrTooLarge = errors.New("file exceeds size limit")
)

// FileLoader reads small text files and decodes them to UTF-8 strings.
type FileLoader struct {
	maxBytes int64
}

// New creates a loader rejecting inputs larger than maxBytes.
func New(maxBytes int64) *FileLoader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &FileLoader{maxBytes: maxBytes}
}

// Load reads path. The file must be text/plain or carry a .txt extension.
func (l *FileLoader) Load(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.Document{}, err
	}
	if info.IsDir() {
		return domain.Document{}, fmt.Errorf("%s: %w", path, ErrUnsupportedType)
	}
	if info.Size() > l.maxBytes {
		return domain.Document{}, fmt.Errorf("%s (%d bytes): %w", path, info.Size(), ErrTooLarge)
	}
	f, err := os.Open(path)
	if err != nil {
		return domain.Document{}, err
	}
	defer f.Close()
	data, err := l.read(path, f)
	if err != nil {
		return domain.Document{}, err
	}
	if !isText(path, data) {
		return domain.Document{}, fmt.Errorf("%s: %w", path, ErrUnsupportedType)
	}
	return newDocument(path, data)
}

// LoadReader reads a document from r without a file type check. It serves
// stdin and typed input, which are text by definition.
func (l *FileLoader) LoadReader(ctx context.Context, name string, r io.Reader) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	data, err := l.read(name, r)
	if err != nil {
		return domain.Document{}, err
	}
	return newDocument(name, data)
}

func (l *FileLoader) read(name string, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%s: %w", name, ErrTooLarge)
	}
	return data, nil
}

func newDocument(name string, data []byte) (domain.Document, error) {
	content, err := Decode(data)
	if err != nil {
		return domain.Document{}, fmt.Errorf("decode %s: %w", name, err)
	}
	return domain.Document{
		ID:      hashString(name),
		Path:    name,
		Content: content,
		Size:    int64(len(data)),
	}, nil
}

// Decode converts raw bytes to a string. A UTF-8 BOM is dropped and UTF-16
// input with a BOM is transcoded; invalid UTF-8 becomes U+FFFD.
func Decode(data []byte) (string, error) {
	t := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func isText(name string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(name), ".txt") {
		return true
	}
	return mimetype.Detect(data).Is("text/plain")
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
