// Package source resolves a content source (a file path, stdin, or an
// in-memory buffer) into the bytes that get searched. Every loader reads its
// origin exactly once; callers keep the returned buffer instead of going back
// to the file.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxSize is the largest file loaded when no limit is configured.
const DefaultMaxSize int64 = 10 * 1024 * 1024

// StdinName is the source name that selects standard input on the command line.
const StdinName = "-"

var (
	// ErrIsDirectory is returned when a directory is given as a content source.
	ErrIsDirectory = errors.New("is a directory")

	// ErrTooLarge is returned when the content exceeds the configured size limit.
	ErrTooLarge = errors.New("exceeds maximum size")
)

// Loader resolves a content source into memory.
type Loader interface {
	// Name identifies the source in diagnostics and output.
	Name() string

	// Load reads the whole source. It is called once per invocation.
	Load() ([]byte, error)
}

type options struct {
	maxSize      int64
	documentText bool
}

// Option configures a file or reader source.
type Option func(*options)

// WithMaxSize limits how many bytes a source may contain (0 = unlimited).
func WithMaxSize(n int64) Option {
	return func(o *options) {
		o.maxSize = n
	}
}

// WithDocumentText searches the extracted text of supported document
// formats (currently PDF) instead of their raw bytes.
func WithDocumentText() Option {
	return func(o *options) {
		o.documentText = true
	}
}

func newOptions(opts []Option) options {
	o := options{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FileLoader loads a file from disk.
type FileLoader struct {
	path string
	opts options
}

// File returns a loader for the file at path.
func File(path string, opts ...Option) *FileLoader {
	return &FileLoader{path: path, opts: newOptions(opts)}
}

// Name returns the path as given.
func (f *FileLoader) Name() string {
	return f.path
}

// Load stats the file, enforces the size limit and reads it in one call.
// Errors leave the path out; callers report it alongside the cause.
func (f *FileLoader) Load() ([]byte, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return nil, bareCause(err)
	}
	if info.IsDir() {
		return nil, ErrIsDirectory
	}
	if f.opts.maxSize > 0 && info.Size() > f.opts.maxSize {
		return nil, fmt.Errorf("%w of %d bytes (file has %d bytes)", ErrTooLarge, f.opts.maxSize, info.Size())
	}

	if f.opts.documentText && strings.EqualFold(filepath.Ext(f.path), ".pdf") {
		return extractPDF(f.path)
	}

	content, err := os.ReadFile(f.path)
	if err != nil {
		return nil, bareCause(err)
	}
	slog.Debug("loaded source", "path", f.path, "bytes", len(content))
	return content, nil
}

// bareCause strips the *fs.PathError wrapper so the path is not repeated.
func bareCause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// ReaderLoader drains an io.Reader, e.g. standard input.
type ReaderLoader struct {
	name string
	r    io.Reader
	opts options
}

// Reader returns a loader that reads r to EOF.
func Reader(name string, r io.Reader, opts ...Option) *ReaderLoader {
	return &ReaderLoader{name: name, r: r, opts: newOptions(opts)}
}

// Name returns the name given at construction.
func (l *ReaderLoader) Name() string {
	return l.name
}

// Load reads the reader to EOF, failing once more than the size limit has been read.
func (l *ReaderLoader) Load() ([]byte, error) {
	r := l.r
	if l.opts.maxSize > 0 {
		r = io.LimitReader(l.r, l.opts.maxSize+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if l.opts.maxSize > 0 && int64(len(content)) > l.opts.maxSize {
		return nil, fmt.Errorf("%w of %d bytes", ErrTooLarge, l.opts.maxSize)
	}
	slog.Debug("loaded source", "name", l.name, "bytes", len(content))
	return content, nil
}

// BytesLoader serves content that is already in memory.
type BytesLoader struct {
	name    string
	content []byte
}

// Bytes returns a loader over content.
func Bytes(name string, content []byte) *BytesLoader {
	return &BytesLoader{name: name, content: content}
}

// Name returns the name given at construction.
func (b *BytesLoader) Name() string {
	return b.name
}

// Load returns a copy of the content so the caller owns its buffer.
func (b *BytesLoader) Load() ([]byte, error) {
	return append([]byte(nil), b.content...), nil
}

// Open picks the loader for a command-line source argument: "-" reads
// stdin, anything else is a file path.
func Open(name string, stdin io.Reader, opts ...Option) Loader {
	if name == StdinName {
		return Reader("(standard input)", stdin, opts...)
	}
	return File(name, opts...)
}
