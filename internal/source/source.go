// Package source supplies script text to the engine: local files, files at a
// git revision, and interactively entered commands. Read failures are
// reported as access errors before any analysis starts.
package source

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/logging"
)

var (
	// ErrNotFound means the script path does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrNotRegular means the path exists but is not a regular file.
	ErrNotRegular = errors.New("not a regular file")
	// ErrNotText means the content is not valid UTF-8 text.
	ErrNotText = errors.New("content is not valid UTF-8 text")
)

// Kind identifies where a document came from.
type Kind string

const (
	KindFile     Kind = "file"
	KindGit      Kind = "git"
	KindCommands Kind = "commands"
	KindStdin    Kind = "stdin"
)

// Document is a decoded text source ready for the engine.
type Document struct {
	Kind Kind   `json:"kind"`
	Path string `json:"path,omitempty"`
	Rev  string `json:"rev,omitempty"`
	Size int64  `json:"size"`
	// SHA256 is the hex digest of the raw content.
	SHA256 string   `json:"sha256"`
	Lines  []string `json:"-"`
}

// LineCount is the number of physical lines the document splits into.
func (d *Document) LineCount() int { return len(d.Lines) }

// ShortHash is the 16 character digest prefix shown in reports.
func (d *Document) ShortHash() string {
	if len(d.SHA256) < 16 {
		return d.SHA256
	}
	return d.SHA256[:16]
}

// AccessError wraps any failure to obtain text from a source.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string { return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err) }

func (e *AccessError) Unwrap() error { return e.Err }

// IsAccessError reports whether err came from reading a source.
func IsAccessError(err error) bool {
	var ae *AccessError
	return errors.As(err, &ae)
}

// ReadFile loads a script from disk.
func ReadFile(path string) (*Document, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &AccessError{Path: path, Err: ErrNotFound}
		}
		return nil, &AccessError{Path: path, Err: err}
	}
	if !st.Mode().IsRegular() {
		return nil, &AccessError{Path: path, Err: ErrNotRegular}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	logging.L().Debugw("read script", "path", path, "bytes", len(b))
	return FromBytes(KindFile, path, b)
}

// FromBytes builds a document from raw content, rejecting non-text input.
func FromBytes(kind Kind, path string, b []byte) (*Document, error) {
	if !utf8.Valid(b) {
		return nil, &AccessError{Path: path, Err: ErrNotText}
	}
	sum := sha256.Sum256(b)
	return &Document{
		Kind:   kind,
		Path:   path,
		Size:   int64(len(b)),
		SHA256: hex.EncodeToString(sum[:]),
		Lines:  engine.SplitLines(string(b)),
	}, nil
}
