// Package source wraps a piece of target-language source text with
// the metadata the lexer, parser, and error reporting need.
package source

import (
	"path/filepath"
	"strings"
)

// File represents a source file with its content and metadata.
type File struct {
	Name    string // Display name (e.g., "script.luau", "<stdin>", "<eval>")
	Path    string // Full file path (empty for REPL/eval)
	Content string // The source code content
	lines   []string
}

// New creates a new source file.
func New(name, path, content string) *File {
	return &File{Name: name, Path: path, Content: content}
}

// FromFile creates a File from a file path and its already-read content.
func FromFile(filePath, content string) *File {
	return New(filepath.Base(filePath), filePath, content)
}

// FromString creates an anonymous in-memory source, e.g. for a REPL
// line or a one-off `to-string` call.
func FromString(content string) *File {
	return New("<eval>", "", content)
}

// Lines returns the source split into lines, cached after first call.
func (f *File) Lines() []string {
	if f.lines == nil {
		f.lines = strings.Split(f.Content, "\n")
	}
	return f.lines
}

// Line returns the 0-based line n, or "" if out of range.
func (f *File) Line(n int) string {
	lines := f.Lines()
	if n < 0 || n >= len(lines) {
		return ""
	}
	return lines[n]
}

// DisplayPath returns the best path for display (prefers Path, falls
// back to Name).
func (f *File) DisplayPath() string {
	if f.Path != "" {
		return f.Path
	}
	return f.Name
}
