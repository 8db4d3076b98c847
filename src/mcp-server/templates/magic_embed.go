// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.md
var embeddedFS embed.FS

// EmbedFS defines the interface for accessing embedded template files.
// It abstracts the [embed.FS] type so tests can substitute their own files.
type EmbedFS interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)

	// ReadDir reads the named directory and returns a list of directory entries.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Open opens the named file for reading.
	Open(name string) (fs.File, error)
}

// embedFS wraps [embed.FS] to implement EmbedFS interface.
type embedFS struct{ fs embed.FS }

// ReadFile reads the named file and returns the contents.
func (e *embedFS) ReadFile(name string) ([]byte, error) { return e.fs.ReadFile(name) }

// ReadDir reads the named directory and returns a list of directory entries.
func (e *embedFS) ReadDir(name string) ([]fs.DirEntry, error) { return e.fs.ReadDir(name) }

// Open opens the named file for reading.
func (e *embedFS) Open(name string) (fs.File, error) { return e.fs.Open(name) }

// Template file names.
const (
	// Instructions is the text/template sent to clients on initialization.
	Instructions = "instructions.md"

	// Formats documents the accepted input and output formats.
	Formats = "formats.md"

	// CLIHelp holds the command help text; the part after "## Examples" becomes the cobra Example.
	CLIHelp = "cli_help.md"
)

// MagicEmbed is the embedded filesystem used for accessing template files.
//
// Example usage for reading the formats document:
//
//	content, err := templates.MagicEmbed.ReadFile(templates.Formats)
//	if err != nil {
//		return fmt.Errorf("failed to read formats document: %w", err)
//	}
var MagicEmbed EmbedFS = &embedFS{fs: embeddedFS}
