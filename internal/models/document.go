package models

import "path/filepath"

// UntitledName is shown for a document that has never been saved.
const UntitledName = "Untitled"

// FileReference identifies a file on disk together with the name shown to
// the user.
type FileReference struct {
	Path string
	Name string
}

// NewFileReference derives the display name from the last path segment.
func NewFileReference(path string) FileReference {
	return FileReference{Path: path, Name: filepath.Base(path)}
}

// Document is the single in-memory text buffer and the file it belongs to.
// An empty path means the document is untitled. It is owned by the UI
// goroutine and is not safe for concurrent use.
type Document struct {
	text string
	path string
}

// NewDocument creates a new empty, untitled document.
func NewDocument() *Document {
	return &Document{}
}

// Reset clears the text and drops the file association.
func (d *Document) Reset() {
	d.text = ""
	d.path = ""
}

// Load replaces the buffer and associates the document with path.
func (d *Document) Load(path, text string) {
	d.text = text
	d.path = path
}

func (d *Document) Text() string {
	return d.text
}

func (d *Document) SetText(text string) {
	d.text = text
}

func (d *Document) HasPath() bool {
	return d.path != ""
}

func (d *Document) Path() string {
	return d.path
}

// Reference returns the associated file, if any.
func (d *Document) Reference() (FileReference, bool) {
	if !d.HasPath() {
		return FileReference{}, false
	}
	return NewFileReference(d.path), true
}

// DisplayName is the file name, or UntitledName.
func (d *Document) DisplayName() string {
	if ref, ok := d.Reference(); ok {
		return ref.Name
	}
	return UntitledName
}
