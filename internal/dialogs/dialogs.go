// Package dialogs presents file pickers and modal alerts.
//
// Pickers report through a callback so the Fyne back end never blocks the
// event loop; the native back end calls it before returning.
package dialogs

import (
	"path/filepath"
	"strings"
)

// TextExtension is appended to save targets that lack it.
const TextExtension = ".txt"

// Labels of the two file types offered by the open picker.
const (
	TextFilesLabel = "Text Files (*.txt)"
	AllFilesLabel  = "All Files"
)

// Severity selects the icon and tone of an alert.
type Severity int

// Alert severities.
const (
	Info Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// PathCallback receives the chosen path. ok is false when the user
// cancelled.
type PathCallback func(path string, ok bool)

// Dialogs is implemented by every picker back end.
type Dialogs interface {
	PromptOpenPath(done PathCallback)
	PromptSavePath(done PathCallback)
	Alert(title, message string, severity Severity)
}

// FilterSpec is one entry of a native picker's file type list.
type FilterSpec struct {
	Label      string
	Extensions []string
}

// NativeFilters returns the filter list for the OS picker on goos, default
// first. Only Windows matches "*.*" against names without an extension; the
// GTK and Cocoa pickers would hide those files, so they get no filter and
// show everything.
func NativeFilters(goos string) []FilterSpec {
	if goos != "windows" {
		return nil
	}
	return []FilterSpec{
		{Label: TextFilesLabel, Extensions: []string{"txt"}},
		{Label: AllFilesLabel, Extensions: []string{"*"}},
	}
}

// HasTextExtension reports whether the file name already ends in .txt,
// ignoring case.
func HasTextExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), TextExtension)
}

// WithTextExtension appends .txt unless the name already carries it.
func WithTextExtension(path string) string {
	if HasTextExtension(path) {
		return path
	}
	return path + TextExtension
}
