// Package native shows the operating system's own file pickers and message
// boxes. It links against the platform toolkit (GTK on Linux).
package native

import (
	"errors"
	"runtime"

	"caffeine-editor/internal/dialogs"
	"caffeine-editor/internal/logger"

	sqweek "github.com/sqweek/dialog"
)

var _ dialogs.Dialogs = (*Dialogs)(nil)

// Dialogs uses the operating system's pickers and message boxes. Every
// call blocks until the user dismisses the dialog.
type Dialogs struct {
	logger logger.Logger
}

// New creates native dialogs. A nil logger discards output.
func New(log logger.Logger) *Dialogs {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Dialogs{logger: log}
}

// PromptOpenPath blocks in the OS open picker.
func (d *Dialogs) PromptOpenPath(done dialogs.PathCallback) {
	path, err := picker("Open Text File").Load()
	d.finish("open", path, err, done)
}

// PromptSavePath blocks in the OS save picker. It creates no file.
func (d *Dialogs) PromptSavePath(done dialogs.PathCallback) {
	path, err := picker("Save Text File").Save()
	d.finish("save", path, err, done)
}

// Alert blocks in a native message box.
func (d *Dialogs) Alert(title, message string, severity dialogs.Severity) {
	box := sqweek.Message("%s", message).Title(title)
	if severity == dialogs.Error {
		box.Error()
		return
	}
	box.Info()
}

func picker(title string) *sqweek.FileBuilder {
	builder := sqweek.File().Title(title)
	for _, filter := range dialogs.NativeFilters(runtime.GOOS) {
		builder = builder.Filter(filter.Label, filter.Extensions...)
	}
	return builder
}

func (d *Dialogs) finish(kind, path string, err error, done dialogs.PathCallback) {
	switch {
	case errors.Is(err, sqweek.ErrCancelled):
		done("", false)
	case err != nil:
		d.logger.Error("Dialogs", err, map[string]interface{}{"picker": kind})
		d.Alert("Error", "File dialog failed: "+err.Error(), dialogs.Error)
		done("", false)
	default:
		done(path, path != "")
	}
}
