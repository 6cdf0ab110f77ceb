package dialogs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"caffeine-editor/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

var (
	pickerSize   = fyne.NewSize(800, 560)
	saveFormSize = fyne.NewSize(520, 0)
)

var _ Dialogs = (*FyneDialogs)(nil)

// FyneDialogs shows Fyne's in-window dialogs on top of the editor window.
type FyneDialogs struct {
	window fyne.Window
	logger logger.Logger

	// fileType is the open filter chosen last time.
	fileType string
	// lastDir is where the next picker starts.
	lastDir string
}

// NewFyneDialogs creates dialogs attached to window. Pickers start in the
// user's home directory.
func NewFyneDialogs(window fyne.Window, log logger.Logger) *FyneDialogs {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	home, _ := os.UserHomeDir()
	return &FyneDialogs{
		window:   window,
		logger:   log,
		fileType: TextFilesLabel,
		lastDir:  home,
	}
}

// PromptOpenPath asks for the file type, text files preselected, and then
// shows the picker restricted to it. Fyne's picker has no type selector of
// its own.
func (d *FyneDialogs) PromptOpenPath(done PathCallback) {
	choice := widget.NewRadioGroup([]string{TextFilesLabel, AllFilesLabel}, nil)
	choice.Required = true
	choice.SetSelected(d.fileType)

	dialog.ShowCustomConfirm("Open Text File", "Browse…", "Cancel", choice, func(ok bool) {
		if !ok {
			done("", false)
			return
		}
		d.fileType = choice.Selected
		d.showOpenPicker(done)
	}, d.window)
}

func (d *FyneDialogs) showOpenPicker(done PathCallback) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		d.handleOpen(reader, err, done)
	}, d.window)

	if filter := openFilter(d.fileType); filter != nil {
		fd.SetFilter(filter)
	}
	if location := d.location(); location != nil {
		fd.SetLocation(location)
	}
	fd.Resize(pickerSize)
	fd.Show()
}

// handleOpen maps the picker result onto done. The reader is only used for
// its URI; the file store reads the file itself.
func (d *FyneDialogs) handleOpen(reader fyne.URIReadCloser, err error, done PathCallback) {
	if err != nil {
		d.pickerFailed("open", err)
		done("", false)
		return
	}
	if reader == nil {
		done("", false)
		return
	}

	path := reader.URI().Path()
	if closeErr := reader.Close(); closeErr != nil {
		d.logger.Warning("Dialogs", "closing picked file failed", map[string]interface{}{
			"path":  path,
			"error": closeErr.Error(),
		})
	}
	d.lastDir = filepath.Dir(path)
	done(path, true)
}

// PromptSavePath asks for a folder and a file name. Fyne's save picker opens
// (and truncates) the file it returns, so it is not used: nothing touches
// the disk until the caller writes.
func (d *FyneDialogs) PromptSavePath(done PathCallback) {
	name := widget.NewEntry()
	name.SetText("Untitled" + TextExtension)

	folder := widget.NewLabel(d.lastDir)
	folder.Truncation = fyne.TextTruncateEllipsis

	browse := widget.NewButton("Browse…", func() {
		fd := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
			if err != nil {
				d.pickerFailed("folder", err)
				return
			}
			if dir == nil {
				return
			}
			d.lastDir = dir.Path()
			folder.SetText(d.lastDir)
		}, d.window)
		if location := d.location(); location != nil {
			fd.SetLocation(location)
		}
		fd.Resize(pickerSize)
		fd.Show()
	})

	items := []*widget.FormItem{
		widget.NewFormItem("Folder", container.NewBorder(nil, nil, nil, browse, folder)),
		widget.NewFormItem("File name", name),
	}
	form := dialog.NewForm("Save Text File", "Save", "Cancel", items, func(ok bool) {
		if !ok {
			done("", false)
			return
		}
		d.completeSave(d.lastDir, name.Text, done)
	}, d.window)
	form.Resize(saveFormSize)
	form.Show()
}

// completeSave resolves the chosen name and asks before an existing file
// would be replaced. The check uses the name the caller will write, .txt
// included.
func (d *FyneDialogs) completeSave(dir, name string, done PathCallback) {
	path, ok := resolveSavePath(dir, name)
	if !ok {
		d.Alert("Error", "Please enter a file name.", Error)
		done("", false)
		return
	}

	target := WithTextExtension(path)
	exists, err := storage.Exists(storage.NewFileURI(target))
	if err != nil {
		d.logger.Warning("Dialogs", "existence check failed", map[string]interface{}{
			"path":  target,
			"error": err.Error(),
		})
	}
	if !exists {
		done(path, true)
		return
	}

	message := fmt.Sprintf("%s already exists. Replace it?", filepath.Base(target))
	dialog.ShowConfirm("Replace File", message, func(replace bool) {
		if !replace {
			done("", false)
			return
		}
		done(path, true)
	}, d.window)
}

// Alert shows a modal information or error dialog.
func (d *FyneDialogs) Alert(title, message string, severity Severity) {
	d.logger.Debug("Dialogs", "alert shown", map[string]interface{}{
		"title":    title,
		"severity": severity.String(),
	})

	if severity == Error {
		dialog.ShowError(errors.New(message), d.window)
		return
	}
	dialog.ShowInformation(title, message, d.window)
}

func (d *FyneDialogs) pickerFailed(kind string, err error) {
	d.logger.Error("Dialogs", err, map[string]interface{}{"picker": kind})
	d.Alert("Error", "File dialog failed: "+err.Error(), Error)
}

func (d *FyneDialogs) location() fyne.ListableURI {
	if d.lastDir == "" {
		return nil
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(d.lastDir))
	if err != nil {
		return nil
	}
	return lister
}

// openFilter is nil for all files.
func openFilter(fileType string) storage.FileFilter {
	if fileType == AllFilesLabel {
		return nil
	}
	return storage.NewExtensionFileFilter([]string{TextExtension})
}

// resolveSavePath joins a typed name onto dir. Absolute names are used as
// they are.
func resolveSavePath(dir, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(filepath.Separator)) {
		return "", false
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name), true
	}
	return filepath.Join(dir, name), true
}
