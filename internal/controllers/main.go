package controllers

import (
	"time"

	"caffeine-editor/internal/dialogs"
	"caffeine-editor/internal/logger"
	"caffeine-editor/internal/models"
	"caffeine-editor/internal/services"
)

// TitlePrefix starts every window title.
const TitlePrefix = "Caffeine Text Editor - "

const (
	alertErrorTitle   = "Error"
	alertSuccessTitle = "Success"
	msgSaved          = "File saved successfully!"
	msgReadFailed     = "Could not read file: "
	msgWriteFailed    = "Could not save file: "
)

// View is the part of the window the controller drives.
type View interface {
	SetWindowTitle(title string)
	SetText(text string)

	SetNewHandler(handler func())
	SetOpenHandler(handler func())
	SetSaveHandler(handler func())
	SetSaveAsHandler(handler func())
	SetExitHandler(handler func())
	SetTextChangedHandler(handler func(string))
}

// Title builds the window title for a document display name.
func Title(displayName string) string {
	return TitlePrefix + displayName
}

// MainController dispatches menu commands against the document. All methods
// run on the UI goroutine.
type MainController struct {
	document *models.Document
	store    services.FileStore
	dialogs  dialogs.Dialogs
	logger   logger.Logger

	view     View
	quit     func()
	now      func() time.Time
	handlers map[Command]func()

	actionHooks []ActionHook
}

// NewMainController creates a new main controller for document. A nil logger
// discards output.
func NewMainController(
	document *models.Document,
	store services.FileStore,
	dlg dialogs.Dialogs,
	log logger.Logger,
) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	mc := &MainController{
		document: document,
		store:    store,
		dialogs:  dlg,
		logger:   log,
		quit:     func() {},
		now:      time.Now,
	}
	mc.handlers = mc.commandTable()
	return mc
}

// SetMainView binds the view's menu and text callbacks to the controller
// and shows the current document.
func (mc *MainController) SetMainView(view View) {
	mc.view = view

	view.SetNewHandler(func() { mc.Dispatch(CommandNew) })
	view.SetOpenHandler(func() { mc.Dispatch(CommandOpen) })
	view.SetSaveHandler(func() { mc.Dispatch(CommandSave) })
	view.SetSaveAsHandler(func() { mc.Dispatch(CommandSaveAs) })
	view.SetExitHandler(func() { mc.Dispatch(CommandExit) })
	view.SetTextChangedHandler(mc.TextChanged)

	view.SetText(mc.document.Text())
	mc.refreshTitle()
}

// SetQuitHandler sets what Exit does, normally quitting the Fyne app.
func (mc *MainController) SetQuitHandler(quit func()) {
	if quit != nil {
		mc.quit = quit
	}
}

// Dispatch runs the handler registered for cmd.
func (mc *MainController) Dispatch(cmd Command) {
	handler, ok := mc.handlers[cmd]
	if !ok {
		mc.logger.Warning("Controller", "unknown command ignored", map[string]interface{}{
			"command": int(cmd),
		})
		return
	}

	mc.logger.Debug("Controller", "command dispatched", map[string]interface{}{
		"command": cmd.String(),
	})
	handler()
}

// TextChanged mirrors an edit made in the text area into the document.
func (mc *MainController) TextChanged(text string) {
	mc.document.SetText(text)
}

// Document exposes the document for inspection.
func (mc *MainController) Document() *models.Document {
	return mc.document
}

// WindowTitle is the title matching the current document.
func (mc *MainController) WindowTitle() string {
	return Title(mc.document.DisplayName())
}

func (mc *MainController) newDocument() {
	mc.document.Reset()
	if mc.view != nil {
		mc.view.SetText("")
	}
	mc.refreshTitle()
}

func (mc *MainController) openDocument() {
	mc.dialogs.PromptOpenPath(func(path string, ok bool) {
		if !ok {
			mc.logger.Debug("Controller", "open cancelled", nil)
			return
		}

		text, err := mc.store.Read(path)
		if err != nil {
			mc.fail(msgReadFailed, path, err)
			return
		}

		mc.document.Load(path, text)
		if mc.view != nil {
			mc.view.SetText(text)
		}
		mc.refreshTitle()

		mc.logger.Info("Controller", "document opened", map[string]interface{}{
			"path":  path,
			"bytes": len(text),
		})
		mc.emitAction(ActionOpen, path)
	})
}

func (mc *MainController) saveDocument() {
	if mc.document.HasPath() {
		mc.saveTo(mc.document.Path())
		return
	}
	mc.saveDocumentAs()
}

func (mc *MainController) saveDocumentAs() {
	mc.dialogs.PromptSavePath(func(path string, ok bool) {
		if !ok {
			mc.logger.Debug("Controller", "save cancelled", nil)
			return
		}
		mc.saveTo(dialogs.WithTextExtension(path))
	})
}

func (mc *MainController) saveTo(path string) {
	text := mc.document.Text()
	if err := mc.store.Write(path, text); err != nil {
		mc.fail(msgWriteFailed, path, err)
		return
	}

	mc.document.Load(path, text)
	mc.refreshTitle()

	mc.logger.Info("Controller", "document saved", map[string]interface{}{
		"path":  path,
		"bytes": len(text),
	})
	mc.emitAction(ActionSave, path)
	mc.dialogs.Alert(alertSuccessTitle, msgSaved, dialogs.Info)
}

func (mc *MainController) exit() {
	mc.logger.Info("Controller", "exit requested", nil)
	mc.quit()
}

func (mc *MainController) refreshTitle() {
	if mc.view != nil {
		mc.view.SetWindowTitle(mc.WindowTitle())
	}
}

// fail reports err once and leaves the document as it was.
func (mc *MainController) fail(prefix, path string, err error) {
	mc.logger.Error("Controller", err, map[string]interface{}{"path": path})
	mc.dialogs.Alert(alertErrorTitle, prefix+err.Error(), dialogs.Error)
}
