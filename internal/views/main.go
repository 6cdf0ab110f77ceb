package views

import (
	"caffeine-editor/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MainView is the editor window: main menu on top, text area in the
// centre. Methods must be called on the UI goroutine.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	menuBar       *components.MenuBar
	editor        *components.TextEditor
}

// NewMainView creates the main view and installs its menu on window.
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.menuBar = components.NewMenuBar()
	mv.editor = components.NewTextEditor()
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		nil, // top
		nil, // bottom
		nil, // left
		nil, // right
		mv.editor.GetContainer(),
	)

	mv.window.SetMainMenu(mv.menuBar.GetMainMenu())
	mv.window.SetContent(mv.mainContainer)
}

// Handler setters, called by the controller.

func (mv *MainView) SetNewHandler(handler func())    { mv.menuBar.SetNewHandler(handler) }
func (mv *MainView) SetOpenHandler(handler func())   { mv.menuBar.SetOpenHandler(handler) }
func (mv *MainView) SetSaveHandler(handler func())   { mv.menuBar.SetSaveHandler(handler) }
func (mv *MainView) SetSaveAsHandler(handler func()) { mv.menuBar.SetSaveAsHandler(handler) }
func (mv *MainView) SetExitHandler(handler func())   { mv.menuBar.SetExitHandler(handler) }

func (mv *MainView) SetTextChangedHandler(handler func(string)) {
	mv.editor.SetChangedHandler(handler)
}

// UI update methods, called by the controller.

func (mv *MainView) SetWindowTitle(title string) {
	mv.window.SetTitle(title)
}

func (mv *MainView) SetText(text string) {
	mv.editor.SetText(text)
}

func (mv *MainView) GetText() string {
	return mv.editor.GetText()
}

// Show displays the window and puts the cursor in the text area.
func (mv *MainView) Show() {
	mv.window.Show()
	mv.editor.Focus(mv.window.Canvas())
}

func (mv *MainView) Close() {
	mv.window.Close()
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
