package components

import "fyne.io/fyne/v2"

const (
	FileMenuLabel    = "File"
	HistoryMenuLabel = "History"
)

// MenuBar is the window's main menu: File commands plus the History menu,
// whose single item has no backing action yet.
type MenuBar struct {
	mainMenu *fyne.MainMenu

	newItem    *fyne.MenuItem
	openItem   *fyne.MenuItem
	saveItem   *fyne.MenuItem
	saveAsItem *fyne.MenuItem
	exitItem   *fyne.MenuItem
	recentItem *fyne.MenuItem

	newHandler    func()
	openHandler   func()
	saveHandler   func()
	saveAsHandler func()
	exitHandler   func()
}

// NewMenuBar creates a new menu bar. Items do nothing until a handler is set.
func NewMenuBar() *MenuBar {
	mb := &MenuBar{}
	mb.createItems()
	mb.buildMenu()
	return mb
}

func (mb *MenuBar) createItems() {
	mb.newItem = fyne.NewMenuItem("New", func() { invoke(mb.newHandler) })
	mb.openItem = fyne.NewMenuItem("Open…", func() { invoke(mb.openHandler) })
	mb.saveItem = fyne.NewMenuItem("Save", func() { invoke(mb.saveHandler) })
	mb.saveAsItem = fyne.NewMenuItem("Save As…", func() { invoke(mb.saveAsHandler) })

	// IsQuit stops the driver from appending its own Quit item.
	mb.exitItem = fyne.NewMenuItem("Exit", func() { invoke(mb.exitHandler) })
	mb.exitItem.IsQuit = true

	mb.recentItem = fyne.NewMenuItem("View Recent Files…", func() {})
	mb.recentItem.Disabled = true
}

func (mb *MenuBar) buildMenu() {
	fileMenu := fyne.NewMenu(FileMenuLabel,
		mb.newItem,
		mb.openItem,
		mb.saveItem,
		mb.saveAsItem,
		fyne.NewMenuItemSeparator(),
		mb.exitItem,
	)
	historyMenu := fyne.NewMenu(HistoryMenuLabel, mb.recentItem)

	mb.mainMenu = fyne.NewMainMenu(fileMenu, historyMenu)
}

// Handler setters, one per File menu item.

func (mb *MenuBar) SetNewHandler(handler func())    { mb.newHandler = handler }
func (mb *MenuBar) SetOpenHandler(handler func())   { mb.openHandler = handler }
func (mb *MenuBar) SetSaveHandler(handler func())   { mb.saveHandler = handler }
func (mb *MenuBar) SetSaveAsHandler(handler func()) { mb.saveAsHandler = handler }
func (mb *MenuBar) SetExitHandler(handler func())   { mb.exitHandler = handler }

// GetMainMenu returns the menu for fyne.Window.SetMainMenu.
func (mb *MenuBar) GetMainMenu() *fyne.MainMenu {
	return mb.mainMenu
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}
