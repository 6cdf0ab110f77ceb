package views

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) (*MainView, fyne.Window) {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	return NewMainView(w), w
}

func menuLabels(m *fyne.Menu) []string {
	labels := make([]string, 0, len(m.Items))
	for _, item := range m.Items {
		if item.IsSeparator {
			labels = append(labels, "-")
			continue
		}
		labels = append(labels, item.Label)
	}
	return labels
}

func findItem(t *testing.T, m *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range m.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu %q has no item %q", m.Label, label)
	return nil
}

func TestMainMenuLayout(t *testing.T) {
	_, w := newTestView(t)

	mainMenu := w.MainMenu()
	require.NotNil(t, mainMenu)
	require.Len(t, mainMenu.Items, 2)

	file, history := mainMenu.Items[0], mainMenu.Items[1]
	assert.Equal(t, "File", file.Label)
	assert.Equal(t, []string{"New", "Open…", "Save", "Save As…", "-", "Exit"}, menuLabels(file))
	assert.True(t, findItem(t, file, "Exit").IsQuit)

	assert.Equal(t, "History", history.Label)
	assert.Equal(t, []string{"View Recent Files…"}, menuLabels(history))
	assert.True(t, findItem(t, history, "View Recent Files…").Disabled)
}

func TestMenuItemsInvokeHandlers(t *testing.T) {
	view, w := newTestView(t)

	var calls []string
	view.SetNewHandler(func() { calls = append(calls, "new") })
	view.SetOpenHandler(func() { calls = append(calls, "open") })
	view.SetSaveHandler(func() { calls = append(calls, "save") })
	view.SetSaveAsHandler(func() { calls = append(calls, "save_as") })
	view.SetExitHandler(func() { calls = append(calls, "exit") })

	file := w.MainMenu().Items[0]
	for _, label := range []string{"New", "Open…", "Save", "Save As…", "Exit"} {
		findItem(t, file, label).Action()
	}

	assert.Equal(t, []string{"new", "open", "save", "save_as", "exit"}, calls)
}

func TestMenuItemsWithoutHandlersDoNothing(t *testing.T) {
	_, w := newTestView(t)

	assert.NotPanics(t, func() {
		findItem(t, w.MainMenu().Items[0], "Save").Action()
		findItem(t, w.MainMenu().Items[1], "View Recent Files…").Action()
	})
}

func TestWindowTitleAndText(t *testing.T) {
	view, w := newTestView(t)

	view.SetWindowTitle("Caffeine Text Editor - a.txt")
	assert.Equal(t, "Caffeine Text Editor - a.txt", w.Title())

	view.SetText("line one\nline two")
	assert.Equal(t, "line one\nline two", view.GetText())

	view.SetText("")
	assert.Equal(t, "", view.GetText())
}

func TestEditsReachChangedHandler(t *testing.T) {
	view, _ := newTestView(t)

	var got string
	view.SetTextChangedHandler(func(text string) { got = text })
	entry, ok := view.editor.GetContainer().(*widget.Entry)
	require.True(t, ok)
	entry.OnChanged("typed")

	assert.Equal(t, "typed", got)
}
