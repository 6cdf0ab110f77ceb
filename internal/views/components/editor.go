package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// TextEditor is the word-wrapping text area filling the window.
type TextEditor struct {
	entry          *widget.Entry
	changedHandler func(string)
}

// NewTextEditor creates a new multi-line, word-wrapping text area.
func NewTextEditor() *TextEditor {
	te := &TextEditor{}

	te.entry = widget.NewMultiLineEntry()
	te.entry.Wrapping = fyne.TextWrapWord
	te.entry.OnChanged = te.onChanged

	return te
}

func (te *TextEditor) onChanged(text string) {
	if te.changedHandler != nil {
		te.changedHandler(text)
	}
}

// SetChangedHandler is called with the full text after every edit.
func (te *TextEditor) SetChangedHandler(handler func(string)) {
	te.changedHandler = handler
}

// SetText replaces the content. Unchanged text is left alone.
func (te *TextEditor) SetText(text string) {
	if te.entry.Text == text {
		return
	}
	te.entry.SetText(text)
}

func (te *TextEditor) GetText() string {
	return te.entry.Text
}

// Focus puts the cursor in the text area.
func (te *TextEditor) Focus(canvas fyne.Canvas) {
	canvas.Focus(te.entry)
}

func (te *TextEditor) GetContainer() fyne.CanvasObject {
	return te.entry
}
