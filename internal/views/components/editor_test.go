package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestTextEditorWrapsWords(t *testing.T) {
	test.NewApp()
	te := NewTextEditor()

	assert.Equal(t, fyne.TextWrapWord, te.entry.Wrapping)
	assert.True(t, te.entry.MultiLine)
}

func TestTextEditorSetText(t *testing.T) {
	test.NewApp()
	te := NewTextEditor()

	te.SetText("hello\nworld")
	assert.Equal(t, "hello\nworld", te.GetText())
}

func TestTextEditorChangedHandler(t *testing.T) {
	test.NewApp()
	te := NewTextEditor()

	te.onChanged("ignored without handler")

	var got []string
	te.SetChangedHandler(func(s string) { got = append(got, s) })
	te.onChanged("a")
	te.onChanged("ab")

	assert.Equal(t, []string{"a", "ab"}, got)
}
