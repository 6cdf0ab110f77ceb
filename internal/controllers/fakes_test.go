package controllers

import (
	"caffeine-editor/internal/dialogs"
)

type pathAnswer struct {
	path string
	ok   bool
}

type alert struct {
	title    string
	message  string
	severity dialogs.Severity
}

// fakeDialogs answers pickers from queues and records every prompt and alert.
type fakeDialogs struct {
	openAnswers []pathAnswer
	saveAnswers []pathAnswer

	openPrompts int
	savePrompts int
	alerts      []alert
}

func (f *fakeDialogs) PromptOpenPath(done dialogs.PathCallback) {
	f.openPrompts++
	done(f.next(&f.openAnswers))
}

func (f *fakeDialogs) PromptSavePath(done dialogs.PathCallback) {
	f.savePrompts++
	done(f.next(&f.saveAnswers))
}

func (f *fakeDialogs) Alert(title, message string, severity dialogs.Severity) {
	f.alerts = append(f.alerts, alert{title: title, message: message, severity: severity})
}

func (f *fakeDialogs) next(queue *[]pathAnswer) (string, bool) {
	if len(*queue) == 0 {
		return "", false
	}
	a := (*queue)[0]
	*queue = (*queue)[1:]
	return a.path, a.ok
}

func (f *fakeDialogs) alertsOf(severity dialogs.Severity) []alert {
	var out []alert
	for _, a := range f.alerts {
		if a.severity == severity {
			out = append(out, a)
		}
	}
	return out
}

// fakeView stands in for the Fyne window.
type fakeView struct {
	title string
	text  string

	handlers    map[string]func()
	textChanged func(string)
}

func newFakeView() *fakeView {
	return &fakeView{handlers: make(map[string]func())}
}

func (v *fakeView) SetWindowTitle(title string) { v.title = title }

func (v *fakeView) SetText(text string) {
	v.text = text
	if v.textChanged != nil {
		v.textChanged(text)
	}
}

func (v *fakeView) SetNewHandler(h func())                    { v.handlers["new"] = h }
func (v *fakeView) SetOpenHandler(h func())                   { v.handlers["open"] = h }
func (v *fakeView) SetSaveHandler(h func())                   { v.handlers["save"] = h }
func (v *fakeView) SetSaveAsHandler(h func())                 { v.handlers["save_as"] = h }
func (v *fakeView) SetExitHandler(h func())                   { v.handlers["exit"] = h }
func (v *fakeView) SetTextChangedHandler(h func(text string)) { v.textChanged = h }

// typeText simulates the user replacing the text area content.
func (v *fakeView) typeText(text string) {
	v.SetText(text)
}

func (v *fakeView) click(item string) {
	v.handlers[item]()
}
