package controllers

import (
	"fmt"
	"time"

	"caffeine-editor/internal/logger"
)

// ActionKind names a file event a history collaborator may want to record.
type ActionKind int

const (
	ActionOpen ActionKind = iota
	ActionSave
)

func (k ActionKind) String() string {
	switch k {
	case ActionOpen:
		return "open"
	case ActionSave:
		return "save"
	default:
		return "unknown"
	}
}

// Action is a completed open or save.
type Action struct {
	Kind ActionKind
	Path string
	At   time.Time
}

// ActionHook observes successful opens and saves.
type ActionHook func(Action)

// OnAction registers a hook. Hooks run synchronously, in registration order,
// after the document has been updated.
func (mc *MainController) OnAction(hook ActionHook) {
	if hook == nil {
		return
	}
	mc.actionHooks = append(mc.actionHooks, hook)
}

func (mc *MainController) emitAction(kind ActionKind, path string) {
	action := Action{Kind: kind, Path: path, At: mc.now()}
	for i, hook := range mc.actionHooks {
		mc.runHook(i, hook, action)
	}
}

func (mc *MainController) runHook(index int, hook ActionHook, action Action) {
	defer func() {
		if r := recover(); r != nil {
			mc.logger.Error("Controller", fmt.Errorf("action hook panicked: %v", r), map[string]interface{}{
				"hook":   index,
				"action": action.Kind.String(),
			})
		}
	}()
	hook(action)
}

// NewActionLogger returns a hook that writes every action to the log under
// the History component.
func NewActionLogger(log logger.Logger) ActionHook {
	return func(a Action) {
		log.Info("History", "document action", map[string]interface{}{
			"action": a.Kind.String(),
			"path":   a.Path,
			"at":     a.At.Format(time.RFC3339),
		})
	}
}
