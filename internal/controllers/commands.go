package controllers

// Command is a user-selectable editor action.
type Command int

const (
	CommandNew Command = iota
	CommandOpen
	CommandSave
	CommandSaveAs
	CommandExit
)

func (c Command) String() string {
	switch c {
	case CommandNew:
		return "new"
	case CommandOpen:
		return "open"
	case CommandSave:
		return "save"
	case CommandSaveAs:
		return "save_as"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Commands lists every command in menu order.
func Commands() []Command {
	return []Command{CommandNew, CommandOpen, CommandSave, CommandSaveAs, CommandExit}
}

// commandTable maps each command to its handler.
func (mc *MainController) commandTable() map[Command]func() {
	return map[Command]func(){
		CommandNew:    mc.newDocument,
		CommandOpen:   mc.openDocument,
		CommandSave:   mc.saveDocument,
		CommandSaveAs: mc.saveDocumentAs,
		CommandExit:   mc.exit,
	}
}
