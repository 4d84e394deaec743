package shell

import (
	"papertrail-ai/pkg/extractor"
)

// Command is one user action. Each command is applied to the session state under the dispatcher lock.
type Command interface {
	commandName() string
}

type RenameCommand struct {
	Name string
}

type SwitchCommand struct {
	Name string
}

type DeleteCommand struct{}

type NewCommand struct{}

type SubmitCommand struct {
	Files []extractor.File
}

type AskCommand struct {
	Question string
}

func (RenameCommand) commandName() string { return "rename" }
func (SwitchCommand) commandName() string { return "switch" }
func (DeleteCommand) commandName() string { return "delete" }
func (NewCommand) commandName() string    { return "new" }
func (SubmitCommand) commandName() string { return "submit" }
func (AskCommand) commandName() string    { return "ask" }
