package tui

import (
	"strings"
)

type commandKind int

const (
	commandAsk commandKind = iota
	commandUpload
	commandAnalyze
	commandSave
	commandHelp
	commandQuit
	commandUnknown
)

type command struct {
	kind commandKind
	arg  string
	name string
}

// parseCommand reads one line of input. Plain text is a question; a leading
// slash starts a shell command.
func parseCommand(line string) command {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "/") {
		return command{kind: commandAsk, arg: line}
	}

	name, arg, _ := strings.Cut(trimmed, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "/upload":
		return command{kind: commandUpload, arg: arg, name: name}
	case "/analyze":
		return command{kind: commandAnalyze, name: name}
	case "/save":
		return command{kind: commandSave, arg: arg, name: name}
	case "/help":
		return command{kind: commandHelp, name: name}
	case "/quit", "/exit":
		return command{kind: commandQuit, name: name}
	default:
		return command{kind: commandUnknown, name: name}
	}
}

const helpText = "type a question and press enter · /upload <path> · /analyze · /save <path> · /quit"
