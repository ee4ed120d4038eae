package dispatch

import (
	"fmt"
	"strings"

	"contactbook/internal/domain"
)

// Command identifies a dispatcher handler.
type Command int

const (
	CmdUnknown Command = iota
	CmdHello
	CmdHelp
	CmdAdd
	CmdDelete
	CmdChange
	CmdShow
)

var commandNames = map[Command]string{
	CmdHello:  "hello",
	CmdHelp:   "help",
	CmdAdd:    "add",
	CmdDelete: "delete",
	CmdChange: "change",
	CmdShow:   "show",
}

// commandTokens maps command words to commands. "phone" is kept as an alias of show.
var commandTokens = map[string]Command{
	"hello":  CmdHello,
	"help":   CmdHelp,
	"add":    CmdAdd,
	"delete": CmdDelete,
	"change": CmdChange,
	"show":   CmdShow,
	"phone":  CmdShow,
}

// String returns the canonical command word.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Lookup resolves a command word, ignoring case.
func Lookup(token string) (Command, error) {
	cmd, ok := commandTokens[strings.ToLower(token)]
	if !ok {
		return CmdUnknown, fmt.Errorf("%w: %q, type 'help' to list commands", domain.ErrUnknownCommand, token)
	}
	return cmd, nil
}

// Parse splits line on whitespace into a lower-cased command word and its
// arguments. Arguments keep their case.
func Parse(line string) (string, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, domain.ErrEmptyInput
	}
	return strings.ToLower(fields[0]), fields[1:], nil
}
