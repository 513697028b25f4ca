package ast

import "unicode"

// Command is a PILOT command letter, always stored in upper case
type Command rune

const (
	CmdNone     Command = 0
	CmdRemark   Command = 'R'
	CmdDebug    Command = 'D'
	CmdUse      Command = 'U'
	CmdCompute  Command = 'C'
	CmdType     Command = 'T'
	CmdAccept   Command = 'A'
	CmdEnd      Command = 'E'
	CmdMatch    Command = 'M'
	CmdJump     Command = 'J'
	CmdExecute  Command = 'X'
	CmdYes      Command = 'Y'
	CmdNo       Command = 'N'
	CmdShell    Command = 'S'
	CmdGenerate Command = 'G'
)

var commandNames = map[Command]string{
	CmdRemark:   "remark",
	CmdDebug:    "debug",
	CmdUse:      "use",
	CmdCompute:  "compute",
	CmdType:     "type",
	CmdAccept:   "accept",
	CmdEnd:      "end",
	CmdMatch:    "match",
	CmdJump:     "jump",
	CmdExecute:  "execute",
	CmdYes:      "yes",
	CmdNo:       "no",
	CmdShell:    "shell",
	CmdGenerate: "generate",
}

// LookupCommand maps a (case-insensitive) command letter to its Command
func LookupCommand(r rune) (Command, bool) {
	c := Command(unicode.ToUpper(r))
	_, ok := commandNames[c]
	return c, ok
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "none"
}
