package vm

import "git.sr.ht/~mango/pilot/ast"

// handler runs a command with the text following its colon
type handler func(vm *Vm, args string) error

// ‘X:’ is missing since it needs the dispatcher state; see step
var handlers = map[ast.Command]handler{
	ast.CmdRemark:   (*Vm).remark,
	ast.CmdDebug:    (*Vm).debug,
	ast.CmdUse:      (*Vm).use,
	ast.CmdCompute:  (*Vm).compute,
	ast.CmdType:     (*Vm).type_,
	ast.CmdAccept:   (*Vm).accept,
	ast.CmdEnd:      (*Vm).end,
	ast.CmdMatch:    (*Vm).match,
	ast.CmdJump:     (*Vm).jump,
	ast.CmdYes:      (*Vm).yes,
	ast.CmdNo:       (*Vm).no,
	ast.CmdShell:    (*Vm).shell,
	ast.CmdGenerate: (*Vm).generate,
}
