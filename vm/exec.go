package vm

import (
	"strings"

	"go.uber.org/zap"

	"git.sr.ht/~mango/pilot/ast"
	"git.sr.ht/~mango/pilot/expr"
	"git.sr.ht/~mango/pilot/parser"
)

// state is carried from each line to the next
type state struct {
	last ast.Command // Command a ‘:’ line continues
}

// step executes a single line and returns the state for the line after it
func (vm *Vm) step(st state, line string) (state, error) {
	stmt := parser.ParseLine(line)
	switch stmt.Kind {
	case ast.StmtBlank, ast.StmtLabel, ast.StmtComment:
		return st, nil
	case ast.StmtUnknown:
		return st, UnknownCommandError{stmt.Text}
	case ast.StmtContinuation:
		if st.last == ast.CmdNone {
			return st, UnknownCommandError{stmt.Text}
		}
		stmt.Cmd = st.last
	case ast.StmtCommand:
		st.last = stmt.Cmd
	}

	vm.log.Debug("dispatch",
		zap.Int("line", vm.src.Line()),
		zap.Stringer("cmd", stmt.Cmd),
		zap.String("guard", stmt.Guard),
		zap.String("args", stmt.Args))

	if stmt.Guarded() {
		ok, err := vm.test(stmt.Guard)
		if err != nil || !ok {
			return st, err
		}
	}

	if stmt.Cmd == ast.CmdExecute {
		return vm.execute(st, stmt.Args)
	}
	return st, handlers[stmt.Cmd](vm, stmt.Args)
}

// execute runs the text of an ‘X:’ as if it were a line of its own.  The
// executed line becomes the command a following ‘:’ continues.
func (vm *Vm) execute(st state, args string) (state, error) {
	s, err := vm.text(args)
	if err != nil {
		return st, err
	}
	if vm.nesting >= vm.conf.MaxDepth {
		return st, NestingError{vm.conf.MaxDepth}
	}

	vm.nesting++
	defer func() { vm.nesting-- }()
	return vm.step(st, s)
}

func (vm *Vm) test(guard string) (bool, error) {
	g, err := parser.ParseGuard(guard)
	if err != nil {
		return false, err
	}
	return expr.Test(g, vm.vars)
}

// text returns args with surrounding whitespace removed, or the value of the
// string variable args names
func (vm *Vm) text(args string) (string, error) {
	s := strings.TrimSpace(args)
	if strings.HasPrefix(s, "$") {
		return vm.vars.String(s)
	}
	return s, nil
}
