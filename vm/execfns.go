package vm

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"git.sr.ht/~mango/pilot/config"
	"git.sr.ht/~mango/pilot/expr"
	"git.sr.ht/~mango/pilot/pkg/stringsx"
	"git.sr.ht/~mango/pilot/vm/vars"
)

const whichVar = "#WHICH"

var rule = strings.Repeat("=", 78) + "\n"

func (vm *Vm) remark(_ string) error {
	return nil
}

// debug dumps the labels for every ‘L’ in args and the variables for every
// ‘V’, in the order they appear
func (vm *Vm) debug(args string) error {
	sb := strings.Builder{}
	sb.WriteString(rule)
	for _, r := range strings.ToUpper(strings.TrimSpace(args)) {
		switch r {
		case 'L':
			sb.WriteString("Label Dump:\n")
			vm.labels.Each(func(name string, off int64) {
				fmt.Fprintf(&sb, "%s : %d\n", name, off)
			})
		case 'V':
			sb.WriteString("Variable Dump:\n")
			vm.vars.Each(func(v vars.Var) {
				fmt.Fprintf(&sb, "%s : %v\n", v.Name, v.Value())
			})
		}
	}
	sb.WriteString(rule)
	return vm.con.WriteText(sb.String())
}

func (vm *Vm) use(args string) error {
	name := strings.TrimSpace(args)
	off, err := vm.labels.Resolve(name)
	if err != nil {
		return err
	}

	ret := vm.src.Offset()
	if !vm.calls.Push(ret) {
		if vm.conf.Overflow == config.OverflowError {
			return StackOverflowError{vm.calls.Cap()}
		}
		vm.log.Warn("call stack full; return address dropped",
			zap.Int("line", vm.src.Line()),
			zap.Int64("return", ret))
	}

	vm.log.Debug("call", zap.String("label", name), zap.Int64("offset", off),
		zap.Int("depth", vm.calls.Len()))
	return vm.src.Seek(off)
}

// compute assigns to the variable left of the first ‘=’.  A string variable
// gets each whitespace separated word of the right-hand side, with string
// variables substituted, each followed by a single space.  A numeric variable
// gets the value of the right-hand side as an expression.
func (vm *Vm) compute(args string) error {
	i := strings.IndexByte(args, '=')
	if i == -1 {
		return MissingAssignmentError{strings.TrimSpace(args)}
	}
	name := strings.TrimSpace(args[:i])
	rhs := strings.TrimSpace(args[i+1:])
	if name == "" {
		return MissingAssignmentError{strings.TrimSpace(args)}
	}

	if vars.KindOf(name) == vars.Numeric {
		n, err := expr.Eval(rhs, vm.vars)
		if err != nil {
			return err
		}
		return vm.vars.SetNumeric(name, n)
	}

	sb := strings.Builder{}
	for _, f := range stringsx.Fields(rhs) {
		if strings.HasPrefix(f, "$") {
			s, err := vm.vars.String(f)
			if err != nil {
				return err
			}
			f = s
		}
		sb.WriteString(f)
		sb.WriteByte(' ')
	}
	return vm.vars.SetString(name, sb.String())
}

func (vm *Vm) type_(args string) error {
	s, err := Render(args, vm.vars)
	if err != nil {
		return err
	}
	return vm.con.WriteText(s)
}

// accept prompts for a line of input and stores it in the named variable, or
// in $ANSWER if no name is given.  Input for a numeric variable is read as an
// integer; anything unreadable is 0.
func (vm *Vm) accept(args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		name = AnswerVar
	}

	if err := vm.con.WriteText(vm.conf.Prompt); err != nil {
		return err
	}
	s, err := vm.con.ReadLine()
	switch {
	case errors.Is(err, io.EOF):
		vm.log.Debug("end of input", zap.String("var", name))
	case err != nil:
		return err
	}

	if vars.KindOf(name) == vars.Numeric {
		return vm.vars.SetNumeric(name, expr.Atoi(s))
	}
	if err := vm.vars.SetString(name, s); err != nil {
		return err
	}
	vm.accepted = name
	return nil
}

func (vm *Vm) end(_ string) error {
	off := vm.calls.Pop()
	if off == nil {
		return errEnd
	}
	vm.log.Debug("return", zap.Int64("offset", *off),
		zap.Int("depth", vm.calls.Len()))
	return vm.src.Seek(*off)
}

// match compares the last accepted input against each alternative in args,
// ignoring case.  #MATCHED is set to 1 and #WHICH to the 1-based position of
// the first alternative that is equal, or both are set to 0.
func (vm *Vm) match(args string) error {
	s, err := vm.vars.String(vm.accepted)
	if err != nil {
		return err
	}
	s = strings.ToUpper(s)

	matched, which := 0, 0
	for i, alt := range stringsx.Fields(args) {
		if strings.ToUpper(alt) == s {
			matched, which = 1, i+1
			break
		}
	}

	if err := vm.vars.SetNumeric(expr.MatchedVar, matched); err != nil {
		return err
	}
	return vm.vars.SetNumeric(whichVar, which)
}

func (vm *Vm) jump(args string) error {
	name := strings.TrimSpace(args)
	off, err := vm.labels.Resolve(name)
	if err != nil {
		return err
	}
	vm.log.Debug("jump", zap.String("label", name), zap.Int64("offset", off))
	return vm.src.Seek(off)
}

func (vm *Vm) yes(args string) error {
	return vm.typeIfMatched(args, true)
}

func (vm *Vm) no(args string) error {
	return vm.typeIfMatched(args, false)
}

func (vm *Vm) typeIfMatched(args string, want bool) error {
	m, err := vm.vars.Numeric(expr.MatchedVar)
	if err != nil {
		return err
	}
	if (m == 1) != want {
		return nil
	}
	return vm.type_(args)
}

func (vm *Vm) shell(args string) error {
	s, err := vm.text(args)
	if err != nil {
		return err
	}
	if err := vm.runner.Run(s); err != nil {
		return RunError{err}
	}
	return nil
}

// generate handles ‘G: #var low high’, storing a random integer between low
// and high inclusive.  The bounds may be given in either order.
func (vm *Vm) generate(args string) error {
	name := stringsx.Nth(args, 1)
	if name == "" {
		return MissingAssignmentError{strings.TrimSpace(args)}
	}

	lo, err := expr.Eval(stringsx.Nth(args, 2), vm.vars)
	if err != nil {
		return err
	}
	hi, err := expr.Eval(stringsx.Nth(args, 3), vm.vars)
	if err != nil {
		return err
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	// The span only overflows when the bounds cover every int
	n := vm.rand.Int()
	if span := hi - lo + 1; span > 0 {
		n = lo + vm.rand.IntN(span)
	}
	return vm.vars.SetNumeric(name, n)
}
