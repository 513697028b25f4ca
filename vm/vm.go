// Package vm runs PILOT programs.  A program is executed one line at a time
// straight from its source; jumps and subroutine calls reposition the source
// and nothing is compiled ahead of time other than the label table.
package vm

import (
	"errors"
	"io"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"git.sr.ht/~mango/pilot/builtin"
	"git.sr.ht/~mango/pilot/config"
	"git.sr.ht/~mango/pilot/label"
	"git.sr.ht/~mango/pilot/log"
	"git.sr.ht/~mango/pilot/pkg/stack"
	"git.sr.ht/~mango/pilot/source"
	"git.sr.ht/~mango/pilot/vm/vars"
)

// AnswerVar receives input from an ‘A:’ without a variable name
const AnswerVar = "$ANSWER"

// Env is the outside world a program runs against
type Env struct {
	Console builtin.Console
	Runner  builtin.Runner
	Logger  *zap.Logger // May be nil
}

type Vm struct {
	src    source.Source
	labels *label.Table
	vars   *vars.Table
	calls  stack.Stack[int64]
	conf   config.Config

	con    builtin.Console
	runner builtin.Runner
	log    *zap.Logger
	rand   *rand.Rand

	accepted string // String variable most recently filled by ‘A:’
	nesting  int    // Depth of ‘X:’ commands currently executing
}

// New prepares src for execution.  The labels of the whole program are
// collected before New returns, so a jump may name a label defined further
// down.
func New(src source.Source, conf config.Config, env Env) (*Vm, error) {
	labels, err := label.Scan(src)
	if err != nil {
		var dup label.DuplicateError
		if errors.As(err, &dup) {
			return nil, Error{dup.Line, err}
		}
		return nil, Error{0, err}
	}

	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := env.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Vm{
		src:      src,
		labels:   labels,
		vars:     vars.New(conf.Strict),
		calls:    stack.New[int64](conf.MaxDepth),
		conf:     conf,
		con:      env.Console,
		runner:   env.Runner,
		log:      logger,
		rand:     rand.New(rand.NewPCG(seed, seed)),
		accepted: AnswerVar,
	}, nil
}

// Run executes the program until it runs off the end of its source, ends
// with ‘E:’ outside of any subroutine, or hits a fatal error.  Errors which
// are not fatal are reported and execution carries on with the next line.
// A fatal error is returned as an Error.
func (vm *Vm) Run() error {
	var st state
	for {
		s, err := vm.src.ReadLine()
		switch {
		case errors.Is(err, io.EOF):
			vm.log.Debug("end of source")
			return nil
		case err != nil:
			return Error{vm.src.Line(), err}
		}

		n := vm.src.Line()
		st, err = vm.step(st, s)
		switch {
		case err == nil:
		case errors.Is(err, errEnd):
			vm.log.Debug("end of program", zap.Int("line", n))
			return nil
		case Fatal(err):
			return Error{n, err}
		default:
			log.Report(n, false, err)
		}
	}
}

// Vars exposes the variables of the program
func (vm *Vm) Vars() *vars.Table {
	return vm.vars
}

// Depth is the number of subroutine calls awaiting an ‘E:’
func (vm *Vm) Depth() int {
	return vm.calls.Len()
}
