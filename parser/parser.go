// Package parser classifies PILOT source lines and parses the conditional
// guards that gate them.
package parser

import "git.sr.ht/~mango/pilot/lexer"

type parser struct {
	toks <-chan lexer.Token
}

func newParser(s string) *parser {
	l := lexer.New(s)
	go l.Run()
	return &parser{toks: l.Out}
}

func (p *parser) next() lexer.Token {
	return <-p.toks
}

// drain consumes the remaining tokens so the lexer goroutine can exit
func (p *parser) drain() {
	for range p.toks {
	}
}
