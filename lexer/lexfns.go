package lexer

import "unicode"

type lexFn func(*lexer) lexFn

func lexDefault(l *lexer) lexFn {
	for {
		switch r := l.next(); {
		case r == eof:
			l.emit(TokEof)
			return nil
		case unicode.IsSpace(r), IsParen(r):
			l.ignore()
		case IsMathOp(r):
			l.emit(TokOp)
		case IsRelChar(r):
			return lexRel
		default:
			l.backup()
			return lexWord
		}
	}
}

// lexRel is entered with the first relational rune already consumed.  The
// two-rune operators are ‘<=’, ‘>=’, and ‘<>’.
func lexRel(l *lexer) lexFn {
	first := rune(l.input[l.start])
	switch r := l.peek(); {
	case r == '=' && first != '=',
		r == '>' && first == '<':
		l.next()
	}
	l.emit(TokRel)
	return lexDefault
}

func lexWord(l *lexer) lexFn {
	for !isDelim(l.next()) {
	}
	l.backup()
	l.emit(TokWord)
	return lexDefault
}
