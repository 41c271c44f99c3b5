package lexer

import "github.com/ccfront/lexer/token"

// scanNumber implements the permissive pp-number grammar (Open Question
// 2): once started by a digit or a '.' immediately followed by a digit,
// it consumes any run of identifier-continue characters, '.', '\'', or
// an exponent-sign pair ([eEpP][+-]). Numeric validation (is this a
// valid int/float suffix, base, etc.) is deferred to a later phase; the
// lexer only captures the maximal raw text.
func (l *Lexer) scanNumber(first byte) token.Token {
	l.resetBuf()
	l.appendByte(first)
	for {
		b, ok := l.peek()
		if !ok {
			break
		}
		switch {
		case b == 'e' || b == 'E' || b == 'p' || b == 'P':
			l.get()
			l.appendByte(b)
			if nb, ok2 := l.peek(); ok2 && (nb == '+' || nb == '-') {
				l.get()
				l.appendByte(nb)
			}
		case isIdentContinue(b) || b == '.' || b == '\'':
			l.get()
			l.appendByte(b)
		default:
			return l.makeToken(token.NUMBER, l.bufString())
		}
	}
	return l.makeToken(token.NUMBER, l.bufString())
}
