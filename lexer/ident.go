package lexer

import (
	"github.com/ccfront/lexer/runeenc"
	"github.com/ccfront/lexer/token"
)

// scanU handles the 'u' and "u8" encoding prefixes: u8"..." and u8'...'
// are utf-8 string/char constants, u"..." and u'...' are char16, and
// anything else means 'u' (or "u8") was just an ordinary identifier
// start and the speculatively consumed bytes fall through to identifier
// scanning.
func (l *Lexer) scanU() token.Token {
	if l.tryByte('8') {
		if l.tryByte('"') {
			return l.scanString(token.STRING_U8)
		}
		if l.tryByte('\'') {
			return l.scanChar(token.CHAR_U8)
		}
		return l.scanIdentifier([]byte("u8"))
	}
	if l.tryByte('"') {
		return l.scanString(token.STRING_16)
	}
	if l.tryByte('\'') {
		return l.scanChar(token.CHAR_16)
	}
	return l.scanIdentifier([]byte("u"))
}

// scanUpperU handles the 'U' (char32) encoding prefix, falling through
// to identifier scanning when not followed by a quote.
func (l *Lexer) scanUpperU() token.Token {
	if l.tryByte('"') {
		return l.scanString(token.STRING_32)
	}
	if l.tryByte('\'') {
		return l.scanChar(token.CHAR_32)
	}
	return l.scanIdentifier([]byte("U"))
}

// scanEncL handles the 'L' (wide) encoding prefix, falling through to
// identifier scanning when not followed by a quote.
func (l *Lexer) scanEncL() token.Token {
	if l.tryByte('"') {
		return l.scanString(token.STRING_WIDE)
	}
	if l.tryByte('\'') {
		return l.scanChar(token.CHAR_WIDE)
	}
	return l.scanIdentifier([]byte("L"))
}

// scanIdentifier scans an identifier whose first character(s) (initial)
// have already been consumed from the Reader.
func (l *Lexer) scanIdentifier(initial []byte) token.Token {
	l.resetBuf()
	l.buf = append(l.buf, initial...)
	return l.scanIdentifierContinue()
}

// scanIdentifierFromUCN handles an identifier that starts directly with
// a universal-character-name: the Reader has already yielded the
// leading '\\'; the 'u'/'U' marker is still unconsumed.
func (l *Lexer) scanIdentifierFromUCN() token.Token {
	l.resetBuf()
	marker, _ := l.get()
	n := 4
	if marker == 'U' {
		n = 8
	}
	if r, ok := l.readHexRune(n); ok {
		l.buf, _ = runeenc.AppendUTF8(l.buf, r)
	}
	return l.scanIdentifierContinue()
}

// scanIdentifierContinue consumes the maximal run of identifier-continue
// bytes and UCNs following whatever is already in l.buf.
func (l *Lexer) scanIdentifierContinue() token.Token {
	for {
		b, ok := l.peek()
		if !ok {
			break
		}
		if isIdentContinue(b) {
			l.get()
			l.appendByte(b)
			continue
		}
		if b == '\\' {
			bs, _ := l.get()
			b2, ok2 := l.peek()
			if ok2 && (b2 == 'u' || b2 == 'U') {
				l.get()
				n := 4
				if b2 == 'U' {
					n = 8
				}
				if r, okr := l.readHexRune(n); okr {
					l.buf, _ = runeenc.AppendUTF8(l.buf, r)
				}
				continue
			}
			l.unget(bs)
			break
		}
		break
	}
	return l.makeToken(token.IDENTIFIER, l.bufString())
}

// readHexRune reads exactly n hex digits and returns their value. A
// non-hex byte (or EOF) before n digits are read is an invalid
// universal-character-name: a diagnostic is emitted, the offending byte
// (if any) is pushed back, and ok is false.
func (l *Lexer) readHexRune(n int) (r rune, ok bool) {
	for i := 0; i < n; i++ {
		b, got := l.get()
		if !got || !isHexDigit(b) {
			if got {
				l.unget(b)
			}
			l.errorf(l.scratch.Pos, "incomplete universal character name")
			return 0, false
		}
		r = r<<4 | rune(hexValue(b))
	}
	return r, true
}
