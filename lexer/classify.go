package lexer

// Byte classification helpers for the C11 lexical grammar (spec.md §4.4).
// The lexer operates on raw bytes, not decoded runes: identifiers accept
// the high-byte range 0x80-0xFD opaquely (an extension many C front ends
// allow for non-ASCII identifiers without full UTF-8 validation) while
// universal-character-names are decoded explicitly and UTF-8 re-encoded
// in place.

func isSpaceNotNL(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isHighByte(b byte) bool { return b >= 0x80 && b <= 0xFD }

func isIdentStart(b byte) bool {
	return isAlpha(b) || b == '_' || b == '$' || isHighByte(b)
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func hexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
