package token

import (
	"fmt"

	"github.com/ccfront/lexer/runeenc"
)

// Runes decodes t.Lit (which the lexer always leaves as valid UTF-8,
// regardless of which of the five character/string encodings t.Kind
// names) into its constituent runes. It is only meaningful for literal
// kinds; calling it on a non-literal token decodes an empty Lit into an
// empty slice.
func (t Token) Runes() ([]rune, error) {
	b := []byte(t.Lit)
	rs := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, n, err := runeenc.DecodeUTF8(b)
		if err != nil {
			return nil, fmt.Errorf("token: %s: %w", t.Pos, err)
		}
		rs = append(rs, r)
		b = b[n:]
	}
	return rs, nil
}

// UTF16 widens a CHAR_16/STRING_16 token's decoded literal to UTF-16
// code units (little-endian, with surrogate pairs above the BMP), for
// callers that need the char16_t representation rather than the raw
// UTF-8 lexer payload.
func (t Token) UTF16() ([]byte, error) {
	rs, err := t.Runes()
	if err != nil {
		return nil, err
	}
	return runeenc.ToUTF16(rs), nil
}

// UTF32 widens a CHAR_32/STRING_32 (or CHAR_WIDE/STRING_WIDE, on
// platforms where wchar_t is 32 bits) token's decoded literal to
// little-endian UTF-32 code units.
func (t Token) UTF32() ([]byte, error) {
	rs, err := t.Runes()
	if err != nil {
		return nil, err
	}
	return runeenc.ToUTF32(rs), nil
}
