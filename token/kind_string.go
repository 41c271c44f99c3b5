package token

import "strconv"

// String returns the canonical name of k. Normally generated by
// `stringer -type Kind` (see the go:generate directive in token.go); written
// by hand here since no generator runs as part of building this module.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

var kindNames = map[Kind]string{
	Invalid:     "INVALID",
	END:         "END",
	IDENTIFIER:  "IDENTIFIER",
	NUMBER:      "NUMBER",
	CHAR:        "CHAR",
	CHAR_WIDE:   "WCHAR",
	CHAR_U8:     "U8CHAR",
	CHAR_16:     "CHAR16",
	CHAR_32:     "CHAR32",
	STRING:      "STRING",
	STRING_WIDE: "WSTRING",
	STRING_U8:   "UTF8STRING",
	STRING_16:   "STRING16",
	STRING_32:   "STRING32",
	SPACE:       "SPACE",
	COMMENT:     "COMMENT",
	NEW_LINE:    "NEW_LINE",
	BACKSLASH:   "BACKSLASH",
	UNKNOWN:     "UNKNOWN",

	LBRACK: "[", RBRACK: "]", LPAREN: "(", RPAREN: ")",
	LBRACE: "{", RBRACE: "}", DOT: ".", ELLIPSIS: "...",
	AMP: "&", ANDAND: "&&", ANDEQ: "&=",
	STAR: "*", STAREQ: "*=",
	PLUS: "+", PLUSPLUS: "++", PLUSEQ: "+=",
	MINUS: "-", MINUSMINUS: "--", MINUSEQ: "-=", ARROW: "->",
	TILDE: "~",
	EXCLAIM: "!", EXCLAIMEQ: "!=",
	SLASH: "/", SLASHEQ: "/=",
	PERCENT: "%", PERCENTEQ: "%=",
	LESS: "<", LSHIFT: "<<", LSHIFTEQ: "<<=", LESSEQ: "<=",
	GREATER: ">", RSHIFT: ">>", GREATEREQ: ">=", RSHIFTEQ: ">>=",
	CARET: "^", CARETEQ: "^=",
	PIPE: "|", PIPEPIPE: "||", PIPEEQ: "|=",
	QUESTION: "?", COLON: ":", SEMI: ";",
	EQ: "=", EQEQ: "==",
	COMMA: ",", HASH: "#", HASHHASH: "##",
}
