package token

// Digraph maps each C11 digraph spelling to the Kind of the punctuator it
// stands for. `%:%:` is handled separately by the lexer since it is the
// only two-token digraph.
var Digraph = map[string]Kind{
	"<:": LBRACK,
	":>": RBRACK,
	"<%": LBRACE,
	"%>": RBRACE,
	"%:": HASH,
}

// DigraphHashHash is the digraph spelling for ##.
const DigraphHashHash = "%:%:"

// Text returns the canonical (non-digraph) spelling of a punctuator Kind,
// or "" if k is not a punctuator.
func Text(k Kind) string {
	switch k {
	case LBRACK, RBRACK, LPAREN, RPAREN, LBRACE, RBRACE, DOT, ELLIPSIS,
		AMP, ANDAND, ANDEQ, STAR, STAREQ, PLUS, PLUSPLUS, PLUSEQ,
		MINUS, MINUSMINUS, MINUSEQ, ARROW, TILDE, EXCLAIM, EXCLAIMEQ,
		SLASH, SLASHEQ, PERCENT, PERCENTEQ, LESS, LSHIFT, LSHIFTEQ, LESSEQ,
		GREATER, RSHIFT, GREATEREQ, RSHIFTEQ, CARET, CARETEQ, PIPE, PIPEPIPE,
		PIPEEQ, QUESTION, COLON, SEMI, EQ, EQEQ, COMMA, HASH, HASHHASH:
		return kindNames[k]
	}
	return ""
}
