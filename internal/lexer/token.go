package lexer

import "fmt"

// TokenType identifies the kind of a lexical token. The wuns surface
// syntax has a tiny alphabet: words, the two brackets, and whitespace
// (which never reaches the token stream).
type TokenType int

const (
	// ILLEGAL marks a byte outside the language's character classes.
	ILLEGAL TokenType = iota
	// EOF marks the end of input.
	EOF
	// WORD is a maximal run of word characters (a-z, 0-9, '-', '.', '=').
	WORD
	// LBRACKET is '['.
	LBRACKET
	// RBRACKET is ']'.
	RBRACKET
)

// String returns the token type name for diagnostics and token dumps.
func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case WORD:
		return "WORD"
	case LBRACKET:
		return "LBRACKET"
	case RBRACKET:
		return "RBRACKET"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a single lexical token. Offset is the byte offset of the
// token's first byte in the input stream.
type Token struct {
	Literal string
	Type    TokenType
	Offset  int
}
